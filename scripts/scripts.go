package scripts

import (
	"fmt"
	"strconv"

	"github.com/reusee/starlarkutil"
	"github.com/seaflow-lang/sealex/lexers"
	"github.com/seaflow-lang/sealex/tables"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// Load runs a Starlark script that declares a token table. The script calls
// the predeclared token, token_fn and skip builtins; call order is priority
// order. token_fn takes a callable applied to each matched substring.
func Load(path string) ([]lexers.Matcher[tables.Kind], error) {
	var matchers []lexers.Matcher[tables.Kind]

	newPattern := func(pattern string, regex bool) (lexers.Pattern, error) {
		if regex {
			return lexers.Regex(pattern)
		}
		return lexers.Lit(pattern), nil
	}

	predeclared := starlark.StringDict{

		"token": starlark.NewBuiltin("token", func(
			thread *starlark.Thread,
			b *starlark.Builtin,
			args starlark.Tuple,
			kwargs []starlark.Tuple,
		) (starlark.Value, error) {
			var name, pattern string
			var regex bool
			if err := starlark.UnpackArgs(b.Name(), args, kwargs,
				"name", &name,
				"pattern", &pattern,
				"regex?", &regex,
			); err != nil {
				return nil, err
			}
			p, err := newPattern(pattern, regex)
			if err != nil {
				return nil, err
			}
			matchers = append(matchers, lexers.Emit(tables.Kind{Name: name}, p))
			return starlark.None, nil
		}),

		"token_fn": starlark.NewBuiltin("token_fn", func(
			thread *starlark.Thread,
			b *starlark.Builtin,
			args starlark.Tuple,
			kwargs []starlark.Tuple,
		) (starlark.Value, error) {
			var name, pattern string
			var fn starlark.Callable
			var regex bool
			if err := starlark.UnpackArgs(b.Name(), args, kwargs,
				"name", &name,
				"pattern", &pattern,
				"fn", &fn,
				"regex?", &regex,
			); err != nil {
				return nil, err
			}
			p, err := newPattern(pattern, regex)
			if err != nil {
				return nil, err
			}
			matchers = append(matchers, lexers.EmitFunc(func(text string) (tables.Kind, error) {
				thread := &starlark.Thread{
					Name: "token_fn: " + name,
				}
				result, err := starlark.Call(thread, fn, starlark.Tuple{
					starlark.String(text),
				}, nil)
				if err != nil {
					return tables.Kind{}, err
				}
				value, err := fromStarlarkValue(result)
				if err != nil {
					return tables.Kind{}, err
				}
				return tables.Kind{
					Name:  name,
					Value: value,
				}, nil
			}, p))
			return starlark.None, nil
		}),

		"skip": starlark.NewBuiltin("skip", func(
			thread *starlark.Thread,
			b *starlark.Builtin,
			args starlark.Tuple,
			kwargs []starlark.Tuple,
		) (starlark.Value, error) {
			var pattern string
			var regex bool
			if err := starlark.UnpackArgs(b.Name(), args, kwargs,
				"pattern", &pattern,
				"regex?", &regex,
			); err != nil {
				return nil, err
			}
			p, err := newPattern(pattern, regex)
			if err != nil {
				return nil, err
			}
			matchers = append(matchers, lexers.Skip[tables.Kind](p))
			return starlark.None, nil
		}),

		"parse_int": starlarkutil.MakeFunc("parse_int", func(text string) (int64, error) {
			return strconv.ParseInt(text, 10, 64)
		}),

		"parse_float": starlarkutil.MakeFunc("parse_float", func(text string) (float64, error) {
			return strconv.ParseFloat(text, 64)
		}),
	}

	thread := &starlark.Thread{
		Name: path,
	}
	if _, err := starlark.ExecFileOptions(fileOptions, thread, path, nil, predeclared); err != nil {
		return nil, err
	}

	return matchers, nil
}

func fromStarlarkValue(v starlark.Value) (any, error) {
	switch v := v.(type) {

	case starlark.NoneType:
		return nil, nil

	case starlark.Bool:
		return bool(v), nil

	case starlark.String:
		return string(v), nil

	case starlark.Bytes:
		return []byte(v), nil

	case starlark.Int:
		i, ok := v.Int64()
		if !ok {
			return nil, fmt.Errorf("integer out of range: %s", v)
		}
		return i, nil

	case starlark.Float:
		return float64(v), nil

	case *starlark.List:
		elems := make([]any, 0, v.Len())
		it := v.Iterate()
		defer it.Done()
		var elem starlark.Value
		for it.Next(&elem) {
			e, err := fromStarlarkValue(elem)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
		return elems, nil

	case *starlark.Dict:
		m := make(map[string]any, v.Len())
		for _, item := range v.Items() {
			key, ok := item[0].(starlark.String)
			if !ok {
				return nil, fmt.Errorf("unsupported dict key: %s", item[0].Type())
			}
			value, err := fromStarlarkValue(item[1])
			if err != nil {
				return nil, err
			}
			m[string(key)] = value
		}
		return m, nil

	}
	return nil, fmt.Errorf("unsupported value: %s", v.Type())
}
