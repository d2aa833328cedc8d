package tables

import (
	"fmt"
	"strconv"

	"github.com/seaflow-lang/sealex/lexers"
)

var valueParsers = map[string]func(text string) (any, error){
	"int": func(text string) (any, error) {
		return strconv.ParseInt(text, 10, 64)
	},
	"float": func(text string) (any, error) {
		return strconv.ParseFloat(text, 64)
	},
	"text": func(text string) (any, error) {
		return text, nil
	},
}

// Matchers compiles rules into an ordered matcher list. All pattern and rule
// errors surface here, before any input is scanned.
func Matchers(rules []Rule) ([]lexers.Matcher[Kind], error) {
	var matchers []lexers.Matcher[Kind]
	for i, rule := range rules {

		var pattern lexers.Pattern
		if rule.Regex {
			var err error
			pattern, err = lexers.Regex(rule.Pattern)
			if err != nil {
				return nil, fmt.Errorf("rule %d: %w", i, err)
			}
		} else {
			pattern = lexers.Lit(rule.Pattern)
		}

		switch {

		case rule.Skip:
			if rule.Token != "" || rule.Value != "" {
				return nil, fmt.Errorf("rule %d: skip rule cannot name a token", i)
			}
			matchers = append(matchers, lexers.Skip[Kind](pattern))

		case rule.Token == "":
			return nil, fmt.Errorf("rule %d: token name required", i)

		case rule.Value == "":
			matchers = append(matchers, lexers.Emit(Kind{Name: rule.Token}, pattern))

		default:
			parse, ok := valueParsers[rule.Value]
			if !ok {
				return nil, fmt.Errorf("rule %d: unknown value parser %q", i, rule.Value)
			}
			name := rule.Token
			matchers = append(matchers, lexers.EmitFunc(func(text string) (Kind, error) {
				value, err := parse(text)
				if err != nil {
					return Kind{}, err
				}
				return Kind{
					Name:  name,
					Value: value,
				}, nil
			}, pattern))

		}
	}
	return matchers, nil
}
