package scripts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/seaflow-lang/sealex/lexers"
	"github.com/seaflow-lang/sealex/modes"
	"github.com/seaflow-lang/sealex/tables"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.star")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const calcScript = `
def int_value(text):
    return parse_int(text)

token_fn("integer", "[0-9]+", int_value, regex=True)
token("plus", "+")
token("minus", "-")
skip("[ \\t]+", regex=True)
`

func TestBuild(t *testing.T) {
	path := writeScript(t, calcScript)

	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		build Build,
	) {
		lexer, err := build(path, lexers.NewSource("test", "40 + 2"))
		if err != nil {
			t.Fatal(err)
		}
		tokens, err := lexer.Collect()
		if err != nil {
			t.Fatal(err)
		}

		want := []lexers.Token[tables.Kind]{
			{Kind: tables.Kind{Name: "integer", Value: int64(40)}, Text: "40", Start: 0, End: 2},
			{Kind: tables.Kind{Name: "plus"}, Text: "+", Start: 3, End: 4},
			{Kind: tables.Kind{Name: "integer", Value: int64(2)}, Text: "2", Start: 5, End: 6},
		}
		if len(tokens) != len(want) {
			t.Fatalf("got %+v", tokens)
		}
		for i, token := range tokens {
			if token != want[i] {
				t.Fatalf("token %d: got %+v, want %+v", i, token, want[i])
			}
		}
	})
}

func TestScriptDefinedGeneration(t *testing.T) {
	// a script can generate rules instead of listing them
	path := writeScript(t, `
for op in ["+", "-", "*", "/"]:
    token("op", op)
skip(" ")
`)
	matchers, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	lexer, err := lexers.New(lexers.NewSource("test", "+ / -"), matchers)
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := lexer.Collect()
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 {
		t.Fatalf("got %+v", tokens)
	}
}

func TestScriptFnOverflow(t *testing.T) {
	// starlark ints are unbounded; conversion to the bounded Go value
	// fails, halting the pass at the match start
	path := writeScript(t, `
token_fn("integer", "[0-9]+", int, regex=True)
`)
	matchers, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	lexer, err := lexers.New(lexers.NewSource("test", "99999999999999999999"), matchers)
	if err != nil {
		t.Fatal(err)
	}
	_, err = lexer.Collect()
	if err == nil {
		t.Fatal("expected error")
	}
	var le *lexers.LexError
	if !errors.As(err, &le) || le.Offset != 0 {
		t.Fatalf("got %v", err)
	}
}

func TestScriptFnError(t *testing.T) {
	path := writeScript(t, `
def reject(text):
    fail("not today")

token_fn("nope", "[a-z]+", reject, regex=True)
`)
	matchers, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	lexer, err := lexers.New(lexers.NewSource("test", "abc"), matchers)
	if err != nil {
		t.Fatal(err)
	}
	_, err = lexer.Collect()
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestScriptErrors(t *testing.T) {
	for _, content := range []string{
		`token("a")`,                          // missing pattern
		`token("a", "(bad", regex=True)`,      // bad regex
		`skip("x", regex=True, what=1)`,       // unknown kwarg
		`this is not starlark`,                // syntax error
		`token_fn("a", "[0-9]+", regex=True)`, // missing fn
	} {
		path := writeScript(t, content)
		_, err := Load(path)
		if err == nil {
			t.Fatalf("no error for %s", content)
		}
	}
}
