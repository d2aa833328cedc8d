package lexers

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern reports whether, and how many bytes of, the beginning of input it
// consumes.
type Pattern interface {
	Match(input string) (length int, ok bool)
}

type literalPattern string

func Lit(literal string) Pattern {
	return literalPattern(literal)
}

func (l literalPattern) Match(input string) (int, bool) {
	if strings.HasPrefix(input, string(l)) {
		return len(l), true
	}
	return 0, false
}

type regexPattern struct {
	re *regexp.Regexp
}

// Regex compiles expr anchored to the start of the input. A leading ^ is
// added when absent.
func Regex(expr string) (Pattern, error) {
	anchored := expr
	if !strings.HasPrefix(anchored, "^") {
		anchored = "^" + anchored
	}
	re, err := regexp.Compile(anchored)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", expr, err)
	}
	return regexPattern{
		re: re,
	}, nil
}

func MustRegex(expr string) Pattern {
	pattern, err := Regex(expr)
	if err != nil {
		panic(err)
	}
	return pattern
}

func (p regexPattern) Match(input string) (int, bool) {
	loc := p.re.FindStringIndex(input)
	if loc == nil || loc[0] != 0 {
		return 0, false
	}
	return loc[1], true
}
