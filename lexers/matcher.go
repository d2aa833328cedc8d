package lexers

// Matcher pairs a Pattern with a token function. A nil Make marks a skip
// matcher: the match advances the cursor but emits nothing.
type Matcher[K any] struct {
	Pattern Pattern
	Make    func(text string) (K, error)
}

func Skip[K any](pattern Pattern) Matcher[K] {
	return Matcher[K]{
		Pattern: pattern,
	}
}

func Emit[K any](kind K, pattern Pattern) Matcher[K] {
	return Matcher[K]{
		Pattern: pattern,
		Make: func(string) (K, error) {
			return kind, nil
		},
	}
}

func EmitFunc[K any](fn func(text string) (K, error), pattern Pattern) Matcher[K] {
	return Matcher[K]{
		Pattern: pattern,
		Make:    fn,
	}
}
