package lexers

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// Lexer scans a Source with an ordered matcher list. Matchers are tried in
// declared order at each position and the first match wins; match lengths
// are never compared across matchers.
type Lexer[K any] struct {
	source   *Source
	matchers []Matcher[K]
	offset   int
	halted   bool
}

// New validates the matcher list before any scanning. Patterns that can
// match the empty string are rejected so every match advances the cursor.
func New[K any](source *Source, matchers []Matcher[K]) (*Lexer[K], error) {
	for i, matcher := range matchers {
		if matcher.Pattern == nil {
			return nil, fmt.Errorf("matcher %d: %w", i, ErrNoPattern)
		}
		if _, ok := matcher.Pattern.Match(""); ok {
			return nil, fmt.Errorf("matcher %d: %w", i, ErrEmptyMatch)
		}
	}
	return &Lexer[K]{
		source:   source,
		matchers: slices.Clone(matchers),
	}, nil
}

func (l *Lexer[K]) next() (token Token[K], emitted bool, err error) {
	for {
		if l.halted {
			return
		}
		if l.offset >= len(l.source.Content) {
			l.halted = true
			return
		}

		remaining := l.source.Content[l.offset:]

		matched := false
		for _, matcher := range l.matchers {
			length, ok := matcher.Pattern.Match(remaining)
			// a zero-width match cannot advance the cursor; patterns
			// like \b fail on "" yet match zero bytes here, so they
			// slip past New
			if !ok || length == 0 {
				continue
			}
			matched = true

			text := remaining[:length]
			start := l.offset
			l.offset += length

			if matcher.Make == nil {
				// skip match, rescan from the new offset
				break
			}

			kind, makeErr := matcher.Make(text)
			if makeErr != nil {
				l.halted = true
				err = newLexError(
					fmt.Errorf("make token from %q: %w", text, makeErr),
					l.source,
					start,
				)
				return
			}

			return Token[K]{
				Kind:  kind,
				Text:  text,
				Start: start,
				End:   l.offset,
			}, true, nil
		}

		if matched {
			continue
		}

		l.halted = true
		r, _ := utf8.DecodeRuneInString(remaining)
		err = newLexError(
			fmt.Errorf("%w: %q", ErrUnrecognized, r),
			l.source,
			l.offset,
		)
		return
	}
}

// Tokens is an iterator over the remaining tokens, usable as
// for token, err := range lexer.Tokens. The sequence ends at input
// exhaustion or after yielding one error.
func (l *Lexer[K]) Tokens(yield func(Token[K], error) bool) {
	for {
		token, emitted, err := l.next()
		if err != nil {
			yield(Token[K]{}, err)
			return
		}
		if !emitted {
			return
		}
		if !yield(token, nil) {
			return
		}
	}
}

// Collect runs the whole pass eagerly, returning either all tokens or the
// first error.
func (l *Lexer[K]) Collect() ([]Token[K], error) {
	var tokens []Token[K]
	for token, err := range l.Tokens {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}
