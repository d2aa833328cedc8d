package lexers

import "strings"

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

type Pos struct {
	Source *Source
	Line   int
	Column int
}

// PosAt maps a byte offset into 1-based line and column numbers.
func (s *Source) PosAt(offset int) Pos {
	line := 1
	column := 1
	for i, r := range s.Content {
		if i >= offset {
			break
		}
		if r == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return Pos{
		Source: s,
		Line:   line,
		Column: column,
	}
}
