package tables

import (
	"github.com/reusee/dscope"
	"github.com/seaflow-lang/sealex/lexers"
	"github.com/seaflow-lang/sealex/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type Build func(tablePaths []string, source *lexers.Source) (*lexers.Lexer[Kind], error)

func (Module) Build(
	logger logs.Logger,
) Build {
	return func(tablePaths []string, source *lexers.Source) (*lexers.Lexer[Kind], error) {
		loader := NewLoader(tablePaths)
		rules, err := loader.Rules()
		if err != nil {
			return nil, err
		}
		logger.Info("token table",
			"paths", tablePaths,
			"rules", len(rules),
		)
		matchers, err := Matchers(rules)
		if err != nil {
			return nil, err
		}
		return lexers.New(source, matchers)
	}
}
