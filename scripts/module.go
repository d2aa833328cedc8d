package scripts

import (
	"github.com/reusee/dscope"
	"github.com/seaflow-lang/sealex/lexers"
	"github.com/seaflow-lang/sealex/logs"
	"github.com/seaflow-lang/sealex/tables"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type Build func(scriptPath string, source *lexers.Source) (*lexers.Lexer[tables.Kind], error)

func (Module) Build(
	logger logs.Logger,
) Build {
	return func(scriptPath string, source *lexers.Source) (*lexers.Lexer[tables.Kind], error) {
		matchers, err := Load(scriptPath)
		if err != nil {
			return nil, err
		}
		logger.Info("token script",
			"path", scriptPath,
			"matchers", len(matchers),
		)
		return lexers.New(source, matchers)
	}
}
