package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/reusee/dscope"
	"github.com/seaflow-lang/sealex/cmds"
	"github.com/seaflow-lang/sealex/lexers"
	"github.com/seaflow-lang/sealex/logs"
	"github.com/seaflow-lang/sealex/modes"
	"github.com/seaflow-lang/sealex/scripts"
	"github.com/seaflow-lang/sealex/tables"
	"github.com/seaflow-lang/sealex/vars"
)

var (
	tableArgs = cmds.Collect[string]("-table")
	inputArg  = cmds.Var[string]("-input")
)

func init() {
	cmds.Define("-version", cmds.Func(func() {
		fmt.Println("sealex 0.1")
		os.Exit(0)
	}).Desc("print version"))
}

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		buildTable tables.Build,
		buildScript scripts.Build,
	) {
		ctx, _ := newSpan(ctx, "")

		// input
		var content []byte
		var err error
		name := vars.DerefOrZero(inputArg)
		if name != "" {
			content, err = os.ReadFile(name)
			ce(err)
		} else {
			content, err = io.ReadAll(os.Stdin)
			ce(err)
		}
		source := lexers.NewSource(
			vars.FirstNonZero(name, "stdin"),
			string(content),
		)

		// table files, CUE or starlark by extension
		var cuePaths []string
		var starPaths []string
		for _, path := range *tableArgs {
			if filepath.Ext(path) == ".star" {
				starPaths = append(starPaths, path)
			} else {
				cuePaths = append(cuePaths, path)
			}
		}

		var lexer *lexers.Lexer[tables.Kind]
		switch {
		case len(starPaths) > 0 && len(cuePaths) > 0:
			ce(fmt.Errorf("cannot mix .cue and .star tables"))
		case len(starPaths) > 1:
			ce(fmt.Errorf("at most one .star table"))
		case len(starPaths) == 1:
			lexer, err = buildScript(starPaths[0], source)
			ce(err)
		case len(cuePaths) > 0:
			lexer, err = buildTable(cuePaths, source)
			ce(err)
		default:
			ce(fmt.Errorf("no token table, use -table"))
		}

		start := time.Now()
		count := 0
		for token, err := range lexer.Tokens {
			if err != nil {
				ce(logs.WrapSpan(ctx, err))
			}
			if token.Kind.Value != nil {
				fmt.Printf("%d-%d\t%s\t%q\t%v\n",
					token.Start, token.End, token.Kind.Name, token.Text, token.Kind.Value)
			} else {
				fmt.Printf("%d-%d\t%s\t%q\n",
					token.Start, token.End, token.Kind.Name, token.Text)
			}
			count++
		}
		logger.InfoContext(ctx, "lexed",
			"source", source.Name,
			"tokens", count,
			"duration", time.Since(start),
		)
	})
}

func ce(err error) {
	if err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(1)
	}
}
