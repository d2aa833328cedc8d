package main

import (
	"github.com/reusee/dscope"
	"github.com/seaflow-lang/sealex/scripts"
	"github.com/seaflow-lang/sealex/tables"
)

type Module struct {
	dscope.Module
	Tables  tables.Module
	Scripts scripts.Module
}
