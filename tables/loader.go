package tables

import (
	_ "embed"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schema string

// Rule is one entry of a declarative token table. Order in the file is
// priority order.
type Rule struct {
	Token   string `json:"token"`
	Pattern string `json:"pattern"`
	Regex   bool   `json:"regex"`
	Skip    bool   `json:"skip"`
	Value   string `json:"value"`
}

type Loader struct {
	getRules func() ([]Rule, error)
}

func NewLoader(filePaths []string) Loader {
	return Loader{

		getRules: sync.OnceValues(func() (ret []Rule, err error) {

			ctx := cuecontext.New()
			schemaValue := ctx.CompileString("close({" + schema + "})")
			if err := schemaValue.Err(); err != nil {
				return nil, err
			}

			for _, filePath := range filePaths {
				content, err := os.ReadFile(filePath)
				if err != nil {
					return nil, err
				}

				value := ctx.CompileBytes(
					content,
					cue.Filename(filePath),
				)
				if err = value.Err(); err != nil {
					return nil, err
				}

				if err := schemaValue.Unify(value).Validate(cue.Concrete(true)); err != nil {
					return nil, err
				}

				var file struct {
					Rules []Rule `json:"rules"`
				}
				if err := value.Decode(&file); err != nil {
					return nil, err
				}
				ret = append(ret, file.Rules...)
			}

			return
		}),
	}
}

func (l Loader) Rules() ([]Rule, error) {
	return l.getRules()
}
