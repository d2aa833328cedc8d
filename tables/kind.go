package tables

// Kind is the token kind for table-defined lexers. Value carries the payload
// produced by the rule's value parser, nil for fixed tokens.
type Kind struct {
	Name  string
	Value any
}
