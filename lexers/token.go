package lexers

// Token is a classified span of source text. Start and End are byte offsets,
// End = Start + len(Text).
type Token[K any] struct {
	Kind  K
	Text  string
	Start int
	End   int
}
