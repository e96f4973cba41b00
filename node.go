package latex

type Kind int

const (
	RootKind Kind = iota
	RowKind
	CommandKind
	EnvironmentKind
	LetterKind
	NumberKind
	OperatorKind
	TextKind
	SuperscriptKind
	SubscriptKind
	SubSupKind
	UnderKind
	OverKind
	UnderOverKind
	NewLineKind
	AmpersandKind
)

// Node is an element of the syntax tree.
//
// Data holds the text of letters, numbers, operators and text, the name of an
// environment or of an unrecognized command. Tag is the token which
// introduced a command. Scripts keep their base as the first child followed
// by the sub and/or superscript (under and/or over for limits).
type Node struct {
	Kind       Kind
	Data       string
	Tag        any
	Parameters map[string]string
	Children   []*Node
}
