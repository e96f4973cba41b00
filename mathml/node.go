// Package mathml describes the semantic math markup tree produced by the latex
// compiler and renders it as presentation MathML.
package mathml

// Node is an element of the markup tree. The set of implementations is closed.
type Node interface {
	node()
}

// DisplayStyle selects block (display) or inline math.
type DisplayStyle int

const (
	Inline DisplayStyle = iota
	Block
)

// Variant is the font variant of an identifier, rendered as mathvariant.
type Variant int

const (
	Italic Variant = iota
	Normal
	Bold
	BoldItalic
	DoubleStruck
	BoldFraktur
	Script
	BoldScript
	Fraktur
	SansSerif
	BoldSansSerif
	SansSerifItalic
	SansSerifBoldItalic
	Monospace
)

var variants = [...]string{
	Italic:              "italic",
	Normal:              "normal",
	Bold:                "bold",
	BoldItalic:          "bold-italic",
	DoubleStruck:        "double-struck",
	BoldFraktur:         "bold-fraktur",
	Script:              "script",
	BoldScript:          "bold-script",
	Fraktur:             "fraktur",
	SansSerif:           "sans-serif",
	BoldSansSerif:       "bold-sans-serif",
	SansSerifItalic:     "sans-serif-italic",
	SansSerifBoldItalic: "sans-serif-bold-italic",
	Monospace:           "monospace",
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variants) {
		return "normal"
	}

	return variants[v]
}

// LineThickness of a fraction bar. Binomials use Zero.
type LineThickness int

const (
	Medium LineThickness = iota
	Zero
)

type Root struct {
	Display  DisplayStyle
	Children []Node
}

// Row groups nodes horizontally. Bracket is set when the row comes from an
// explicit brace group in the source rather than from a sequence of siblings.
type Row struct {
	Children []Node
	Bracket  bool
}

type Identifier struct {
	Text    string
	Variant Variant
}

type Number struct {
	Text string
}

// Operator is an operator, fence or separator glyph.
type Operator struct {
	Text      string
	Fence     bool
	Separator bool
	LargeOp   bool
	Stretchy  bool
	Size      string // min and max size for sized delimiters, e.g. 1.2em
}

// Function is a named function such as sin or an \operatorname. Args holds
// the arguments the function is applied to, if any.
type Function struct {
	Name string
	Args []Node
}

// Space is horizontal space, Width in em.
type Space struct {
	Width float32
}

type Text struct {
	Text string
}

type Superscript struct {
	Base, Sup Node
}

type Subscript struct {
	Base, Sub Node
}

type SubSup struct {
	Base, Sub, Sup Node
}

type Over struct {
	Base, Over Node
	Accent     bool
}

type Under struct {
	Base, Under Node
	Accent      bool
}

type UnderOver struct {
	Base, Under, Over       Node
	AccentUnder, AccentOver bool
}

// Sqrt is a radical, Index is nil for a square root.
type Sqrt struct {
	Base, Index Node
}

type Fraction struct {
	Numerator, Denominator Node
	LineThickness          LineThickness
}

// Fenced wraps content in a pair of delimiters. An empty glyph is an
// invisible fence.
type Fenced struct {
	Open, Close string
	Content     Node
}

// Table is a matrix-like layout. Cells is a flat stream where NewLine ends a
// row and Ampersand ends a cell; consecutive non-sentinel nodes form one cell.
type Table struct {
	Cells       []Node
	Align       string // columnalign: left, center, right, or a space separated list
	ColumnLines string // columnlines, empty when there are no vertical rules
}

type NewLine struct{}

type Ampersand struct{}

type Styled struct {
	Display DisplayStyle
	Content Node
}

func (*Root) node()        {}
func (*Row) node()         {}
func (*Identifier) node()  {}
func (*Number) node()      {}
func (*Operator) node()    {}
func (*Function) node()    {}
func (*Space) node()       {}
func (*Text) node()        {}
func (*Superscript) node() {}
func (*Subscript) node()   {}
func (*SubSup) node()      {}
func (*Over) node()        {}
func (*Under) node()       {}
func (*UnderOver) node()   {}
func (*Sqrt) node()        {}
func (*Fraction) node()    {}
func (*Fenced) node()      {}
func (*Table) node()       {}
func (*NewLine) node()     {}
func (*Ampersand) node()   {}
func (*Styled) node()      {}

// Rows splits the cell stream into rows of cells. Each cell is the list of
// nodes between two boundaries. A table always has at least one row with one
// cell.
func (t *Table) Rows() [][][]Node {
	rows := [][][]Node{}
	row := [][]Node{}
	var cell []Node

	for _, n := range t.Cells {
		switch n.(type) {
		case *Ampersand:
			row = append(row, cell)
			cell = nil
		case *NewLine:
			row = append(row, cell)
			rows = append(rows, row)
			row, cell = [][]Node{}, nil
		default:
			cell = append(cell, n)
		}
	}

	row = append(row, cell)
	return append(rows, row)
}
