package latex

import (
	"fmt"

	"github.com/eolymp/go-latexmath/mathml"
)

// slash is the combining long solidus overlay used by \slashed
const slash = "̸"

// Lower translates a syntax tree into a math markup tree, resolving commands
// which are not structural against the table. A nil table means the default one.
func Lower(tree *Node, table *Table) (*mathml.Root, error) {
	if table == nil {
		table = NewTable()
	}

	l := &lowering{table: table}

	children, err := l.children(tree.Children, mathml.Italic)
	if err != nil {
		return nil, err
	}

	return &mathml.Root{Children: children}, nil
}

type lowering struct {
	table *Table
}

// lower translates one node, variant is the font variant set by the closest
// style switch, so the innermost switch wins
func (l *lowering) lower(node *Node, variant mathml.Variant) (mathml.Node, error) {
	switch node.Kind {
	case RootKind, RowKind:
		children, err := l.children(node.Children, variant)
		if err != nil {
			return nil, err
		}

		return &mathml.Row{Children: children, Bracket: node.Data == "{}"}, nil
	case LetterKind:
		return &mathml.Identifier{Text: node.Data, Variant: variant}, nil
	case NumberKind:
		return &mathml.Number{Text: node.Data}, nil
	case OperatorKind:
		_, fence := node.Tag.(Paren)
		return &mathml.Operator{Text: node.Data, Fence: fence, Separator: node.Tag == any(Operator(","))}, nil
	case TextKind:
		return &mathml.Text{Text: node.Data}, nil
	case NewLineKind:
		return &mathml.NewLine{}, nil
	case AmpersandKind:
		return &mathml.Ampersand{}, nil
	case SuperscriptKind, SubscriptKind, SubSupKind, UnderKind, OverKind, UnderOverKind:
		return l.scripts(node, variant)
	case CommandKind:
		return l.command(node, variant)
	case EnvironmentKind:
		return l.environment(node, variant)
	default:
		return nil, fmt.Errorf("unable to lower node of kind %d", node.Kind)
	}
}

func (l *lowering) children(nodes []*Node, variant mathml.Variant) ([]mathml.Node, error) {
	children := make([]mathml.Node, 0, len(nodes))
	for _, node := range nodes {
		child, err := l.lower(node, variant)
		if err != nil {
			return nil, err
		}

		children = append(children, child)
	}

	return children, nil
}

// row lowers nodes into a single node, wrapping them in a row unless there is
// exactly one
func (l *lowering) row(nodes []*Node, variant mathml.Variant) (mathml.Node, error) {
	if len(nodes) == 1 {
		return l.lower(nodes[0], variant)
	}

	children, err := l.children(nodes, variant)
	if err != nil {
		return nil, err
	}

	return &mathml.Row{Children: children}, nil
}

func (l *lowering) scripts(node *Node, variant mathml.Variant) (mathml.Node, error) {
	c, err := l.children(node.Children, variant)
	if err != nil {
		return nil, err
	}

	switch node.Kind {
	case SuperscriptKind:
		return &mathml.Superscript{Base: c[0], Sup: c[1]}, nil
	case SubscriptKind:
		return &mathml.Subscript{Base: c[0], Sub: c[1]}, nil
	case SubSupKind:
		return &mathml.SubSup{Base: c[0], Sub: c[1], Sup: c[2]}, nil
	case UnderKind:
		return &mathml.Under{Base: c[0], Under: c[1]}, nil
	case OverKind:
		return &mathml.Over{Base: c[0], Over: c[1]}, nil
	default:
		return &mathml.UnderOver{Base: c[0], Under: c[1], Over: c[2]}, nil
	}
}

func (l *lowering) command(node *Node, variant mathml.Variant) (mathml.Node, error) {
	switch tag := node.Tag.(type) {
	case Command:
		return l.lookup(string(tag), variant)
	case Verbatim:
		return l.hspace(node)
	case Fraction:
		return l.fraction(node, tag.Kind, variant)
	case Binomial:
		return l.fraction(node, tag.Kind, variant)
	case Sqrt:
		return l.sqrt(node, variant)
	case Over:
		return l.accent(node, tag.Glyph, tag.Accent, true, variant)
	case Under:
		return l.accent(node, tag.Glyph, tag.Accent, false, variant)
	case Overset, Underset:
		return l.set(node, variant)
	case Overbrace:
		return l.brace(node, tag.Glyph, true, variant)
	case Underbrace:
		return l.brace(node, tag.Glyph, false, variant)
	case BigOperator:
		return &mathml.Operator{Text: tag.Glyph, LargeOp: true}, nil
	case Integral:
		return &mathml.Operator{Text: tag.Glyph, LargeOp: true}, nil
	case Limit:
		return &mathml.Function{Name: tag.Name}, nil
	case Big:
		return &mathml.Operator{Text: node.Parameters["delimiter"], Stretchy: true, Size: tag.Size}, nil
	case Style:
		return l.style(node, tag.Variant)
	case Left:
		return l.fenced(node, variant)
	case Middle:
		return &mathml.Operator{Text: node.Parameters["delimiter"], Stretchy: true}, nil
	case OperatorName:
		return l.operatorName(node, variant)
	case Slashed:
		return l.slashed(node, variant)
	default:
		return nil, fmt.Errorf("unable to lower command %s", describe(node.Tag))
	}
}

// lookup resolves a command which is not structural against the table
func (l *lowering) lookup(name string, variant mathml.Variant) (mathml.Node, error) {
	def, ok := l.table.Lookup(name)
	if !ok {
		return nil, &UnknownCommandError{Name: name}
	}

	switch def.Category {
	case FunctionCategory:
		return &mathml.Function{Name: def.Text}, nil
	case OperatorCategory:
		return &mathml.Operator{Text: def.Text}, nil
	case LetterCategory:
		return &mathml.Identifier{Text: def.Text, Variant: variant}, nil
	case SpaceCategory:
		return &mathml.Space{Width: def.Width}, nil
	default:
		return nil, &UnknownCommandError{Name: name}
	}
}

func (l *lowering) hspace(node *Node) (mathml.Node, error) {
	width, err := MeasureEm(node.Parameters["width"])
	if err != nil {
		return nil, fmt.Errorf("invalid \\hspace width %q: %w", node.Parameters["width"], err)
	}

	return &mathml.Space{Width: width}, nil
}

// fraction lowers \frac and \binom families. Arguments after the first two
// follow the fraction in a row.
func (l *lowering) fraction(node *Node, kind string, variant mathml.Variant) (mathml.Node, error) {
	if len(node.Children) < 2 {
		return nil, &ArityError{Command: "\\" + kind, Want: 2, Got: len(node.Children)}
	}

	args, err := l.children(node.Children, variant)
	if err != nil {
		return nil, err
	}

	var result mathml.Node = &mathml.Fraction{Numerator: args[0], Denominator: args[1]}

	switch kind {
	case "binom", "dbinom", "tbinom":
		result = &mathml.Fenced{Open: "(", Close: ")", Content: &mathml.Fraction{Numerator: args[0], Denominator: args[1], LineThickness: mathml.Zero}}
	}

	switch kind {
	case "dfrac", "dbinom":
		result = &mathml.Styled{Display: mathml.Block, Content: result}
	case "tfrac", "tbinom":
		result = &mathml.Styled{Display: mathml.Inline, Content: result}
	}

	if len(args) == 2 {
		return result, nil
	}

	return &mathml.Row{Children: append([]mathml.Node{result}, args[2:]...)}, nil
}

func (l *lowering) sqrt(node *Node, variant mathml.Variant) (mathml.Node, error) {
	if len(node.Children) == 0 {
		return nil, &ArityError{Command: "\\sqrt", Want: 1, Got: 0}
	}

	args, err := l.children(node.Children, variant)
	if err != nil {
		return nil, err
	}

	if len(args) == 1 {
		return &mathml.Sqrt{Base: args[0]}, nil
	}

	return &mathml.Sqrt{Base: args[0], Index: args[1]}, nil
}

// accent puts glyph over or under the only argument
func (l *lowering) accent(node *Node, glyph string, accent, over bool, variant mathml.Variant) (mathml.Node, error) {
	if len(node.Children) != 1 {
		return nil, &ArityError{Command: "accent " + glyph, Want: 1, Got: len(node.Children)}
	}

	base, err := l.lower(node.Children[0], variant)
	if err != nil {
		return nil, err
	}

	mark := &mathml.Operator{Text: glyph}
	if over {
		return &mathml.Over{Base: base, Over: mark, Accent: accent}, nil
	}

	return &mathml.Under{Base: base, Under: mark, Accent: accent}, nil
}

// set lowers \overset{over}{base} and \underset{under}{base}
func (l *lowering) set(node *Node, variant mathml.Variant) (mathml.Node, error) {
	if len(node.Children) != 2 {
		return nil, &ArityError{Command: describe(node.Tag), Want: 2, Got: len(node.Children)}
	}

	args, err := l.children(node.Children, variant)
	if err != nil {
		return nil, err
	}

	if _, ok := node.Tag.(Underset); ok {
		return &mathml.Under{Base: args[1], Under: args[0]}, nil
	}

	return &mathml.Over{Base: args[1], Over: args[0]}, nil
}

// brace lowers \overbrace and \underbrace. The brace is an accent of the
// base, a label is stacked on the brace itself.
func (l *lowering) brace(node *Node, glyph string, over bool, variant mathml.Variant) (mathml.Node, error) {
	if len(node.Children) == 0 {
		return nil, &ArityError{Command: describe(node.Tag), Want: 1, Got: 0}
	}

	args, err := l.children(node.Children, variant)
	if err != nil {
		return nil, err
	}

	var mark mathml.Node = &mathml.Operator{Text: glyph, Stretchy: true}

	if over {
		if len(args) == 2 {
			mark = &mathml.Over{Base: mark, Over: args[1]}
		}

		return &mathml.Over{Base: args[0], Over: mark, Accent: true}, nil
	}

	if len(args) == 2 {
		mark = &mathml.Under{Base: mark, Under: args[1]}
	}

	return &mathml.Under{Base: args[0], Under: mark, Accent: true}, nil
}

func (l *lowering) style(node *Node, variant mathml.Variant) (mathml.Node, error) {
	if len(node.Children) != 1 {
		return nil, &ArityError{Command: describe(node.Tag), Want: 1, Got: len(node.Children)}
	}

	return l.lower(node.Children[0], variant)
}

// fenced lowers \left ... \right, an empty delimiter is invisible
func (l *lowering) fenced(node *Node, variant mathml.Variant) (mathml.Node, error) {
	content, err := l.row(node.Children, variant)
	if err != nil {
		return nil, err
	}

	return &mathml.Fenced{Open: node.Parameters["open"], Close: node.Parameters["close"], Content: content}, nil
}

// operatorName lowers \operatorname{name}, a name which is not plain text
// falls back to an empty name
func (l *lowering) operatorName(node *Node, variant mathml.Variant) (mathml.Node, error) {
	if len(node.Children) == 0 {
		return nil, &ArityError{Command: "\\operatorname", Want: 1, Got: 0}
	}

	name, err := stringify(node.Children[0])
	if err != nil {
		name = ""
	}

	args, err := l.children(node.Children[1:], variant)
	if err != nil {
		return nil, err
	}

	if len(args) == 0 {
		args = nil
	}

	return &mathml.Function{Name: name, Args: args}, nil
}

// slashed overlays a slash on a single identifier or operator, anything else
// is returned as is
func (l *lowering) slashed(node *Node, variant mathml.Variant) (mathml.Node, error) {
	if len(node.Children) != 1 {
		return nil, &ArityError{Command: "\\slashed", Want: 1, Got: len(node.Children)}
	}

	content, err := l.lower(node.Children[0], variant)
	if err != nil {
		return nil, err
	}

	switch n := content.(type) {
	case *mathml.Identifier:
		return &mathml.Identifier{Text: n.Text + slash, Variant: n.Variant}, nil
	case *mathml.Operator:
		slashed := *n
		slashed.Text += slash
		return &slashed, nil
	default:
		return content, nil
	}
}
