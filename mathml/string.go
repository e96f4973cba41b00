package mathml

// String returns the plain text content of a markup tree: the text of every
// identifier, number, operator, function name and text node, in order.
func String(node Node) (out string) {
	switch n := node.(type) {
	case nil:
		return ""
	case *Identifier:
		return n.Text
	case *Number:
		return n.Text
	case *Operator:
		return n.Text
	case *Text:
		return n.Text
	case *Function:
		out = n.Name
		for _, arg := range n.Args {
			out += String(arg)
		}
	case *Root:
		for _, child := range n.Children {
			out += String(child)
		}
	case *Row:
		for _, child := range n.Children {
			out += String(child)
		}
	case *Superscript:
		return String(n.Base) + String(n.Sup)
	case *Subscript:
		return String(n.Base) + String(n.Sub)
	case *SubSup:
		return String(n.Base) + String(n.Sub) + String(n.Sup)
	case *Over:
		return String(n.Base) + String(n.Over)
	case *Under:
		return String(n.Base) + String(n.Under)
	case *UnderOver:
		return String(n.Base) + String(n.Under) + String(n.Over)
	case *Sqrt:
		return String(n.Index) + String(n.Base)
	case *Fraction:
		return String(n.Numerator) + String(n.Denominator)
	case *Fenced:
		return n.Open + String(n.Content) + n.Close
	case *Table:
		for _, cell := range n.Cells {
			out += String(cell)
		}
	case *Styled:
		return String(n.Content)
	}

	return
}
