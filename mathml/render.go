package mathml

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
)

const namespace = "http://www.w3.org/1998/Math/MathML"

var specials = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\"", "&quot;")

// Render writes node as presentation MathML.
func Render(w io.Writer, node Node) error {
	return render(w, node)
}

// RenderString renders node into a string.
func RenderString(node Node) (string, error) {
	buffer := bytes.NewBuffer(nil)
	if err := render(buffer, node); err != nil {
		return "", err
	}

	return buffer.String(), nil
}

func render(w io.Writer, node Node) error {
	switch n := node.(type) {
	case nil:
		return nil
	case *Root:
		display := ""
		if n.Display == Block {
			display = ` display="block"`
		}

		return renderChildrenAndWrap(w, n.Children, `<math xmlns="`+namespace+`"`+display+`>`, "</math>")
	case *Row:
		return renderChildrenAndWrap(w, n.Children, "<mrow>", "</mrow>")
	case *Identifier:
		return renderText(w, "<mi"+variant(n)+">", n.Text, "</mi>")
	case *Number:
		return renderText(w, "<mn>", n.Text, "</mn>")
	case *Operator:
		return renderText(w, "<mo"+operatorAttributes(n)+">", n.Text, "</mo>")
	case *Text:
		return renderText(w, "<mtext>", n.Text, "</mtext>")
	case *Space:
		_, err := fmt.Fprint(w, `<mspace width="`, strconv.FormatFloat(float64(n.Width), 'f', -1, 32), `em"/>`)
		return err
	case *Function:
		return renderFunction(w, n)
	case *Superscript:
		return renderChildrenAndWrap(w, []Node{n.Base, n.Sup}, "<msup>", "</msup>")
	case *Subscript:
		return renderChildrenAndWrap(w, []Node{n.Base, n.Sub}, "<msub>", "</msub>")
	case *SubSup:
		return renderChildrenAndWrap(w, []Node{n.Base, n.Sub, n.Sup}, "<msubsup>", "</msubsup>")
	case *Over:
		return renderChildrenAndWrap(w, []Node{n.Base, n.Over}, "<mover"+flag("accent", n.Accent)+">", "</mover>")
	case *Under:
		return renderChildrenAndWrap(w, []Node{n.Base, n.Under}, "<munder"+flag("accentunder", n.Accent)+">", "</munder>")
	case *UnderOver:
		open := "<munderover" + flag("accentunder", n.AccentUnder) + flag("accent", n.AccentOver) + ">"
		return renderChildrenAndWrap(w, []Node{n.Base, n.Under, n.Over}, open, "</munderover>")
	case *Sqrt:
		if n.Index == nil {
			return renderChildrenAndWrap(w, []Node{n.Base}, "<msqrt>", "</msqrt>")
		}

		return renderChildrenAndWrap(w, []Node{n.Base, n.Index}, "<mroot>", "</mroot>")
	case *Fraction:
		return renderChildrenAndWrap(w, []Node{n.Numerator, n.Denominator}, "<mfrac"+thickness(n.LineThickness)+">", "</mfrac>")
	case *Fenced:
		open := `<mrow><mo stretchy="true" form="prefix">` + specials.Replace(n.Open) + "</mo>"
		end := `<mo stretchy="true" form="postfix">` + specials.Replace(n.Close) + "</mo></mrow>"
		return renderChildrenAndWrap(w, []Node{n.Content}, open, end)
	case *Table:
		return renderTable(w, n)
	case *Styled:
		return renderChildrenAndWrap(w, []Node{n.Content}, `<mstyle displaystyle="`+strconv.FormatBool(n.Display == Block)+`">`, "</mstyle>")
	case *NewLine:
		_, err := fmt.Fprint(w, `<mspace linebreak="newline"/>`)
		return err
	case *Ampersand:
		return nil
	default:
		return fmt.Errorf("unable to render node %T", node)
	}
}

func renderText(w io.Writer, prefix, text, suffix string) error {
	_, err := fmt.Fprint(w, prefix, specials.Replace(text), suffix)
	return err
}

func renderChildren(w io.Writer, children []Node) error {
	for _, child := range children {
		if err := render(w, child); err != nil {
			return err
		}
	}

	return nil
}

func renderChildrenAndWrap(w io.Writer, children []Node, prefix, suffix string) error {
	if _, err := fmt.Fprint(w, prefix); err != nil {
		return err
	}

	if err := renderChildren(w, children); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, suffix); err != nil {
		return err
	}

	return nil
}

func renderFunction(w io.Writer, n *Function) error {
	if err := renderText(w, "<mi>", n.Name, "</mi>"); err != nil {
		return err
	}

	if len(n.Args) == 0 {
		return nil
	}

	if _, err := fmt.Fprint(w, "<mo>&#x2061;</mo>"); err != nil {
		return err
	}

	if len(n.Args) == 1 {
		return render(w, n.Args[0])
	}

	return renderChildrenAndWrap(w, n.Args, "<mrow>", "</mrow>")
}

func renderTable(w io.Writer, n *Table) error {
	attrs := ""
	if n.Align != "" && n.Align != "center" {
		attrs += ` columnalign="` + n.Align + `"`
	}

	if n.ColumnLines != "" {
		attrs += ` columnlines="` + n.ColumnLines + `"`
	}

	if _, err := fmt.Fprint(w, "<mtable"+attrs+">"); err != nil {
		return err
	}

	for _, row := range n.Rows() {
		if _, err := fmt.Fprint(w, "<mtr>"); err != nil {
			return err
		}

		for _, cell := range row {
			if err := renderChildrenAndWrap(w, cell, "<mtd>", "</mtd>"); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprint(w, "</mtr>"); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "</mtable>")
	return err
}

// variant returns mathvariant attribute, omitted where it matches the MathML
// default: italic for single characters, normal otherwise.
func variant(n *Identifier) string {
	single := uniseg.GraphemeClusterCount(n.Text) == 1
	if (single && n.Variant == Italic) || (!single && n.Variant == Normal) {
		return ""
	}

	return ` mathvariant="` + n.Variant.String() + `"`
}

func operatorAttributes(n *Operator) (attrs string) {
	attrs += flag("fence", n.Fence)
	attrs += flag("separator", n.Separator)
	attrs += flag("largeop", n.LargeOp)
	attrs += flag("stretchy", n.Stretchy)

	if n.Size != "" {
		attrs += ` maxsize="` + n.Size + `" minsize="` + n.Size + `"`
	}

	return
}

func thickness(t LineThickness) string {
	if t == Zero {
		return ` linethickness="0"`
	}

	return ""
}

func flag(name string, value bool) string {
	if !value {
		return ""
	}

	return " " + name + `="true"`
}
