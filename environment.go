package latex

import "github.com/eolymp/go-latexmath/mathml"

// matrix fences of matrix environments
var fences = map[string][2]string{
	"pmatrix": {"(", ")"},
	"bmatrix": {"[", "]"},
	"Bmatrix": {"{", "}"},
	"vmatrix": {"|", "|"},
	"Vmatrix": {"‖", "‖"},
	"cases":   {"{", ""},
}

// environment lowers \begin{name}...\end{name} into a table
func (l *lowering) environment(node *Node, variant mathml.Variant) (mathml.Node, error) {
	switch node.Data {
	case "matrix", "smallmatrix", "align", "align*", "aligned", "array":
	default:
		if _, ok := fences[node.Data]; !ok {
			return nil, &UnknownEnvironmentError{Name: node.Data}
		}
	}

	cells, err := l.cells(node.Children, variant)
	if err != nil {
		return nil, err
	}

	table := &mathml.Table{Cells: cells, Align: "center"}

	switch node.Data {
	case "matrix":
		return table, nil
	case "smallmatrix":
		return &mathml.Styled{Display: mathml.Inline, Content: table}, nil
	case "align", "align*", "aligned", "cases":
		table.Align = "left"
	case "array":
		spec := ColumnSpecs(node.Parameters["colspec"])
		if len(spec) > 0 {
			table.Align = columnAlign(spec)
			table.ColumnLines = columnLines(spec)
		}
	}

	if fence, ok := fences[node.Data]; ok {
		return &mathml.Fenced{Open: fence[0], Close: fence[1], Content: table}, nil
	}

	return table, nil
}

// cells lowers content of an environment into a flat stream of cells, where
// NewLine ends a row and Ampersand ends a cell. A line break right before the
// end of environment does not start an empty row.
func (l *lowering) cells(nodes []*Node, variant mathml.Variant) ([]mathml.Node, error) {
	if n := len(nodes); n > 0 && nodes[n-1].Kind == NewLineKind {
		nodes = nodes[:n-1]
	}

	return l.children(nodes, variant)
}
