package latex

import "strings"

type ColumnSpec struct {
	BorderLeft  bool   // column should have left border
	BorderRight bool   // column should have right border
	Align       string // column alignment: c, l or r
}

// ColumnSpecs parses column spec of array environment
// todo: add support for repeated syntax *{x}{...}
func ColumnSpecs(raw string) (spec []ColumnSpec) {
	raw = whitespaces.ReplaceAllString(raw, "") // remove all spaces since they don't have any meaning
	for pos, char := range raw {
		if char == '|' {
			continue
		}

		if char == 'c' || char == 'l' || char == 'r' {
			spec = append(spec, ColumnSpec{
				BorderLeft:  pos > 0 && raw[pos-1] == '|',
				BorderRight: pos < len(raw)-1 && raw[pos+1] == '|',
				Align:       string([]rune{char}),
			})
		}
	}

	return
}

// columnAlign returns MathML columnalign value for column specs
func columnAlign(spec []ColumnSpec) string {
	names := map[string]string{"l": "left", "c": "center", "r": "right"}

	aligns := make([]string, 0, len(spec))
	for _, column := range spec {
		aligns = append(aligns, names[column.Align])
	}

	return strings.Join(aligns, " ")
}

// columnLines returns MathML columnlines value, lines between columns only,
// or empty string if there are none
func columnLines(spec []ColumnSpec) string {
	var lines []string
	solid := false

	for i := 1; i < len(spec); i++ {
		if spec[i-1].BorderRight || spec[i].BorderLeft {
			lines = append(lines, "solid")
			solid = true
		} else {
			lines = append(lines, "none")
		}
	}

	if !solid {
		return ""
	}

	return strings.Join(lines, " ")
}
