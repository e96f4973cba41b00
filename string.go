package latex

// String returns text of the leaves of a syntax tree, ignoring structure.
func String(node *Node) (out string) {
	if node == nil {
		return ""
	}

	switch node.Kind {
	case LetterKind, NumberKind, OperatorKind, TextKind:
		return node.Data
	}

	for _, child := range node.Children {
		out += String(child)
	}

	return
}
