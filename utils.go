package latex

import "errors"

// stringify extracts text from a node which consists of letters, numbers and
// operators only, it returns an error for anything else
func stringify(node *Node) (str string, err error) {
	if node == nil {
		return "", errors.New("only text is allowed here")
	}

	switch node.Kind {
	case LetterKind, NumberKind, OperatorKind, TextKind:
		return node.Data, nil
	case RowKind:
		for _, child := range node.Children {
			text, err := stringify(child)
			if err != nil {
				return "", err
			}

			str += text
		}

		return str, nil
	default:
		return "", errors.New("only text is allowed here")
	}
}

// collapse turns a list of nodes into one node, a single node is returned as is
func collapse(children []*Node) *Node {
	if len(children) == 1 {
		return children[0]
	}

	return &Node{Kind: RowKind, Data: "{}", Children: children}
}

// isCloser reports whether a token ends the enclosing construct and so can
// not start an argument
func isCloser(t any) bool {
	switch t.(type) {
	case ParameterEnd, EnvironmentEnd, Right:
		return true
	default:
		return false
	}
}
