package latex

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

type Parser struct {
	tokens *Tokenizer
	logger *slog.Logger
}

func Parse(source string) (*Node, error) {
	return NewParser(source).Parse()
}

func NewParser(source string) *Parser {
	return &Parser{tokens: NewTokenizer(source), logger: slog.Default()}
}

// SetLogger sets the logger which receives warnings about recoverable problems
// in the source, such as \begin and \end with different names.
func (p *Parser) SetLogger(logger *slog.Logger) {
	p.logger = logger
}

func (p *Parser) Parse() (*Node, error) {
	children, _, err := p.row(nil, "")
	if err != nil {
		return nil, err
	}

	return &Node{Kind: RootKind, Children: children}, nil
}

// row collects nodes until stop accepts a token, the stop token is consumed
// and returned. A nil stop reads until the end of input, otherwise reaching the
// end is an error reporting the expected token.
func (p *Parser) row(stop func(any) bool, expected string) (children []*Node, last any, err error) {
	for {
		t, err := p.tokens.Token()
		if err == io.EOF {
			if stop == nil {
				return children, nil, nil
			}

			return nil, nil, &UnexpectedTokenError{Expected: expected, Got: describe(nil), Offset: p.tokens.Offset()}
		}

		if err != nil {
			return nil, nil, err
		}

		if stop != nil && stop(t) {
			return children, t, nil
		}

		node, err := p.node(t)
		if err != nil {
			return nil, nil, err
		}

		children = append(children, node)
	}
}

// node parses an atomic starting with token t and the primes, superscripts
// and subscripts which follow it
func (p *Parser) node(t any) (*Node, error) {
	base, err := p.atomic(t)
	if err != nil {
		return nil, err
	}

	prime, err := p.prime()
	if err != nil {
		return nil, err
	}

	return p.scripts(wrapPrime(base, prime))
}

// atomic parses a single construct without looking for scripts after it
func (p *Parser) atomic(t any) (*Node, error) {
	switch token := t.(type) {
	case Letter:
		return &Node{Kind: LetterKind, Data: string(token)}, nil
	case Number:
		return &Node{Kind: NumberKind, Data: string(token)}, nil
	case Operator:
		return &Node{Kind: OperatorKind, Data: string(token), Tag: token}, nil
	case Paren:
		return &Node{Kind: OperatorKind, Data: string(token), Tag: token}, nil
	case Prime:
		return &Node{Kind: OperatorKind, Data: primes(token.Count), Tag: token}, nil
	case Ampersand:
		return &Node{Kind: AmpersandKind}, nil
	case NewLine:
		return &Node{Kind: NewLineKind}, nil
	case ParameterStart:
		return p.group()
	case Superscript, Subscript:
		// a script without a base, as in {}^{14}C
		script, err := p.script(token)
		if err != nil {
			return nil, err
		}

		return scripted(&Node{Kind: RowKind, Data: "{}"}, token, script), nil
	case Verbatim:
		return p.verbatim(token)
	case Command:
		return &Node{Kind: CommandKind, Data: string(token), Tag: token}, nil
	case EnvironmentStart:
		return p.environment(token)
	case Fraction, Binomial:
		return p.fraction(token)
	case Sqrt:
		return p.sqrt(token)
	case Over, Under, Style, Slashed:
		return p.unary(token)
	case Overset, Underset:
		return p.binary(token)
	case Overbrace, Underbrace:
		return p.brace(token)
	case BigOperator, Integral, Limit:
		return p.limits(token)
	case Big:
		return p.big(token)
	case Left:
		return p.left(token)
	case Middle:
		return p.middle(token)
	case OperatorName:
		return p.operatorName(token)
	default:
		return nil, &UnexpectedTokenError{Expected: "expression", Got: describe(t), Offset: p.tokens.Offset()}
	}
}

// group reads nodes up to the closing brace, a group of one node is that node
func (p *Parser) group() (*Node, error) {
	children, _, err := p.row(is[ParameterEnd], describe(ParameterEnd{}))
	if err != nil {
		return nil, err
	}

	return collapse(children), nil
}

// prime reads a run of primes following an atomic, if there is one
func (p *Parser) prime() (*Node, error) {
	t, err := p.tokens.Peek()
	if err == io.EOF {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	token, ok := t.(Prime)
	if !ok {
		return nil, nil
	}

	if _, err := p.tokens.Token(); err != nil {
		return nil, err
	}

	return &Node{Kind: OperatorKind, Data: primes(token.Count), Tag: token}, nil
}

// scripts attaches superscripts and subscripts following base. A subscript
// and a superscript in any order make a single SubSup node. A primed base
// keeps its prime: a'^2 is {a'}^2.
func (p *Parser) scripts(base *Node) (*Node, error) {
	for {
		t, err := p.tokens.Peek()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, err
		}

		var other any
		switch t.(type) {
		case Superscript:
			other = Subscript{}
		case Subscript:
			other = Superscript{}
		default:
			return base, nil
		}

		if _, err := p.tokens.Token(); err != nil {
			return nil, err
		}

		first, err := p.script(t)
		if err != nil {
			return nil, err
		}

		var second *Node
		if next, err := p.tokens.Peek(); err == nil && next == other {
			if _, err := p.tokens.Token(); err != nil {
				return nil, err
			}

			if second, err = p.script(other); err != nil {
				return nil, err
			}
		}

		sub, sup := first, second
		if _, ok := t.(Superscript); ok {
			sub, sup = second, first
		}

		base = subsup(base, sub, sup)
	}

	return base, nil
}

// script reads the argument of ^ or _ once the operator is consumed. The same
// operator repeated after the argument nests into it, a^b^c is a^{b^c}.
func (p *Parser) script(op any) (*Node, error) {
	arg, err := p.operand(op)
	if err != nil {
		return nil, err
	}

	t, err := p.tokens.Peek()
	if err != nil || t != op {
		return arg, nil
	}

	if _, err := p.tokens.Token(); err != nil {
		return nil, err
	}

	rest, err := p.script(op)
	if err != nil {
		return nil, err
	}

	return scripted(arg, op, rest), nil
}

// operand reads the required argument of an infix operator: one atomic with
// its primes
func (p *Parser) operand(op any) (*Node, error) {
	t, err := p.tokens.Token()
	if err == io.EOF || err == nil && isCloser(t) {
		return nil, &UnexpectedTokenError{Expected: "argument of " + describe(op), Got: describe(t), Offset: p.tokens.Offset()}
	}

	if err != nil {
		return nil, err
	}

	arg, err := p.atomic(t)
	if err != nil {
		return nil, err
	}

	prime, err := p.prime()
	if err != nil {
		return nil, err
	}

	return wrapPrime(arg, prime), nil
}

// parameter reads an argument of a command, one atomic. It returns nil when
// the enclosing construct or the input ends, so the lowering pass can report
// the missing argument.
func (p *Parser) parameter() (*Node, error) {
	t, err := p.tokens.Peek()
	if err == io.EOF || err == nil && isCloser(t) {
		return nil, nil
	}

	if t, err = p.tokens.Token(); err != nil {
		return nil, err
	}

	return p.atomic(t)
}

// groups reads brace groups immediately following a command, such as extra
// arguments of \frac or arguments of \operatorname
func (p *Parser) groups() (children []*Node, err error) {
	for {
		t, err := p.tokens.Peek()
		if err != nil || !is[ParameterStart](t) {
			return children, nil
		}

		if _, err := p.tokens.Token(); err != nil {
			return nil, err
		}

		group, err := p.group()
		if err != nil {
			return nil, err
		}

		children = append(children, group)
	}
}

// verbatim turns raw arguments of \text, \mbox and \hspace into nodes
func (p *Parser) verbatim(v Verbatim) (*Node, error) {
	switch v.Kind {
	case "hspace":
		return &Node{Kind: CommandKind, Data: v.Kind, Tag: v, Parameters: map[string]string{"width": strings.TrimSpace(v.Data)}}, nil
	default:
		return &Node{Kind: TextKind, Data: v.Data, Tag: v}, nil
	}
}

// environment reads \begin{name}...\end{name}. Rows and cells stay flat, they
// are split by the lowering pass.
func (p *Parser) environment(e EnvironmentStart) (*Node, error) {
	node := &Node{Kind: EnvironmentKind, Data: e.Name, Tag: e}

	if e.Name == "array" {
		colspec, err := p.colspec()
		if err != nil {
			return nil, err
		}

		node.Parameters = map[string]string{"colspec": colspec}
	}

	children, last, err := p.row(is[EnvironmentEnd], describe(EnvironmentEnd{Name: e.Name}))
	if err != nil {
		return nil, err
	}

	if end := last.(EnvironmentEnd); end.Name != e.Name {
		p.logger.Warn("environment ends with a different name", "begin", e.Name, "end", end.Name, "offset", p.tokens.Offset())
	}

	node.Children = children
	return node, nil
}

// colspec reads column specification of array environment, eg. {c|c}
func (p *Parser) colspec() (string, error) {
	t, err := p.tokens.Token()
	if err == nil && !is[ParameterStart](t) || err == io.EOF {
		return "", &UnexpectedTokenError{Expected: "column specification", Got: describe(t), Offset: p.tokens.Offset()}
	}

	if err != nil {
		return "", err
	}

	group, err := p.group()
	if err != nil {
		return "", err
	}

	colspec, err := stringify(group)
	if err != nil {
		return "", fmt.Errorf("invalid array column specification: %w", err)
	}

	return colspec, nil
}

// fraction reads \frac and \binom: two arguments and extra brace groups
func (p *Parser) fraction(t any) (*Node, error) {
	node := &Node{Kind: CommandKind, Tag: t}

	for range 2 {
		arg, err := p.parameter()
		if err != nil {
			return nil, err
		}

		if arg == nil {
			return node, nil
		}

		node.Children = append(node.Children, arg)
	}

	extra, err := p.groups()
	if err != nil {
		return nil, err
	}

	node.Children = append(node.Children, extra...)
	return node, nil
}

// sqrt reads \sqrt[index]{base}, children are the base and optional index
func (p *Parser) sqrt(t Sqrt) (*Node, error) {
	node := &Node{Kind: CommandKind, Tag: t}

	var index *Node
	if next, err := p.tokens.Peek(); err == nil && next == any(Paren("[")) {
		if _, err := p.tokens.Token(); err != nil {
			return nil, err
		}

		children, _, err := p.row(func(t any) bool { return t == any(Paren("]")) }, describe(Paren("]")))
		if err != nil {
			return nil, err
		}

		index = collapse(children)
	}

	base, err := p.parameter()
	if err != nil {
		return nil, err
	}

	if base == nil {
		return node, nil
	}

	node.Children = append(node.Children, base)
	if index != nil {
		node.Children = append(node.Children, index)
	}

	return node, nil
}

// unary reads a command with one argument: accents, style switches and \slashed
func (p *Parser) unary(t any) (*Node, error) {
	node := &Node{Kind: CommandKind, Tag: t}

	arg, err := p.parameter()
	if err != nil {
		return nil, err
	}

	if arg != nil {
		node.Children = []*Node{arg}
	}

	return node, nil
}

// binary reads \overset and \underset, children are the script and the base
func (p *Parser) binary(t any) (*Node, error) {
	node := &Node{Kind: CommandKind, Tag: t}

	for range 2 {
		arg, err := p.parameter()
		if err != nil {
			return nil, err
		}

		if arg == nil {
			break
		}

		node.Children = append(node.Children, arg)
	}

	return node, nil
}

// brace reads \overbrace{x}^{label} and \underbrace{x}_{label}
func (p *Parser) brace(t any) (*Node, error) {
	node, err := p.unary(t)
	if err != nil || len(node.Children) == 0 {
		return node, err
	}

	var label any = Superscript{}
	if _, ok := t.(Underbrace); ok {
		label = Subscript{}
	}

	if next, err := p.tokens.Peek(); err != nil || next != label {
		return node, nil
	}

	if _, err := p.tokens.Token(); err != nil {
		return nil, err
	}

	arg, err := p.operand(label)
	if err != nil {
		return nil, err
	}

	node.Children = append(node.Children, arg)
	return node, nil
}

// limits reads big operators, integrals and functions like \lim together with
// their limits. Limits of integrals are scripts, limits of the others are
// placed under and over, \limits and \nolimits switch between the two.
func (p *Parser) limits(t any) (*Node, error) {
	base := &Node{Kind: CommandKind, Tag: t}
	if limit, ok := t.(Limit); ok {
		base.Data = limit.Name
	}

	_, under := t.(Integral)
	under = !under

	var sub, sup *Node
loop:
	for sub == nil || sup == nil {
		next, err := p.tokens.Peek()
		if err != nil {
			break
		}

		switch next {
		case Command("limits"), Command("nolimits"):
			under = next == Command("limits")
		case Subscript{}:
			if sub != nil {
				break loop
			}
		case Superscript{}:
			if sup != nil {
				break loop
			}
		default:
			break loop
		}

		if _, err := p.tokens.Token(); err != nil {
			return nil, err
		}

		switch next {
		case Subscript{}:
			if sub, err = p.operand(next); err != nil {
				return nil, err
			}
		case Superscript{}:
			if sup, err = p.operand(next); err != nil {
				return nil, err
			}
		}
	}

	if !under {
		return subsup(base, sub, sup), nil
	}

	switch {
	case sub != nil && sup != nil:
		return &Node{Kind: UnderOverKind, Children: []*Node{base, sub, sup}}, nil
	case sub != nil:
		return &Node{Kind: UnderKind, Children: []*Node{base, sub}}, nil
	case sup != nil:
		return &Node{Kind: OverKind, Children: []*Node{base, sup}}, nil
	default:
		return base, nil
	}
}

// big reads a sized delimiter such as \bigl(
func (p *Parser) big(t Big) (*Node, error) {
	next, err := p.tokens.Token()
	if err != nil && err != io.EOF {
		return nil, err
	}

	paren, ok := next.(Paren)
	if !ok {
		return nil, &UnexpectedTokenError{Expected: "delimiter after sized command", Got: describe(next), Offset: p.tokens.Offset()}
	}

	return &Node{Kind: CommandKind, Tag: t, Parameters: map[string]string{"delimiter": string(paren)}}, nil
}

// left reads \left X ... \right Y
func (p *Parser) left(t Left) (*Node, error) {
	open, err := p.delimiter("\\left")
	if err != nil {
		return nil, err
	}

	children, _, err := p.row(is[Right], describe(Right{}))
	if err != nil {
		return nil, err
	}

	closing, err := p.delimiter("\\right")
	if err != nil {
		return nil, err
	}

	params := map[string]string{"open": open, "close": closing}
	return &Node{Kind: CommandKind, Tag: t, Parameters: params, Children: children}, nil
}

func (p *Parser) middle(t Middle) (*Node, error) {
	delimiter, err := p.delimiter("\\middle")
	if err != nil {
		return nil, err
	}

	return &Node{Kind: CommandKind, Tag: t, Parameters: map[string]string{"delimiter": delimiter}}, nil
}

// delimiter reads a delimiter after \left, \right or \middle, a dot is an
// invisible delimiter and reads as empty string
func (p *Parser) delimiter(side string) (string, error) {
	t, err := p.tokens.Token()
	if err != nil && err != io.EOF {
		return "", err
	}

	switch token := t.(type) {
	case Paren:
		return string(token), nil
	case Operator:
		if token == "." {
			return "", nil
		}
	}

	return "", &DelimiterError{Side: side, Got: describe(t), Offset: p.tokens.Offset()}
}

// operatorName reads \operatorname{name} and brace groups after it
func (p *Parser) operatorName(t OperatorName) (*Node, error) {
	node := &Node{Kind: CommandKind, Tag: t}

	name, err := p.parameter()
	if err != nil {
		return nil, err
	}

	if name == nil {
		return node, nil
	}

	args, err := p.groups()
	if err != nil {
		return nil, err
	}

	node.Children = append([]*Node{name}, args...)
	return node, nil
}

// is reports whether token t is of type T
func is[T any](t any) bool {
	_, ok := t.(T)
	return ok
}

// scripted attaches a single script to base, op is the Superscript or
// Subscript token
func scripted(base *Node, op any, script *Node) *Node {
	if _, ok := op.(Subscript); ok {
		return subsup(base, script, nil)
	}

	return subsup(base, nil, script)
}

func subsup(base, sub, sup *Node) *Node {
	switch {
	case sub != nil && sup != nil:
		return &Node{Kind: SubSupKind, Children: []*Node{base, sub, sup}}
	case sub != nil:
		return &Node{Kind: SubscriptKind, Children: []*Node{base, sub}}
	case sup != nil:
		return &Node{Kind: SuperscriptKind, Children: []*Node{base, sup}}
	default:
		return base
	}
}

func wrapPrime(base, prime *Node) *Node {
	if prime == nil {
		return base
	}

	return &Node{Kind: SuperscriptKind, Children: []*Node{base, prime}}
}

// primes returns the glyph for a run of n primes
func primes(n int) string {
	switch n {
	case 1:
		return "′"
	case 2:
		return "″"
	case 3:
		return "‴"
	case 4:
		return "⁗"
	default:
		return strings.Repeat("′", n)
	}
}
