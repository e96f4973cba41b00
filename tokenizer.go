package latex

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Tokenizer splits math source into tokens. It reads forward only and keeps
// one token of lookahead for Peek.
type Tokenizer struct {
	src    string
	pos    int
	offset int  // offset of the last returned token
	digit  bool // last returned token takes a single digit argument
	fence  bool // last returned token takes a delimiter

	peeked *lexeme
}

type lexeme struct {
	token  any
	offset int
	err    error
}

func NewTokenizer(source string) *Tokenizer {
	return &Tokenizer{src: source}
}

// Token returns the next token, or io.EOF when the input is over.
func (l *Tokenizer) Token() (any, error) {
	if l.peeked != nil {
		next := l.peeked
		l.peeked = nil
		l.offset = next.offset
		return next.token, next.err
	}

	l.skip()
	l.offset = l.pos

	token, err := l.read()
	l.digit = err == nil && actsOnDigit(token)
	l.fence = err == nil && takesDelimiter(token)

	return token, err
}

// Peek returns the next token without consuming it.
func (l *Tokenizer) Peek() (any, error) {
	if l.peeked == nil {
		offset := l.offset
		token, err := l.Token()
		l.peeked = &lexeme{token: token, offset: l.offset, err: err}
		l.offset = offset
	}

	return l.peeked.token, l.peeked.err
}

// Offset returns the byte offset of the last token returned by Token.
func (l *Tokenizer) Offset() int {
	return l.offset
}

func (l *Tokenizer) read() (any, error) {
	if l.pos >= len(l.src) {
		return nil, io.EOF
	}

	char := l.src[l.pos]

	// \frac12 is \frac{1}{2}: a digit right after such a command is one argument
	if l.digit && isDigit(char) {
		l.pos++
		return Number(l.src[l.pos-1 : l.pos]), nil
	}

	// \left.5 is the invisible fence followed by 5, not the number .5
	if l.fence && char == '.' {
		l.pos++
		return Operator("."), nil
	}

	switch {
	case char == '\\':
		l.pos++
		return l.readBackslash()
	case char == '\'':
		return l.readPrimes(), nil
	case isDigit(char) || char == '.' && l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1]):
		return l.readNumber(), nil
	case isLetter(rune(char)):
		l.pos++
		return Letter(l.src[l.pos-1 : l.pos]), nil
	case char < utf8.RuneSelf:
		l.pos++
		if token, ok := operators[rune(char)]; ok {
			return token, nil
		}

		return Operator(l.src[l.pos-1 : l.pos]), nil
	default:
		return l.readGrapheme(), nil
	}
}

// readGrapheme reads one user perceived character outside of ASCII, a letter
// with its combining marks or a symbol such as ≤.
func (l *Tokenizer) readGrapheme() any {
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(l.src[l.pos:], -1)
	l.pos += len(cluster)

	first, _ := utf8.DecodeRuneInString(cluster)
	if unicode.IsLetter(first) {
		return Letter(cluster)
	}

	return Operator(cluster)
}

// readNumber reads a run of digits and dots, 1.5 and 2. are both one number
func (l *Tokenizer) readNumber() any {
	start := l.pos
	for l.pos < len(l.src) && (isDigit(l.src[l.pos]) || l.src[l.pos] == '.') {
		l.pos++
	}

	return Number(l.src[start:l.pos])
}

// readPrimes reads a run of apostrophes, a'' is a double prime
func (l *Tokenizer) readPrimes() any {
	count := 0
	for l.pos < len(l.src) && l.src[l.pos] == '\'' {
		l.pos++
		count++
	}

	return Prime{Count: count}
}

func (l *Tokenizer) readBackslash() (any, error) {
	if l.pos >= len(l.src) {
		return nil, &UnexpectedTokenError{Expected: "command name", Got: describe(nil), Offset: l.offset}
	}

	char := l.src[l.pos]

	// a letter means it's a named command \xyz
	if isLetter(rune(char)) {
		return l.readCommand()
	}

	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += size

	switch r {
	case '\\':
		return NewLine{}, nil
	case '#', '$', '%', '&', '_':
		return Operator(string(r)), nil
	}

	if token, ok := commands[string(r)]; ok {
		return token, nil
	}

	// one symbol command, such as "\ " or "\,"
	if isWhitespace(r) {
		return Command(" "), nil
	}

	return Command(string(r)), nil
}

func (l *Tokenizer) readCommand() (any, error) {
	name := l.word()

	// starred variants read like the plain ones
	if l.pos < len(l.src) && l.src[l.pos] == '*' {
		l.pos++
	}

	switch name {
	case "begin":
		return l.readBlockStart()
	case "end":
		return l.readBlockEnd()
	}

	if verbatims[name] {
		return l.readVerbatim(name)
	}

	if token, ok := commands[name]; ok {
		return token, nil
	}

	return Command(name), nil
}

func (l *Tokenizer) readBlockStart() (any, error) {
	name, err := l.readEnvironmentName()
	if err != nil {
		return nil, err
	}

	return EnvironmentStart{Name: name}, nil
}

func (l *Tokenizer) readBlockEnd() (any, error) {
	name, err := l.readEnvironmentName()
	if err != nil {
		return nil, err
	}

	return EnvironmentEnd{Name: name}, nil
}

// readEnvironmentName reads {name} after \begin or \end, name may end with *
func (l *Tokenizer) readEnvironmentName() (string, error) {
	if err := l.forwardTo('{'); err != nil {
		return "", err
	}

	name := l.word()
	if name == "" {
		return "", &UnexpectedTokenError{Expected: "environment name", Got: l.describeNext(), Offset: l.pos}
	}

	if l.pos < len(l.src) && l.src[l.pos] == '*' {
		l.pos++
		name += "*"
	}

	if err := l.expect('}'); err != nil {
		return "", err
	}

	return name, nil
}

// readVerbatim reads a brace argument as raw text, nested braces are kept
func (l *Tokenizer) readVerbatim(kind string) (any, error) {
	if err := l.forwardTo('{'); err != nil {
		return nil, err
	}

	depth := 0
	start := l.pos
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '\\':
			l.pos++
		case '{':
			depth++
		case '}':
			if depth == 0 {
				l.pos++
				return Verbatim{Kind: kind, Data: l.src[start : l.pos-1]}, nil
			}

			depth--
		}

		l.pos++
	}

	return nil, &UnexpectedTokenError{Expected: describe(ParameterEnd{}), Got: describe(nil), Offset: len(l.src)}
}

// skip skips whitespaces and line comments
//
// When LATEX encounters a % character while processing an input file, it ignores the
// rest of the present line, the line break, and all whitespace at the
// beginning of the next line.
func (l *Tokenizer) skip() {
	for l.pos < len(l.src) {
		switch {
		case isWhitespace(rune(l.src[l.pos])):
			l.pos++
		case l.src[l.pos] == '%':
			if end := strings.IndexByte(l.src[l.pos:], '\n'); end >= 0 {
				l.pos += end + 1
			} else {
				l.pos = len(l.src)
			}
		default:
			return
		}
	}
}

// forwardTo skips whitespaces and makes sure next symbol is "e"
func (l *Tokenizer) forwardTo(e byte) error {
	l.skip()
	return l.expect(e)
}

// expect verifies than following symbol is "e"
func (l *Tokenizer) expect(e byte) error {
	if l.pos >= len(l.src) || l.src[l.pos] != e {
		return &UnexpectedTokenError{Expected: string(e), Got: l.describeNext(), Offset: l.pos}
	}

	l.pos++
	return nil
}

// describeNext names the character at the cursor for error messages
func (l *Tokenizer) describeNext() string {
	if l.pos >= len(l.src) {
		return describe(nil)
	}

	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return string(r)
}

// word reads sequence of letters
func (l *Tokenizer) word() string {
	start := l.pos
	for l.pos < len(l.src) && isLetter(rune(l.src[l.pos])) {
		l.pos++
	}

	return l.src[start:l.pos]
}

// isLetter returns true for a letter
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\n', '\t', '\r':
		return true
	default:
		return false
	}
}
