package latex

import (
	"fmt"

	"github.com/eolymp/go-latexmath/mathml"
)

type Letter string
type Number string
type Operator string

// Paren is a delimiter glyph which may follow \left, \right, \middle or \big.
type Paren string

// Command is a command the tokenizer does not recognise, its meaning is
// resolved against a Table when lowering.
type Command string

// Verbatim is a raw brace argument of a command such as \text or \hspace.
type Verbatim struct {
	Kind string
	Data string
}

type ParameterStart struct {
}

type ParameterEnd struct {
}

type Ampersand struct {
}

type NewLine struct {
}

type Superscript struct {
}

type Subscript struct {
}

// Prime is a run of apostrophes.
type Prime struct {
	Count int
}

type EnvironmentStart struct {
	Name string
}

type EnvironmentEnd struct {
	Name string
}

// Fraction introduces a fraction, Kind is the command name: frac, dfrac or tfrac.
type Fraction struct {
	Kind string
}

// Binomial introduces a binomial coefficient: binom, dbinom or tbinom.
type Binomial struct {
	Kind string
}

type Sqrt struct {
}

// Over is an accent placed over its argument, e.g. \hat or \vec.
type Over struct {
	Glyph  string
	Accent bool
}

// Under is an accent placed under its argument, e.g. \underline.
type Under struct {
	Glyph  string
	Accent bool
}

type Overset struct {
}

type Underset struct {
}

type Overbrace struct {
	Glyph string
}

type Underbrace struct {
	Glyph string
}

// BigOperator is a large operator taking limits under and over, e.g. \sum.
type BigOperator struct {
	Glyph string
}

// Integral is a large operator taking limits as scripts, e.g. \int.
type Integral struct {
	Glyph string
}

// Limit is a function name taking a limit under it, e.g. \lim.
type Limit struct {
	Name string
}

// Big is a sizing command like \bigl, Size is the delimiter height.
type Big struct {
	Size string
}

type Style struct {
	Variant mathml.Variant
}

type Left struct {
}

type Right struct {
}

type Middle struct {
}

type OperatorName struct {
}

type Slashed struct {
}

// actsOnDigit reports whether a digit right after the token is read as a
// single digit argument, so that \frac12 means \frac{1}{2}.
func actsOnDigit(t any) bool {
	switch t.(type) {
	case Fraction, Binomial, Sqrt, Style:
		return true
	default:
		return false
	}
}

// takesDelimiter reports whether the token is followed by a delimiter
func takesDelimiter(t any) bool {
	switch t.(type) {
	case Left, Right, Middle:
		return true
	default:
		return false
	}
}

// describe returns a human readable name of a token for error messages
func describe(t any) string {
	switch token := t.(type) {
	case nil:
		return "end of input"
	case Letter:
		return fmt.Sprintf("letter %q", string(token))
	case Number:
		return fmt.Sprintf("number %q", string(token))
	case Operator:
		return fmt.Sprintf("operator %q", string(token))
	case Paren:
		return fmt.Sprintf("delimiter %q", string(token))
	case Command:
		return "\\" + string(token)
	case Verbatim:
		return token.Kind
	case ParameterStart:
		return "{"
	case ParameterEnd:
		return "}"
	case Ampersand:
		return "&"
	case NewLine:
		return "\\\\"
	case Superscript:
		return "^"
	case Subscript:
		return "_"
	case Prime:
		return "'"
	case EnvironmentStart:
		return "\\begin{" + token.Name + "}"
	case EnvironmentEnd:
		return "\\end{" + token.Name + "}"
	case Left:
		return "\\left"
	case Right:
		return "\\right"
	case Middle:
		return "\\middle"
	case Fraction:
		return "\\" + token.Kind
	case Binomial:
		return "\\" + token.Kind
	case Sqrt:
		return "\\sqrt"
	case Over, Under:
		return "accent"
	case Overset:
		return "\\overset"
	case Underset:
		return "\\underset"
	case Overbrace:
		return "\\overbrace"
	case Underbrace:
		return "\\underbrace"
	case BigOperator:
		return fmt.Sprintf("operator %q", token.Glyph)
	case Integral:
		return fmt.Sprintf("operator %q", token.Glyph)
	case Limit:
		return "\\" + token.Name
	case Big:
		return "sized delimiter"
	case Style:
		return "style " + token.Variant.String()
	case OperatorName:
		return "\\operatorname"
	case Slashed:
		return "\\slashed"
	default:
		return fmt.Sprintf("%T", t)
	}
}
