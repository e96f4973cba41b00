package latex

import (
	"fmt"
	"strconv"
)

// UnexpectedTokenError is returned when the source misses a required token,
// such as a closing brace or \end of an environment.
type UnexpectedTokenError struct {
	Expected string
	Got      string // description of the token found, "end of input" at the end
	Offset   int    // byte offset in the source
}

func (err *UnexpectedTokenError) Error() string {
	got := err.Got
	if got == "" {
		got = describe(nil)
	}

	return errpos(err.Offset, "expected "+err.Expected+", got "+got)
}

// DelimiterError is returned when \left, \right or \middle is followed by
// something that can not be a delimiter.
type DelimiterError struct {
	Side   string // \left, \right or \middle
	Got    string
	Offset int
}

func (err *DelimiterError) Error() string {
	return errpos(err.Offset, "missing or unrecognized delimiter after "+err.Side+": "+err.Got)
}

type UnknownEnvironmentError struct {
	Name string
}

func (err *UnknownEnvironmentError) Error() string {
	return "unknown environment " + strconv.Quote(err.Name)
}

// UnknownCommandError is returned by the lowering pass for a command that is
// neither structural nor defined in the table.
type UnknownCommandError struct {
	Name string
}

func (err *UnknownCommandError) Error() string {
	return "unknown command \\" + err.Name
}

// ArityError is returned when a command has fewer arguments than it requires.
type ArityError struct {
	Command string
	Want    int
	Got     int
}

func (err *ArityError) Error() string {
	return fmt.Sprintf("%s requires %d arguments, got %d", err.Command, err.Want, err.Got)
}

// SourceError tells which of the sources passed to CompileAll failed.
type SourceError struct {
	Index int
	Err   error
}

func (err *SourceError) Error() string {
	return "source #" + strconv.Itoa(err.Index) + ": " + err.Err.Error()
}

func (err *SourceError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return "offset " + strconv.Itoa(pos) + ": " + msg
}
