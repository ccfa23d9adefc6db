package gridpaper

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every TypeError and ValueError, so callers
// that only care whether the input was rejected can use errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// TypeError reports an argument whose value has the wrong kind, such as a
// string where an integer count was expected.
type TypeError struct {
	Param string // Argument name, e.g. "cols"
	Want  string // Expected kind, e.g. "an int"
	Got   string // Kind that was supplied, e.g. "str"
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s arg must be %s, not %s", e.Param, e.Want, e.Got)
}

// Is makes errors.Is(err, ErrInvalidArgument) report true.
func (e *TypeError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ValueError reports an argument of the right kind whose value is not
// allowed: a non-positive size, an unknown color, an unknown unit or style,
// or a blank filename.
type ValueError struct {
	Param  string      // Argument name, e.g. "thickness"
	Value  interface{} // Offending value
	Reason string      // What the value must be
}

func (e *ValueError) Error() string {
	switch v := e.Value.(type) {
	case nil:
		return fmt.Sprintf("%s arg %s", e.Param, e.Reason)
	case string:
		if v == "" {
			return fmt.Sprintf("%s arg %s", e.Param, e.Reason)
		}
		return fmt.Sprintf("%s arg %s (got %q)", e.Param, e.Reason, v)
	default:
		return fmt.Sprintf("%s arg %s (got %v)", e.Param, e.Reason, v)
	}
}

// Is makes errors.Is(err, ErrInvalidArgument) report true.
func (e *ValueError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func typeErr(param, want, got string) error {
	return &TypeError{Param: param, Want: want, Got: got}
}

func valueErr(param string, value interface{}, reason string) error {
	return &ValueError{Param: param, Value: value, Reason: reason}
}
