package errorx

import "fmt"

// Error is both the shape of Discord's JSON error payload and the type of
// errors raised locally by this module.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e Error) Error() string {
	return e.Message
}

// Is reports whether target is an Error with the same code, so that
// errors.Is(err, errorx.ErrNoToken) works on wrapped values.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Code == e.Code
}

// New returns an Error with the given code and a formatted message.
func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}
