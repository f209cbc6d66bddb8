package errorx

var (
	ErrBadResponse        = Error{BadResponse, "bad response"}
	ErrNotSupportedMethod = Error{NotSupportedMethod, "not supported method"}
	ErrNoToken            = Error{NoToken, "no token provided"}
	ErrInvalidSignature   = Error{InvalidSignature, "invalid signature"}
)
