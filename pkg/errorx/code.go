package errorx

type Code int

// JSON error codes returned by Discord in the body of a rejected request.
const (
	GeneralError Code = 0

	UnknownChannel Code = 10003
	UnknownGuild   Code = 10004
	UnknownMember  Code = 10007
	UnknownRole    Code = 10011
	UnknownUser    Code = 10013
	UnknownBan     Code = 10026

	MissingAccess      Code = 50001
	InvalidFormBody    Code = 50035
	MissingPermissions Code = 50013
	CannotDMUser       Code = 50007
)

// Local codes never collide with Discord's, which are at most six digits.
const (
	BadResponse Code = 1000001 + iota
	NotSupportedMethod
	NoToken
	InvalidSignature
)
