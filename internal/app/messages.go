// Package app contains shared application-layer constants used across the
// blog backend handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. The wording,
// including capitalisation and punctuation, is part of the public wire
// contract with existing clients and must not be changed.
package app

const (
	// ResultSuccess and ResultFail are the two values of the "result" field
	// in every auth and post mutation envelope.
	ResultSuccess = "success"
	ResultFail    = "fail"
)

const (
	// MsgRegisterSuccess is returned when a new account has been created.
	MsgRegisterSuccess = "REGISTER SUCCESS!!"

	// MsgUserAlreadyRegistered is returned when the requested userid is
	// already taken.
	MsgUserAlreadyRegistered = "Already registered user Id!!"

	// MsgPasswordTooShort is returned when the supplied password fails the
	// minimum-length policy.
	MsgPasswordTooShort = "Password must be over 4 characters!!"

	// MsgRegisterDBFail is returned when registration aborts on a storage
	// failure. The underlying error is logged server-side only.
	MsgRegisterDBFail = "REGISTER DB FAIL!!"

	// MsgLoginSuccess is returned together with a fresh session token.
	MsgLoginSuccess = "LOGIN SUCCESS!!"

	// MsgUnknownID is returned when no account matches the supplied userid.
	MsgUnknownID = "UNKNOWN ID!!"

	// MsgIncorrectPassword is returned when the password comparison fails.
	MsgIncorrectPassword = "INCORRECT PASSWORD!!"

	// MsgDatabaseError is the generic storage-failure message for the login
	// flow. Query text and connection details never reach the client.
	MsgDatabaseError = "DATABASE ERROR!!"

	// MsgNoToken is returned with HTTP 403 when a protected route is called
	// without a bearer token.
	MsgNoToken = "No token provided"

	// MsgInvalidOrExpiredToken is returned with HTTP 401 when the presented
	// token fails verification for any reason.
	MsgInvalidOrExpiredToken = "Invalid or expired token"
)

// MsgWelcome is the plain-text greeting served at the root path.
const MsgWelcome = "Welcome to The Blog."
