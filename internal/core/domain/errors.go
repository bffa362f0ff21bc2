package domain

import "errors"

var (
	ErrAuthMissing = errors.New("access denied. no token provided")
	ErrAuthInvalid = errors.New("invalid session token")
	ErrAuthExpired = errors.New("session token expired")
	ErrForbidden   = errors.New("administrators only")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidPayload     = errors.New("invalid payload")

	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")

	ErrUsernameExists    = errors.New("username already exists")
	ErrProductCodeExists = errors.New("product code already exists")
)

// ErrorKind classifies every failure the API can surface.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindAuthMissing
	KindAuthInvalid
	KindAuthExpired
	KindForbidden
	KindNotFound
	KindConflict
	KindBadRequest
)

func (k ErrorKind) String() string {
	switch k {
	case KindAuthMissing:
		return "auth_missing"
	case KindAuthInvalid:
		return "auth_invalid"
	case KindAuthExpired:
		return "auth_expired"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindBadRequest:
		return "bad_request"
	default:
		return "internal"
	}
}

// Kind maps err onto its ErrorKind. Unknown errors are KindInternal.
func Kind(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrAuthMissing):
		return KindAuthMissing
	case errors.Is(err, ErrAuthExpired):
		return KindAuthExpired
	case errors.Is(err, ErrAuthInvalid), errors.Is(err, ErrInvalidCredentials):
		return KindAuthInvalid
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrProductNotFound):
		return KindNotFound
	case errors.Is(err, ErrUsernameExists), errors.Is(err, ErrProductCodeExists):
		return KindConflict
	case errors.Is(err, ErrInvalidPayload):
		return KindBadRequest
	default:
		return KindInternal
	}
}
