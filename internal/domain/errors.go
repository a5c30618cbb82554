package domain

import "errors"

var (
	ErrTravelRequestNotFound = errors.New("travel request not found")
	ErrUserNotFound          = errors.New("user not found")
)

var (
	ErrCannotChangeStatus = errors.New("cannot change status of this travel request")
	ErrCannotCancel       = errors.New("cannot cancel this travel request, only requested travel requests can be cancelled")
)

var (
	ErrForbidden          = errors.New("this action is unauthorized")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrEmailTaken         = errors.New("email is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
