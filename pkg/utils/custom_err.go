package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrTripNotFound       = errors.New("trip not found")
	ErrDayNotFound        = errors.New("day not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrNothingToUndo      = errors.New("nothing to undo")
	ErrShareTokenNotFound = errors.New("share token not found or expired")

	ErrMissingAPIKey    = errors.New("ai api key not configured")
	ErrEmptyAIResponse  = errors.New("empty ai response")
	ErrInvalidPlanShape = errors.New("ai plan failed structural validation")
	ErrAIRequestFailed  = errors.New("ai request failed")

	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDatabaseError      = errors.New("database error")
)
