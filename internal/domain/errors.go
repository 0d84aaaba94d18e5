package domain

import "errors"

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrPersonNotFound = errors.New("person not found")
)

var (
	ErrEventInactive    = errors.New("event is not active")
	ErrOutsideWindow    = errors.New("attendance window is closed for this event")
	ErrAlreadyCheckedIn = errors.New("this person has already been marked present for this event")
)

var (
	ErrNotAllowed = errors.New("only admins and pastors can manage events")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
