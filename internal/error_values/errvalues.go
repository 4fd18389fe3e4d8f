package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrWrongOwner       = errors.New("resource has different owner")
	ErrValidation       = errors.New("validation error")

	ErrTemplateNotFound = errors.New("habit template doesn't exist")
	ErrTemplateExists   = errors.New("user already has such habit")
	ErrInstanceNotFound = errors.New("habit instance doesn't exist")
	ErrInstanceExists   = errors.New("habit instance for this day already exists")

	ErrGoalNotFound = errors.New("goal doesn't exist")

	ErrInvalidSpace = errors.New("unknown space")

	ErrTaskNotFound       = errors.New("task doesn't exist")
	ErrConnectionNotFound = errors.New("connection doesn't exist")

	ErrRewardNotFound  = errors.New("reward doesn't exist")
	ErrNotEnoughPoints = errors.New("not enough points")
)
