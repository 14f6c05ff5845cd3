package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidTimezone  = errors.New("invalid timezone")
	ErrCollaboratorDown = errors.New("collaborator unavailable")
)
