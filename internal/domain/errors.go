package domain

import "errors"

var (
	ErrNotFound         = errors.New("resource not found")
	ErrConflict         = errors.New("resource conflict")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidRole      = errors.New("profile role not allowed for this operation")
	ErrInvalidTimeLabel = errors.New("invalid appointment time label")
	ErrUnknownGender    = errors.New("gender label cannot be normalized")
	ErrStatusTransition = errors.New("appointment status transition not allowed")
)
