package service

import "errors"

var (
	ErrEmptyName       = errors.New("player name must not be empty")
	ErrTooFewPlayers   = errors.New("not enough players registered to form two teams")
	ErrPlayerNotFound  = errors.New("player not found")
	ErrMatchNotFound   = errors.New("match not found")
	ErrInningsNotFound = errors.New("innings not found")
	ErrInvalidExport   = errors.New("invalid export data")
)
