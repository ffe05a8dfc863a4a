package game

import "errors"

var (
	ErrCapacityExceeded = errors.New("game cannot have more players")
	ErrDuplicatePlayer  = errors.New("player already exists")
	ErrUnknownPlayer    = errors.New("player is not found")
	ErrInvalidTriangle  = errors.New("triangle is out of range")
	ErrTriangleTaken    = errors.New("triangle is already taken")
)
