package domain

import "errors"

// Sentinel errors used by the layout, script and config layers. The station
// and registry operations report failure as a false return instead.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrInvalidLayout   = errors.New("invalid kitchen layout")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrInvalidArgument = errors.New("invalid argument")
)
