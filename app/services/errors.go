package services

import "errors"

var (
	ErrDuplicateUser        = errors.New("username already taken")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrCorruptCredential    = errors.New("corrupt credential")
	ErrGadgetNotFound       = errors.New("gadget not found")
	ErrGadgetDecommissioned = errors.New("gadget is decommissioned")
	ErrInvalidStatus        = errors.New("invalid status")
)
