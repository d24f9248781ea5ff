package navigation

import "errors"

var (
	ErrInvalidRoute      = errors.New("invalid route")
	ErrDuplicateName     = errors.New("duplicate route name")
	ErrDuplicatePath     = errors.New("duplicate sibling path")
	ErrWildcardOverride  = errors.New("route overrides the not-found catch-all")
	ErrComponentNotFound = errors.New("component not found")
	ErrInvalidPolicy     = errors.New("invalid duplicate policy")
)
