package estimate

import "errors"

// Lookup misses leave the estimate consistent; callers reacting to a stale
// UI reference may ignore them.
var (
	ErrSystemNotFound         = errors.New("system not found")
	ErrOptionNotFound         = errors.New("option not found")
	ErrAddOnNotFound          = errors.New("add-on not found")
	ErrSystemTemplateNotFound = errors.New("system template not found")
)

// Composition errors.
var (
	ErrDuplicateSystem = errors.New("system id already on estimate")
	ErrInvalidPrice    = errors.New("price must be a finite non-negative amount")
)

// Lifecycle errors.
var (
	ErrSignatureRequired = errors.New("customer signature required before approval")
	ErrEstimateLocked    = errors.New("estimate is approved and can no longer change")
)
