package domain

import "errors"

var (
	ErrListingNotFound     = errors.New("listing not found")
	ErrDuplicateListingID  = errors.New("duplicate listing id")
	ErrStaleLoad           = errors.New("stale load sequence, result discarded")
	ErrUpstreamUnavailable = errors.New("upstream listing source unavailable")
	ErrRemovalNotConfirmed = errors.New("listing removal was not confirmed")
	ErrInvalidDealType     = errors.New("invalid deal type")
)
