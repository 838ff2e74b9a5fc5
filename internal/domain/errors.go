package domain

import "errors"

var (
	ErrClassification  = errors.New("subnet type could not be determined")
	ErrCIDRRange       = errors.New("invalid prefix length")
	ErrUnknownMask     = errors.New("unknown subnet mask")
	ErrUnknownWildcard = errors.New("unknown wildcard mask")
	ErrMalformedHex    = errors.New("malformed hex mask")
	ErrInvalidAddress  = errors.New("invalid ipv4 address")
)
