package domain

import (
	"fmt"
	"net/netip"
	"regexp"
	"strconv"
)

// The set of legal masks is closed: only the 33 contiguous-ones values are
// valid, so each notation validates by exact membership in a 33-entry table.
// The tables are built once from the codec and never mutated afterwards.
var (
	legalMasks     = make(map[string]Mask, 33)
	legalWildcards = make(map[string]Mask, 33)
	legalHex       = make(map[string]Mask, 33)
)

func init() {
	for p := 0; p <= 32; p++ {
		m := MaskFromPrefix(p)
		legalMasks[m.Dotted()] = m
		legalWildcards[m.Wildcard()] = m
		legalHex[m.Hex()] = m
	}
}

var cidrToken = regexp.MustCompile(`^[0-9]+$`)

// ParseCIDR validates a prefix-length token. Leading zeros are accepted and
// normalized, so "014" parses as 14.
func ParseCIDR(token string) (Mask, error) {
	if !cidrToken.MatchString(token) {
		return 0, fmt.Errorf("%w: %q must be a number between 0 and 32", ErrCIDRRange, token)
	}
	p, err := strconv.Atoi(token)
	if err != nil || p > 32 {
		return 0, fmt.Errorf("%w: %q must be a number between 0 and 32", ErrCIDRRange, token)
	}
	return MaskFromPrefix(p), nil
}

func ParseDottedMask(token string) (Mask, error) {
	m, ok := legalMasks[token]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a valid subnet mask", ErrUnknownMask, token)
	}
	return m, nil
}

func ParseWildcard(token string) (Mask, error) {
	m, ok := legalWildcards[token]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a valid wildcard mask", ErrUnknownWildcard, token)
	}
	return m, nil
}

func ParseHexMask(token string) (Mask, error) {
	m, ok := legalHex[token]
	if !ok {
		return 0, fmt.Errorf("%w: %q (hex values need 8 characters)", ErrMalformedHex, token)
	}
	return m, nil
}

// ParseAddress validates IPv4 syntax: four dot-separated octets 0-255 with no
// extraneous leading zeros. netip.ParseAddr enforces all of that; only the
// IPv6 forms it also accepts need rejecting.
func ParseAddress(token string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(token)
	if err != nil || !addr.Is4() {
		return netip.Addr{}, fmt.Errorf("%w: %q", ErrInvalidAddress, token)
	}
	return addr, nil
}
