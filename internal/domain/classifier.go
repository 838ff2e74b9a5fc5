package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Classify guesses which notation token represents from its lexical shape
// alone. The guess is advisory: legal-value validation happens afterwards and
// is the authoritative check. token must already be lower-cased.
//
// "0.0.0.0" is ambiguous between a /0 mask and a /32 wildcard and is fixed to
// the mask reading. Every other legal mask has a first octet >= 128 and every
// other legal wildcard a first octet <= 127, which is what the magnitude
// branch exploits. "255.255.255.255" lands on the mask side for the same
// reason.
func Classify(token string) (Notation, error) {
	if token == "" {
		return 0, fmt.Errorf("%w: empty input", ErrClassification)
	}

	if !strings.Contains(token, ".") {
		if strings.HasPrefix(token, "0x") {
			return NotationHex, nil
		}
		return NotationCIDR, nil
	}

	if token == "0.0.0.0" {
		return NotationMask, nil
	}

	first, _, _ := strings.Cut(token, ".")
	v, err := strconv.Atoi(first)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrClassification, token)
	}
	if v > 127 {
		return NotationMask, nil
	}
	return NotationWildcard, nil
}
