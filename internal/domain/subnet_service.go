package domain

import (
	"context"
	"strings"
)

type subnetService struct{}

func NewSubnetService() SubnetService {
	return subnetService{}
}

// Resolve turns one raw argument into a Result. An argument with an address
// before the "/" runs in address+mask mode; anything else, including a bare
// "/24", is treated as a lone mask token. Any validation failure aborts the
// whole computation, partial output is never produced.
func (subnetService) Resolve(_ context.Context, input string) (Result, error) {
	token := strings.ToLower(strings.TrimSpace(input))

	addrPart, maskPart, found := strings.Cut(token, "/")
	if !found || addrPart == "" {
		maskToken := token
		if found {
			maskToken = maskPart
		}
		m, err := resolveMask(maskToken)
		if err != nil {
			return Result{}, err
		}
		return Result{Subnet: m.Report()}, nil
	}

	addr, err := ParseAddress(addrPart)
	if err != nil {
		return Result{}, err
	}
	m, err := resolveMask(maskPart)
	if err != nil {
		return Result{}, err
	}

	network := DeriveNetwork(addr, m)
	return Result{Subnet: m.Report(), Network: &network}, nil
}

// resolveMask runs classify then lookup-validate. The classifier's answer is
// never trusted on its own: the token must still be a member of the legal set
// for the notation it was classified as.
func resolveMask(token string) (Mask, error) {
	notation, err := Classify(token)
	if err != nil {
		return 0, err
	}

	switch notation {
	case NotationCIDR:
		return ParseCIDR(token)
	case NotationMask:
		return ParseDottedMask(token)
	case NotationHex:
		return ParseHexMask(token)
	case NotationWildcard:
		return ParseWildcard(token)
	default:
		return 0, ErrClassification
	}
}
