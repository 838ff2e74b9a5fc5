package domain

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestResolveBareCIDR(t *testing.T) {
	svc := NewSubnetService()

	result, err := svc.Resolve(context.Background(), "/26")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := SubnetReport{
		PrefixLength: 26,
		Mask:         "255.255.255.192",
		Hex:          "0xffffffc0",
		Wildcard:     "0.0.0.63",
		UsableHosts:  62,
	}
	if result.Subnet != want {
		t.Fatalf("unexpected report: %+v", result.Subnet)
	}
	if result.Network != nil {
		t.Fatal("mask-only input must not produce a network report")
	}
}

func TestResolveAddressWithCIDR(t *testing.T) {
	svc := NewSubnetService()

	result, err := svc.Resolve(context.Background(), "192.168.75.4/23")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	wantSubnet := SubnetReport{
		PrefixLength: 23,
		Mask:         "255.255.254.0",
		Hex:          "0xfffffe00",
		Wildcard:     "0.0.1.255",
		UsableHosts:  510,
	}
	if result.Subnet != wantSubnet {
		t.Fatalf("unexpected subnet report: %+v", result.Subnet)
	}

	wantNetwork := &NetworkReport{
		Address:     "192.168.75.4",
		Network:     "192.168.74.0",
		Broadcast:   "192.168.75.255",
		FirstUsable: "192.168.74.1",
		LastUsable:  "192.168.75.254",
	}
	if !reflect.DeepEqual(result.Network, wantNetwork) {
		t.Fatalf("unexpected network report: %+v", result.Network)
	}
}

func TestResolveFullMask(t *testing.T) {
	svc := NewSubnetService()

	result, err := svc.Resolve(context.Background(), "255.255.255.255")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := SubnetReport{
		PrefixLength: 32,
		Mask:         "255.255.255.255",
		Hex:          "0xffffffff",
		Wildcard:     "0.0.0.0",
		UsableHosts:  0,
	}
	if result.Subnet != want {
		t.Fatalf("unexpected report: %+v", result.Subnet)
	}
}

func TestResolveUppercaseHex(t *testing.T) {
	svc := NewSubnetService()

	result, err := svc.Resolve(context.Background(), "0XFFFFFF00")
	if err != nil {
		t.Fatalf("expected hex to be case-insensitive, got %v", err)
	}
	if result.Subnet.PrefixLength != 24 {
		t.Fatalf("expected /24, got /%d", result.Subnet.PrefixLength)
	}
}

func TestResolveErrors(t *testing.T) {
	svc := NewSubnetService()

	cases := []struct {
		input string
		want  error
	}{
		{"34", ErrCIDRRange},
		{"255.254.255.0", ErrUnknownMask},
		{"0.0.2.255", ErrUnknownWildcard},
		{"0xfffffffx", ErrMalformedHex},
		{"172.1270.23.4/24", ErrInvalidAddress},
		{"10.0.0.1/255.255.255.1", ErrUnknownMask},
		{"", ErrClassification},
	}
	for _, tc := range cases {
		result, err := svc.Resolve(context.Background(), tc.input)
		if !errors.Is(err, tc.want) {
			t.Fatalf("input %q: expected %v, got %v", tc.input, tc.want, err)
		}
		if result != (Result{}) {
			t.Fatalf("input %q: expected zero result on error, got %+v", tc.input, result)
		}
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	svc := NewSubnetService()

	first, err := svc.Resolve(context.Background(), "10.20.30.40/0xffffffc0")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := svc.Resolve(context.Background(), "10.20.30.40/0xffffffc0")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ between runs: %+v vs %+v", first, second)
	}
}
