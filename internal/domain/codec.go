package domain

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"net/netip"

	"go4.org/netipx"
)

// MaskFromPrefix returns the mask whose p most significant bits are set.
// p is clamped to [0,32].
func MaskFromPrefix(p int) Mask {
	if p <= 0 {
		return 0
	}
	if p >= 32 {
		return Mask(^uint32(0))
	}
	return Mask(^uint32(0) << (32 - p))
}

func (m Mask) Prefix() int {
	return bits.OnesCount32(uint32(m))
}

func (m Mask) octets() [4]byte {
	var o [4]byte
	binary.BigEndian.PutUint32(o[:], uint32(m))
	return o
}

func (m Mask) Dotted() string {
	return netip.AddrFrom4(m.octets()).String()
}

func (m Mask) Hex() string {
	return fmt.Sprintf("0x%08x", uint32(m))
}

// Wildcard renders the bitwise complement of the mask in dotted form.
func (m Mask) Wildcard() string {
	return Mask(^uint32(m)).Dotted()
}

// UsableHosts is 2^(32-p) - 2, which already yields 0 at /31. Only /32 needs
// its own case since the formula would underflow there.
func (m Mask) UsableHosts() uint64 {
	p := m.Prefix()
	if p == 32 {
		return 0
	}
	return uint64(1)<<(32-p) - 2
}

func (m Mask) Report() SubnetReport {
	return SubnetReport{
		PrefixLength: m.Prefix(),
		Mask:         m.Dotted(),
		Hex:          m.Hex(),
		Wildcard:     m.Wildcard(),
		UsableHosts:  m.UsableHosts(),
	}
}

// DeriveNetwork computes the network and broadcast addresses of addr under m
// plus the usable host range. The first/last usable addresses adjust only the
// final octet; the network address always leaves room below the broadcast
// within the mask boundary, so no carry across octets can occur for /30 and
// wider. /31 and /32 have no usable range and render NoUsable.
func DeriveNetwork(addr netip.Addr, m Mask) NetworkReport {
	prefix := netip.PrefixFrom(addr, m.Prefix()).Masked()
	r := netipx.RangeOfPrefix(prefix)
	network, broadcast := r.From(), r.To()

	report := NetworkReport{
		Address:     addr.String(),
		Network:     network.String(),
		Broadcast:   broadcast.String(),
		FirstUsable: NoUsable,
		LastUsable:  NoUsable,
	}

	if m.Prefix() <= 30 {
		first := network.As4()
		first[3]++
		last := broadcast.As4()
		last[3]--
		report.FirstUsable = netip.AddrFrom4(first).String()
		report.LastUsable = netip.AddrFrom4(last).String()
	}

	return report
}
