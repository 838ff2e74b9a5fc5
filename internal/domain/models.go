package domain

// Mask is a 32-bit IPv4 subnet mask. A Mask is only ever constructed through
// MaskFromPrefix or the Parse* functions, so its bit pattern is always a
// contiguous run of ones followed by a contiguous run of zeros.
type Mask uint32

// Notation tags which textual representation a token was classified as.
type Notation int

const (
	NotationCIDR Notation = iota
	NotationMask
	NotationHex
	NotationWildcard
)

func (n Notation) String() string {
	switch n {
	case NotationCIDR:
		return "cidr"
	case NotationMask:
		return "mask"
	case NotationHex:
		return "hex"
	case NotationWildcard:
		return "wildcard"
	default:
		return "unknown"
	}
}

// SubnetReport holds the four equivalent renderings of one mask plus the
// usable host count of the subnet it describes.
type SubnetReport struct {
	PrefixLength int
	Mask         string
	Hex          string
	Wildcard     string
	UsableHosts  uint64
}

// NoUsable is the sentinel rendered for first/last usable addresses of /31
// and /32 subnets, which have no assignable hosts.
const NoUsable = "<none>"

// NetworkReport is derived only when an address accompanies the mask token.
type NetworkReport struct {
	Address     string
	Network     string
	Broadcast   string
	FirstUsable string
	LastUsable  string
}

type Result struct {
	Subnet  SubnetReport
	Network *NetworkReport
}
