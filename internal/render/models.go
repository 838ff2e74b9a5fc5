package render

import "github.com/Flarenzy/maskcalc/internal/domain"

// resultView is the machine-readable shape shared by the json and yaml
// encoders. Host counts stay unformatted numbers there; only the human
// format applies locale grouping.
type resultView struct {
	Subnet  subnetView   `json:"subnet" yaml:"subnet"`
	Network *networkView `json:"network,omitempty" yaml:"network,omitempty"`
}

type subnetView struct {
	PrefixLength int    `json:"prefix_length" yaml:"prefix_length"`
	Mask         string `json:"mask" yaml:"mask"`
	Hex          string `json:"hex" yaml:"hex"`
	Wildcard     string `json:"wildcard" yaml:"wildcard"`
	UsableHosts  uint64 `json:"usable_hosts" yaml:"usable_hosts"`
}

type networkView struct {
	Address     string `json:"address" yaml:"address"`
	Network     string `json:"network" yaml:"network"`
	Broadcast   string `json:"broadcast" yaml:"broadcast"`
	FirstUsable string `json:"first_usable" yaml:"first_usable"`
	LastUsable  string `json:"last_usable" yaml:"last_usable"`
}

func toView(result domain.Result) resultView {
	view := resultView{
		Subnet: subnetView{
			PrefixLength: result.Subnet.PrefixLength,
			Mask:         result.Subnet.Mask,
			Hex:          result.Subnet.Hex,
			Wildcard:     result.Subnet.Wildcard,
			UsableHosts:  result.Subnet.UsableHosts,
		},
	}
	if n := result.Network; n != nil {
		view.Network = &networkView{
			Address:     n.Address,
			Network:     n.Network,
			Broadcast:   n.Broadcast,
			FirstUsable: n.FirstUsable,
			LastUsable:  n.LastUsable,
		}
	}
	return view
}
