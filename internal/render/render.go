package render

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/Flarenzy/maskcalc/internal/domain"
)

type Format string

const (
	FormatHuman Format = "human"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

type Renderer struct {
	format  Format
	printer *message.Printer
}

// New builds a renderer for the given output format. locale is a BCP 47 tag
// used to group digits in host counts (e.g. "de" prints 1.073.741.822).
func New(format Format, locale string) (*Renderer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &Renderer{
		format:  format,
		printer: message.NewPrinter(tag),
	}, nil
}

func (r *Renderer) Render(w io.Writer, result domain.Result) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toView(result))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(toView(result))
	case FormatHuman:
		return r.renderHuman(w, result)
	default:
		return fmt.Errorf("unknown output format %q", r.format)
	}
}

func (r *Renderer) renderHuman(w io.Writer, result domain.Result) error {
	type row struct {
		name  string
		value string
	}

	rows := []row{
		{"Bitmask", fmt.Sprintf("%d", result.Subnet.PrefixLength)},
		{"Netmask", result.Subnet.Mask},
		{"Hexmask", result.Subnet.Hex},
		{"Wildcard", result.Subnet.Wildcard},
		{"Hosts", r.printer.Sprintf("%d", result.Subnet.UsableHosts)},
	}

	if n := result.Network; n != nil {
		rows = append(rows,
			row{"Address", n.Address},
			row{"Network", n.Network},
			row{"Broadcast", n.Broadcast},
			row{"Hostmin", n.FirstUsable},
			row{"Hostmax", n.LastUsable},
		)
	}

	for _, it := range rows {
		if _, err := fmt.Fprintf(w, "%-12s %s\n", it.name+":", it.value); err != nil {
			return err
		}
	}
	return nil
}
