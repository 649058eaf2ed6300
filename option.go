package nixdoc

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Source identifies which configuration-documentation backend an option
// set belongs to. The set is closed; a Database is bound to exactly one
// Source at construction time.
type Source string

// Supported documentation sources.
const (
	SourceNixOS       Source = "nixos"
	SourceNixDarwin   Source = "nix-darwin"
	SourceHomeManager Source = "home-manager"
)

// Sources lists all supported sources in display order.
func Sources() []Source {
	return []Source{SourceNixOS, SourceNixDarwin, SourceHomeManager}
}

// ParseSource converts user input into a Source.
// Returns EINVALID if the name is not a known source.
func ParseSource(name string) (Source, error) {
	switch Source(strings.ToLower(name)) {
	case SourceNixOS:
		return SourceNixOS, nil
	case SourceNixDarwin:
		return SourceNixDarwin, nil
	case SourceHomeManager:
		return SourceHomeManager, nil
	}
	return "", Errorf(EINVALID, "unknown source %q (valid: nixos, nix-darwin, home-manager)", name)
}

// OptionDocumentation is one normalized option record as exported by a
// backend's options.json. Field tags match the on-disk schema.
type OptionDocumentation struct {
	Description string   `json:"description"`
	ReadOnly    bool     `json:"readOnly"`
	Location    []string `json:"loc"`
	OptionType  string   `json:"type"`
}

// Name returns the option's dotted name, its canonical key within a
// backend.
func (o *OptionDocumentation) Name() string {
	return strings.Join(o.Location, ".")
}

// Validate returns an error if the record is missing required fields.
// Description and ReadOnly are optional and default to their zero
// values; Location and OptionType must be present.
func (o *OptionDocumentation) Validate() error {
	if len(o.Location) == 0 {
		return Errorf(EINVALID, "option location required")
	}
	if o.OptionType == "" {
		return Errorf(EINVALID, "option type required")
	}
	return nil
}

// DocEntry pairs an option record with the source it came from. Entries
// are produced as search output only and are never stored.
type DocEntry struct {
	Source Source
	Option OptionDocumentation
}

var nameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// PrettyPrint renders the entry as a short human-readable block: the
// dotted name, the description, and the type.
func (e *DocEntry) PrettyPrint() string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(nameStyle.Render(e.Option.Name()))
	b.WriteString("\n")
	b.WriteString(e.Option.Description)
	b.WriteString("\ntype: ")
	b.WriteString(e.Option.OptionType)
	b.WriteString("\n\n")
	return b.String()
}
