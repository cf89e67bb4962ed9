package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DeckEntry is one card line of a deck list.
type DeckEntry struct {
	Name     string `yaml:"name" json:"name"`
	Upgraded bool   `yaml:"upgraded,omitempty" json:"upgraded,omitempty"`
	Count    int    `yaml:"count" json:"count"`
}

// Deck is a complete deck list for one side.
type Deck struct {
	Side    Side     `yaml:"side" json:"side"`
	Schools []School `yaml:"schools,omitempty" json:"schools,omitempty"`
	// Identity names the identity card leading this deck.
	Identity string `yaml:"identity" json:"identity"`
	// Riftcallers are the named ally cards that begin in the identity zone.
	Riftcallers []string    `yaml:"riftcallers,omitempty" json:"riftcallers,omitempty"`
	Cards       []DeckEntry `yaml:"cards" json:"cards"`
}

// Validate checks that every listed card is registered and belongs to the
// deck's side.
func (d *Deck) Validate() error {
	check := func(name string) error {
		def := Lookup(CardVariant{Name: name})
		if def == nil {
			return fmt.Errorf("deck: unknown card %q", name)
		}
		if def.Side != d.Side && def.School != SchoolNeutral {
			return fmt.Errorf("deck: %q belongs to %v", name, def.Side)
		}
		return nil
	}
	if d.Identity != "" {
		if err := check(d.Identity); err != nil {
			return err
		}
	}
	for _, name := range d.Riftcallers {
		if err := check(name); err != nil {
			return err
		}
	}
	for _, e := range d.Cards {
		if e.Count <= 0 {
			return fmt.Errorf("deck: bad count %d for %q", e.Count, e.Name)
		}
		if err := check(e.Name); err != nil {
			return err
		}
	}
	return nil
}

// LoadDeck reads and validates a YAML deck list.
func LoadDeck(path string) (*Deck, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("deck: %w", err)
	}
	var d Deck
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("deck %s: %w", path, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// UnmarshalYAML parses a side by name.
func (s *Side) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	switch name {
	case "covenant", "Covenant":
		*s = Covenant
	case "riftcaller", "Riftcaller":
		*s = Riftcaller
	default:
		return fmt.Errorf("deck: unknown side %q", name)
	}
	return nil
}

// UnmarshalYAML parses a school by name.
func (s *School) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	switch name {
	case "law", "Law":
		*s = SchoolLaw
	case "shadow", "Shadow":
		*s = SchoolShadow
	case "primal", "Primal":
		*s = SchoolPrimal
	case "beyond", "Beyond":
		*s = SchoolBeyond
	case "pact", "Pact":
		*s = SchoolPact
	case "neutral", "Neutral":
		*s = SchoolNeutral
	default:
		return fmt.Errorf("deck: unknown school %q", name)
	}
	return nil
}
