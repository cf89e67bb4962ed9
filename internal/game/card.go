package game

import "fmt"

// PlayTargetKind enumerates what a played card can be aimed at.
type PlayTargetKind int

const (
	PlayTargetNone PlayTargetKind = iota
	PlayTargetRoom
)

// PlayTarget is the chosen target for a card being played.
type PlayTarget struct {
	Kind PlayTargetKind `json:"kind"`
	Room RoomId         `json:"room,omitempty"`
}

// NoTarget plays a card without a target.
func NoTarget() PlayTarget { return PlayTarget{Kind: PlayTargetNone} }

// RoomTarget plays a card into a room.
func RoomTarget(room RoomId) PlayTarget {
	return PlayTarget{Kind: PlayTargetRoom, Room: room}
}

// OnPlayState is transient per-play data: the target chosen for the current
// play of this card. Cleared when the card leaves play.
type OnPlayState struct {
	Target PlayTarget `json:"target"`
}

// AbilityState is per-instance mutable state for one ability.
type AbilityState struct {
	// LastUsedTurn is the turn number the ability was last activated, or 0.
	LastUsedTurn int `json:"last_used_turn,omitempty"`
}

// CardState is the mutable per-instance state of one card. Everything static
// lives on the CardDefinition; everything here serializes with the game.
type CardState struct {
	Id      CardId      `json:"id"`
	Variant CardVariant `json:"variant"`

	Position   Position `json:"position"`
	SortingKey uint32   `json:"sorting_key"`
	FaceUp     bool     `json:"face_up"`

	// RevealedTo is per-side visibility, independent of FaceUp: a card can
	// be revealed to its owner while face-down in play.
	RevealedTo [2]bool `json:"revealed_to"`

	// Counters. Cleared when the card leaves play.
	Progress     int `json:"progress,omitempty"`
	StoredMana   int `json:"stored_mana,omitempty"`
	BoostCount   int `json:"boost_count,omitempty"`
	PowerCharges int `json:"power_charges,omitempty"`

	// LastEnteredPlay is the turn number this card last entered play, or 0.
	LastEnteredPlay int `json:"last_entered_play,omitempty"`

	OnPlay       *OnPlayState          `json:"on_play,omitempty"`
	AbilityState map[int]*AbilityState `json:"ability_state,omitempty"`

	// def is the looked-up definition, cached after creation and after
	// deserialization. Derived, never serialized.
	def *CardDefinition
}

// Definition returns the static definition for this card's variant.
func (c *CardState) Definition() *CardDefinition {
	if c.def == nil {
		c.def = Lookup(c.Variant)
	}
	return c.def
}

// Name returns the printed card name.
func (c *CardState) Name() string {
	if d := c.Definition(); d != nil {
		return d.Name
	}
	return c.Variant.Name
}

func (c *CardState) String() string {
	return fmt.Sprintf("%s[%v]", c.Name(), c.Id)
}

// IsVisibleTo reports whether the given side can currently see this card's
// face. Face-up cards are visible to everyone; face-down cards only to sides
// they are revealed to.
func (c *CardState) IsVisibleTo(side Side) bool {
	return c.FaceUp || c.RevealedTo[side]
}

// SetRevealedTo updates one side's visibility flag.
func (c *CardState) SetRevealedTo(side Side, revealed bool) {
	c.RevealedTo[side] = revealed
}

// clearCounters wipes the in-play counter state. Called when the card leaves
// play.
func (c *CardState) clearCounters() {
	c.Progress = 0
	c.StoredMana = 0
	c.BoostCount = 0
	c.PowerCharges = 0
	c.OnPlay = nil
}

// abilityState returns (allocating if needed) the mutable state for one of
// this card's abilities.
func (c *CardState) abilityState(index int) *AbilityState {
	if c.AbilityState == nil {
		c.AbilityState = make(map[int]*AbilityState)
	}
	s, ok := c.AbilityState[index]
	if !ok {
		s = &AbilityState{}
		c.AbilityState[index] = s
	}
	return s
}

// clone deep-copies the card state.
func (c *CardState) clone() *CardState {
	dup := *c
	if c.OnPlay != nil {
		op := *c.OnPlay
		dup.OnPlay = &op
	}
	if c.AbilityState != nil {
		dup.AbilityState = make(map[int]*AbilityState, len(c.AbilityState))
		for k, v := range c.AbilityState {
			s := *v
			dup.AbilityState[k] = &s
		}
	}
	return &dup
}
