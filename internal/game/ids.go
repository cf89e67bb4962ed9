package game

import (
	"fmt"

	"github.com/google/uuid"
)

// GameId uniquely identifies a game. UUIDv7 gives us a 128-bit,
// timestamp-ordered value that sorts by creation time.
type GameId = uuid.UUID

// NewGameId allocates a fresh game identifier.
func NewGameId() GameId {
	return uuid.Must(uuid.NewV7())
}

// Side identifies one of the two players.
type Side int

const (
	Covenant Side = iota
	Riftcaller
)

func (s Side) String() string {
	if s == Covenant {
		return "Covenant"
	}
	return "Riftcaller"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	return 1 - s
}

// CardId identifies a card by its owner and a stable index into that side's
// card vector. Indices never change: cards are moved between zones, not
// removed from the vector.
type CardId struct {
	Side  Side `json:"side"`
	Index int  `json:"index"`
}

func (id CardId) String() string {
	return fmt.Sprintf("%s/%d", id.Side, id.Index)
}

// AbilityId identifies one ability on a card.
type AbilityId struct {
	Card  CardId `json:"card"`
	Index int    `json:"index"`
}

func (id AbilityId) String() string {
	return fmt.Sprintf("%v.%d", id.Card, id.Index)
}

// Side returns the side owning the ability's card.
func (id AbilityId) Side() Side {
	return id.Card.Side
}

// The per-game monotonic event counters. Each is unique within a single
// game, allocated from GameInfo.NextEventId.
type (
	RaidId            uint32
	MinionEncounterId uint32
	RoomAccessId      uint32
	BanishEventId     uint32
)

func (id RaidId) String() string { return fmt.Sprintf("raid-%d", uint32(id)) }

// InitiatedBy records whether a game action came directly from a player or
// was initiated on their behalf by a card ability.
type InitiatedBy struct {
	// Ability is nil for direct player actions.
	Ability *AbilityId `json:"ability,omitempty"`
}

// ByPlayer marks an action taken directly by a player.
func ByPlayer() InitiatedBy {
	return InitiatedBy{}
}

// ByAbility marks an action initiated by a card ability.
func ByAbility(id AbilityId) InitiatedBy {
	return InitiatedBy{Ability: &id}
}

// IsAbility reports whether the action was initiated by a card ability.
func (i InitiatedBy) IsAbility() bool {
	return i.Ability != nil
}
