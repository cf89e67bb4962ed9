package game

import (
	"sort"

	"go.uber.org/zap"
)

// GameConfig is per-game configuration.
type GameConfig struct {
	// Deterministic seeds the RNG from Seed so replays are bit-identical.
	Deterministic bool `json:"deterministic,omitempty"`
	Seed          uint64 `json:"seed,omitempty"`
	// Simulation disables animation tracking so AI search can clone and
	// explore cheaply.
	Simulation bool `json:"simulation,omitempty"`
	// Tutorial marks scripted tutorial games.
	Tutorial bool `json:"tutorial,omitempty"`

	logger *zap.Logger
}

// WithLogger attaches a diagnostics logger.
func (c GameConfig) WithLogger(l *zap.Logger) GameConfig {
	c.logger = l
	return c
}

// GameInfo is turn and phase information.
type GameInfo struct {
	Phase GamePhase `json:"phase"`
	// Winner is set once Phase is PhaseGameOver.
	Winner      *Side      `json:"winner,omitempty"`
	Turn        TurnData   `json:"turn"`
	TurnState   TurnState  `json:"turn_state"`
	NextEventId uint32     `json:"next_event_id"`
	Config      GameConfig `json:"config"`
}

// GameState holds the complete authoritative state of one game. It is a
// plain value: cloneable, serializable, owned by a single goroutine.
type GameState struct {
	Id   GameId   `json:"id"`
	Info GameInfo `json:"info"`

	Players [2]*PlayerState   `json:"players"`
	Cards   [2][]*CardState   `json:"cards"`

	Raid     *RaidData      `json:"raid,omitempty"`
	PlayCard *PlayCardState `json:"play_card,omitempty"`

	History GameHistory `json:"history"`

	// NextSortingKey is the game-wide monotonic counter stamped onto cards
	// at every move; it defines display order within zones and defender
	// order during raids.
	NextSortingKey uint32 `json:"next_sorting_key"`

	Rng Xoshiro `json:"rng"`

	// Derived, non-persistent state.
	Animations    *AnimationTracker `json:"-"`
	delegateCache map[DelegateKind][]DelegateContext
}

// Logger returns the diagnostics logger, never nil.
func (g *GameState) Logger() *zap.Logger {
	if g.Info.Config.logger == nil {
		return zap.NewNop()
	}
	return g.Info.Config.logger
}

// Player returns one side's player state.
func (g *GameState) Player(side Side) *PlayerState {
	return g.Players[side]
}

// Card resolves a card id, or nil if out of range.
func (g *GameState) Card(id CardId) *CardState {
	cards := g.Cards[id.Side]
	if id.Index < 0 || id.Index >= len(cards) {
		return nil
	}
	return cards[id.Index]
}

// AllCards iterates every card of both sides, Covenant first.
func (g *GameState) AllCards() []*CardState {
	out := make([]*CardState, 0, len(g.Cards[Covenant])+len(g.Cards[Riftcaller]))
	out = append(out, g.Cards[Covenant]...)
	out = append(out, g.Cards[Riftcaller]...)
	return out
}

// CardsAt returns the cards at a position ordered by sorting key, lowest
// first. Higher key means more recently moved (and, for defenders, closer
// to the front of the room).
func (g *GameState) CardsAt(pos Position) []*CardState {
	var out []*CardState
	for _, c := range g.AllCards() {
		if c.Position == pos {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SortingKey < out[j].SortingKey
	})
	return out
}

// Hand returns a side's hand in sorting-key order.
func (g *GameState) Hand(side Side) []*CardState {
	return g.CardsAt(InHand(side))
}

// DiscardPile returns a side's discard pile in sorting-key order.
func (g *GameState) DiscardPile(side Side) []*CardState {
	return g.CardsAt(InDiscardPile(side))
}

// DeckUnknown returns the shuffled portion of a side's deck.
func (g *GameState) DeckUnknown(side Side) []*CardState {
	return g.CardsAt(InDeckUnknown(side))
}

// DeckTop returns the realized top of a side's deck, bottom-most first: the
// highest-keyed card is the very top.
func (g *GameState) DeckTop(side Side) []*CardState {
	return g.CardsAt(InDeckTop(side))
}

// ScoredCards returns a side's score pile.
func (g *GameState) ScoredCards(side Side) []*CardState {
	return g.CardsAt(InScored(side))
}

// Defenders returns a room's defenders, innermost first. The last element
// is the front defender a raid meets first.
func (g *GameState) Defenders(room RoomId) []*CardState {
	return g.CardsAt(InRoom(room, RoomDefenders))
}

// Occupants returns the schemes and projects in a room.
func (g *GameState) Occupants(room RoomId) []*CardState {
	return g.CardsAt(InRoom(room, RoomOccupants))
}

// ArenaItems returns the Riftcaller cards in one arena column.
func (g *GameState) ArenaItems(item ItemLocation) []*CardState {
	return g.CardsAt(InItem(item))
}

// Weapons returns the Riftcaller's in-play weapons.
func (g *GameState) Weapons() []*CardState {
	var out []*CardState
	for _, c := range g.Cards[Riftcaller] {
		if c.Position.InPlay() && c.Definition().IsWeapon() {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SortingKey < out[j].SortingKey
	})
	return out
}

// nextSortingKey allocates the next value of the monotonic move counter.
func (g *GameState) nextSortingKey() uint32 {
	g.NextSortingKey++
	return g.NextSortingKey
}

// NewEventId allocates the next raid/encounter/access/banish counter value.
func (g *GameState) NewEventId() uint32 {
	g.Info.NextEventId++
	return g.Info.NextEventId
}

// IsGameOver reports whether the game has ended.
func (g *GameState) IsGameOver() bool {
	return g.Info.Phase == PhaseGameOver
}

// CurrentPriority returns the side expected to act next, or nil once the
// game is over. A pending prompt gives its owner priority (Covenant first
// when both sides have prompts); otherwise the turn player acts.
func (g *GameState) CurrentPriority() *Side {
	if g.IsGameOver() {
		return nil
	}
	for _, side := range []Side{Covenant, Riftcaller} {
		if len(g.Player(side).Prompts) > 0 {
			s := side
			return &s
		}
	}
	if g.Info.Phase == PhaseResolveMulligans {
		for _, side := range []Side{Covenant, Riftcaller} {
			if g.Player(side).Mulligan == nil {
				s := side
				return &s
			}
		}
	}
	s := g.Info.Turn.Side
	return &s
}

// snapshot clones the state for an animation record: a deep copy minus the
// animation tracker itself.
func (g *GameState) snapshot() *GameState {
	return g.cloneInternal()
}

// Clone deep-copies the game state. The clone shares nothing mutable with
// the original; callers exploring speculative actions mutate the clone.
func (g *GameState) Clone() *GameState {
	return g.cloneInternal()
}

func (g *GameState) cloneInternal() *GameState {
	dup := &GameState{
		Id:             g.Id,
		Info:           g.Info,
		History:        GameHistory{Entries: append([]HistoryEvent(nil), g.History.Entries...)},
		NextSortingKey: g.NextSortingKey,
		Rng:            g.Rng,
	}
	if g.Info.Winner != nil {
		w := *g.Info.Winner
		dup.Info.Winner = &w
	}
	for side := range g.Players {
		if g.Players[side] != nil {
			dup.Players[side] = g.Players[side].clone()
		}
		dup.Cards[side] = make([]*CardState, len(g.Cards[side]))
		for i, c := range g.Cards[side] {
			dup.Cards[side][i] = c.clone()
		}
	}
	if g.Raid != nil {
		dup.Raid = g.Raid.clone()
	}
	if g.PlayCard != nil {
		pc := *g.PlayCard
		dup.PlayCard = &pc
	}
	return dup
}

// Rebuild reconstructs derived state (definition pointers, delegate cache)
// after deserialization.
func (g *GameState) Rebuild() {
	for _, c := range g.AllCards() {
		c.def = nil
	}
	g.rebuildDelegateCache()
}
