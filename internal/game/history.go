package game

// HistoryEventKind enumerates the record types of the per-turn history log.
type HistoryEventKind int

const (
	HistoryDrewCard HistoryEventKind = iota
	HistoryPlayedCard
	HistoryActivatedAbility
	HistoryGainedManaAction
	HistorySpentActionPoint
	HistoryRaidBegan
	HistoryRaidSuccess
	HistoryRaidFailure
	HistoryMinionSummoned
	HistoryMinionApproached
	HistoryMinionEncountered
	HistoryUsedWeapon
	HistoryMinionDefeated
	HistoryScoredCard
	HistoryRazedCard
	HistoryDealtDamage
	HistoryCursesReceived
	HistoryCardSacrificed
	HistoryRoomProgressed
)

// HistoryEvent is one append-only record. Fields beyond Kind are populated
// as relevant.
type HistoryEvent struct {
	Turn    TurnData         `json:"turn"`
	Kind    HistoryEventKind `json:"kind"`
	Side    Side             `json:"side,omitempty"`
	Card    CardId           `json:"card,omitempty"`
	Ability *AbilityId       `json:"ability,omitempty"`
	Raid    RaidId           `json:"raid,omitempty"`
	Room    RoomId           `json:"room,omitempty"`
	Amount  int              `json:"amount,omitempty"`
}

// GameHistory is the append-only event log card predicates read ("if you
// have raided this turn"). Entries are written immediately after each
// mutation, so delegates fired later in the same action observe them.
type GameHistory struct {
	Entries []HistoryEvent `json:"entries,omitempty"`
}

// push appends an event stamped with the current turn.
func (g *GameState) pushHistory(ev HistoryEvent) {
	ev.Turn = g.Info.Turn
	g.History.Entries = append(g.History.Entries, ev)
}

// ForTurn returns the events recorded during the given turn.
func (h *GameHistory) ForTurn(turn TurnData) []HistoryEvent {
	var out []HistoryEvent
	for _, e := range h.Entries {
		if e.Turn == turn {
			out = append(out, e)
		}
	}
	return out
}

// CountThisTurn counts current-turn events of a kind.
func (g *GameState) CountThisTurn(kind HistoryEventKind) int {
	n := 0
	for _, e := range g.History.ForTurn(g.Info.Turn) {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// HasRaidedThisTurn reports whether any raid began this turn.
func (g *GameState) HasRaidedThisTurn() bool {
	return g.CountThisTurn(HistoryRaidBegan) > 0
}

// CardsDrawnThisTurn counts cards a side drew during the current turn.
func (g *GameState) CardsDrawnThisTurn(side Side) int {
	n := 0
	for _, e := range g.History.ForTurn(g.Info.Turn) {
		if e.Kind == HistoryDrewCard && e.Side == side {
			n++
		}
	}
	return n
}
