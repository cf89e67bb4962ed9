package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRealizeTopOfDeckIdempotent: realizing the deck top is stable; asking
// again, or asking for more, never reorders cards already known.
func TestRealizeTopOfDeckIdempotent(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 5; i++ {
		addCard(t, g, "Requisition", Covenant, InDeckUnknown(Covenant))
	}

	first, err := RealizeTopOfDeck(g, Covenant, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)

	again, err := RealizeTopOfDeck(g, Covenant, 2)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	more, err := RealizeTopOfDeck(g, Covenant, 3)
	require.NoError(t, err)
	require.Len(t, more, 3)
	assert.Equal(t, first, more[:2])
}

// TestRealizeTopOfDeckShortDeck: asking for more cards than remain returns
// what exists.
func TestRealizeTopOfDeckShortDeck(t *testing.T) {
	g := newTestGame(t)
	addCard(t, g, "Requisition", Covenant, InDeckUnknown(Covenant))

	top, err := RealizeTopOfDeck(g, Covenant, 3)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

// TestShuffleIntoDeckForgetsOrder: shuffling cards in also demotes that
// side's known deck top back to the unknown section.
func TestShuffleIntoDeckForgetsOrder(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 4; i++ {
		addCard(t, g, "Sift", Riftcaller, InDeckUnknown(Riftcaller))
	}
	inHand := addCard(t, g, "Sift", Riftcaller, InHand(Riftcaller))

	_, err := RealizeTopOfDeck(g, Riftcaller, 2)
	require.NoError(t, err)
	require.Len(t, g.DeckTop(Riftcaller), 2)

	require.NoError(t, ShuffleIntoDeck(g, Riftcaller, []CardId{inHand}))
	assert.Empty(t, g.DeckTop(Riftcaller))
	assert.Len(t, g.DeckUnknown(Riftcaller), 5)
}

// TestDefenderCapOnCardEffectMove: a card effect moving a fifth minion into
// a room discards the oldest defender without a decision point.
func TestDefenderCapOnCardEffectMove(t *testing.T) {
	g := newTestGame(t)
	var defenders []CardId
	for i := 0; i < MaximumMinionsInRoom; i++ {
		defenders = append(defenders, addCard(t, g, "Ashen Warden", Covenant, InRoom(RoomC, RoomDefenders)))
	}
	extra := addCard(t, g, "Rime Sentinel", Covenant, InHand(Covenant))

	require.NoError(t, MoveCard(g, extra, InRoom(RoomC, RoomDefenders)))
	assert.Len(t, g.Defenders(RoomC), MaximumMinionsInRoom)
	assert.Equal(t, InDiscardPile(Covenant), g.Card(defenders[0]).Position)
}

// TestDrawCardsShortDeckDrawsNothing: a multi-draw a deck cannot cover ends
// the game without moving any card to hand.
func TestDrawCardsShortDeckDrawsNothing(t *testing.T) {
	g := newTestGame(t)
	addCard(t, g, "Requisition", Covenant, InDeckUnknown(Covenant))

	require.NoError(t, DrawCards(g, Covenant, 2, ByPlayer()))
	require.True(t, g.IsGameOver())
	assert.Equal(t, Riftcaller, *g.Info.Winner)
	assert.Empty(t, g.Hand(Covenant))
	assert.Len(t, g.DeckUnknown(Covenant), 1)
}

// TestDealDamageDiscardsFromHand: damage discards random Riftcaller hand
// cards.
func TestDealDamageDiscardsFromHand(t *testing.T) {
	g := newTestGame(t)
	minion := addFaceUp(t, g, "Ashen Warden", Covenant, InRoom(RoomA, RoomDefenders))
	for i := 0; i < 3; i++ {
		addCard(t, g, "Sift", Riftcaller, InHand(Riftcaller))
	}

	require.NoError(t, DealDamage(g, AbilityId{Card: minion, Index: 0}, 2))
	assert.Len(t, g.Hand(Riftcaller), 1)
	assert.Len(t, g.DiscardPile(Riftcaller), 2)
	assert.False(t, g.IsGameOver())
}

// TestDealDamageLethalEndsGame: damage beyond hand size is lethal.
func TestDealDamageLethalEndsGame(t *testing.T) {
	g := newTestGame(t)
	minion := addFaceUp(t, g, "Ashen Warden", Covenant, InRoom(RoomA, RoomDefenders))
	addCard(t, g, "Sift", Riftcaller, InHand(Riftcaller))

	require.NoError(t, DealDamage(g, AbilityId{Card: minion, Index: 0}, 2))
	require.True(t, g.IsGameOver())
	assert.Equal(t, Covenant, *g.Info.Winner)
}

// TestSummonMinionIgnoreCosts: card effects summon without paying the
// printed cost.
func TestSummonMinionIgnoreCosts(t *testing.T) {
	g := newTestGame(t)
	minion := addCard(t, g, "Rime Sentinel", Covenant, InRoom(RoomA, RoomDefenders))
	manaBefore := g.Player(Covenant).Mana.Base

	require.NoError(t, SummonMinion(g, minion, ByPlayer(), IgnoreCosts))
	assert.True(t, g.Card(minion).FaceUp)
	assert.Equal(t, manaBefore, g.Player(Covenant).Mana.Base)
	assert.Equal(t, 1, g.CountThisTurn(HistoryMinionSummoned))
}

// TestLeavingPlayClearsCounters: counters and ability state drop when a
// card leaves play.
func TestLeavingPlayClearsCounters(t *testing.T) {
	g := newTestGame(t)
	scheme := addCard(t, g, "Gold Reserves", Covenant, InRoom(RoomA, RoomOccupants))
	g.Card(scheme).Progress = 2

	require.NoError(t, MoveCard(g, scheme, InHand(Covenant)))
	assert.Equal(t, 0, g.Card(scheme).Progress)
}

// TestStoredManaTakeAndSacrifice: Mana Crucible's dusk trigger drains its
// store in threes and sacrifices itself once empty.
func TestStoredManaTakeAndSacrifice(t *testing.T) {
	g := newTestGame(t)
	crucible := addCard(t, g, "Mana Crucible", Covenant, InRoom(RoomD, RoomOccupants))
	act(t, g, Covenant, Action{Kind: ActionSummonProject, Card: crucible})
	require.Equal(t, 9, g.Card(crucible).StoredMana)

	manaBefore := g.Player(Covenant).Mana.Base
	for i := 0; i < 3; i++ {
		require.NoError(t, Fire(g, OnDusk, TurnEvent{Side: Covenant, Number: g.Info.Turn.Number + i}))
	}
	assert.Equal(t, manaBefore+9, g.Player(Covenant).Mana.Base)
	assert.Equal(t, InDiscardPile(Covenant), g.Card(crucible).Position)
	assert.Equal(t, 1, g.CountThisTurn(HistoryCardSacrificed))
}
