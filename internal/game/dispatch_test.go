package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFlagAlgebra: the three-level boolean behind yes/no queries. Overrides
// beat the base level, and a Disallow can never be undone.
func TestFlagAlgebra(t *testing.T) {
	cases := []struct {
		name string
		flag Flag
		want bool
	}{
		{"default true", NewFlag(true), true},
		{"default false", NewFlag(false), false},
		{"constraint ands", NewFlag(true).AddConstraint(false), false},
		{"permission ors", NewFlag(false).AddPermission(true), true},
		{"allow overrides base", NewFlag(false).Allow(), true},
		{"disallow overrides base", NewFlag(true).Disallow(), false},
		{"disallow is sticky", NewFlag(true).Disallow().Allow(), false},
		{"allow then disallow", NewFlag(true).Allow().Disallow(), false},
		{"override beats constraint", NewFlag(true).Allow().AddConstraint(false), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.flag.Bool())
		})
	}
}

// TestDelegateFiringOrder: Covenant delegates fire before Riftcaller
// delegates regardless of creation order, then by card index and ability
// index within a card.
func TestDelegateFiringOrder(t *testing.T) {
	g := newTestGame(t)

	// The Riftcaller card is created first to prove side ordering wins.
	wisp := addFaceUp(t, g, "Test Echo Wisp", Riftcaller, InItem(ItemAllies))
	chime1 := addFaceUp(t, g, "Test Echo Chime", Covenant, InRoom(RoomA, RoomOccupants))
	chime2 := addFaceUp(t, g, "Test Echo Chime", Covenant, InRoom(RoomB, RoomOccupants))

	firedOrder = nil
	require.NoError(t, Fire(g, OnDusk, TurnEvent{Side: Covenant, Number: 1}))

	want := []string{
		"covenant-" + AbilityId{Card: chime1, Index: 0}.String(),
		"covenant-" + AbilityId{Card: chime1, Index: 1}.String(),
		"covenant-" + AbilityId{Card: chime2, Index: 0}.String(),
		"covenant-" + AbilityId{Card: chime2, Index: 1}.String(),
		"riftcaller-" + AbilityId{Card: wisp, Index: 0}.String(),
	}
	assert.Equal(t, want, firedOrder)
}

// TestDelegateCacheTracksNewCards: creating a card mid-game invalidates the
// delegate index, so the next event reaches the newcomer.
func TestDelegateCacheTracksNewCards(t *testing.T) {
	g := newTestGame(t)
	addFaceUp(t, g, "Test Echo Chime", Covenant, InRoom(RoomA, RoomOccupants))

	firedOrder = nil
	require.NoError(t, Fire(g, OnDusk, TurnEvent{Side: Covenant, Number: 1}))
	require.Len(t, firedOrder, 2)

	addFaceUp(t, g, "Test Echo Chime", Covenant, InRoom(RoomB, RoomOccupants))
	firedOrder = nil
	require.NoError(t, Fire(g, OnDusk, TurnEvent{Side: Covenant, Number: 1}))
	assert.Len(t, firedOrder, 4)
}

// TestQueryDisallowBlocksRaid: a face-up card vetoing QueryCanInitiateRaid
// makes the raid action illegal; the veto lifts while the card is face-down.
func TestQueryDisallowBlocksRaid(t *testing.T) {
	g := newTestGame(t)
	setTurn(g, Riftcaller)
	sigil := addCard(t, g, "Test Ward Sigil", Covenant, InRoom(RoomA, RoomOccupants))

	// Face-down: the veto does not apply.
	assert.True(t, CanInitiateRaid(g, Riftcaller, RoomVault))

	require.NoError(t, TurnFaceUp(g, sigil))
	assert.False(t, CanInitiateRaid(g, Riftcaller, RoomVault))
	err := HandleAction(g, Riftcaller, Action{Kind: ActionInitiateRaid, Room: RoomVault})
	assert.ErrorIs(t, err, ErrIllegalAction)
}
