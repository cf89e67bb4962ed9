package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGreyPilgrimDawnMana: a face-up Grey Pilgrim pays out at dawn.
func TestGreyPilgrimDawnMana(t *testing.T) {
	g := newTestGame(t)
	addFaceUp(t, g, "Grey Pilgrim", Riftcaller, InItem(ItemEvocations))

	act(t, g, Covenant, Action{Kind: ActionEndTurn})
	assert.Equal(t, TurnData{Side: Riftcaller, Number: 1}, g.Info.Turn)
	assert.Equal(t, StartingMana+1, g.Player(Riftcaller).Mana.Base)
}

// TestScoreTriggersBothSides: scoring a scheme during a raid feeds every
// subscriber: Veilwisp draws for the Riftcaller, Loyal Forge pays the
// Covenant.
func TestScoreTriggersBothSides(t *testing.T) {
	g := newTestGame(t)
	setTurn(g, Riftcaller)
	addFaceUp(t, g, "Veilwisp", Riftcaller, InItem(ItemAllies))
	addFaceUp(t, g, "Loyal Forge", Covenant, InRoom(RoomA, RoomOccupants))
	addCard(t, g, "Sift", Riftcaller, InDeckUnknown(Riftcaller))
	addCard(t, g, "Hidden Ledger", Covenant, InDeckUnknown(Covenant))

	act(t, g, Riftcaller, Action{Kind: ActionInitiateRaid, Room: RoomVault})
	choose(t, g, Riftcaller, "Score Hidden Ledger")

	assert.Equal(t, 10, g.Player(Riftcaller).Score)
	assert.Len(t, g.Hand(Riftcaller), 1)
	assert.Equal(t, StartingMana+2, g.Player(Covenant).Mana.Base)
}

// TestGravewhisperCurseContinuesRaid: a combat ability that merely curses
// does not stop the raid.
func TestGravewhisperCurseContinuesRaid(t *testing.T) {
	g := newTestGame(t)
	setTurn(g, Riftcaller)
	addCard(t, g, "Gravewhisper Shade", Covenant, InRoom(RoomVault, RoomDefenders))

	act(t, g, Riftcaller, Action{Kind: ActionInitiateRaid, Room: RoomVault})
	choose(t, g, Covenant, "Summon")
	choose(t, g, Riftcaller, "Continue")

	assert.Equal(t, 1, g.Player(Riftcaller).Curses)
	// Empty vault, nothing to access: the raid still ran to completion.
	assert.Nil(t, g.Raid)
	assert.Equal(t, 1, g.CountThisTurn(HistoryRaidSuccess))
}

// TestAshenWardenUpgradedDamage: the upgraded printing deals two.
func TestAshenWardenUpgradedDamage(t *testing.T) {
	g := newTestGame(t)
	setTurn(g, Riftcaller)
	_, err := CreateAndAddCard(g, CardVariant{Name: "Ashen Warden", Upgraded: true},
		Covenant, InRoom(RoomVault, RoomDefenders))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		addCard(t, g, "Sift", Riftcaller, InHand(Riftcaller))
	}

	act(t, g, Riftcaller, Action{Kind: ActionInitiateRaid, Room: RoomVault})
	choose(t, g, Covenant, "Summon")
	choose(t, g, Riftcaller, "Continue")

	assert.Len(t, g.Hand(Riftcaller), 1)
	assert.Equal(t, 1, g.CountThisTurn(HistoryDealtDamage))
}

// TestRequisitionUpgradedDrawsThree: the upgraded printing draws three.
func TestRequisitionUpgradedDrawsThree(t *testing.T) {
	g := newTestGame(t)
	spell, err := CreateAndAddCard(g, CardVariant{Name: "Requisition", Upgraded: true},
		Covenant, InHand(Covenant))
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		addCard(t, g, "Rime Sentinel", Covenant, InDeckUnknown(Covenant))
	}

	act(t, g, Covenant, Action{Kind: ActionPlayCard, Card: spell, Target: NoTarget()})
	assert.Len(t, g.Hand(Covenant), 3)
	assert.Equal(t, InDiscardPile(Covenant), g.Card(spell).Position)
}

// TestSiftDrawsTwo: Sift resolves and draws two for the Riftcaller.
func TestSiftDrawsTwo(t *testing.T) {
	g := newTestGame(t)
	setTurn(g, Riftcaller)
	spell := addCard(t, g, "Sift", Riftcaller, InHand(Riftcaller))
	for i := 0; i < 2; i++ {
		addCard(t, g, "Veilwisp", Riftcaller, InDeckUnknown(Riftcaller))
	}

	act(t, g, Riftcaller, Action{Kind: ActionPlayCard, Card: spell, Target: NoTarget()})
	assert.Len(t, g.Hand(Riftcaller), 2)
	assert.Equal(t, StartingMana-1, g.Player(Riftcaller).Mana.Base)
}

// TestEmberTapMidRaidReopensWeapon: activating Ember Tap while holding an
// encounter prompt gains mana and regenerates the prompt, so a weapon that
// was priced out becomes available.
func TestEmberTapMidRaidReopensWeapon(t *testing.T) {
	g := newTestGame(t)
	setTurn(g, Riftcaller)
	tap := addFaceUp(t, g, "Ember Tap", Riftcaller, InItem(ItemEvocations))
	addFaceUp(t, g, "Emberblade", Riftcaller, InItem(ItemArtifacts))
	sentinel := addCard(t, g, "Rime Sentinel", Covenant, InRoom(RoomVault, RoomDefenders))
	addCard(t, g, "Gold Reserves", Covenant, InDeckUnknown(Covenant))
	g.Player(Riftcaller).Mana.Base = 0

	act(t, g, Riftcaller, Action{Kind: ActionInitiateRaid, Room: RoomVault})
	choose(t, g, Covenant, "Summon")

	// Broke: the blade's boost is unaffordable, continuing is the only out.
	p := pendingPrompt(t, g, Riftcaller)
	require.Len(t, p.Buttons, 1)

	act(t, g, Riftcaller, Action{
		Kind:    ActionActivateAbility,
		Ability: &AbilityId{Card: tap, Index: 0},
	})
	assert.Equal(t, 2, g.Player(Riftcaller).Mana.Base)
	assert.Equal(t, 1, g.CountThisTurn(HistoryActivatedAbility))

	choose(t, g, Riftcaller, "Emberblade for 1 mana")
	assert.Equal(t, InDiscardPile(Covenant), g.Card(sentinel).Position)

	choose(t, g, Riftcaller, "Score Gold Reserves")
	assert.Nil(t, g.Raid)
	assert.Equal(t, 1, g.Player(Riftcaller).Mana.Base)
}

// TestFortifyProgressesChosenRoom: Fortify asks for an outer room holding a
// scheme and adds progress there only.
func TestFortifyProgressesChosenRoom(t *testing.T) {
	g := newTestGame(t)
	fortify := addCard(t, g, "Fortify", Covenant, InHand(Covenant))
	chosen := addCard(t, g, "Gold Reserves", Covenant, InRoom(RoomB, RoomOccupants))
	other := addCard(t, g, "Hidden Ledger", Covenant, InRoom(RoomC, RoomOccupants))

	act(t, g, Covenant, Action{Kind: ActionPlayCard, Card: fortify, Target: NoTarget()})

	p := pendingPrompt(t, g, Covenant)
	require.Equal(t, PromptRoomSelector, p.Kind)
	require.NotNil(t, p.Rooms)
	assert.ElementsMatch(t, []RoomId{RoomB, RoomC}, p.Rooms.ValidRooms)

	act(t, g, Covenant, Action{Kind: ActionSelectRoom, Room: RoomB})

	assert.Equal(t, 1, g.Card(chosen).Progress)
	assert.Equal(t, 0, g.Card(other).Progress)
	assert.Equal(t, InDiscardPile(Covenant), g.Card(fortify).Position)
	assert.Equal(t, StartingMana-1, g.Player(Covenant).Mana.Base)
}

// TestGlimpseAccessesVaultTop: Glimpse runs an access sequence against the
// vault's top card without initiating a raid.
func TestGlimpseAccessesVaultTop(t *testing.T) {
	g := newTestGame(t)
	setTurn(g, Riftcaller)
	glimpse := addCard(t, g, "Glimpse", Riftcaller, InHand(Riftcaller))
	addCard(t, g, "Gold Reserves", Covenant, InDeckUnknown(Covenant))

	act(t, g, Riftcaller, Action{Kind: ActionPlayCard, Card: glimpse, Target: NoTarget()})

	require.NotNil(t, g.Raid)
	assert.True(t, g.Raid.CustomAccess)
	choose(t, g, Riftcaller, "Score Gold Reserves")

	assert.Nil(t, g.Raid)
	assert.Equal(t, 15, g.Player(Riftcaller).Score)
	// An ability-driven access is not a raid.
	assert.Equal(t, 0, g.CountThisTurn(HistoryRaidBegan))
	assert.Equal(t, 0, g.CountThisTurn(HistoryRaidSuccess))
	assert.Equal(t, InDiscardPile(Riftcaller), g.Card(glimpse).Position)
}

// TestScavengersCallPlaysFromDiscard: the browser lets the Riftcaller play
// a discarded artifact; the spell finishes resolving first.
func TestScavengersCallPlaysFromDiscard(t *testing.T) {
	g := newTestGame(t)
	setTurn(g, Riftcaller)
	call := addCard(t, g, "Scavenger's Call", Riftcaller, InHand(Riftcaller))
	blade := addCard(t, g, "Emberblade", Riftcaller, InDiscardPile(Riftcaller))

	act(t, g, Riftcaller, Action{Kind: ActionPlayCard, Card: call, Target: NoTarget()})

	p := pendingPrompt(t, g, Riftcaller)
	require.Equal(t, PromptPlayCardBrowser, p.Kind)
	require.NotNil(t, p.Browser)
	assert.Equal(t, []CardId{blade}, p.Browser.Cards)

	act(t, g, Riftcaller, Action{Kind: ActionPlayCard, Card: blade, Target: NoTarget()})

	c := g.Card(blade)
	assert.Equal(t, InItem(ItemArtifacts), c.Position)
	assert.True(t, c.FaceUp)
	assert.Equal(t, InDiscardPile(Riftcaller), g.Card(call).Position)
	assert.Equal(t, StartingMana-2, g.Player(Riftcaller).Mana.Base)
	assert.Equal(t, StartOfTurnActionCount-2, g.Player(Riftcaller).ActionPoints)
}

// TestScavengersCallSkipDeclines: the browser's button is its decline path.
func TestScavengersCallSkipDeclines(t *testing.T) {
	g := newTestGame(t)
	setTurn(g, Riftcaller)
	call := addCard(t, g, "Scavenger's Call", Riftcaller, InHand(Riftcaller))
	blade := addCard(t, g, "Emberblade", Riftcaller, InDiscardPile(Riftcaller))

	act(t, g, Riftcaller, Action{Kind: ActionPlayCard, Card: call, Target: NoTarget()})
	choose(t, g, Riftcaller, "Skip")

	assert.Equal(t, InDiscardPile(Riftcaller), g.Card(blade).Position)
	assert.Equal(t, InDiscardPile(Riftcaller), g.Card(call).Position)
	assert.Equal(t, StartingMana-1, g.Player(Riftcaller).Mana.Base)
	assert.Equal(t, StartOfTurnActionCount-1, g.Player(Riftcaller).ActionPoints)
}
