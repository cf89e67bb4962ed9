package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPlaySpellResolvesToDiscard: a spell stages while its effect resolves,
// then lands in the discard pile. Requisition draws two.
func TestPlaySpellResolvesToDiscard(t *testing.T) {
	g := newTestGame(t)
	spell := addCard(t, g, "Requisition", Covenant, InHand(Covenant))
	for i := 0; i < 3; i++ {
		addCard(t, g, "Rime Sentinel", Covenant, InDeckUnknown(Covenant))
	}

	act(t, g, Covenant, Action{Kind: ActionPlayCard, Card: spell, Target: NoTarget()})
	assert.Nil(t, g.PlayCard)
	assert.Equal(t, InDiscardPile(Covenant), g.Card(spell).Position)
	assert.Equal(t, StartingMana-1, g.Player(Covenant).Mana.Base)
	assert.Equal(t, StartOfTurnActionCount-1, g.Player(Covenant).ActionPoints)
	assert.Len(t, g.Hand(Covenant), 2)
	assert.Equal(t, 1, g.CountThisTurn(HistoryPlayedCard))
}

// TestPlayMinionFaceDownIsFree: Covenant room cards enter play face-down
// without paying mana; the cost comes due at summon time.
func TestPlayMinionFaceDownIsFree(t *testing.T) {
	g := newTestGame(t)
	minion := addCard(t, g, "Rime Sentinel", Covenant, InHand(Covenant))

	act(t, g, Covenant, Action{Kind: ActionPlayCard, Card: minion, Target: RoomTarget(RoomB)})
	c := g.Card(minion)
	assert.Equal(t, InRoom(RoomB, RoomDefenders), c.Position)
	assert.False(t, c.FaceUp)
	assert.Equal(t, StartingMana, g.Player(Covenant).Mana.Base)
	assert.Equal(t, StartOfTurnActionCount-1, g.Player(Covenant).ActionPoints)
}

// TestPlayWeaponPaysMana: Riftcaller cards enter play face-up and pay their
// printed cost immediately.
func TestPlayWeaponPaysMana(t *testing.T) {
	g := newTestGame(t)
	setTurn(g, Riftcaller)
	weapon := addCard(t, g, "Emberblade", Riftcaller, InHand(Riftcaller))

	act(t, g, Riftcaller, Action{Kind: ActionPlayCard, Card: weapon, Target: NoTarget()})
	c := g.Card(weapon)
	assert.Equal(t, InItem(ItemArtifacts), c.Position)
	assert.True(t, c.FaceUp)
	assert.Equal(t, StartingMana-1, g.Player(Riftcaller).Mana.Base)
}

// TestPlayEvocationGrantsLeylines: Leyline Conduit's play effect adds a
// leyline.
func TestPlayEvocationGrantsLeylines(t *testing.T) {
	g := newTestGame(t)
	setTurn(g, Riftcaller)
	conduit := addCard(t, g, "Leyline Conduit", Riftcaller, InHand(Riftcaller))

	act(t, g, Riftcaller, Action{Kind: ActionPlayCard, Card: conduit, Target: NoTarget()})
	assert.Equal(t, InItem(ItemEvocations), g.Card(conduit).Position)
	assert.Equal(t, 1, g.Player(Riftcaller).Leylines)
}

// TestRoomFullReturnToHand: playing a fifth minion into a full room asks the
// Covenant; taking the card back refunds the action.
func TestRoomFullReturnToHand(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < MaximumMinionsInRoom; i++ {
		addCard(t, g, "Ashen Warden", Covenant, InRoom(RoomA, RoomDefenders))
	}
	fifth := addCard(t, g, "Rime Sentinel", Covenant, InHand(Covenant))

	act(t, g, Covenant, Action{Kind: ActionPlayCard, Card: fifth, Target: RoomTarget(RoomA)})
	p := pendingPrompt(t, g, Covenant)
	require.Equal(t, ContextRoomIsFull, p.Context)

	choose(t, g, Covenant, "Return")
	assert.Nil(t, g.PlayCard)
	assert.Equal(t, InHand(Covenant), g.Card(fifth).Position)
	assert.Len(t, g.Defenders(RoomA), MaximumMinionsInRoom)
	assert.Equal(t, StartOfTurnActionCount, g.Player(Covenant).ActionPoints)
}

// TestRoomFullSacrificeOldest: sacrificing the oldest defender makes room
// and the play completes.
func TestRoomFullSacrificeOldest(t *testing.T) {
	g := newTestGame(t)
	var defenders []CardId
	for i := 0; i < MaximumMinionsInRoom; i++ {
		defenders = append(defenders, addCard(t, g, "Ashen Warden", Covenant, InRoom(RoomA, RoomDefenders)))
	}
	fifth := addCard(t, g, "Rime Sentinel", Covenant, InHand(Covenant))

	act(t, g, Covenant, Action{Kind: ActionPlayCard, Card: fifth, Target: RoomTarget(RoomA)})
	choose(t, g, Covenant, "Sacrifice")

	assert.Nil(t, g.PlayCard)
	assert.Equal(t, InDiscardPile(Covenant), g.Card(defenders[0]).Position)
	assert.Equal(t, InRoom(RoomA, RoomDefenders), g.Card(fifth).Position)
	assert.Len(t, g.Defenders(RoomA), MaximumMinionsInRoom)
	assert.Equal(t, StartOfTurnActionCount-1, g.Player(Covenant).ActionPoints)
}

// TestPlayCardRejectsWrongTarget: a minion needs a room; a spell refuses
// one.
func TestPlayCardRejectsWrongTarget(t *testing.T) {
	g := newTestGame(t)
	minion := addCard(t, g, "Rime Sentinel", Covenant, InHand(Covenant))
	spell := addCard(t, g, "Requisition", Covenant, InHand(Covenant))

	err := HandleAction(g, Covenant, Action{Kind: ActionPlayCard, Card: minion, Target: NoTarget()})
	assert.ErrorIs(t, err, ErrIllegalAction)
	err = HandleAction(g, Covenant, Action{Kind: ActionPlayCard, Card: spell, Target: RoomTarget(RoomA)})
	assert.ErrorIs(t, err, ErrIllegalAction)
}
