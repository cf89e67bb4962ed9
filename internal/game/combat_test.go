package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCostToDefeatPricing: shield mana is shield minus breach, floored at
// zero; boosts cover the health deficit rounded up. A weapon without a
// matching resonance, or without a boost to close the gap, prices to nil.
func TestCostToDefeatPricing(t *testing.T) {
	cases := []struct {
		name   string
		weapon string
		minion string
		want   *CostToDefeat
	}{
		{
			// Base 3 against 5 health, boost +2 for 1: one boost.
			name: "boost to close deficit", weapon: "Emberblade", minion: "Rime Sentinel",
			want: &CostToDefeat{Mana: 1, Boosts: 1},
		},
		{
			// Infernal cannot touch a mortal minion.
			name: "resonance mismatch", weapon: "Emberblade", minion: "Ashen Warden",
			want: nil,
		},
		{
			// Base 2 against 5 health, boost +1 for 1: three boosts.
			name: "prismatic beats any resonance", weapon: "Prism Edge", minion: "Rime Sentinel",
			want: &CostToDefeat{Mana: 3, Boosts: 3},
		},
		{
			// One shield mana plus one boost.
			name: "shield adds mana", weapon: "Prism Edge", minion: "Ashen Warden",
			want: &CostToDefeat{Mana: 2, Boosts: 1},
		},
		{
			// Breach 2 swallows the shield; base 5 already meets 3 health.
			name: "breach bypasses shield", weapon: "Test Piercer", minion: "Ashen Warden",
			want: &CostToDefeat{Mana: 0, Boosts: 0},
		},
		{
			// Base 1 against 2 health with no boost ability.
			name: "no boost no price", weapon: "Test Dull Blade", minion: "Gravewhisper Shade",
			want: nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			weapon := addFaceUp(t, g, tc.weapon, Riftcaller, InItem(ItemArtifacts))
			minion := addFaceUp(t, g, tc.minion, Covenant, InRoom(RoomVault, RoomDefenders))

			got := costToDefeatTarget(g, weapon, minion)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.want.Mana, got.Mana)
			assert.Equal(t, tc.want.Boosts, got.Boosts)
		})
	}
}

// TestWeaponOptionsCheapestFirst: options sort by total mana and drop
// anything the Riftcaller cannot afford right now.
func TestWeaponOptionsCheapestFirst(t *testing.T) {
	g := newTestGame(t)
	prism := addFaceUp(t, g, "Prism Edge", Riftcaller, InItem(ItemArtifacts))
	ember := addFaceUp(t, g, "Emberblade", Riftcaller, InItem(ItemArtifacts))
	minion := addFaceUp(t, g, "Rime Sentinel", Covenant, InRoom(RoomVault, RoomDefenders))

	opts := weaponOptions(g, minion)
	require.Len(t, opts, 2)
	assert.Equal(t, ember, opts[0].Weapon)
	assert.Equal(t, 1, opts[0].Mana)
	assert.Equal(t, prism, opts[1].Weapon)
	assert.Equal(t, 3, opts[1].Mana)

	// With two mana the boosted Prism Edge line is out of reach.
	g.Player(Riftcaller).Mana.Base = 2
	opts = weaponOptions(g, minion)
	require.Len(t, opts, 1)
	assert.Equal(t, ember, opts[0].Weapon)
}

// TestCostToDefeatRequiresCharges: a weapon with a per-use charge cost is
// priced out until it holds enough charges.
func TestCostToDefeatRequiresCharges(t *testing.T) {
	g := newTestGame(t)
	pike := addFaceUp(t, g, "Storm Pike", Riftcaller, InItem(ItemArtifacts))
	minion := addFaceUp(t, g, "Rime Sentinel", Covenant, InRoom(RoomVault, RoomDefenders))

	assert.Nil(t, costToDefeatTarget(g, pike, minion))

	require.NoError(t, AddPowerCharges(g, pike, 1))
	got := costToDefeatTarget(g, pike, minion)
	require.NotNil(t, got)
	assert.Equal(t, 0, got.Mana)
	assert.Equal(t, 0, got.Boosts)
}

// TestCostToDefeatCustomUseCost: an unpayable use cost removes the weapon
// from contention; a payable one is charged on use.
func TestCostToDefeatCustomUseCost(t *testing.T) {
	g := newTestGame(t)
	blade := addFaceUp(t, g, "Test Tithe Blade", Riftcaller, InItem(ItemArtifacts))
	minion := addFaceUp(t, g, "Rime Sentinel", Covenant, InRoom(RoomVault, RoomDefenders))

	g.Player(Riftcaller).Mana.Base = 1
	assert.Nil(t, costToDefeatTarget(g, blade, minion))

	g.Player(Riftcaller).Mana.Base = 5
	require.NotNil(t, costToDefeatTarget(g, blade, minion))
	require.NoError(t, UseWeapon(g, &RaidData{Target: RoomVault},
		RaidChoice{Kind: RaidChoiceUseWeapon, Weapon: blade, Minion: minion}))
	// Two mana gone: the use cost on top of free shield/boost math.
	assert.Equal(t, 3, g.Player(Riftcaller).Mana.Base)
}

// TestUseWeaponSpendsCharge: playing Storm Pike grants its charges; each
// defeat drains one.
func TestUseWeaponSpendsCharge(t *testing.T) {
	g := newTestGame(t)
	setTurn(g, Riftcaller)
	pike := addCard(t, g, "Storm Pike", Riftcaller, InHand(Riftcaller))
	minion := addFaceUp(t, g, "Ashen Warden", Covenant, InRoom(RoomVault, RoomDefenders))
	addCard(t, g, "Hidden Ledger", Covenant, InDeckUnknown(Covenant))

	act(t, g, Riftcaller, Action{Kind: ActionPlayCard, Card: pike, Target: NoTarget()})
	require.Equal(t, 3, g.Card(pike).PowerCharges)

	act(t, g, Riftcaller, Action{Kind: ActionInitiateRaid, Room: RoomVault})
	choose(t, g, Riftcaller, "Storm Pike")
	assert.Equal(t, 2, g.Card(pike).PowerCharges)
	assert.Equal(t, InDiscardPile(Covenant), g.Card(minion).Position)
}

// TestUseWeaponBoostCountTransient: the boost counter is visible to
// delegates during the combat events and reset afterwards.
func TestUseWeaponBoostCountTransient(t *testing.T) {
	g := newTestGame(t)
	setTurn(g, Riftcaller)
	weapon := addFaceUp(t, g, "Emberblade", Riftcaller, InItem(ItemArtifacts))
	minion := addFaceUp(t, g, "Rime Sentinel", Covenant, InRoom(RoomVault, RoomDefenders))
	addCard(t, g, "Hidden Ledger", Covenant, InDeckUnknown(Covenant))

	act(t, g, Riftcaller, Action{Kind: ActionInitiateRaid, Room: RoomVault})
	choose(t, g, Riftcaller, "Emberblade")

	assert.Equal(t, 0, g.Card(weapon).BoostCount)
	assert.Equal(t, InDiscardPile(Covenant), g.Card(minion).Position)
	assert.Equal(t, 1, g.CountThisTurn(HistoryUsedWeapon))
}
