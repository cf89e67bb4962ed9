package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test-only cards. Registered alongside the base set; names are prefixed to
// keep them out of real deck lists.

// firedOrder records delegate firing order for dispatch tests.
var firedOrder []string

func init() {
	Register(map[string]func() *CardDefinition{
		"Test Echo Chime": func() *CardDefinition {
			return &CardDefinition{
				Name:     "Test Echo Chime",
				CardType: CardTypeProject,
				Side:     Covenant,
				Cost:     ManaCost(0),
				Abilities: []Ability{
					StandardAbility("Dusk: record.",
						EventDelegate(OnDusk, Always,
							func(g *GameState, s Scope, data any) error {
								firedOrder = append(firedOrder, "covenant-"+s.Ability.String())
								return nil
							})),
					StandardAbility("Dusk: record again.",
						EventDelegate(OnDusk, Always,
							func(g *GameState, s Scope, data any) error {
								firedOrder = append(firedOrder, "covenant-"+s.Ability.String())
								return nil
							})),
				},
			}
		},
		"Test Echo Wisp": func() *CardDefinition {
			return &CardDefinition{
				Name:     "Test Echo Wisp",
				CardType: CardTypeAlly,
				Side:     Riftcaller,
				Cost:     ManaCost(0),
				Abilities: []Ability{
					StandardAbility("Dusk: record.",
						EventDelegate(OnDusk, Always,
							func(g *GameState, s Scope, data any) error {
								firedOrder = append(firedOrder, "riftcaller-"+s.Ability.String())
								return nil
							})),
				},
			}
		},
		"Test Ward Sigil": func() *CardDefinition {
			return &CardDefinition{
				Name:     "Test Ward Sigil",
				CardType: CardTypeProject,
				Side:     Covenant,
				Cost:     ManaCost(0),
				Abilities: []Ability{
					StandardAbility("Raids cannot be initiated.",
						QueryDelegate(QueryCanInitiateRaid, FaceUpInPlay,
							func(g *GameState, s Scope, data any, value any) any {
								return value.(Flag).Disallow()
							})),
				},
			}
		},
		"Test Piercer": func() *CardDefinition {
			return &CardDefinition{
				Name:      "Test Piercer",
				CardType:  CardTypeArtifact,
				Subtypes:  []CardSubtype{SubtypeWeapon},
				Side:      Riftcaller,
				Cost:      ManaCost(0),
				Resonance: Prismatic(),
				Stats: CardStats{
					BaseAttack: intptr(5),
					Breach:     intptr(2),
				},
			}
		},
		"Test Dull Blade": func() *CardDefinition {
			return &CardDefinition{
				Name:      "Test Dull Blade",
				CardType:  CardTypeArtifact,
				Subtypes:  []CardSubtype{SubtypeWeapon},
				Side:      Riftcaller,
				Cost:      ManaCost(0),
				Resonance: Prismatic(),
				Stats:     CardStats{BaseAttack: intptr(1)},
			}
		},
		// Combat: the encounter jumps to the vault's outermost defender.
		"Test Warp Horn": func() *CardDefinition {
			return &CardDefinition{
				Name:      "Test Warp Horn",
				CardType:  CardTypeMinion,
				Side:      Covenant,
				Cost:      ManaCost(0),
				Resonance: Mortal(),
				Stats:     CardStats{Health: intptr(2)},
				Abilities: []Ability{
					StandardAbility("Combat: Encounter the vault's outermost defender.",
						EventDelegate(OnMinionCombatAbility, ThisCard,
							func(g *GameState, s Scope, data any) error {
								defenders := g.Defenders(RoomVault)
								if len(defenders) == 0 {
									return nil
								}
								g.RequestRaidJump(RaidJumpRequest{
									Kind: JumpEncounterMinion,
									Card: defenders[len(defenders)-1].Id,
								})
								return nil
							})),
				},
			}
		},
		// When encountered outside the vault, falls back to defend it and
		// drags the raid along.
		"Test Herd Warden": func() *CardDefinition {
			return &CardDefinition{
				Name:      "Test Herd Warden",
				CardType:  CardTypeMinion,
				Side:      Covenant,
				Cost:      ManaCost(0),
				Resonance: Mortal(),
				Stats:     CardStats{Health: intptr(3)},
				Abilities: []Ability{
					StandardAbility("When encountered outside the vault, retreat there.",
						EventDelegate(OnEncounterMinion, ThisCard,
							func(g *GameState, s Scope, data any) error {
								if g.Card(s.Card()).Position.Room == RoomVault {
									return nil
								}
								g.RequestRaidJump(RaidJumpRequest{
									Kind: JumpChangeTargetMoveOutermost,
									Room: RoomVault,
								})
								return nil
							})),
				},
			}
		},
		"Test Twin Paths": func() *CardDefinition {
			return &CardDefinition{
				Name:     "Test Twin Paths",
				CardType: CardTypeEvocation,
				Side:     Riftcaller,
				Cost:     ManaCost(0),
				Abilities: []Ability{
					ActivatedAbility("This raid also accesses the crypt.",
						Cost{},
						EventDelegate(OnActivateAbility, ThisAbility,
							func(g *GameState, s Scope, data any) error {
								if g.Raid == nil {
									return nil
								}
								g.RequestRaidJump(RaidJumpRequest{
									Kind: JumpAddAdditionalTargetRoom,
									Room: RoomCrypt,
								})
								return nil
							})),
				},
			}
		},
		"Test Mist Charm": func() *CardDefinition {
			return &CardDefinition{
				Name:     "Test Mist Charm",
				CardType: CardTypeEvocation,
				Side:     Riftcaller,
				Cost:     ManaCost(0),
				Abilities: []Ability{
					ActivatedAbility("Evade the encountered minion.",
						Cost{},
						EventDelegate(OnActivateAbility, ThisAbility,
							func(g *GameState, s Scope, data any) error {
								if g.Raid == nil || g.Raid.Encounter == nil {
									return nil
								}
								g.RequestRaidJump(RaidJumpRequest{Kind: JumpEvadeCurrentMinion})
								return nil
							})),
				},
			}
		},
		"Test Sunder Charm": func() *CardDefinition {
			return &CardDefinition{
				Name:     "Test Sunder Charm",
				CardType: CardTypeEvocation,
				Side:     Riftcaller,
				Cost:     ManaCost(0),
				Abilities: []Ability{
					ActivatedAbility("Defeat the encountered minion.",
						Cost{},
						EventDelegate(OnActivateAbility, ThisAbility,
							func(g *GameState, s Scope, data any) error {
								if g.Raid == nil || g.Raid.Encounter == nil {
									return nil
								}
								g.RequestRaidJump(RaidJumpRequest{Kind: JumpDefeatCurrentMinion})
								return nil
							})),
				},
			}
		},
		// Blocks card access outright; pays out when the access phase still
		// closes, so tests can observe end-of-access delegates firing.
		"Test Seal of Silence": func() *CardDefinition {
			return &CardDefinition{
				Name:     "Test Seal of Silence",
				CardType: CardTypeProject,
				Side:     Covenant,
				Cost:     ManaCost(0),
				Abilities: []Ability{
					StandardAbility("Raids cannot access cards.",
						QueryDelegate(QueryCanRaidAccessCards, FaceUpInPlay,
							func(g *GameState, s Scope, data any, value any) any {
								return value.(Flag).Disallow()
							})),
					StandardAbility("When a raid's access phase ends, gain 1 mana.",
						EventDelegate(OnRaidAccessEnd, FaceUpInPlay,
							func(g *GameState, s Scope, data any) error {
								GainMana(g, Covenant, 1)
								return nil
							})),
				},
			}
		},
		"Test Tithe Blade": func() *CardDefinition {
			return &CardDefinition{
				Name:      "Test Tithe Blade",
				CardType:  CardTypeArtifact,
				Subtypes:  []CardSubtype{SubtypeWeapon},
				Side:      Riftcaller,
				Cost:      ManaCost(0),
				Resonance: Prismatic(),
				Stats: CardStats{
					BaseAttack: intptr(5),
					UseCost: &CustomCost{
						CanPay: func(g *GameState, id CardId) bool {
							return ManaAvailable(g, Riftcaller, PayForWeapon) >= 2
						},
						Pay: func(g *GameState, id CardId) error {
							return SpendMana(g, Riftcaller, PayForWeapon, 2)
						},
					},
				},
			}
		},
	})
}

// newTestGame builds a minimal live game: Play phase, Covenant turn 1, both
// sides at starting mana with a full allotment of actions, no cards.
func newTestGame(t *testing.T) *GameState {
	t.Helper()
	g := &GameState{
		Id: NewGameId(),
		Info: GameInfo{
			Phase:     PhasePlay,
			Turn:      TurnData{Side: Covenant, Number: 1},
			TurnState: TurnActive,
			Config:    GameConfig{Deterministic: true, Seed: 7},
		},
		Players: [2]*PlayerState{
			{Side: Covenant},
			{Side: Riftcaller},
		},
		Rng: NewXoshiro(7),
	}
	for _, side := range []Side{Covenant, Riftcaller} {
		g.Player(side).Mana.Base = StartingMana
		g.Player(side).ActionPoints = StartOfTurnActionCount
	}
	return g
}

// setTurn hands the turn to a side with a fresh allotment of actions.
func setTurn(g *GameState, side Side) {
	g.Info.Turn.Side = side
	g.Info.TurnState = TurnActive
	g.Player(side).ActionPoints = StartOfTurnActionCount
}

// addCard mints a card at a position.
func addCard(t *testing.T, g *GameState, name string, owner Side, pos Position) CardId {
	t.Helper()
	id, err := CreateAndAddCard(g, CardVariant{Name: name}, owner, pos)
	require.NoError(t, err)
	return id
}

// addFaceUp mints a card at a position and flips it face-up.
func addFaceUp(t *testing.T, g *GameState, name string, owner Side, pos Position) CardId {
	t.Helper()
	id := addCard(t, g, name, owner, pos)
	require.NoError(t, TurnFaceUp(g, id))
	return id
}

// act runs an action that must succeed.
func act(t *testing.T, g *GameState, side Side, action Action) {
	t.Helper()
	require.NoError(t, HandleAction(g, side, action))
}

// pendingPrompt returns the side's oldest prompt, failing if none exists.
func pendingPrompt(t *testing.T, g *GameState, side Side) *GamePrompt {
	t.Helper()
	p := g.Player(side).Prompt()
	require.NotNil(t, p, "%v has no pending prompt", side)
	return p
}

// choose answers the side's button prompt by label substring.
func choose(t *testing.T, g *GameState, side Side, substr string) {
	t.Helper()
	p := pendingPrompt(t, g, side)
	for i, b := range p.Buttons {
		if strings.Contains(b.Label, substr) {
			act(t, g, side, Action{Kind: ActionPromptChoice, ChoiceIndex: i})
			return
		}
	}
	t.Fatalf("no button matching %q in %v", substr, labels(p))
}

func labels(p *GamePrompt) []string {
	out := make([]string, len(p.Buttons))
	for i, b := range p.Buttons {
		out[i] = b.Label
	}
	return out
}

// testDecks builds a pair of small legal deck lists from the base set.
func testDecks() (*Deck, *Deck) {
	covenant := &Deck{
		Side:     Covenant,
		Identity: "Covenant Architect",
		Cards: []DeckEntry{
			{Name: "Rime Sentinel", Count: 3},
			{Name: "Ashen Warden", Count: 3},
			{Name: "Gold Reserves", Count: 3},
			{Name: "Hidden Ledger", Count: 3},
			{Name: "Requisition", Count: 3},
		},
	}
	riftcaller := &Deck{
		Side:     Riftcaller,
		Identity: "Rift Wanderer",
		Cards: []DeckEntry{
			{Name: "Emberblade", Count: 3},
			{Name: "Prism Edge", Count: 3},
			{Name: "Veilwisp", Count: 3},
			{Name: "Grey Pilgrim", Count: 3},
			{Name: "Sift", Count: 3},
		},
	}
	return covenant, riftcaller
}
