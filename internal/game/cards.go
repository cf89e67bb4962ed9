package game

// The base card set. Each constructor returns the static definition for one
// printed card; init wires them into the registry.

func init() {
	Register(map[string]func() *CardDefinition{
		"Covenant Architect": CovenantArchitect,
		"Rime Sentinel":      RimeSentinel,
		"Ashen Warden":       AshenWarden,
		"Gravewhisper Shade": GravewhisperShade,
		"Mirrorveil Keeper":  MirrorveilKeeper,
		"Gold Reserves":      GoldReserves,
		"Hidden Ledger":      HiddenLedger,
		"Mana Crucible":      ManaCrucible,
		"Loyal Forge":        LoyalForge,
		"Arcane Levy":        ArcaneLevy,
		"Requisition":        Requisition,
		"Fortify":            Fortify,
		"Rift Wanderer":      RiftWanderer,
		"Emberblade":         Emberblade,
		"Prism Edge":         PrismEdge,
		"Storm Pike":         StormPike,
		"Veilwisp":           Veilwisp,
		"Grey Pilgrim":       GreyPilgrim,
		"Leyline Conduit":    LeylineConduit,
		"Ember Tap":          EmberTap,
		"Sift":               Sift,
		"Glimpse":            Glimpse,
		"Scavenger's Call":   ScavengersCall,
	})
}

func intptr(n int) *int { return &n }

// CovenantArchitect — Covenant identity.
func CovenantArchitect() *CardDefinition {
	return &CardDefinition{
		Name:     "Covenant Architect",
		CardType: CardTypeIdentity,
		Side:     Covenant,
		School:   SchoolLaw,
		Rarity:   RarityIdentity,
		Cost:     Cost{},
	}
}

// RimeSentinel — Minion, summon 3, 5 health. Combat: end the raid.
func RimeSentinel() *CardDefinition {
	return &CardDefinition{
		Name:      "Rime Sentinel",
		CardType:  CardTypeMinion,
		Side:      Covenant,
		School:    SchoolLaw,
		Rarity:    RarityCommon,
		Cost:      ManaCost(3),
		Resonance: Infernal(),
		Stats:     CardStats{Health: intptr(5)},
		Abilities: []Ability{
			StandardAbility("Combat: End the raid.",
				EventDelegate(OnMinionCombatAbility, ThisCard,
					func(g *GameState, s Scope, data any) error {
						return EndRaid(g, s.InitiatedBy())
					})),
		},
	}
}

// AshenWarden — Minion, summon 2, 3 health, 1 shield. Combat: deal 1 damage
// (2 when upgraded).
func AshenWarden() *CardDefinition {
	return &CardDefinition{
		Name:      "Ashen Warden",
		CardType:  CardTypeMinion,
		Side:      Covenant,
		School:    SchoolLaw,
		Rarity:    RarityCommon,
		Cost:      ManaCost(2),
		Resonance: Mortal(),
		Stats:     CardStats{Health: intptr(3), Shield: intptr(1)},
		Abilities: []Ability{
			StandardAbility("Combat: Deal 1 damage.",
				EventDelegate(OnMinionCombatAbility, ThisCard,
					func(g *GameState, s Scope, data any) error {
						amount := 1
						if s.Upgraded() {
							amount = 2
						}
						return DealDamage(g, s.Ability, amount)
					})),
		},
	}
}

// GravewhisperShade — Minion, summon 1, 2 health. Combat: curse the
// Riftcaller.
func GravewhisperShade() *CardDefinition {
	return &CardDefinition{
		Name:      "Gravewhisper Shade",
		CardType:  CardTypeMinion,
		Side:      Covenant,
		School:    SchoolShadow,
		Rarity:    RarityUncommon,
		Cost:      ManaCost(1),
		Resonance: Astral(),
		Stats:     CardStats{Health: intptr(2)},
		Abilities: []Ability{
			StandardAbility("Combat: Give the Riftcaller a curse.",
				EventDelegate(OnMinionCombatAbility, ThisCard,
					func(g *GameState, s Scope, data any) error {
						return GiveCurses(g, 1)
					})),
		},
	}
}

// MirrorveilKeeper — Minion, summon 2, 4 health. Combat: the raid targets
// the vault instead.
func MirrorveilKeeper() *CardDefinition {
	return &CardDefinition{
		Name:      "Mirrorveil Keeper",
		CardType:  CardTypeMinion,
		Side:      Covenant,
		School:    SchoolShadow,
		Rarity:    RarityRare,
		Cost:      ManaCost(2),
		Resonance: Astral(),
		Stats:     CardStats{Health: intptr(4)},
		Abilities: []Ability{
			StandardAbility("Combat: The raid targets the vault instead.",
				EventDelegate(OnMinionCombatAbility, ThisCard,
					func(g *GameState, s Scope, data any) error {
						if g.Raid == nil || g.Raid.Target == RoomVault {
							return nil
						}
						g.RequestRaidJump(RaidJumpRequest{Kind: JumpChangeTarget, Room: RoomVault})
						return nil
					})),
		},
	}
}

// GoldReserves — Scheme, 3 progress, 15 points.
func GoldReserves() *CardDefinition {
	return &CardDefinition{
		Name:     "Gold Reserves",
		CardType: CardTypeScheme,
		Side:     Covenant,
		School:   SchoolLaw,
		Rarity:   RarityCommon,
		Cost:     Cost{ActionPoints: 1},
		Stats: CardStats{
			SchemePoints: &SchemePoints{ProgressRequirement: 3, Points: 15},
		},
	}
}

// HiddenLedger — Scheme, 2 progress, 10 points.
func HiddenLedger() *CardDefinition {
	return &CardDefinition{
		Name:     "Hidden Ledger",
		CardType: CardTypeScheme,
		Side:     Covenant,
		School:   SchoolShadow,
		Rarity:   RarityCommon,
		Cost:     Cost{ActionPoints: 1},
		Stats: CardStats{
			SchemePoints: &SchemePoints{ProgressRequirement: 2, Points: 10},
		},
	}
}

// ManaCrucible — Project, unveil 1, raze 3. Unveil: store 9 mana. Dusk: take
// 3 stored mana; sacrifice when empty.
func ManaCrucible() *CardDefinition {
	return &CardDefinition{
		Name:     "Mana Crucible",
		CardType: CardTypeProject,
		Side:     Covenant,
		School:   SchoolLaw,
		Rarity:   RarityCommon,
		Cost:     ManaCost(1),
		Stats:    CardStats{RazeCost: intptr(3)},
		Abilities: []Ability{
			StandardAbility("Unveil: Store 9 mana. Dusk: Take 3 stored mana.",
				EventDelegate(OnSummonProject, ThisCard,
					func(g *GameState, s Scope, data any) error {
						return AddStoredMana(g, s.Card(), 9)
					}),
				EventDelegate(OnDusk, FaceUpInPlay,
					func(g *GameState, s Scope, data any) error {
						if _, err := TakeStoredMana(g, s.Card(), 3); err != nil {
							return err
						}
						if g.Card(s.Card()).StoredMana == 0 {
							return SacrificeCard(g, s.Card())
						}
						return nil
					})),
		},
	}
}

// LoyalForge — Project, unveil 2, raze 2. When the Riftcaller scores a
// scheme, gain 2 mana.
func LoyalForge() *CardDefinition {
	return &CardDefinition{
		Name:     "Loyal Forge",
		CardType: CardTypeProject,
		Side:     Covenant,
		School:   SchoolLaw,
		Rarity:   RarityUncommon,
		Cost:     ManaCost(2),
		Stats:    CardStats{RazeCost: intptr(2)},
		Abilities: []Ability{
			StandardAbility("When the Riftcaller scores a scheme, gain 2 mana.",
				EventDelegate(OnRiftcallerScoreCard, FaceUpInPlay,
					func(g *GameState, s Scope, data any) error {
						GainMana(g, Covenant, 2)
						return nil
					})),
		},
	}
}

// ArcaneLevy — Project, unveil 1, raze 2. Sacrifice: gain 3 mana. Usable at
// instant speed during the approach window.
func ArcaneLevy() *CardDefinition {
	return &CardDefinition{
		Name:     "Arcane Levy",
		CardType: CardTypeProject,
		Side:     Covenant,
		School:   SchoolLaw,
		Rarity:   RarityUncommon,
		Cost:     ManaCost(1),
		Stats:    CardStats{RazeCost: intptr(2)},
		Abilities: []Ability{
			ActivatedAbility("Sacrifice: Gain 3 mana.",
				Cost{Custom: &CustomCost{
					Pay: func(g *GameState, id CardId) error {
						return SacrificeCard(g, id)
					},
				}},
				EventDelegate(OnActivateAbility, ThisAbility,
					func(g *GameState, s Scope, data any) error {
						GainMana(g, Covenant, 3)
						return nil
					})),
		},
	}
}

// Requisition — Covenant spell, 1 mana. Draw 2 cards (3 when upgraded).
func Requisition() *CardDefinition {
	return &CardDefinition{
		Name:     "Requisition",
		CardType: CardTypeSpell,
		Side:     Covenant,
		School:   SchoolLaw,
		Rarity:   RarityCommon,
		Cost:     ManaCost(1),
		Abilities: []Ability{
			StandardAbility("Draw 2 cards.",
				EventDelegate(OnPlayCard, ThisCard,
					func(g *GameState, s Scope, data any) error {
						n := 2
						if s.Upgraded() {
							n = 3
						}
						return DrawCards(g, Covenant, n, s.InitiatedBy())
					})),
		},
	}
}

// Fortify — Covenant spell, 1 mana. Choose an outer room: add 1 progress to
// each scheme there.
func Fortify() *CardDefinition {
	return &CardDefinition{
		Name:     "Fortify",
		CardType: CardTypeSpell,
		Side:     Covenant,
		School:   SchoolLaw,
		Rarity:   RarityUncommon,
		Cost:     ManaCost(1),
		Abilities: []Ability{
			{
				Type: AbilityStandard,
				Text: "Choose an outer room: add 1 progress to each scheme there.",
				Delegates: []Delegate{
					EventDelegate(OnPlayCard, ThisCard,
						func(g *GameState, s Scope, data any) error {
							var rooms []RoomId
							for _, room := range OuterRooms {
								for _, occ := range g.Occupants(room) {
									if SchemePointsFor(g, occ.Id) != nil {
										rooms = append(rooms, room)
										break
									}
								}
							}
							if len(rooms) == 0 {
								return nil
							}
							g.Player(Covenant).PushPrompt(GamePrompt{
								Kind:    PromptRoomSelector,
								Context: ContextCardEffect,
								Rooms:   &RoomSelectorPrompt{Initiator: s.Ability, ValidRooms: rooms},
							})
							return nil
						}),
				},
				OnRoomSelected: func(g *GameState, scope Scope, room RoomId) error {
					for _, occ := range g.Occupants(room) {
						if SchemePointsFor(g, occ.Id) == nil {
							continue
						}
						if err := AddProgress(g, occ.Id, 1); err != nil {
							return err
						}
					}
					return nil
				},
			},
		},
	}
}

// RiftWanderer — Riftcaller identity.
func RiftWanderer() *CardDefinition {
	return &CardDefinition{
		Name:     "Rift Wanderer",
		CardType: CardTypeIdentity,
		Side:     Riftcaller,
		School:   SchoolBeyond,
		Rarity:   RarityIdentity,
		Cost:     Cost{},
	}
}

// Emberblade — Weapon artifact, 1 mana. 3 attack, boost: 1 mana for +2.
func Emberblade() *CardDefinition {
	return &CardDefinition{
		Name:      "Emberblade",
		CardType:  CardTypeArtifact,
		Subtypes:  []CardSubtype{SubtypeWeapon},
		Side:      Riftcaller,
		School:    SchoolPrimal,
		Rarity:    RarityCommon,
		Cost:      ManaCost(1),
		Resonance: Infernal(),
		Stats: CardStats{
			BaseAttack:  intptr(3),
			AttackBoost: &AttackBoost{Cost: 1, Bonus: 2},
		},
	}
}

// PrismEdge — Weapon artifact, 4 mana. 2 attack, boost: 1 mana for +1,
// prismatic.
func PrismEdge() *CardDefinition {
	return &CardDefinition{
		Name:      "Prism Edge",
		CardType:  CardTypeArtifact,
		Subtypes:  []CardSubtype{SubtypeWeapon},
		Side:      Riftcaller,
		School:    SchoolBeyond,
		Rarity:    RarityRare,
		Cost:      ManaCost(4),
		Resonance: Prismatic(),
		Stats: CardStats{
			BaseAttack:  intptr(2),
			AttackBoost: &AttackBoost{Cost: 1, Bonus: 1},
		},
	}
}

// StormPike — Weapon artifact, 2 mana. 5 attack, prismatic. Enters play
// with 3 charges; spend a charge each time it is used.
func StormPike() *CardDefinition {
	return &CardDefinition{
		Name:      "Storm Pike",
		CardType:  CardTypeArtifact,
		Subtypes:  []CardSubtype{SubtypeWeapon},
		Side:      Riftcaller,
		School:    SchoolPrimal,
		Rarity:    RarityRare,
		Cost:      ManaCost(2),
		Resonance: Prismatic(),
		Stats: CardStats{
			BaseAttack:      intptr(5),
			PowerChargeCost: 1,
		},
		Abilities: []Ability{
			StandardAbility("Enters play with 3 charges. Spend one per use.",
				EventDelegate(OnEnterArena, ThisCard,
					func(g *GameState, s Scope, data any) error {
						return AddPowerCharges(g, s.Card(), 3)
					})),
		},
	}
}

// Veilwisp — Ally, 2 mana. When you score a scheme, draw a card.
func Veilwisp() *CardDefinition {
	return &CardDefinition{
		Name:     "Veilwisp",
		CardType: CardTypeAlly,
		Side:     Riftcaller,
		School:   SchoolBeyond,
		Rarity:   RarityUncommon,
		Cost:     ManaCost(2),
		Abilities: []Ability{
			StandardAbility("When you score a scheme, draw a card.",
				EventDelegate(OnRiftcallerScoreCard, FaceUpInPlay,
					func(g *GameState, s Scope, data any) error {
						return DrawCards(g, Riftcaller, 1, s.InitiatedBy())
					})),
		},
	}
}

// GreyPilgrim — Evocation, 1 mana. Dawn: gain 1 mana.
func GreyPilgrim() *CardDefinition {
	return &CardDefinition{
		Name:     "Grey Pilgrim",
		CardType: CardTypeEvocation,
		Side:     Riftcaller,
		School:   SchoolPact,
		Rarity:   RarityCommon,
		Cost:     ManaCost(1),
		Abilities: []Ability{
			StandardAbility("Dawn: Gain 1 mana.",
				EventDelegate(OnDawn, FaceUpInPlay,
					func(g *GameState, s Scope, data any) error {
						GainMana(g, Riftcaller, 1)
						return nil
					})),
		},
	}
}

// LeylineConduit — Evocation, 2 mana. Play: gain a leyline.
func LeylineConduit() *CardDefinition {
	return &CardDefinition{
		Name:     "Leyline Conduit",
		CardType: CardTypeEvocation,
		Side:     Riftcaller,
		School:   SchoolPact,
		Rarity:   RarityRare,
		Cost:     ManaCost(2),
		Abilities: []Ability{
			StandardAbility("Play: Gain a leyline.",
				EventDelegate(OnPlayCard, ThisCard,
					func(g *GameState, s Scope, data any) error {
						GiveLeylines(g, 1)
						return nil
					})),
		},
	}
}

// EmberTap — Evocation, 1 mana. Activate for 1 action: gain 2 mana. Usable
// mid-raid while a raid decision is pending.
func EmberTap() *CardDefinition {
	return &CardDefinition{
		Name:     "Ember Tap",
		CardType: CardTypeEvocation,
		Side:     Riftcaller,
		School:   SchoolPrimal,
		Rarity:   RarityCommon,
		Cost:     ManaCost(1),
		Abilities: []Ability{
			ActivatedAbility("Gain 2 mana.",
				Cost{ActionPoints: 1},
				EventDelegate(OnActivateAbility, ThisAbility,
					func(g *GameState, s Scope, data any) error {
						GainMana(g, Riftcaller, 2)
						return nil
					})),
		},
	}
}

// Sift — Riftcaller spell, 1 mana. Draw 2 cards.
func Sift() *CardDefinition {
	return &CardDefinition{
		Name:     "Sift",
		CardType: CardTypeSpell,
		Side:     Riftcaller,
		School:   SchoolBeyond,
		Rarity:   RarityCommon,
		Cost:     ManaCost(1),
		Abilities: []Ability{
			StandardAbility("Draw 2 cards.",
				EventDelegate(OnPlayCard, ThisCard,
					func(g *GameState, s Scope, data any) error {
						return DrawCards(g, Riftcaller, 2, s.InitiatedBy())
					})),
		},
	}
}

// Glimpse — Riftcaller spell, 1 mana. Access the top card of the vault.
func Glimpse() *CardDefinition {
	return &CardDefinition{
		Name:     "Glimpse",
		CardType: CardTypeSpell,
		Side:     Riftcaller,
		School:   SchoolBeyond,
		Rarity:   RarityUncommon,
		Cost:     ManaCost(1),
		Abilities: []Ability{
			StandardAbility("Access the top card of the vault.",
				EventDelegate(OnPlayCard, ThisCard,
					func(g *GameState, s Scope, data any) error {
						top, err := RealizeTopOfDeck(g, Covenant, 1)
						if err != nil {
							return err
						}
						if len(top) == 0 {
							return nil
						}
						return InitiateCustomAccess(g, RoomVault, top, s.InitiatedBy())
					})),
		},
	}
}

// ScavengersCall — Riftcaller spell, 1 mana. Play an artifact from the
// discard pile.
func ScavengersCall() *CardDefinition {
	return &CardDefinition{
		Name:     "Scavenger's Call",
		CardType: CardTypeSpell,
		Side:     Riftcaller,
		School:   SchoolPact,
		Rarity:   RarityRare,
		Cost:     ManaCost(1),
		Abilities: []Ability{
			StandardAbility("You may play an artifact from your discard pile.",
				EventDelegate(OnPlayCard, ThisCard,
					func(g *GameState, s Scope, data any) error {
						var artifacts []CardId
						for _, c := range g.DiscardPile(Riftcaller) {
							if c.Definition().CardType == CardTypeArtifact {
								artifacts = append(artifacts, c.Id)
							}
						}
						if len(artifacts) == 0 {
							return nil
						}
						g.Player(Riftcaller).PushPrompt(GamePrompt{
							Kind:    PromptPlayCardBrowser,
							Context: ContextCardEffect,
							Browser: &PlayCardBrowserPrompt{Initiator: s.Ability, Cards: artifacts},
							Buttons: []PromptChoice{{Label: "Skip"}},
						})
						return nil
					})),
		},
	}
}
