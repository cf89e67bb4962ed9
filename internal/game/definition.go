package game

// CardVariant names a printed card plus its metadata (upgraded printing).
type CardVariant struct {
	Name     string `json:"name"`
	Upgraded bool   `json:"upgraded,omitempty"`
}

// CardMetadata is the per-variant data exposed to delegates through Scope.
type CardMetadata struct {
	Upgraded bool `json:"upgraded,omitempty"`
}

// CustomCost is an additional cost attached to a definition: a mana cost can
// only express mana. The functions are keyed off the definition, never off
// per-instance state; any context they need is read from the game state at
// pay time.
type CustomCost struct {
	// CanPay reports whether the cost is currently payable.
	CanPay func(g *GameState, id CardId) bool
	// Pay applies the cost.
	Pay func(g *GameState, id CardId) error
}

// Cost describes what a player pays to play a card or activate an ability.
type Cost struct {
	// Mana is nil when the card cannot be played for mana at all (tokens,
	// modifiers); zero is a real cost of zero.
	Mana         *int
	ActionPoints int
	Custom       *CustomCost
}

// ManaCost is a convenience constructor for plain mana costs.
func ManaCost(n int) Cost {
	return Cost{Mana: &n, ActionPoints: 1}
}

// AttackBoost is a weapon's repeatable boost: pay Cost mana, gain Bonus
// attack for the current encounter.
type AttackBoost struct {
	Cost  int `json:"cost"`
	Bonus int `json:"bonus"`
}

// SchemePoints describes how a scheme scores.
type SchemePoints struct {
	// Progress counters required before the Covenant may score the scheme.
	ProgressRequirement int `json:"progress_requirement"`
	// Points awarded to whichever side scores it.
	Points int `json:"points"`
}

// CardStats is the stat block for in-play cards. Zero-valued fields simply
// do not apply to the card type.
type CardStats struct {
	Health       *int
	Shield       *int
	Breach       *int
	RazeCost     *int
	BaseAttack   *int
	AttackBoost  *AttackBoost
	SchemePoints *SchemePoints

	// UseCost is an extra cost a weapon pays each time it is used, on top
	// of shield and boost mana. Unpayable costs remove the weapon from the
	// encounter choices.
	UseCost *CustomCost
	// PowerChargeCost is spent from the weapon's charge counter per use.
	PowerChargeCost int
}

// AbilityType distinguishes passive abilities from ones a player activates.
type AbilityType int

const (
	AbilityStandard AbilityType = iota
	AbilityActivated
)

// TargetRequirement describes what an activated ability or played card must
// be aimed at.
type TargetRequirement int

const (
	TargetNone TargetRequirement = iota
	TargetAnyRoom
	TargetOuterRoom
)

// ActivatedConfig holds the cost and targeting of an activated ability.
type ActivatedConfig struct {
	Cost   Cost
	Target TargetRequirement
}

// Ability is one ability printed on a card: rules text plus the delegates
// that implement it.
type Ability struct {
	Type      AbilityType
	Text      string
	Activated *ActivatedConfig // non-nil iff Type == AbilityActivated
	Delegates []Delegate

	// OnRoomSelected resolves a RoomSelector prompt this ability pushed.
	OnRoomSelected func(g *GameState, scope Scope, room RoomId) error
}

// StandardAbility builds a passive ability from delegates.
func StandardAbility(text string, delegates ...Delegate) Ability {
	return Ability{Type: AbilityStandard, Text: text, Delegates: delegates}
}

// ActivatedAbility builds an ability the player pays to use.
func ActivatedAbility(text string, cost Cost, delegates ...Delegate) Ability {
	return Ability{
		Type:      AbilityActivated,
		Text:      text,
		Activated: &ActivatedConfig{Cost: cost},
		Delegates: delegates,
	}
}

// CardDefinition is the immutable description of a printed card. Definitions
// are registered once at startup and shared by every instance.
type CardDefinition struct {
	Name      string
	Sets      []string
	Cost      Cost
	Image     string
	CardType  CardType
	Subtypes  []CardSubtype
	Side      Side
	School    School
	Rarity    Rarity
	Abilities []Ability
	Stats     CardStats
	Resonance Resonance

	// CustomTargeting restricts the rooms a card may be played into, on top
	// of the defaults implied by its type. Nil means no extra restriction.
	CustomTargeting func(g *GameState, id CardId, room RoomId) bool
}

// IsWeapon reports whether the definition carries the weapon subtype.
func (d *CardDefinition) IsWeapon() bool {
	for _, s := range d.Subtypes {
		if s == SubtypeWeapon {
			return true
		}
	}
	return false
}

// TargetRequirement derives the play-targeting rule from the card type.
func (d *CardDefinition) TargetRequirement() TargetRequirement {
	switch d.CardType {
	case CardTypeMinion:
		return TargetAnyRoom
	case CardTypeScheme, CardTypeProject:
		return TargetOuterRoom
	default:
		return TargetNone
	}
}
