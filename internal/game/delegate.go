package game

// The delegate system is how cards modify default rules. A card's abilities
// declare a flat list of delegates; each delegate subscribes to one event
// kind (mutating the game when it fires) or one query kind (transforming the
// answer as it is folded over all subscribers). There is no inheritance
// hierarchy: the kind tag plus the requirement filter is the whole dispatch
// mechanism.

// DelegateKind tags the trigger point a delegate subscribes to. Kinds
// prefixed On are events; kinds prefixed Query are queries.
type DelegateKind int

const (
	// --- Events ---

	OnDawn DelegateKind = iota // Riftcaller turn starts
	OnDusk                     // Covenant turn starts
	OnMoveCard
	OnDrawCard
	OnDrawCardAction
	OnPlayCard
	OnEnterArena
	OnDiscardCard
	OnMoveToDiscardPile
	OnActivateAbility
	OnSummonProject
	OnSummonMinion
	OnWillPopulateSummonPrompt
	OnCovenantScoreCard
	OnRiftcallerScoreCard
	OnScoreCard
	OnRazeCard
	OnRaidStart
	OnApproachMinion
	OnEncounterMinion
	OnUsedWeapon
	OnMinionDefeated
	OnMinionCombatAbility
	OnEncounterEnd
	OnRaidAccessStart
	OnRaidAccessSelected
	OnWillPopulateAccessPrompt
	OnCardAccess
	OnRaidAccessEnd
	OnCustomAccessEnd
	OnRaidEnd
	OnRaidFailure
	OnRaidSuccess
	OnStoredManaTaken
	OnWillDealDamage
	OnDealtDamage
	OnCursesReceived
	OnCardSacrificed
	OnCardRevealed
	OnManaLostToOpponentAbility

	// --- Queries ---

	QueryCanTakeDrawCardAction
	QueryCanTakeGainManaAction
	QueryCanSpendActionPoint
	QueryCanPlayCard
	QueryCanActivateAbility
	QueryCanInitiateRaid
	QueryCanSummon
	QueryCanEncounterTarget
	QueryCanDefeatTarget
	QueryCanUseNoWeapon
	QueryCanRaidAccessCards
	QueryCanEndRaidAccessPhase
	QueryCanAbilityEndRaid
	QueryCanAbilityDestroyCard
	QueryManaCost
	QueryAbilityManaCost
	QueryActionCost
	QueryBaseAttack
	QueryAttackBoost
	QueryHealthValue
	QueryShieldValue
	QueryBreachValue
	QueryResonance
	QueryRazeCost
	QueryStartOfTurnActions
	QueryVaultAccessCount
	QuerySanctumAccessCount
	QueryMaximumHandSize
	QueryCardStatusMarkers

	delegateKindCount
)

// IsQuery reports whether the kind is a query rather than an event.
func (k DelegateKind) IsQuery() bool {
	return k >= QueryCanTakeDrawCardAction
}

// Scope identifies the ability a delegate belongs to, with card-relative
// helpers so delegate bodies read naturally.
type Scope struct {
	Ability  AbilityId
	Metadata CardMetadata
}

// Card returns the owning card.
func (s Scope) Card() CardId { return s.Ability.Card }

// Side returns the owning side.
func (s Scope) Side() Side { return s.Ability.Card.Side }

// Upgraded reports whether the owning card is the upgraded printing.
func (s Scope) Upgraded() bool { return s.Metadata.Upgraded }

// InitiatedBy wraps the scope's ability as an action initiator.
func (s Scope) InitiatedBy() InitiatedBy { return ByAbility(s.Ability) }

// Requirement filters whether a delegate applies to a given payload. A nil
// requirement means "always".
type Requirement func(g *GameState, s Scope, data any) bool

// EventFn mutates the game in response to an event.
type EventFn func(g *GameState, s Scope, data any) error

// QueryFn transforms a query value. It must not mutate the game.
type QueryFn func(g *GameState, s Scope, data any, value any) any

// Delegate is one subscription: an event mutation or a query transformation,
// behind a requirement filter.
type Delegate struct {
	Kind        DelegateKind
	Requirement Requirement
	Event       EventFn
	Query       QueryFn
}

// EventDelegate builds an event subscription.
func EventDelegate(kind DelegateKind, req Requirement, fn EventFn) Delegate {
	return Delegate{Kind: kind, Requirement: req, Event: fn}
}

// QueryDelegate builds a query interception.
func QueryDelegate(kind DelegateKind, req Requirement, fn QueryFn) Delegate {
	return Delegate{Kind: kind, Requirement: req, Query: fn}
}

// --- Common requirement filters ---

// Always matches every payload.
func Always(*GameState, Scope, any) bool { return true }

// ThisCard matches payloads that are, or wrap, the delegate's own card.
func ThisCard(g *GameState, s Scope, data any) bool {
	id, ok := payloadCard(data)
	return ok && id == s.Card()
}

// ThisAbility matches AbilityId payloads naming the delegate's own ability.
func ThisAbility(g *GameState, s Scope, data any) bool {
	id, ok := data.(AbilityId)
	return ok && id == s.Ability
}

// InPlayRequirement matches while the delegate's card is on the board.
func InPlayRequirement(g *GameState, s Scope, data any) bool {
	c := g.Card(s.Card())
	return c != nil && c.Position.InPlay()
}

// FaceUpInPlay matches while the delegate's card is on the board face-up.
// Most passive abilities of Covenant cards want this: face-down projects and
// minions are dormant.
func FaceUpInPlay(g *GameState, s Scope, data any) bool {
	c := g.Card(s.Card())
	return c != nil && c.Position.InPlay() && c.FaceUp
}

// payloadCard extracts a CardId from the payload shapes that carry one.
func payloadCard(data any) (CardId, bool) {
	switch d := data.(type) {
	case CardId:
		return d, true
	case CardPlayed:
		return d.Card, true
	case SummonEvent:
		return d.Card, true
	case ScoreEvent:
		return d.Card, true
	case RazeEvent:
		return d.Card, true
	case AccessEvent:
		return d.Card, true
	case MoveCardEvent:
		return d.Card, true
	case EncounterEvent:
		return d.Minion, true
	case UsedWeaponEvent:
		return d.Weapon, true
	case MinionDefeatedEvent:
		return d.Defender, true
	case StoredManaEvent:
		return d.Card, true
	default:
		return CardId{}, false
	}
}

// --- Event payloads ---

// TurnEvent accompanies Dawn and Dusk.
type TurnEvent struct {
	Side   Side
	Number int
}

// MoveCardEvent fires on every card move.
type MoveCardEvent struct {
	Card CardId
	From Position
	To   Position
}

// CardPlayed accompanies OnPlayCard.
type CardPlayed struct {
	Card   CardId
	Target PlayTarget
}

// SummonEvent accompanies OnSummonMinion and OnSummonProject.
type SummonEvent struct {
	Card      CardId
	Initiator InitiatedBy
}

// RaidEvent identifies a raid and its target room.
type RaidEvent struct {
	Raid   RaidId
	Target RoomId
}

// EncounterEvent accompanies the approach/encounter events of a raid.
type EncounterEvent struct {
	Raid      RaidId
	Minion    CardId
	Encounter MinionEncounterId
}

// UsedWeaponEvent accompanies OnUsedWeapon.
type UsedWeaponEvent struct {
	Raid   RaidId
	Weapon CardId
	Target CardId
}

// MinionDefeatedEvent accompanies OnMinionDefeated. Weapon is nil when the
// minion was defeated by a card effect rather than a weapon.
type MinionDefeatedEvent struct {
	Weapon   *CardId
	Defender CardId
}

// ScoreEvent accompanies the scoring events.
type ScoreEvent struct {
	Card   CardId
	Side   Side
	Points int
}

// RazeEvent accompanies OnRazeCard.
type RazeEvent struct {
	Card CardId
	Cost int
}

// AccessEvent accompanies OnCardAccess, once per accessed card.
type AccessEvent struct {
	Raid RaidId
	Card CardId
}

// AccessPromptSource tells WillPopulateAccessPrompt delegates why the prompt
// is being built, so effects like "access another card" can inject steps at
// the right points.
type AccessPromptSource int

const (
	AccessPromptInitial AccessPromptSource = iota
	AccessPromptFromScore
	AccessPromptFromRaze
)

// WillPopulateAccessPromptEvent accompanies OnWillPopulateAccessPrompt.
type WillPopulateAccessPromptEvent struct {
	Raid   RaidId
	Source AccessPromptSource
}

// DealDamageEvent accompanies OnWillDealDamage and OnDealtDamage.
type DealDamageEvent struct {
	Source AbilityId
	Amount int
	// Discarded is populated for OnDealtDamage.
	Discarded []CardId
}

// CursesReceivedEvent accompanies OnCursesReceived.
type CursesReceivedEvent struct {
	Quantity int
}

// StoredManaEvent accompanies OnStoredManaTaken.
type StoredManaEvent struct {
	Card   CardId
	Amount int
}

// ManaLostEvent accompanies OnManaLostToOpponentAbility.
type ManaLostEvent struct {
	Side   Side
	Amount int
}

// --- Query payloads ---

// CanDefeatTargetQuery asks whether a weapon may defeat a minion.
type CanDefeatTargetQuery struct {
	Weapon CardId
	Target CardId
}

// StatusMarker is a display badge computed for a card.
type StatusMarker int

const (
	MarkerCanPlay StatusMarker = iota
	MarkerCanSummon
	MarkerCanScore
	MarkerCanRaze
)

func (m StatusMarker) String() string {
	switch m {
	case MarkerCanPlay:
		return "can-play"
	case MarkerCanSummon:
		return "can-summon"
	case MarkerCanScore:
		return "can-score"
	case MarkerCanRaze:
		return "can-raze"
	default:
		return "unknown"
	}
}

// --- Flag ---

// Flag is the three-level boolean used by yes/no queries. The base level
// holds the default answer combined with and/or constraints; an override
// level beats it, and a false override is sticky: "cannot" beats "can".
type Flag struct {
	Value         bool `json:"value"`
	Overridden    bool `json:"overridden,omitempty"`
	OverrideValue bool `json:"override_value,omitempty"`
}

// NewFlag starts a flag at a default answer.
func NewFlag(value bool) Flag {
	return Flag{Value: value}
}

// AddConstraint ands a condition into the default level.
func (f Flag) AddConstraint(value bool) Flag {
	f.Value = f.Value && value
	return f
}

// AddPermission ors a condition into the default level.
func (f Flag) AddPermission(value bool) Flag {
	f.Value = f.Value || value
	return f
}

// Allow overrides the answer to true, unless a Disallow already overrode it
// to false.
func (f Flag) Allow() Flag {
	if f.Overridden && !f.OverrideValue {
		return f
	}
	f.Overridden = true
	f.OverrideValue = true
	return f
}

// Disallow overrides the answer to false. Sticky: nothing un-disallows.
func (f Flag) Disallow() Flag {
	f.Overridden = true
	f.OverrideValue = false
	return f
}

// Bool resolves the flag.
func (f Flag) Bool() bool {
	if f.Overridden {
		return f.OverrideValue
	}
	return f.Value
}
