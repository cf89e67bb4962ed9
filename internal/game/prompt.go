package game

// PromptKind enumerates the pending-decision variants.
type PromptKind int

const (
	PromptButtons PromptKind = iota
	PromptCardSelector
	PromptPlayCardBrowser
	PromptRoomSelector
	// PromptPriority pauses the raid so the Covenant may use instant-speed
	// options before access begins.
	PromptPriority
)

func (k PromptKind) String() string {
	switch k {
	case PromptButtons:
		return "buttons"
	case PromptCardSelector:
		return "card selector"
	case PromptPlayCardBrowser:
		return "play browser"
	case PromptRoomSelector:
		return "room selector"
	case PromptPriority:
		return "priority"
	default:
		return "unknown"
	}
}

// PromptContext tells the display layer why a prompt exists.
type PromptContext string

const (
	ContextSummonDefender  PromptContext = "summon-defender"
	ContextEncounterMinion PromptContext = "encounter-minion"
	ContextRaidAccess      PromptContext = "raid-access"
	ContextProceedToAccess PromptContext = "proceed-to-access"
	ContextRoomIsFull      PromptContext = "room-is-full"
	ContextDiscardToLimit  PromptContext = "discard-to-hand-size"
	ContextCardEffect      PromptContext = "card-effect"
)

// PromptEffectKind enumerates the direct effects a non-raid button choice
// can apply.
type PromptEffectKind int

const (
	EffectNone PromptEffectKind = iota
	EffectMoveCard
	EffectSacrificeCard
	EffectGainMana
	EffectEndRaid
	EffectSummonProject
	EffectActivateAbility
)

// PromptEffect is one effect applied when its button is chosen.
type PromptEffect struct {
	Kind    PromptEffectKind `json:"kind"`
	Card    CardId           `json:"card,omitempty"`
	Ability *AbilityId       `json:"ability,omitempty"`
	Target  Position         `json:"target,omitempty"`
	Amount  int              `json:"amount,omitempty"`
}

// RaidChoiceKind enumerates the decisions the raid stepper can offer.
type RaidChoiceKind int

const (
	RaidChoiceSummon RaidChoiceKind = iota
	RaidChoiceDoNotSummon
	RaidChoiceUseWeapon
	RaidChoiceNoWeapon // proceed unarmed; the minion's combat ability fires
	RaidChoiceProceedToAccess
	RaidChoiceScoreCard
	RaidChoiceRazeCard
	RaidChoiceEndRaid
)

// RaidChoice is the payload a raid button carries back to the stepper.
type RaidChoice struct {
	Kind   RaidChoiceKind `json:"kind"`
	Weapon CardId         `json:"weapon,omitempty"`
	Minion CardId         `json:"minion,omitempty"`
	Card   CardId         `json:"card,omitempty"`
	Cost   int            `json:"cost,omitempty"`
}

// PromptChoice is one button of a ButtonPrompt.
type PromptChoice struct {
	Label      string         `json:"label"`
	AnchorCard *CardId        `json:"anchor_card,omitempty"`
	Effects    []PromptEffect `json:"effects,omitempty"`
	Raid       *RaidChoice    `json:"raid,omitempty"`
}

// SelectorValidation constrains a card selector submission.
type SelectorValidation struct {
	ExactlyCount int `json:"exactly_count"`
}

// SelectorAction is what happens to the chosen cards on submit.
type SelectorAction int

const (
	SelectorDiscard SelectorAction = iota
	SelectorSacrifice
)

// CardSelectorPrompt asks a player to move cards between an unchosen and a
// chosen set until the validation is satisfied.
type CardSelectorPrompt struct {
	Unchosen   []CardId           `json:"unchosen"`
	Chosen     []CardId           `json:"chosen,omitempty"`
	Target     Position           `json:"target"`
	Validation SelectorValidation `json:"validation"`
	Action     SelectorAction     `json:"action"`
}

// PlayCardBrowserPrompt restricts PlayCard actions to a browsed set of
// cards, as produced by abilities like "you may play a card from your
// discard pile".
type PlayCardBrowserPrompt struct {
	Initiator AbilityId `json:"initiator"`
	Cards     []CardId  `json:"cards"`
}

// RoomSelectorPrompt asks the player to pick a room for an ability.
type RoomSelectorPrompt struct {
	Initiator  AbilityId `json:"initiator"`
	ValidRooms []RoomId  `json:"valid_rooms"`
}

// GamePrompt is one pending interactive decision. Exactly one of the
// variant fields matching Kind is populated.
type GamePrompt struct {
	Kind    PromptKind    `json:"kind"`
	Context PromptContext `json:"context,omitempty"`

	Buttons  []PromptChoice         `json:"buttons,omitempty"`
	Selector *CardSelectorPrompt    `json:"selector,omitempty"`
	Browser  *PlayCardBrowserPrompt `json:"browser,omitempty"`
	Rooms    *RoomSelectorPrompt    `json:"rooms,omitempty"`
}

// ButtonPrompt builds a button prompt.
func ButtonPrompt(context PromptContext, choices ...PromptChoice) GamePrompt {
	return GamePrompt{Kind: PromptButtons, Context: context, Buttons: choices}
}

func (p GamePrompt) clone() GamePrompt {
	dup := p
	dup.Buttons = make([]PromptChoice, len(p.Buttons))
	for i, b := range p.Buttons {
		c := b
		if b.AnchorCard != nil {
			id := *b.AnchorCard
			c.AnchorCard = &id
		}
		c.Effects = append([]PromptEffect(nil), b.Effects...)
		for j := range c.Effects {
			if c.Effects[j].Ability != nil {
				id := *c.Effects[j].Ability
				c.Effects[j].Ability = &id
			}
		}
		if b.Raid != nil {
			r := *b.Raid
			c.Raid = &r
		}
		dup.Buttons[i] = c
	}
	if p.Selector != nil {
		s := *p.Selector
		s.Unchosen = append([]CardId(nil), p.Selector.Unchosen...)
		s.Chosen = append([]CardId(nil), p.Selector.Chosen...)
		dup.Selector = &s
	}
	if p.Browser != nil {
		b := *p.Browser
		b.Cards = append([]CardId(nil), p.Browser.Cards...)
		dup.Browser = &b
	}
	if p.Rooms != nil {
		r := *p.Rooms
		r.ValidRooms = append([]RoomId(nil), p.Rooms.ValidRooms...)
		dup.Rooms = &r
	}
	return dup
}
