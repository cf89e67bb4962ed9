package game

// --- Rooms ---

// RoomId identifies one of the Covenant's rooms. The three inner rooms map
// onto the Covenant's deck, hand and discard pile; the five outer rooms hold
// schemes and projects.
type RoomId int

const (
	RoomVault RoomId = iota // deck room
	RoomSanctum             // hand room
	RoomCrypt               // discard room
	RoomA
	RoomB
	RoomC
	RoomD
	RoomE
)

func (r RoomId) String() string {
	switch r {
	case RoomVault:
		return "Vault"
	case RoomSanctum:
		return "Sanctum"
	case RoomCrypt:
		return "Crypt"
	case RoomA:
		return "Room A"
	case RoomB:
		return "Room B"
	case RoomC:
		return "Room C"
	case RoomD:
		return "Room D"
	case RoomE:
		return "Room E"
	default:
		return "Unknown"
	}
}

// IsInner reports whether this is one of the three inner rooms.
func (r RoomId) IsInner() bool {
	return r == RoomVault || r == RoomSanctum || r == RoomCrypt
}

// IsOuter reports whether this room may hold occupants.
func (r RoomId) IsOuter() bool {
	return !r.IsInner()
}

// AllRooms lists every room.
var AllRooms = []RoomId{RoomVault, RoomSanctum, RoomCrypt, RoomA, RoomB, RoomC, RoomD, RoomE}

// OuterRooms lists the rooms that may hold occupants.
var OuterRooms = []RoomId{RoomA, RoomB, RoomC, RoomD, RoomE}

// RoomLocation distinguishes the two slots of a room.
type RoomLocation int

const (
	RoomDefenders RoomLocation = iota
	RoomOccupants
)

func (l RoomLocation) String() string {
	if l == RoomDefenders {
		return "defenders"
	}
	return "occupants"
}

// ItemLocation distinguishes the Riftcaller's arena columns.
type ItemLocation int

const (
	ItemArtifacts ItemLocation = iota
	ItemEvocations
	ItemAllies
)

func (l ItemLocation) String() string {
	switch l {
	case ItemArtifacts:
		return "artifacts"
	case ItemEvocations:
		return "evocations"
	default:
		return "allies"
	}
}

// --- Positions ---

// PositionKind enumerates the semantic card-position space.
type PositionKind int

const (
	PositionDeckUnknown PositionKind = iota // shuffled portion of a deck
	PositionDeckTop                         // known, ordered top of a deck
	PositionHand
	PositionRoom
	PositionItem // Riftcaller arena column
	PositionDiscardPile
	PositionScored
	PositionIdentity // identity (riftcaller) cards
	PositionScoring  // transient, while a score animation plays
	PositionPlayed   // transient, while a play-card resolves
	PositionGameModifier
)

func (k PositionKind) String() string {
	switch k {
	case PositionDeckUnknown:
		return "deck"
	case PositionDeckTop:
		return "deck top"
	case PositionHand:
		return "hand"
	case PositionRoom:
		return "room"
	case PositionItem:
		return "arena"
	case PositionDiscardPile:
		return "discard pile"
	case PositionScored:
		return "scored"
	case PositionIdentity:
		return "identity zone"
	case PositionScoring:
		return "scoring"
	case PositionPlayed:
		return "played"
	case PositionGameModifier:
		return "game modifier"
	default:
		return "unknown"
	}
}

// Position is a card's current location. It is a flat comparable value so
// that game state stays a plain cloneable struct; the fields beyond Kind are
// meaningful only for the kinds that use them.
type Position struct {
	Kind     PositionKind `json:"kind"`
	Side     Side         `json:"side,omitempty"`
	Room     RoomId       `json:"room,omitempty"`
	Location RoomLocation `json:"location,omitempty"`
	Item     ItemLocation `json:"item,omitempty"`
}

// InDeck positions.
func InDeckUnknown(side Side) Position {
	return Position{Kind: PositionDeckUnknown, Side: side}
}

func InDeckTop(side Side) Position {
	return Position{Kind: PositionDeckTop, Side: side}
}

func InHand(side Side) Position {
	return Position{Kind: PositionHand, Side: side}
}

func InRoom(room RoomId, location RoomLocation) Position {
	return Position{Kind: PositionRoom, Room: room, Location: location}
}

func InItem(item ItemLocation) Position {
	return Position{Kind: PositionItem, Side: Riftcaller, Item: item}
}

func InDiscardPile(side Side) Position {
	return Position{Kind: PositionDiscardPile, Side: side}
}

func InScored(side Side) Position {
	return Position{Kind: PositionScored, Side: side}
}

func InIdentityZone(side Side) Position {
	return Position{Kind: PositionIdentity, Side: side}
}

func InScoring(side Side) Position {
	return Position{Kind: PositionScoring, Side: side}
}

func InPlayed(side Side) Position {
	return Position{Kind: PositionPlayed, Side: side}
}

func InGameModifierZone() Position {
	return Position{Kind: PositionGameModifier}
}

// InPlay reports whether a card at this position is on the board: a room
// slot or an arena column.
func (p Position) InPlay() bool {
	return p.Kind == PositionRoom || p.Kind == PositionItem
}

// InDeck reports whether the position is either portion of a deck.
func (p Position) InDeck() bool {
	return p.Kind == PositionDeckUnknown || p.Kind == PositionDeckTop
}

// --- Card kinds ---

// CardType is the broad card classification that drives play destinations.
type CardType int

const (
	CardTypeSpell CardType = iota
	CardTypeMinion
	CardTypeScheme
	CardTypeProject
	CardTypeArtifact
	CardTypeEvocation
	CardTypeAlly
	CardTypeIdentity
	CardTypeGameModifier
)

func (t CardType) String() string {
	switch t {
	case CardTypeSpell:
		return "Spell"
	case CardTypeMinion:
		return "Minion"
	case CardTypeScheme:
		return "Scheme"
	case CardTypeProject:
		return "Project"
	case CardTypeArtifact:
		return "Artifact"
	case CardTypeEvocation:
		return "Evocation"
	case CardTypeAlly:
		return "Ally"
	case CardTypeIdentity:
		return "Identity"
	case CardTypeGameModifier:
		return "Game Modifier"
	default:
		return "Unknown"
	}
}

// CardSubtype is a free-form tag on a definition ("Weapon", "Duskbound"...).
// Weapons are the subtype the combat rules care about.
type CardSubtype string

const SubtypeWeapon CardSubtype = "Weapon"

// School is a deck affinity.
type School int

const (
	SchoolLaw School = iota
	SchoolShadow
	SchoolPrimal
	SchoolBeyond
	SchoolPact
	SchoolNeutral
)

func (s School) String() string {
	switch s {
	case SchoolLaw:
		return "Law"
	case SchoolShadow:
		return "Shadow"
	case SchoolPrimal:
		return "Primal"
	case SchoolBeyond:
		return "Beyond"
	case SchoolPact:
		return "Pact"
	default:
		return "Neutral"
	}
}

// Rarity of a printed card.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityIdentity
	RarityNone
)

// Resonance is the damage-type tag on weapons and minions. A weapon must
// share a resonance with the minion it attacks, or be prismatic.
type Resonance struct {
	Mortal    bool `json:"mortal,omitempty"`
	Infernal  bool `json:"infernal,omitempty"`
	Astral    bool `json:"astral,omitempty"`
	Prismatic bool `json:"prismatic,omitempty"`
}

// CanDefeat reports whether a weapon with resonance w can defeat a minion
// with resonance m.
func (w Resonance) CanDefeat(m Resonance) bool {
	if w.Prismatic {
		return true
	}
	return (w.Mortal && m.Mortal) || (w.Infernal && m.Infernal) || (w.Astral && m.Astral)
}

func Mortal() Resonance    { return Resonance{Mortal: true} }
func Infernal() Resonance  { return Resonance{Infernal: true} }
func Astral() Resonance    { return Resonance{Astral: true} }
func Prismatic() Resonance { return Resonance{Prismatic: true} }

// --- Game phases ---

// GamePhase is the top-level phase of the game.
type GamePhase int

const (
	PhaseResolveMulligans GamePhase = iota
	PhasePlay
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseResolveMulligans:
		return "Resolve Mulligans"
	case PhasePlay:
		return "Play"
	case PhaseGameOver:
		return "Game Over"
	default:
		return "Unknown"
	}
}

// TurnState tracks whether the current turn is live or has been ended and is
// waiting for the next turn to begin.
type TurnState int

const (
	TurnActive TurnState = iota
	TurnEnded
)

// TurnData names the active turn.
type TurnData struct {
	Side   Side `json:"side"`
	Number int  `json:"number"`
}

// MulliganDecision records one side's opening-hand choice.
type MulliganDecision int

const (
	MulliganKeep MulliganDecision = iota
	MulliganTakeNew
)
