package game

// RaidStepKind enumerates the raid state machine's steps. The stepper in
// raid_steps.go drains steps until it blocks on a prompt or the raid ends.
type RaidStepKind int

const (
	StepBegin RaidStepKind = iota
	StepGainLeylineMana
	StepRaidStartEvent
	StepNextEncounter
	StepPopulateSummonPrompt
	StepSummonMinion
	StepDoNotSummon
	StepApproachMinion
	StepEncounterMinion
	StepPopulateEncounterPrompt
	StepUseWeapon
	StepMinionDefeated
	StepFireMinionCombatAbility
	StepPopulateApproachPrompt
	StepAccessStart
	StepCheckIfCardAccessPrevented
	StepBuildAccessSet
	StepAccessSetBuilt
	StepRevealAccessedCards
	StepAccessCards
	StepWillPopulateAccessPrompt
	StepPopulateAccessPrompt
	StepStartScoringCard
	StepPayScoringCosts
	StepScoreCard
	StepRiftcallerScoreEvent
	StepScoreEvent
	StepMoveToScoredPosition
	StepStartRazingCard
	StepRazeCard
	StepRazeCardEvent
	StepFinishAccess
	StepFinishRaid
)

// RaidStep is the current step plus the data the step operates on.
type RaidStep struct {
	Kind RaidStepKind `json:"kind"`
	// Minion is the defender for the summon/approach/encounter/combat steps.
	Minion CardId `json:"minion,omitempty"`
	// Weapon is set for StepUseWeapon and StepMinionDefeated.
	Weapon *CardId `json:"weapon,omitempty"`
	// Card is the scheme/project for the scoring and razing steps.
	Card CardId `json:"card,omitempty"`
	// Cost is the raze cost for the razing steps.
	Cost int `json:"cost,omitempty"`
	// Source qualifies StepWillPopulateAccessPrompt.
	Source AccessPromptSource `json:"source,omitempty"`
}

// promptStep reports whether this step yields a prompt rather than
// advancing on its own.
func (s RaidStep) promptStep() bool {
	switch s.Kind {
	case StepPopulateSummonPrompt, StepPopulateEncounterPrompt,
		StepPopulateApproachPrompt, StepPopulateAccessPrompt:
		return true
	}
	return false
}

// RaidJumpRequestKind enumerates the controlled transitions card effects may
// request.
type RaidJumpRequestKind int

const (
	// JumpEncounterMinion restarts the encounter at a specific minion.
	JumpEncounterMinion RaidJumpRequestKind = iota
	// JumpChangeTarget retargets the raid at another room.
	JumpChangeTarget
	// JumpChangeTargetMoveOutermost retargets the raid and moves the
	// current encounter minion to the new room's outermost position.
	JumpChangeTargetMoveOutermost
	// JumpAddAdditionalTargetRoom adds a second room to the access set.
	JumpAddAdditionalTargetRoom
	// JumpEvadeCurrentMinion skips past the current minion.
	JumpEvadeCurrentMinion
	// JumpDefeatCurrentMinion defeats the current minion without a weapon.
	JumpDefeatCurrentMinion
)

// RaidJumpRequest is a pending jump. Only one is honored at a time;
// last-write-wins.
type RaidJumpRequest struct {
	Kind RaidJumpRequestKind `json:"kind"`
	Card CardId              `json:"card,omitempty"`
	Room RoomId              `json:"room,omitempty"`
}

// RaidData is the raid slot of game state: one raid at a time.
type RaidData struct {
	Id        RaidId      `json:"id"`
	Target    RoomId      `json:"target"`
	Initiator InitiatedBy `json:"initiator"`

	Step RaidStep `json:"step"`
	// PopulatedBy holds the step that produced the outstanding prompt, so
	// the stepper can regenerate it if intervening effects changed the
	// legal choice set.
	PopulatedBy *RaidStep `json:"populated_by,omitempty"`

	// EncounterPosition is the sorting key of the defender most recently
	// considered; the next encounter picks the highest-keyed defender
	// strictly below it. Nil before the first encounter.
	EncounterPosition *uint32 `json:"encounter_position,omitempty"`
	// Minion currently being encountered, if any.
	Encounter *CardId `json:"encounter,omitempty"`

	MinionEncounter *MinionEncounterId `json:"minion_encounter,omitempty"`
	Access          *RoomAccessId      `json:"access,omitempty"`

	// AdditionalTargets are extra rooms whose contents join the access set.
	AdditionalTargets []RoomId `json:"additional_targets,omitempty"`

	// Accessed is the set of cards built for the access phase.
	Accessed []CardId `json:"accessed,omitempty"`

	Jump *RaidJumpRequest `json:"jump,omitempty"`

	// CustomAccess marks an access sequence initiated by a card ability
	// rather than a room raid; FinishAccess fires the custom end event
	// instead of the raid access-end event.
	CustomAccess bool `json:"custom_access,omitempty"`
}

// RequestRaidJump records a jump for the stepper to honor before its next
// iteration. Last-write-wins when multiple effects request jumps.
func (g *GameState) RequestRaidJump(req RaidJumpRequest) {
	if g.Raid == nil {
		return
	}
	g.Raid.Jump = &req
}

func (r *RaidData) clone() *RaidData {
	dup := *r
	if r.PopulatedBy != nil {
		s := *r.PopulatedBy
		dup.PopulatedBy = &s
	}
	if r.EncounterPosition != nil {
		k := *r.EncounterPosition
		dup.EncounterPosition = &k
	}
	if r.Encounter != nil {
		id := *r.Encounter
		dup.Encounter = &id
	}
	if r.MinionEncounter != nil {
		id := *r.MinionEncounter
		dup.MinionEncounter = &id
	}
	if r.Access != nil {
		id := *r.Access
		dup.Access = &id
	}
	dup.AdditionalTargets = append([]RoomId(nil), r.AdditionalTargets...)
	dup.Accessed = append([]CardId(nil), r.Accessed...)
	if r.Jump != nil {
		j := *r.Jump
		dup.Jump = &j
	}
	if r.Step.Weapon != nil {
		w := *r.Step.Weapon
		dup.Step.Weapon = &w
	}
	return &dup
}
