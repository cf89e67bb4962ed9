package game

// PlayerId is the persistent identity of a player, assigned outside the
// engine.
type PlayerId string

// ManaState is a side's mana: the base pool plus an optional bonus pool that
// only exists for the duration of the current raid (leylines and similar
// effects pay into it).
type ManaState struct {
	Base int `json:"base"`
	// RaidSpecific is spendable only on raid purposes while a raid is live;
	// it evaporates when the raid ends.
	RaidSpecific int `json:"raid_specific,omitempty"`
}

// PlayerState is everything one side owns besides its cards.
type PlayerState struct {
	Id      PlayerId `json:"id,omitempty"`
	Side    Side     `json:"side"`
	Schools []School `json:"schools,omitempty"`

	Mana         ManaState `json:"mana"`
	ActionPoints int       `json:"action_points"`
	Score        int       `json:"score"`

	// Prompts is the FIFO of pending interactive decisions. Index 0 is the
	// oldest and blocks all action resolution until resolved.
	Prompts []GamePrompt `json:"prompts,omitempty"`

	Curses   int `json:"curses,omitempty"`
	Wounds   int `json:"wounds,omitempty"`
	Leylines int `json:"leylines,omitempty"`

	// Mulligan is this side's opening-hand decision, nil until made.
	Mulligan *MulliganDecision `json:"mulligan,omitempty"`
}

// Prompt returns the oldest pending prompt, or nil.
func (p *PlayerState) Prompt() *GamePrompt {
	if len(p.Prompts) == 0 {
		return nil
	}
	return &p.Prompts[0]
}

// PushPrompt queues a pending decision.
func (p *PlayerState) PushPrompt(prompt GamePrompt) {
	p.Prompts = append(p.Prompts, prompt)
}

// PopPrompt removes the oldest pending decision.
func (p *PlayerState) PopPrompt() {
	if len(p.Prompts) > 0 {
		p.Prompts = p.Prompts[1:]
	}
}

// clone deep-copies the player state.
func (p *PlayerState) clone() *PlayerState {
	dup := *p
	dup.Schools = append([]School(nil), p.Schools...)
	dup.Prompts = make([]GamePrompt, len(p.Prompts))
	for i := range p.Prompts {
		dup.Prompts[i] = p.Prompts[i].clone()
	}
	if p.Mulligan != nil {
		m := *p.Mulligan
		dup.Mulligan = &m
	}
	return &dup
}
