package game

import (
	"errors"
	"fmt"
)

// Error kinds for fallible operations. Callers classify with errors.Is; the
// wrapped message carries the diagnostic detail.
var (
	// ErrIllegalAction: the action failed a legality predicate.
	ErrIllegalAction = errors.New("illegal action")

	// ErrInsufficientMana / ErrInsufficientActions: resource deficits.
	ErrInsufficientMana    = errors.New("insufficient mana")
	ErrInsufficientActions = errors.New("insufficient action points")

	// ErrInvalidCardState: a card is not in the state an operation requires.
	ErrInvalidCardState = errors.New("invalid card state")

	// ErrMissingEntity: an identifier did not resolve.
	ErrMissingEntity = errors.New("missing entity")

	// ErrPromptMismatch: a response does not match the pending prompt.
	ErrPromptMismatch = errors.New("prompt mismatch")

	// ErrInternal: an engine invariant was violated. Surfaced to diagnostics
	// only, never to players.
	ErrInternal = errors.New("internal error")
)

// UserVisible reports whether an error kind may be surfaced to the user
// interface. Everything else is diagnostics-only.
func UserVisible(err error) bool {
	return errors.Is(err, ErrIllegalAction) ||
		errors.Is(err, ErrInsufficientMana) ||
		errors.Is(err, ErrInsufficientActions) ||
		errors.Is(err, ErrPromptMismatch)
}

// verify returns an ErrInternal-wrapped error when cond is false. Used for
// invariants that should hold by construction; violations are reported as
// errors rather than panics.
func verify(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInternal, fmt.Sprintf(format, args...))
}
