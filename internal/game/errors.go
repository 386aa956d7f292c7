package game

import "errors"

var (
	// ErrNotEnoughPlayers is returned by PlayRound before any state is
	// mutated when fewer than two players are seated.
	ErrNotEnoughPlayers = errors.New("game: at least 2 players required")

	// ErrTooManyPlayers is returned when the deck cannot cover a full deal
	// to the seated player count.
	ErrTooManyPlayers = errors.New("game: too many players for this variant")

	// ErrInsufficientBalance is returned by Player.Bet when the debit
	// exceeds the player's balance. Offered-action sets are built so this
	// is unreachable in normal play; seeing it means a state machine bug.
	ErrInsufficientBalance = errors.New("game: bet exceeds balance")

	// ErrScriptExhausted is returned by ScriptedInput when a test script
	// runs out of queued decisions.
	ErrScriptExhausted = errors.New("game: input script exhausted")
)
