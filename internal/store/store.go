// Package store persists the turn-by-turn history of rounds so that a
// cardroom can be audited or replayed after the fact.
package store

import (
	"github.com/google/uuid"

	"cardroom/internal/pot"
)

// Round summarizes a completed round: which turns made it up, in order, and
// which players took part.
type Round struct {
	ID        uuid.UUID   `json:"id"`
	GameID    uuid.UUID   `json:"game_id"`
	TurnIDs   []uuid.UUID `json:"turn_ids"`
	PlayerIDs []uuid.UUID `json:"player_ids"`
}

// Store receives the history of play as it happens. Implementations must
// tolerate being called once per action at table speed.
type Store interface {
	SaveTurn(turn pot.Turn) error
	SaveRound(round Round) error
}

// Nop discards everything written to it.
type Nop struct{}

func (Nop) SaveTurn(pot.Turn) error { return nil }

func (Nop) SaveRound(Round) error { return nil }
