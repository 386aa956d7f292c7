package pot

import (
	"github.com/google/uuid"

	"cardroom/internal/deck"
)

// Turn records one player action: who acted, in which phase of the round,
// what their hand looked like at the time, and the action itself. Turns are
// append-only; their insertion order is semantically significant (it
// determines who raised last).
type Turn struct {
	RoundID  uuid.UUID   `json:"round_id"`
	TurnID   uuid.UUID   `json:"turn_id"`
	PhaseNum int         `json:"phase_num"`
	PlayerID uuid.UUID   `json:"acting_player_id"`
	Hand     []deck.Card `json:"hand"`
	Action   Action      `json:"action"`
}

// NewTurn builds a turn with a fresh turn id and a copied hand snapshot.
func NewTurn(roundID uuid.UUID, phase int, playerID uuid.UUID, hand []deck.Card, action Action) Turn {
	snapshot := make([]deck.Card, len(hand))
	copy(snapshot, hand)
	return Turn{
		RoundID:  roundID,
		TurnID:   uuid.New(),
		PhaseNum: phase,
		PlayerID: playerID,
		Hand:     snapshot,
		Action:   action,
	}
}
