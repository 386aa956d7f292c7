package pot

import (
	"encoding/json"
	"fmt"

	"cardroom/internal/deck"
)

// Kind identifies a player action. Money-bearing kinds (Ante, Bet, Raise,
// AllIn) always carry the player's total stake for the round so far, never a
// delta: if the call amount is 2 and a player raises by 5, the recorded
// action is Raise with Amount 7. Win and Lose are bookkeeping entries
// appended after the pot has been divided.
type Kind int

const (
	Ante Kind = iota
	Call
	Bet
	Raise
	Check
	AllIn
	Fold
	Replace
	Win
	Lose
)

var kindNames = map[Kind]string{
	Ante:    "ante",
	Call:    "call",
	Bet:     "bet",
	Raise:   "raise",
	Check:   "check",
	AllIn:   "all_in",
	Fold:    "fold",
	Replace: "replace",
	Win:     "win",
	Lose:    "lose",
}

// String returns the string representation of an action kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Stakes reports whether the kind carries a cumulative stake total.
func (k Kind) Stakes() bool {
	switch k {
	case Ante, Bet, Raise, AllIn:
		return true
	default:
		return false
	}
}

// MarshalJSON encodes the kind by name.
func (k Kind) MarshalJSON() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("pot: unknown action kind %d", int(k))
	}
	return json.Marshal(name)
}

// UnmarshalJSON decodes a kind from its name.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for kind, n := range kindNames {
		if n == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("pot: unknown action kind %q", name)
}

// Action is one tagged player action. Amount is meaningful for the
// money-bearing kinds plus Win and Lose; Cards is meaningful for Replace.
type Action struct {
	Kind   Kind        `json:"kind"`
	Amount int         `json:"amount,omitempty"`
	Cards  []deck.Card `json:"cards,omitempty"`
}

// String returns a description like "raise(7)"
func (a Action) String() string {
	if a.Kind.Stakes() || a.Kind == Win || a.Kind == Lose {
		return fmt.Sprintf("%s(%d)", a.Kind, a.Amount)
	}
	if a.Kind == Replace {
		return fmt.Sprintf("%s(%d cards)", a.Kind, len(a.Cards))
	}
	return a.Kind.String()
}
