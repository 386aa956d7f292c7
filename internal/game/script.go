package game

import (
	"fmt"

	"github.com/google/uuid"

	"cardroom/internal/deck"
	"cardroom/internal/pot"
)

// ScriptedInput is an Input that plays back queued decisions, replacing a
// human for deterministic tests. Display calls are counted and otherwise
// ignored. Selecting an action that was not offered fails the round, which
// is exactly what a test wants to hear.
type ScriptedInput struct {
	actions  []pot.Kind
	raises   []int
	discards [][]int

	// PotSizes records every ShowPot call, newest last.
	PotSizes []int
	// CommunitySizes records the board size at every ShowCommunity call.
	CommunitySizes []int
	// Winnings holds the payouts passed to the last AnnounceWinners call.
	Winnings map[uuid.UUID]int
}

// NewScriptedInput creates an empty script.
func NewScriptedInput() *ScriptedInput {
	return &ScriptedInput{}
}

// QueueActions appends action choices in the order they will be consumed.
func (s *ScriptedInput) QueueActions(kinds ...pot.Kind) {
	s.actions = append(s.actions, kinds...)
}

// QueueRaises appends raise amounts in the order they will be consumed.
func (s *ScriptedInput) QueueRaises(amounts ...int) {
	s.raises = append(s.raises, amounts...)
}

// QueueDiscards appends card-index selections for the draw phase.
func (s *ScriptedInput) QueueDiscards(indices ...[]int) {
	s.discards = append(s.discards, indices...)
}

// SelectAction pops the next queued action choice.
func (s *ScriptedInput) SelectAction(player *Player, options []pot.Kind) (pot.Kind, error) {
	if len(s.actions) == 0 {
		return 0, fmt.Errorf("%w: no action queued for %s", ErrScriptExhausted, player.Name())
	}
	choice := s.actions[0]
	s.actions = s.actions[1:]

	for _, opt := range options {
		if opt == choice {
			return choice, nil
		}
	}
	return 0, fmt.Errorf("game: scripted action %s not in offered set %v for %s",
		choice, options, player.Name())
}

// RaiseAmount pops the next queued raise amount.
func (s *ScriptedInput) RaiseAmount(player *Player, limit int) (int, error) {
	if len(s.raises) == 0 {
		return 0, fmt.Errorf("%w: no raise amount queued for %s", ErrScriptExhausted, player.Name())
	}
	amount := s.raises[0]
	s.raises = s.raises[1:]
	if amount > limit {
		amount = limit
	}
	return amount, nil
}

// SelectDiscards pops the next queued discard selection and resolves the
// indices against the player's current hand.
func (s *ScriptedInput) SelectDiscards(player *Player) ([]deck.Card, error) {
	if len(s.discards) == 0 {
		return nil, fmt.Errorf("%w: no discard selection queued for %s", ErrScriptExhausted, player.Name())
	}
	indices := s.discards[0]
	s.discards = s.discards[1:]

	held := player.Cards()
	cards := make([]deck.Card, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(held) {
			return nil, fmt.Errorf("game: scripted discard index %d out of range for %s", i, player.Name())
		}
		cards = append(cards, held[i])
	}
	return cards, nil
}

// ShowCurrentPlayer implements Input.
func (s *ScriptedInput) ShowCurrentPlayer(player *Player) {}

// ShowHand implements Input.
func (s *ScriptedInput) ShowHand(player *Player) {}

// ShowCommunity implements Input.
func (s *ScriptedInput) ShowCommunity(cards []deck.Card, player *Player) {
	s.CommunitySizes = append(s.CommunitySizes, len(cards))
}

// ShowUpCards implements Input.
func (s *ScriptedInput) ShowUpCards(others []*Player, viewer *Player) {}

// ShowPot implements Input.
func (s *ScriptedInput) ShowPot(total int) {
	s.PotSizes = append(s.PotSizes, total)
}

// AnnounceWinners implements Input.
func (s *ScriptedInput) AnnounceWinners(winnings map[uuid.UUID]int, players []*Player) {
	s.Winnings = winnings
}
