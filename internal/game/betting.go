package game

import (
	"fmt"
	"math"

	"cardroom/internal/pot"
)

// bettingRound runs one circuit of action collection starting at the given
// seat. The circuit closes when action returns to the last aggressor with
// every surviving stake matched, or when folds leave one player standing.
// Folded and broke players are still visited but never prompted.
func (t *table) bettingRound(start, raiseLimit int) error {
	if t.activeCount() <= 1 {
		return nil
	}
	if raiseLimit <= 0 {
		raiseLimit = math.MaxInt
	}

	n := len(t.players)
	current := start % n
	stop := current
	acted := false

	for !acted || current != stop {
		acted = true
		p := t.players[current]
		if !t.pot.HasFolded(p.ID()) && p.Balance() > 0 {
			raised, err := t.takeTurn(p, raiseLimit)
			if err != nil {
				return err
			}
			if t.activeCount() <= 1 {
				return nil
			}
			if raised {
				stop = current
			}
		}
		current = (current + 1) % n
	}
	return nil
}

// takeTurn prompts one player and applies their decision. It reports whether
// the player raised, which re-arms the circuit.
func (t *table) takeTurn(p *Player, raiseLimit int) (bool, error) {
	call := t.pot.CallAmount()
	stake := t.pot.PlayerStake(p.ID())
	outstanding := call - stake

	// A matched player with no solvent opponent cannot be raised and owes
	// nothing. Prompting them would be asking for a decision with exactly
	// one meaningful answer.
	if outstanding == 0 && t.solventOpponents(p) == 0 {
		return false, nil
	}

	t.input.ShowPot(t.pot.TotalStake())
	t.input.ShowCurrentPlayer(p)
	t.input.ShowHand(p)
	if others := t.opponents(p); len(others) > 0 {
		t.input.ShowUpCards(others, p)
	}

	aggress := pot.Raise
	if call == 0 {
		aggress = pot.Bet
	}

	var options []pot.Kind
	var limit int
	switch {
	case outstanding == 0:
		limit = min(raiseLimit, p.Balance())
		options = []pot.Kind{pot.Check, aggress, pot.Fold}
	case p.Balance() > outstanding:
		limit = min(raiseLimit, p.Balance()-outstanding)
		options = []pot.Kind{pot.Call, aggress, pot.Fold}
	default:
		options = []pot.Kind{pot.AllIn, pot.Fold}
	}

	choice, err := t.input.SelectAction(p, options)
	if err != nil {
		return false, err
	}

	switch choice {
	case pot.Check:
		t.recordTurn(p, pot.Action{Kind: pot.Check})
	case pot.Fold:
		t.recordTurn(p, pot.Action{Kind: pot.Fold})
	case pot.Call:
		if err := p.Bet(outstanding); err != nil {
			return false, err
		}
		t.recordTurn(p, pot.Action{Kind: pot.Call, Amount: call})
	case pot.AllIn:
		total := stake + p.Balance()
		if err := p.Bet(p.Balance()); err != nil {
			return false, err
		}
		t.recordTurn(p, pot.Action{Kind: pot.AllIn, Amount: total})
	case pot.Bet, pot.Raise:
		by, err := t.input.RaiseAmount(p, limit)
		if err != nil {
			return false, err
		}
		if by < 1 {
			by = 1
		}
		if by > limit {
			by = limit
		}
		total := call + by
		if err := p.Bet(total - stake); err != nil {
			return false, err
		}
		t.recordTurn(p, pot.Action{Kind: choice, Amount: total})
		return true, nil
	default:
		return false, fmt.Errorf("game: unsupported action %s from %s", choice, p.Name())
	}
	return false, nil
}

// opponents returns the other non-folded players in seating order.
func (t *table) opponents(p *Player) []*Player {
	var others []*Player
	for _, other := range t.players {
		if other.ID() != p.ID() && !t.pot.HasFolded(other.ID()) {
			others = append(others, other)
		}
	}
	return others
}

// solventOpponents counts other players still in the hand with chips left
// to bet.
func (t *table) solventOpponents(p *Player) int {
	count := 0
	for _, other := range t.players {
		if other.ID() == p.ID() || t.pot.HasFolded(other.ID()) {
			continue
		}
		if other.Balance() > 0 {
			count++
		}
	}
	return count
}
