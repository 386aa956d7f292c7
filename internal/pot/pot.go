// Package pot is the per-round stake ledger. Call amounts, per-player
// stakes, fold state and the final division of winnings are all derived
// from an append-only log of turns, cleared at the start of each round.
package pot

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Pot tracks the turn history and stakes for one round. It performs no
// legality checks beyond its own invariants; offered-action sets are the
// betting state machine's job, and a stake total that decreases within a
// round indicates a bug there, so it panics rather than being recorded.
type Pot struct {
	history []Turn
	stakes  map[uuid.UUID]int
	folded  map[uuid.UUID]bool
	// players in seating order; map iteration order is not deterministic
	// and pot division must be
	order []uuid.UUID
}

// New creates a pot for the given players, all at stake zero.
func New(players []uuid.UUID) *Pot {
	p := &Pot{}
	p.Clear(players)
	return p
}

// Clear resets the ledger for a new round.
func (p *Pot) Clear(players []uuid.UUID) {
	p.history = p.history[:0]
	p.stakes = make(map[uuid.UUID]int, len(players))
	p.folded = make(map[uuid.UUID]bool, len(players))
	p.order = make([]uuid.UUID, len(players))
	copy(p.order, players)
	for _, id := range players {
		p.stakes[id] = 0
	}
}

// AddTurn appends a turn to the history and updates the derived stake state.
func (p *Pot) AddTurn(turn Turn) {
	stake, ok := p.stakes[turn.PlayerID]
	if !ok {
		panic(fmt.Sprintf("pot: turn for unknown player %s", turn.PlayerID))
	}

	switch turn.Action.Kind {
	case Ante, Bet, Raise, AllIn:
		if turn.Action.Amount < stake {
			panic(fmt.Sprintf("pot: stake for %s decreased from %d to %d",
				turn.PlayerID, stake, turn.Action.Amount))
		}
		p.stakes[turn.PlayerID] = turn.Action.Amount
	case Call:
		call := p.CallAmount()
		if call < stake {
			panic(fmt.Sprintf("pot: call amount %d below stake %d for %s",
				call, stake, turn.PlayerID))
		}
		p.stakes[turn.PlayerID] = call
	case Fold:
		p.folded[turn.PlayerID] = true
	}

	p.history = append(p.history, turn)
}

// CallAmount returns the highest total any player has staked this round,
// the amount others must match to stay in.
func (p *Pot) CallAmount() int {
	max := 0
	for _, stake := range p.stakes {
		if stake > max {
			max = stake
		}
	}
	return max
}

// PlayerStake returns the player's most recent recorded total.
func (p *Pot) PlayerStake(id uuid.UUID) int {
	stake, ok := p.stakes[id]
	if !ok {
		panic(fmt.Sprintf("pot: no stake for player %s", id))
	}
	return stake
}

// TotalStake returns the pot size: the sum of all players' stakes.
func (p *Pot) TotalStake() int {
	total := 0
	for _, stake := range p.stakes {
		total += stake
	}
	return total
}

// HasFolded reports whether the player has folded this round.
func (p *Pot) HasFolded(id uuid.UUID) bool {
	return p.folded[id]
}

// FoldCount returns the number of players who have folded this round.
func (p *Pot) FoldCount() int {
	return len(p.folded)
}

// History returns the recorded turns in insertion order.
func (p *Pot) History() []Turn {
	return p.history
}

// Players returns the player ids in seating order.
func (p *Pot) Players() []uuid.UUID {
	return p.order
}

// DivideWinnings splits the pot among the given ranked groups: tied players
// share a group, groups are ordered best hand first, and folded players are
// appended as the trailing group. The returned map holds each player's
// payout; players who win nothing map to zero.
//
// The division processes stake tiers from the lowest all-in total upward.
// Each tier's sub-pot collects that tier's increment from every contributor
// and goes to the best-ranked group with an eligible member (not folded and
// staked at least the tier amount); when a winning group's members are
// capped by a lower all-in, the higher tiers cascade to the next group. If
// no live player reaches a tier, its sub-pot returns to its (necessarily
// folded) contributors. Ties split a sub-pot evenly; an indivisible
// remainder is handed out one chip at a time in group order, so callers
// should build groups in seating order from the dealer.
//
// The amounts distributed always sum to TotalStake.
func (p *Pot) DivideWinnings(rankedGroups [][]uuid.UUID) map[uuid.UUID]int {
	winnings := make(map[uuid.UUID]int, len(p.order))
	for _, id := range p.order {
		winnings[id] = 0
	}

	tiers := p.stakeTiers()
	prev := 0
	for _, tier := range tiers {
		subPot := 0
		for _, id := range p.order {
			if stake := p.stakes[id]; stake > prev {
				contribution := stake
				if contribution > tier {
					contribution = tier
				}
				subPot += contribution - prev
			}
		}

		winners := p.tierWinners(rankedGroups, tier, false)
		if len(winners) == 0 {
			// only folded players staked this high; their surplus
			// returns to them
			winners = p.tierWinners(rankedGroups, tier, true)
		}

		share := subPot / len(winners)
		remainder := subPot % len(winners)
		for i, id := range winners {
			winnings[id] += share
			if i < remainder {
				winnings[id]++
			}
		}

		prev = tier
	}

	return winnings
}

// stakeTiers returns the distinct non-zero stake totals, ascending.
func (p *Pot) stakeTiers() []int {
	seen := make(map[int]bool)
	tiers := make([]int, 0, len(p.order))
	for _, id := range p.order {
		stake := p.stakes[id]
		if stake > 0 && !seen[stake] {
			seen[stake] = true
			tiers = append(tiers, stake)
		}
	}
	sort.Ints(tiers)
	return tiers
}

// tierWinners returns the members of the best-ranked group eligible at the
// given tier, preserving group order.
func (p *Pot) tierWinners(rankedGroups [][]uuid.UUID, tier int, includeFolded bool) []uuid.UUID {
	for _, group := range rankedGroups {
		var eligible []uuid.UUID
		for _, id := range group {
			if p.folded[id] && !includeFolded {
				continue
			}
			if p.stakes[id] >= tier {
				eligible = append(eligible, id)
			}
		}
		if len(eligible) > 0 {
			return eligible
		}
	}
	return nil
}
