package game

import (
	"fmt"
	"io"
	"math/rand"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"cardroom/internal/deck"
	"cardroom/internal/hand"
	"cardroom/internal/pot"
	"cardroom/internal/store"
)

const fullDeckSize = 52

// Config carries the knobs shared by every variant. Zero values are filled
// in with sensible defaults by newTable.
type Config struct {
	// MinBet is the forced-bet unit: blinds and the stud bring-in.
	MinBet int
	// RaiseLimit caps a single raise. Zero means pot-sized raises are
	// capped only by the raiser's balance.
	RaiseLimit int
	// RoundID labels the next round in persisted history. Zero means a
	// fresh id per round.
	RoundID uuid.UUID

	Input  Input
	Store  store.Store
	Logger *log.Logger
}

// table holds the state every variant shares: the seated players, the deck,
// the stake ledger, and the collaborators that observe play.
type table struct {
	players    []*Player
	deck       *deck.Deck
	pot        *pot.Pot
	input      Input
	store      store.Store
	logger     *log.Logger
	gameID     uuid.UUID
	roundID    uuid.UUID
	fixedID    bool
	dealerPos  int
	phase      int
	minBet     int
	raiseLimit int
	community  []deck.Card
	turnIDs    []uuid.UUID
}

func newTable(rng *rand.Rand, cfg Config) *table {
	t := &table{
		deck:       deck.New(rng),
		input:      cfg.Input,
		store:      cfg.Store,
		logger:     cfg.Logger,
		gameID:     uuid.New(),
		roundID:    cfg.RoundID,
		fixedID:    cfg.RoundID != uuid.Nil,
		minBet:     cfg.MinBet,
		raiseLimit: cfg.RaiseLimit,
	}
	if t.minBet <= 0 {
		t.minBet = 1
	}
	t.dealerPos = -1
	if t.store == nil {
		t.store = store.Nop{}
	}
	if t.logger == nil {
		t.logger = log.New(io.Discard)
	}
	return t
}

// AddPlayer seats a player. Seating order is play order.
func (t *table) AddPlayer(p *Player) {
	t.players = append(t.players, p)
}

// Players returns the seated players in seating order.
func (t *table) Players() []*Player {
	return t.players
}

func (t *table) playerByID(id uuid.UUID) *Player {
	for _, p := range t.players {
		if p.ID() == id {
			return p
		}
	}
	return nil
}

// beginRound resets per-round state and registers the ledger. The deck must
// be whole: a missing card means a previous round leaked one.
func (t *table) beginRound() {
	if t.deck.Size() != fullDeckSize {
		panic(fmt.Sprintf("game: deck has %d cards at round start, want %d", t.deck.Size(), fullDeckSize))
	}
	if !t.fixedID {
		t.roundID = uuid.New()
	}
	t.phase = 0
	t.community = nil
	t.turnIDs = nil

	ids := make([]uuid.UUID, len(t.players))
	for i, p := range t.players {
		ids[i] = p.ID()
	}
	t.pot = pot.New(ids)
	t.dealerPos = (t.dealerPos + 1 + len(t.players)) % len(t.players)
}

// recordTurn appends a turn to the ledger and persists it. The player's
// current hand is snapshotted into the record.
func (t *table) recordTurn(p *Player, action pot.Action) {
	turn := pot.NewTurn(t.roundID, t.phase, p.ID(), p.Cards(), action)
	t.pot.AddTurn(turn)
	t.turnIDs = append(t.turnIDs, turn.TurnID)
	if err := t.store.SaveTurn(turn); err != nil {
		t.logger.Error("persist turn", "turn", turn.TurnID, "err", err)
	}
	t.logger.Debug("turn", "player", p.Name(), "action", action.String(), "phase", t.phase)
}

// forcedBet moves chips without consulting the player. kind is Ante for
// blinds and the bring-in. If the player cannot cover the amount the bet
// becomes an all-in for their remaining balance.
func (t *table) forcedBet(p *Player, amount int) {
	kind := pot.Ante
	if amount > p.Balance() {
		amount = p.Balance()
		kind = pot.AllIn
	}
	if err := p.Bet(amount); err != nil {
		panic(fmt.Sprintf("game: forced bet: %v", err))
	}
	total := t.pot.PlayerStake(p.ID()) + amount
	t.recordTurn(p, pot.Action{Kind: kind, Amount: total})
}

// dealTo gives a player one card from the deck.
func (t *table) dealTo(p *Player, faceUp bool) {
	card, err := t.deck.Deal(faceUp)
	if err != nil {
		panic(fmt.Sprintf("game: deal: %v", err))
	}
	p.ObtainCard(card)
}

// dealFrom gives every non-folded player n cards, round-robin starting at
// the given seat. Deal order matters in stud, where it breaks bring-in ties.
func (t *table) dealFrom(start, n int, faceUp bool) {
	for i := 0; i < n; i++ {
		for j := range t.players {
			p := t.players[(start+j)%len(t.players)]
			if t.pot.HasFolded(p.ID()) {
				continue
			}
			t.dealTo(p, faceUp)
		}
	}
}

// dealEach gives every non-folded player n cards, starting from the seat
// after the dealer.
func (t *table) dealEach(n int, faceUp bool) {
	t.dealFrom(t.dealerPos+1, n, faceUp)
}

// dealCommunity turns up n shared cards.
func (t *table) dealCommunity(n int) {
	for i := 0; i < n; i++ {
		card, err := t.deck.Deal(true)
		if err != nil {
			panic(fmt.Sprintf("game: deal community: %v", err))
		}
		t.community = append(t.community, card)
	}
	for _, p := range t.players {
		if !t.pot.HasFolded(p.ID()) {
			t.input.ShowCommunity(t.community, p)
		}
	}
}

// activeCount counts players still in contention for the pot.
func (t *table) activeCount() int {
	return len(t.players) - t.pot.FoldCount()
}

// showdown ranks the surviving hands, divides the pot, credits each winner,
// and records the outcome. Community cards, if any, extend every hand.
func (t *table) showdown() map[uuid.UUID]int {
	type entry struct {
		player *Player
		rank   hand.Rank
	}

	var live []entry
	for i := range t.players {
		p := t.players[(t.dealerPos+1+i)%len(t.players)]
		if t.pot.HasFolded(p.ID()) {
			continue
		}
		p.Reveal()
		cards := make([]deck.Card, 0, len(p.Cards())+len(t.community))
		cards = append(cards, p.Cards()...)
		cards = append(cards, t.community...)
		live = append(live, entry{player: p, rank: hand.Evaluate(cards)})
	}

	sort.SliceStable(live, func(i, j int) bool {
		return live[i].rank.Compare(live[j].rank) > 0
	})

	var groups [][]uuid.UUID
	for i := 0; i < len(live); {
		j := i + 1
		for j < len(live) && live[j].rank.Compare(live[i].rank) == 0 {
			j++
		}
		group := make([]uuid.UUID, 0, j-i)
		for _, e := range live[i:j] {
			group = append(group, e.player.ID())
		}
		groups = append(groups, group)
		i = j
	}
	if folded := t.foldedIDs(); len(folded) > 0 {
		groups = append(groups, folded)
	}

	winnings := t.pot.DivideWinnings(groups)
	t.settle(winnings)

	for _, e := range live {
		t.logger.Info("showdown", "player", e.player.Name(), "hand", e.rank.String(),
			"won", winnings[e.player.ID()])
	}
	return winnings
}

// settle credits each payout, records Win and Lose turns, and announces the
// result.
func (t *table) settle(winnings map[uuid.UUID]int) {
	for _, p := range t.players {
		amount, ok := winnings[p.ID()]
		if !ok || amount == 0 {
			t.recordTurn(p, pot.Action{Kind: pot.Lose, Amount: t.pot.PlayerStake(p.ID())})
			continue
		}
		p.Win(amount)
		t.recordTurn(p, pot.Action{Kind: pot.Win, Amount: amount})
	}
	t.input.AnnounceWinners(winnings, t.players)
}

// endRound returns every card to the deck and persists the round summary.
func (t *table) endRound() {
	for _, p := range t.players {
		for _, card := range p.ReturnCards() {
			t.deck.Return(card)
		}
	}
	for _, card := range t.community {
		t.deck.Return(card)
	}
	t.community = nil

	ids := make([]uuid.UUID, len(t.players))
	for i, p := range t.players {
		ids[i] = p.ID()
	}
	round := store.Round{ID: t.roundID, GameID: t.gameID, TurnIDs: t.turnIDs, PlayerIDs: ids}
	if err := t.store.SaveRound(round); err != nil {
		t.logger.Error("persist round", "round", t.roundID, "err", err)
	}
	t.pot.Clear(ids)
}

// foldedIDs returns the folded players' ids in seating order.
func (t *table) foldedIDs() []uuid.UUID {
	var ids []uuid.UUID
	for _, p := range t.players {
		if t.pot.HasFolded(p.ID()) {
			ids = append(ids, p.ID())
		}
	}
	return ids
}

// winByDefault pays the pot to the one player left standing. Folded players
// trail as a group so any stake above the winner's returns to them, the same
// as at showdown.
func (t *table) winByDefault() map[uuid.UUID]int {
	for _, p := range t.players {
		if !t.pot.HasFolded(p.ID()) {
			groups := [][]uuid.UUID{{p.ID()}}
			if folded := t.foldedIDs(); len(folded) > 0 {
				groups = append(groups, folded)
			}
			winnings := t.pot.DivideWinnings(groups)
			t.settle(winnings)
			return winnings
		}
	}
	panic("game: no player left to win")
}
