package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"cardroom/internal/config"
	"cardroom/internal/deck"
	"cardroom/internal/game"
	"cardroom/internal/pot"
	"cardroom/internal/store"
)

// Variant is what the lobby needs from a game controller.
type Variant interface {
	AddPlayer(p *game.Player)
	PlayRound() error
}

// Lobby seats joining players at configured tables and runs each full table
// on its own worker goroutine. All state for one table is owned by that
// goroutine while a game runs; the lobby lock only guards seating.
type Lobby struct {
	cfg     *config.Config
	db      store.Store
	logger  *log.Logger
	clock   quartz.Clock
	timeout time.Duration

	mu     sync.Mutex
	tables map[string]*Table
}

// Table is one configured table and its currently seated players.
type Table struct {
	cfg     config.TableConfig
	seats   []*seat
	running bool
}

type seat struct {
	player *game.Player
	conn   session
	input  *RemoteInput
}

// NewLobby creates a lobby with one table per configuration entry. A nil
// clock uses the real one.
func NewLobby(cfg *config.Config, db store.Store, logger *log.Logger, clock quartz.Clock) *Lobby {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if db == nil {
		db = store.Nop{}
	}
	l := &Lobby{
		cfg:     cfg,
		db:      db,
		logger:  logger.WithPrefix("lobby"),
		clock:   clock,
		timeout: DefaultDecisionTimeout,
		tables:  make(map[string]*Table),
	}
	for _, tc := range cfg.Tables {
		l.tables[tc.Name] = &Table{cfg: tc}
	}
	return l
}

// Join seats a player at the named table. Filling the last seat starts the
// game worker.
func (l *Lobby) Join(conn session, playerName, tableName string) (*JoinedData, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, ok := l.tables[tableName]
	if !ok {
		return nil, fmt.Errorf("lobby: no table named %q", tableName)
	}
	if t.running {
		return nil, fmt.Errorf("lobby: table %q is already playing", tableName)
	}
	if len(t.seats) >= t.cfg.Seats {
		return nil, fmt.Errorf("lobby: table %q is full", tableName)
	}
	for _, s := range t.seats {
		if s.player.Name() == playerName {
			return nil, fmt.Errorf("lobby: name %q is taken at table %q", playerName, tableName)
		}
	}

	player := game.NewPlayer(playerName, t.cfg.BuyIn)
	t.seats = append(t.seats, &seat{
		player: player,
		conn:   conn,
		input:  NewRemoteInput(conn, l.clock, l.timeout, l.logger),
	})
	joined := &JoinedData{
		PlayerID: player.ID().String(),
		Table:    tableName,
		Variant:  t.cfg.Variant,
		BuyIn:    t.cfg.BuyIn,
		Seat:     len(t.seats) - 1,
	}
	l.logger.Info("player seated", "player", playerName, "table", tableName, "seat", joined.Seat)

	if len(t.seats) == t.cfg.Seats {
		t.running = true
		go l.runTable(t)
	}
	return joined, nil
}

// runTable plays rounds until a player goes broke or disconnects, then
// resets the table for new players.
func (l *Lobby) runTable(t *Table) {
	logger := l.logger.With("table", t.cfg.Name)
	logger.Info("table full, starting game", "variant", t.cfg.Variant, "seats", len(t.seats))

	g, err := l.newVariant(t)
	if err != nil {
		logger.Error("start game", "err", err)
		l.resetTable(t)
		return
	}
	for _, s := range t.seats {
		g.AddPlayer(s.player)
	}

	for {
		if err := g.PlayRound(); err != nil {
			logger.Error("round aborted", "err", err)
			break
		}
		if !l.tablePlayable(t) {
			logger.Info("game over")
			break
		}
	}
	l.resetTable(t)
}

func (l *Lobby) newVariant(t *Table) (Variant, error) {
	gameCfg := game.Config{
		MinBet:     t.cfg.MinBet,
		RaiseLimit: t.cfg.RaiseLimit,
		Input:      newTableInput(t.seats),
		Store:      l.db,
		Logger:     l.logger.With("table", t.cfg.Name),
	}
	switch t.cfg.Variant {
	case config.VariantFiveCardDraw:
		return game.NewFiveCardDraw(nil, gameCfg), nil
	case config.VariantSevenCardStud:
		return game.NewSevenCardStud(nil, gameCfg), nil
	case config.VariantTexasHoldem:
		return game.NewTexasHoldem(nil, gameCfg), nil
	default:
		return nil, fmt.Errorf("lobby: unknown variant %q", t.cfg.Variant)
	}
}

// tablePlayable reports whether another round can start: everyone still has
// chips and a live connection.
func (l *Lobby) tablePlayable(t *Table) bool {
	for _, s := range t.seats {
		if s.player.Balance() <= 0 {
			return false
		}
		select {
		case <-s.conn.Done():
			return false
		default:
		}
	}
	return true
}

func (l *Lobby) resetTable(t *Table) {
	l.mu.Lock()
	defer l.mu.Unlock()
	t.seats = nil
	t.running = false
}

// tableInput fans engine prompts out to the acting player's connection and
// broadcasts table-wide displays to everyone.
type tableInput struct {
	byID  map[uuid.UUID]*RemoteInput
	seats []*seat
}

func newTableInput(seats []*seat) *tableInput {
	byID := make(map[uuid.UUID]*RemoteInput, len(seats))
	for _, s := range seats {
		byID[s.player.ID()] = s.input
	}
	return &tableInput{byID: byID, seats: seats}
}

func (t *tableInput) SelectAction(player *game.Player, options []pot.Kind) (pot.Kind, error) {
	return t.byID[player.ID()].SelectAction(player, options)
}

func (t *tableInput) RaiseAmount(player *game.Player, limit int) (int, error) {
	return t.byID[player.ID()].RaiseAmount(player, limit)
}

func (t *tableInput) SelectDiscards(player *game.Player) ([]deck.Card, error) {
	return t.byID[player.ID()].SelectDiscards(player)
}

func (t *tableInput) ShowCurrentPlayer(player *game.Player) {
	for _, s := range t.seats {
		s.input.ShowCurrentPlayer(player)
	}
}

func (t *tableInput) ShowHand(player *game.Player) {
	t.byID[player.ID()].ShowHand(player)
}

func (t *tableInput) ShowCommunity(cards []deck.Card, player *game.Player) {
	t.byID[player.ID()].ShowCommunity(cards, player)
}

func (t *tableInput) ShowUpCards(others []*game.Player, viewer *game.Player) {
	t.byID[viewer.ID()].ShowUpCards(others, viewer)
}

func (t *tableInput) ShowPot(total int) {
	for _, s := range t.seats {
		s.input.ShowPot(total)
	}
}

func (t *tableInput) AnnounceWinners(winnings map[uuid.UUID]int, players []*game.Player) {
	for _, s := range t.seats {
		s.input.AnnounceWinners(winnings, players)
	}
}
