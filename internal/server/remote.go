package server

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"cardroom/internal/deck"
	"cardroom/internal/game"
	"cardroom/internal/pot"
)

// DefaultDecisionTimeout bounds how long a remote player may sit on a
// decision before the engine decides for them.
const DefaultDecisionTimeout = 30 * time.Second

// RemoteInput answers the engine's prompts by exchanging messages with one
// remote client. A prompt that times out or gets a malformed answer falls
// back to the most passive legal action, so one absent player cannot stall
// the table.
type RemoteInput struct {
	conn    session
	clock   quartz.Clock
	timeout time.Duration
	logger  *log.Logger
}

// NewRemoteInput creates an input for one seat. A nil clock uses the real
// one; a zero timeout uses DefaultDecisionTimeout.
func NewRemoteInput(conn session, clock quartz.Clock, timeout time.Duration, logger *log.Logger) *RemoteInput {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if timeout <= 0 {
		timeout = DefaultDecisionTimeout
	}
	return &RemoteInput{conn: conn, clock: clock, timeout: timeout, logger: logger.WithPrefix("remote")}
}

// request sends a prompt and waits for the next client message, the
// timeout, or disconnection. A nil result means the fallback applies.
func (r *RemoteInput) request(msg *Message) *Message {
	if err := r.conn.Send(msg); err != nil {
		r.logger.Warn("send prompt", "type", msg.Type, "err", err)
		return nil
	}

	timedOut := make(chan struct{})
	timer := r.clock.AfterFunc(r.timeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	select {
	case reply := <-r.conn.Receive():
		return reply
	case <-timedOut:
		r.logger.Warn("decision timeout", "type", msg.Type)
		return nil
	case <-r.conn.Done():
		r.logger.Warn("client disconnected mid-decision", "type", msg.Type)
		return nil
	}
}

// SelectAction asks the client to pick from the offered actions. Timeouts,
// disconnects and off-menu answers fold when folding is offered.
func (r *RemoteInput) SelectAction(player *game.Player, options []pot.Kind) (pot.Kind, error) {
	names := make([]string, len(options))
	for i, opt := range options {
		names[i] = opt.String()
	}
	msg, err := NewMessage(MessageTypeActionRequest, ActionRequestData{Options: names})
	if err != nil {
		return 0, err
	}

	reply := r.request(msg)
	if reply != nil && reply.Type == MessageTypeActionResponse {
		var data ActionResponseData
		if err := reply.Decode(&data); err == nil {
			for _, opt := range options {
				if opt.String() == data.Action {
					return opt, nil
				}
			}
			r.logger.Warn("action not offered", "action", data.Action, "player", player.Name())
		}
	}
	return fallbackAction(options), nil
}

// RaiseAmount asks the client for a raise up to limit. Anything out of
// range becomes the minimum raise.
func (r *RemoteInput) RaiseAmount(player *game.Player, limit int) (int, error) {
	msg, err := NewMessage(MessageTypeRaiseRequest, RaiseRequestData{Limit: limit})
	if err != nil {
		return 0, err
	}

	reply := r.request(msg)
	if reply != nil && reply.Type == MessageTypeRaiseResponse {
		var data RaiseResponseData
		if err := reply.Decode(&data); err == nil && data.Amount >= 1 && data.Amount <= limit {
			return data.Amount, nil
		}
	}
	return 1, nil
}

// SelectDiscards asks the client which card positions to replace. A bad or
// missing answer stands pat.
func (r *RemoteInput) SelectDiscards(player *game.Player) ([]deck.Card, error) {
	held := player.Cards()
	msg, err := NewMessage(MessageTypeDiscardRequest, DiscardRequestData{Cards: held})
	if err != nil {
		return nil, err
	}

	reply := r.request(msg)
	if reply == nil || reply.Type != MessageTypeDiscardResponse {
		return nil, nil
	}
	var data DiscardResponseData
	if err := reply.Decode(&data); err != nil {
		return nil, nil
	}

	seen := make(map[int]bool)
	cards := make([]deck.Card, 0, len(data.Positions))
	for _, i := range data.Positions {
		if i < 0 || i >= len(held) || seen[i] {
			r.logger.Warn("bad discard positions", "player", player.Name(), "positions", data.Positions)
			return nil, nil
		}
		seen[i] = true
		cards = append(cards, held[i])
	}
	return cards, nil
}

// ShowCurrentPlayer implements game.Input.
func (r *RemoteInput) ShowCurrentPlayer(player *game.Player) {
	r.notify(MessageTypeCurrentPlayer, CurrentPlayerData{Name: player.Name()})
}

// ShowHand implements game.Input.
func (r *RemoteInput) ShowHand(player *game.Player) {
	r.notify(MessageTypeHand, HandData{Cards: player.Cards()})
}

// ShowCommunity implements game.Input.
func (r *RemoteInput) ShowCommunity(cards []deck.Card, player *game.Player) {
	r.notify(MessageTypeCommunity, CommunityData{Cards: cards})
}

// ShowUpCards implements game.Input. Only face-up cards cross the wire.
func (r *RemoteInput) ShowUpCards(others []*game.Player, viewer *game.Player) {
	data := UpCardsData{}
	for _, other := range others {
		data.Players = append(data.Players, ShownHand{Name: other.Name(), Cards: other.UpCards()})
	}
	r.notify(MessageTypeUpCards, data)
}

// ShowPot implements game.Input.
func (r *RemoteInput) ShowPot(total int) {
	r.notify(MessageTypePot, PotData{Total: total})
}

// AnnounceWinners implements game.Input.
func (r *RemoteInput) AnnounceWinners(winnings map[uuid.UUID]int, players []*game.Player) {
	data := WinnersData{}
	for _, p := range players {
		if amount := winnings[p.ID()]; amount > 0 {
			data.Winners = append(data.Winners, WinnerEntry{Name: p.Name(), Amount: amount})
		}
		data.Balances = append(data.Balances, PlayerBalance{Name: p.Name(), Balance: p.Balance()})
	}
	r.notify(MessageTypeWinners, data)
}

func (r *RemoteInput) notify(messageType MessageType, data any) {
	msg, err := NewMessage(messageType, data)
	if err != nil {
		r.logger.Error("encode notification", "type", messageType, "err", err)
		return
	}
	if err := r.conn.Send(msg); err != nil {
		r.logger.Debug("send notification", "type", messageType, "err", err)
	}
}

// fallbackAction picks the decision made on a player's behalf when they do
// not answer: fold if legal, otherwise the first offered action.
func fallbackAction(options []pot.Kind) pot.Kind {
	for _, opt := range options {
		if opt == pot.Fold {
			return opt
		}
	}
	return options[0]
}
