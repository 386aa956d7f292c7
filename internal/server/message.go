package server

import (
	"encoding/json"
	"time"

	"cardroom/internal/deck"
)

// MessageType identifies a wire message.
type MessageType string

// Client to server.
const (
	MessageTypeJoin            MessageType = "join"
	MessageTypeActionResponse  MessageType = "action_response"
	MessageTypeRaiseResponse   MessageType = "raise_response"
	MessageTypeDiscardResponse MessageType = "discard_response"
)

// Server to client.
const (
	MessageTypeJoined         MessageType = "joined"
	MessageTypeError          MessageType = "error"
	MessageTypeActionRequest  MessageType = "action_request"
	MessageTypeRaiseRequest   MessageType = "raise_request"
	MessageTypeDiscardRequest MessageType = "discard_request"
	MessageTypeCurrentPlayer  MessageType = "current_player"
	MessageTypeHand           MessageType = "hand"
	MessageTypeCommunity      MessageType = "community"
	MessageTypeUpCards        MessageType = "up_cards"
	MessageTypePot            MessageType = "pot"
	MessageTypeWinners        MessageType = "winners"
)

// Message is the wire envelope. Data holds the type-specific payload.
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage wraps a payload in an envelope with the current timestamp.
func NewMessage(messageType MessageType, data any) (*Message, error) {
	var raw json.RawMessage
	if data != nil {
		bytes, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		raw = bytes
	}
	return &Message{Type: messageType, Data: raw, Timestamp: time.Now()}, nil
}

// Decode unmarshals the payload into dst.
func (m *Message) Decode(dst any) error {
	return json.Unmarshal(m.Data, dst)
}

type JoinData struct {
	PlayerName string `json:"playerName"`
	Table      string `json:"table"`
}

type JoinedData struct {
	PlayerID string `json:"playerId"`
	Table    string `json:"table"`
	Variant  string `json:"variant"`
	BuyIn    int    `json:"buyIn"`
	Seat     int    `json:"seat"`
}

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ActionRequestData struct {
	Options []string `json:"options"`
}

type ActionResponseData struct {
	Action string `json:"action"`
}

type RaiseRequestData struct {
	Limit int `json:"limit"`
}

type RaiseResponseData struct {
	Amount int `json:"amount"`
}

type DiscardRequestData struct {
	Cards []deck.Card `json:"cards"`
}

type DiscardResponseData struct {
	Positions []int `json:"positions"`
}

type CurrentPlayerData struct {
	Name string `json:"name"`
}

type HandData struct {
	Cards []deck.Card `json:"cards"`
}

type CommunityData struct {
	Cards []deck.Card `json:"cards"`
}

// ShownHand is one opponent's visible cards. Face-down cards are elided
// before sending.
type ShownHand struct {
	Name  string      `json:"name"`
	Cards []deck.Card `json:"cards"`
}

type UpCardsData struct {
	Players []ShownHand `json:"players"`
}

type PotData struct {
	Total int `json:"total"`
}

type WinnerEntry struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

type PlayerBalance struct {
	Name    string `json:"name"`
	Balance int    `json:"balance"`
}

type WinnersData struct {
	Winners  []WinnerEntry   `json:"winners"`
	Balances []PlayerBalance `json:"balances"`
}
