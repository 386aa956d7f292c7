package game

import (
	"github.com/google/uuid"

	"cardroom/internal/deck"
	"cardroom/internal/pot"
)

// Input is the capability a variant controller uses to collect decisions
// and push information to the people (or bots, or sockets) behind the
// players. Implementations block until a decision is available; timeouts
// and validation re-prompts are their responsibility, not the engine's.
//
// The engine guarantees SelectAction is only ever called with an offered
// subset consistent with the betting state machine, and only for players
// who are allowed to act.
type Input interface {
	// SelectAction asks the player to pick one of the offered actions.
	SelectAction(player *Player, options []pot.Kind) (pot.Kind, error)

	// RaiseAmount asks the player for a raise amount in [1, limit].
	RaiseAmount(player *Player, limit int) (int, error)

	// SelectDiscards asks a draw player which held cards to replace.
	// The returned cards must be a subset of the player's hand.
	SelectDiscards(player *Player) ([]deck.Card, error)

	// ShowCurrentPlayer tells everyone whose turn it is.
	ShowCurrentPlayer(player *Player)

	// ShowHand shows a player their own cards.
	ShowHand(player *Player)

	// ShowCommunity shows the shared community cards to a player.
	ShowCommunity(cards []deck.Card, player *Player)

	// ShowUpCards shows the other players' face-up cards to a player.
	ShowUpCards(others []*Player, viewer *Player)

	// ShowPot announces the current pot size.
	ShowPot(total int)

	// AnnounceWinners reports the final payouts for the round.
	AnnounceWinners(winnings map[uuid.UUID]int, players []*Player)
}
