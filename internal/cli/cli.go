// Package cli implements the interactive terminal front end for a table.
// Prompts are numbered menus read line-by-line; bad input re-prompts rather
// than failing the round.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"cardroom/internal/deck"
	"cardroom/internal/game"
	"cardroom/internal/pot"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)
	redCardStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true)
	blackCardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true)
	hiddenStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	potStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD866")).Bold(true)
	winnerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E22E")).Bold(true)
)

// Input prompts a human at a terminal for every decision.
type Input struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New creates a terminal input reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Input {
	return &Input{scanner: bufio.NewScanner(in), out: out}
}

// Banner prints the cardroom title.
func (c *Input) Banner(title string) {
	fmt.Fprintln(c.out, headerStyle.Render(" ♠ ♥ "+title+" ♦ ♣ "))
	fmt.Fprintln(c.out)
}

// readLine returns the next trimmed input line. The second result is false
// once the input stream is closed.
func (c *Input) readLine() (string, bool) {
	if !c.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.scanner.Text()), true
}

// SelectAction shows the offered actions as a numbered menu and reads a
// choice.
func (c *Input) SelectAction(player *game.Player, options []pot.Kind) (pot.Kind, error) {
	for {
		fmt.Fprintf(c.out, "\n%s, select an action:\n", player.Name())
		for i, opt := range options {
			fmt.Fprintf(c.out, "  %d - %s\n", i, opt)
		}
		line, ok := c.readLine()
		if !ok {
			return 0, io.EOF
		}
		index, err := strconv.Atoi(line)
		if err == nil && index >= 0 && index < len(options) {
			return options[index], nil
		}
		fmt.Fprintf(c.out, "invalid input, enter a number between 0 and %d\n", len(options)-1)
	}
}

// RaiseAmount reads a raise between 1 and limit.
func (c *Input) RaiseAmount(player *game.Player, limit int) (int, error) {
	for {
		fmt.Fprintf(c.out, "\n%s, enter raise amount (1-%d): ", player.Name(), limit)
		line, ok := c.readLine()
		if !ok {
			return 0, io.EOF
		}
		amount, err := strconv.Atoi(line)
		if err == nil && amount >= 1 && amount <= limit {
			return amount, nil
		}
		fmt.Fprintf(c.out, "invalid input, enter a number between 1 and %d\n", limit)
	}
}

// SelectDiscards reads space-separated card positions to throw away. An
// empty line keeps the whole hand.
func (c *Input) SelectDiscards(player *game.Player) ([]deck.Card, error) {
	held := player.Cards()
	for {
		fmt.Fprintf(c.out, "\n%s, your hand:\n", player.Name())
		for i, card := range held {
			fmt.Fprintf(c.out, "  %d - %s\n", i, c.renderCard(card, true))
		}
		fmt.Fprint(c.out, "enter positions to replace separated by spaces, or press enter to stand pat: ")

		line, ok := c.readLine()
		if !ok {
			return nil, io.EOF
		}
		if line == "" {
			return nil, nil
		}

		fields := strings.Fields(line)
		cards := make([]deck.Card, 0, len(fields))
		seen := make(map[int]bool)
		valid := true
		for _, field := range fields {
			index, err := strconv.Atoi(field)
			if err != nil || index < 0 || index >= len(held) || seen[index] {
				valid = false
				break
			}
			seen[index] = true
			cards = append(cards, held[index])
		}
		if valid {
			return cards, nil
		}
		fmt.Fprintf(c.out, "invalid input, enter distinct positions between 0 and %d\n", len(held)-1)
	}
}

// ShowCurrentPlayer announces whose turn it is.
func (c *Input) ShowCurrentPlayer(player *game.Player) {
	fmt.Fprintf(c.out, "\n--- %s to act ---\n", player)
}

// ShowHand prints the player's own cards, hidden ones included.
func (c *Input) ShowHand(player *game.Player) {
	fmt.Fprintf(c.out, "your hand: %s\n", c.renderCards(player.Cards(), true))
}

// ShowCommunity prints the shared board.
func (c *Input) ShowCommunity(cards []deck.Card, player *game.Player) {
	fmt.Fprintf(c.out, "board: %s\n", c.renderCards(cards, true))
}

// ShowUpCards prints what each opponent is showing. Face-down cards render
// as backs.
func (c *Input) ShowUpCards(others []*game.Player, viewer *game.Player) {
	for _, other := range others {
		if len(other.UpCards()) == 0 {
			continue
		}
		fmt.Fprintf(c.out, "%s shows: %s\n", other.Name(), c.renderCards(other.Cards(), false))
	}
}

// ShowPot prints the current pot size.
func (c *Input) ShowPot(total int) {
	fmt.Fprintf(c.out, "pot: %s\n", potStyle.Render(fmt.Sprintf("$%d", total)))
}

// AnnounceWinners prints each winner and their payout.
func (c *Input) AnnounceWinners(winnings map[uuid.UUID]int, players []*game.Player) {
	fmt.Fprintln(c.out)
	for _, p := range players {
		amount := winnings[p.ID()]
		if amount > 0 {
			fmt.Fprintln(c.out, winnerStyle.Render(fmt.Sprintf("%s wins $%d", p.Name(), amount)))
		}
	}
	fmt.Fprintln(c.out, "\nbalances:")
	for _, p := range players {
		fmt.Fprintf(c.out, "  %s\n", p)
	}
}

func (c *Input) renderCard(card deck.Card, revealed bool) string {
	if !revealed && !card.FaceUp {
		return hiddenStyle.Render("[??]")
	}
	s := "[" + card.String() + "]"
	if card.IsRed() {
		return redCardStyle.Render(s)
	}
	return blackCardStyle.Render(s)
}

func (c *Input) renderCards(cards []deck.Card, revealed bool) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = c.renderCard(card, revealed)
	}
	return strings.Join(parts, " ")
}
