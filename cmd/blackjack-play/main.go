package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/cardsharp/blackjack/internal/game"
	"github.com/cardsharp/blackjack/internal/strategy"
)

type CLI struct {
	Decks         int    `default:"6" help:"Number of decks in the shoe"`
	H17           bool   `help:"Dealer hits soft 17"`
	NoDas         bool   `name:"no-das" help:"Disallow doubling after a split"`
	Double11VsAce bool   `name:"double-11-vs-ace" help:"Basic strategy doubles hard 11 against an Ace"`
	Seed          *int64 `help:"Random seed for reproducible hands"`
	Hint          bool   `help:"Show the basic-strategy recommendation each turn"`
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	cardStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	loseStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

func main() {
	var cli CLI
	kong.Parse(&cli)

	rules := game.Rules{
		S17:           !cli.H17,
		DAS:           !cli.NoDas,
		Double11VsAce: cli.Double11VsAce,
		NumDecks:      cli.Decks,
	}
	seed := time.Now().UnixNano()
	if cli.Seed != nil {
		seed = *cli.Seed
	}

	reader := bufio.NewScanner(os.Stdin)
	bankroll := 0.0
	fmt.Println(titleStyle.Render(fmt.Sprintf("Blackjack (%s). HIT/STAND/DOUBLE/SPLIT, Q to quit.", rules)))

	for round := 0; ; round++ {
		state, err := game.NewState(rules, seed+int64(round))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error dealing: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(titleStyle.Render("\n=== New Hand ==="))
		if !playRound(state, reader, cli.Hint) {
			return
		}

		payoff, err := state.Settle()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error settling: %v\n", err)
			os.Exit(1)
		}
		bankroll += payoff
		printResult(state, payoff, bankroll)
	}
}

// playRound drives one dealt hand to completion, returning false when the
// player quits.
func playRound(state *game.GameState, reader *bufio.Scanner, hint bool) bool {
	for !state.IsFinished() {
		hand := state.ActiveHand()
		actions := state.LegalActions()

		names := make([]string, len(actions))
		for i, a := range actions {
			names[i] = a.String()
		}
		v := hand.Value()
		soft := ""
		if v.Soft {
			soft = " (soft)"
		}
		fmt.Printf("Your hand: %s (total: %d%s). Dealer upcard: %s.\n",
			cardStyle.Render(hand.String()), v.Total, soft, cardStyle.Render(state.Upcard().String()))
		if hint {
			fmt.Printf("Basic strategy says: %s\n",
				strategy.Recommend(hand, state.Upcard(), state.Rules))
		}
		fmt.Print(promptStyle.Render(fmt.Sprintf("Action (%s): ", strings.Join(names, "/"))))

		if !reader.Scan() {
			return false
		}
		input := strings.TrimSpace(reader.Text())
		if strings.EqualFold(input, "Q") || strings.EqualFold(input, "QUIT") {
			fmt.Println("Hand aborted.")
			return false
		}
		action, err := game.ParseAction(input)
		if err != nil {
			fmt.Printf("Invalid input. Allowed: %s\n", strings.Join(names, ", "))
			continue
		}
		if err := state.Apply(action); err != nil {
			if errors.Is(err, game.ErrInvalidAction) {
				fmt.Printf("Not allowed now. Allowed: %s\n", strings.Join(names, ", "))
				continue
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return false
		}
	}
	return true
}

func printResult(state *game.GameState, payoff, bankroll float64) {
	for _, h := range state.Hands {
		v := h.Value()
		status := fmt.Sprintf("%d", v.Total)
		if v.Busted {
			status = "bust"
		}
		fmt.Printf("Your hand: %s (%s)\n", cardStyle.Render(h.String()), status)
	}
	dv := game.Evaluate(state.Dealer.Cards)
	fmt.Printf("Dealer: %s (%d)\n", cardStyle.Render(state.Dealer.String()), dv.Total)

	result := fmt.Sprintf("Result: %+.1f bets. Session: %+.1f bets.", payoff, bankroll)
	if payoff >= 0 {
		fmt.Println(winStyle.Render(result))
	} else {
		fmt.Println(loseStyle.Render(result))
	}
}
