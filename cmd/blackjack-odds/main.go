package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/cardsharp/blackjack/internal/deck"
	"github.com/cardsharp/blackjack/internal/game"
	"github.com/cardsharp/blackjack/internal/montecarlo"
	"github.com/cardsharp/blackjack/internal/strategy"
)

type CLI struct {
	Hand          string `arg:"" help:"Player hand ranks, e.g. 'A,7' or '8,8'" required:"true"`
	Dealer        string `arg:"" help:"Dealer upcard rank, e.g. '10'" required:"true"`
	Decks         int    `default:"6" help:"Number of decks in the shoe"`
	H17           bool   `help:"Dealer hits soft 17"`
	NoDas         bool   `name:"no-das" help:"Disallow doubling after a split"`
	Double11VsAce bool   `name:"double-11-vs-ace" help:"Basic strategy doubles hard 11 against an Ace"`
	Samples       int    `short:"n" default:"10000" help:"Monte Carlo samples per action"`
	Seed          *int64 `help:"Random seed for reproducible results"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	bestStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	var seed int64
	if cli.Seed != nil {
		seed = *cli.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	rules := game.Rules{
		S17:           !cli.H17,
		DAS:           !cli.NoDas,
		Double11VsAce: cli.Double11VsAce,
		NumDecks:      cli.Decks,
	}

	playerCards, err := deck.ParseCards(cli.Hand)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing hand: %v\n", err)
		ctx.Exit(1)
	}
	if len(playerCards) != 2 {
		fmt.Fprintf(os.Stderr, "Player hand must be exactly two cards\n")
		ctx.Exit(1)
	}
	upcard, err := deck.ParseCard(cli.Dealer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing dealer upcard: %v\n", err)
		ctx.Exit(1)
	}

	state, err := game.NewState(rules, seed,
		game.WithPlayerCards(playerCards...),
		game.WithDealerCards(upcard))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building state: %v\n", err)
		ctx.Exit(1)
	}

	actions := state.LegalActions()
	if len(actions) == 0 {
		fmt.Println("Hand already resolved; nothing to evaluate.")
		return
	}
	baseline := strategy.Recommend(state.ActiveHand(), state.Upcard(), rules)

	fmt.Println(headerStyle.Render(fmt.Sprintf("Blackjack EV: %s vs %s (%s, %d samples)",
		handStyle.Render(state.ActiveHand().String()), handStyle.Render(upcard.String()),
		rules, cli.Samples)))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ACTION\tEV (bets)\tSTDERR\tΔ vs basic\t")
	for _, action := range actions {
		stats, err := montecarlo.EstimateEVDetail(state, action, cli.Samples, seed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error estimating %s: %v\n", action, err)
			ctx.Exit(1)
		}
		marginal, err := montecarlo.EstimateMarginalEV(state, action, baseline, cli.Samples, seed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error estimating marginal EV for %s: %v\n", action, err)
			ctx.Exit(1)
		}

		name := action.String()
		if action == baseline {
			name += " *"
		}
		fmt.Fprintf(w, "%s\t%+.4f\t%.4f\t%+.4f\t\n",
			name, stats.Mean(), stats.StdError(), marginal)
	}
	w.Flush()
	fmt.Println(bestStyle.Render("\n* basic-strategy recommendation"))
}
