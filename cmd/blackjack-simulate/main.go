package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/cardsharp/blackjack/internal/simulator"
)

type CLI struct {
	Hands   int    `default:"0" help:"Number of hands to simulate (overrides config)"`
	Seed    int64  `default:"0" help:"Base RNG seed (overrides config)"`
	Config  string `default:"blackjack.hcl" help:"HCL configuration file"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	kong.Parse(&cli)

	logger := log.New(os.Stderr)
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	config, err := simulator.LoadConfig(cli.Config)
	if err != nil {
		logger.Fatal("failed to load config", "file", cli.Config, "err", err)
	}
	if cli.Hands > 0 {
		config.Simulation.Hands = cli.Hands
	}
	if cli.Seed != 0 {
		config.Simulation.Seed = cli.Seed
	}
	if err := config.Validate(); err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	rules := config.GameRules()
	logger.Info("starting simulation",
		"hands", config.Simulation.Hands,
		"rules", rules.String(),
		"seed", config.Simulation.Seed)

	sim := simulator.New(simulator.Config{
		Hands:  config.Simulation.Hands,
		Rules:  rules,
		Seed:   config.Simulation.Seed,
		Logger: logger,
	})
	stats, err := sim.Run()
	if err != nil {
		logger.Fatal("simulation failed", "err", err)
	}

	lo, hi := stats.ConfidenceInterval95()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Hands\t%d\n", stats.Hands)
	fmt.Fprintf(w, "Mean (bets/hand)\t%+.5f\n", stats.Mean())
	fmt.Fprintf(w, "Std error\t%.5f\n", stats.StdError())
	fmt.Fprintf(w, "95%% CI\t[%+.5f, %+.5f]\n", lo, hi)
	fmt.Fprintf(w, "Win rate\t%.2f%%\n", stats.WinRate()*100)
	fmt.Fprintf(w, "Wins / Pushes / Losses\t%d / %d / %d\n", stats.Wins, stats.Pushes, stats.Losses)
	w.Flush()
}
