package simulator

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/cardsharp/blackjack/internal/game"
)

// FileConfig represents a simulation configuration file
type FileConfig struct {
	Rules      *RulesBlock      `hcl:"rules,block"`
	Simulation *SimulationBlock `hcl:"simulation,block"`
}

// RulesBlock configures the casino rule set. Boolean fields are pointers so
// an omitted setting falls back to the default rather than false.
type RulesBlock struct {
	Decks         int   `hcl:"decks,optional"`
	S17           *bool `hcl:"s17,optional"`
	DAS           *bool `hcl:"das,optional"`
	Double11VsAce *bool `hcl:"double_11_vs_ace,optional"`
}

// SimulationBlock configures the batch run
type SimulationBlock struct {
	Hands int   `hcl:"hands,optional"`
	Seed  int64 `hcl:"seed,optional"`
}

// DefaultFileConfig returns the configuration used when no file is given
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Rules:      &RulesBlock{Decks: 6},
		Simulation: &SimulationBlock{Hands: 100000, Seed: 1},
	}
}

// LoadConfig loads a simulation configuration from an HCL file. A missing
// file yields the defaults.
func LoadConfig(filename string) (*FileConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultFileConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config FileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.Rules == nil {
		config.Rules = &RulesBlock{}
	}
	if config.Rules.Decks == 0 {
		config.Rules.Decks = 6
	}
	if config.Simulation == nil {
		config.Simulation = &SimulationBlock{}
	}
	if config.Simulation.Hands == 0 {
		config.Simulation.Hands = 100000
	}
	if config.Simulation.Seed == 0 {
		config.Simulation.Seed = 1
	}

	return &config, nil
}

// GameRules converts the rules block to a game.Rules, applying defaults for
// omitted booleans (S17 and DAS on, double 11 vs ace off).
func (c *FileConfig) GameRules() game.Rules {
	rules := game.DefaultRules()
	rules.NumDecks = c.Rules.Decks
	if c.Rules.S17 != nil {
		rules.S17 = *c.Rules.S17
	}
	if c.Rules.DAS != nil {
		rules.DAS = *c.Rules.DAS
	}
	if c.Rules.Double11VsAce != nil {
		rules.Double11VsAce = *c.Rules.Double11VsAce
	}
	return rules
}

// Validate validates the loaded configuration
func (c *FileConfig) Validate() error {
	if c.Rules.Decks < 1 {
		return fmt.Errorf("decks must be at least 1, got %d", c.Rules.Decks)
	}
	if c.Simulation.Hands <= 0 {
		return fmt.Errorf("hands must be positive, got %d", c.Simulation.Hands)
	}
	return nil
}
