package simulator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blackjack.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	rules := config.GameRules()
	assert.Equal(t, 6, rules.NumDecks)
	assert.True(t, rules.S17)
	assert.True(t, rules.DAS)
	assert.False(t, rules.Double11VsAce)
	assert.Equal(t, 100000, config.Simulation.Hands)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
rules {
  decks            = 2
  s17              = false
  das              = false
  double_11_vs_ace = true
}

simulation {
  hands = 5000
  seed  = 99
}
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, config.Validate())

	rules := config.GameRules()
	assert.Equal(t, 2, rules.NumDecks)
	assert.False(t, rules.S17)
	assert.False(t, rules.DAS)
	assert.True(t, rules.Double11VsAce)
	assert.Equal(t, 5000, config.Simulation.Hands)
	assert.Equal(t, int64(99), config.Simulation.Seed)
}

func TestLoadConfigPartialBlocks(t *testing.T) {
	path := writeConfig(t, `
rules {
  decks = 4
}
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	rules := config.GameRules()
	assert.Equal(t, 4, rules.NumDecks)
	// Omitted booleans keep their defaults rather than decoding to false.
	assert.True(t, rules.S17)
	assert.True(t, rules.DAS)
	assert.Equal(t, 100000, config.Simulation.Hands)
}

func TestLoadConfigInvalidHCL(t *testing.T) {
	path := writeConfig(t, `rules { decks = `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	config := DefaultFileConfig()
	config.Rules.Decks = 0
	assert.Error(t, config.Validate())

	config = DefaultFileConfig()
	config.Simulation.Hands = -1
	assert.Error(t, config.Validate())
}
