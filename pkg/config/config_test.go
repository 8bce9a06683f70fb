package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tranvietanh/xiangqi/pkg/config"
)

func TestDefaultHasAllThreeDifficulties(t *testing.T) {
	cfg := config.Default()

	easy := cfg.Budget(config.Easy)
	assert.Equal(t, 1, easy.MaxDepth)
	assert.Equal(t, 50*time.Millisecond, easy.TimeLimit)

	medium := cfg.Budget(config.Medium)
	assert.Equal(t, 2, medium.MaxDepth)
	assert.Equal(t, 200*time.Millisecond, medium.TimeLimit)

	hard := cfg.Budget(config.Hard)
	assert.Equal(t, 5, hard.MaxDepth)
	assert.Equal(t, 3*time.Second, hard.TimeLimit)
}

func TestBudgetFallsBackToDefaultWhenMissing(t *testing.T) {
	cfg := &config.Config{}
	b := cfg.Budget(config.Hard)
	assert.Equal(t, 5, b.MaxDepth)
}

func TestSearchProfileByName(t *testing.T) {
	assert.Equal(t, config.FastProfile, config.SearchProfileByName("fast"))
	assert.Equal(t, config.BalancedProfile, config.SearchProfileByName("balanced"))
	assert.Equal(t, config.BalancedProfile, config.SearchProfileByName("unknown"))
}

func TestLoadParsesTOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.toml")
	contents := `
profile = "fast"

[[difficulty]]
difficulty = "hard"
max_depth = 6
time_limit_ms = 5000
`
	err := os.WriteFile(path, []byte(contents), 0o644)
	assert.NoError(t, err)

	cfg, err := config.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "fast", cfg.Profile)

	hard := cfg.Budget(config.Hard)
	assert.Equal(t, 6, hard.MaxDepth)
	assert.Equal(t, 5*time.Second, hard.TimeLimit)
}

func TestLoadReturnsErrorForMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
