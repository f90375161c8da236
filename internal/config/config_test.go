package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 2000, cfg.SolverTimeBudgetMs)
	assert.Equal(t, 8, cfg.SolverWorkers)
	assert.Equal(t, 1000, cfg.ObjectiveScale)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 2*time.Second, cfg.TimeBudget())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SOLVER_TIME_BUDGET_MS", "500")
	t.Setenv("SOLVER_WORKERS", "2")
	t.Setenv("ENV", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.SolverTimeBudgetMs)
	assert.Equal(t, 2, cfg.SolverWorkers)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 500*time.Millisecond, cfg.TimeBudget())
}

func TestLoadConfig_RejectsNonPositiveBudget(t *testing.T) {
	t.Setenv("SOLVER_TIME_BUDGET_MS", "-1")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 2*time.Second, cfg.TimeBudget())
	assert.Equal(t, 8, cfg.SolverWorkers)
	assert.Equal(t, 1000, cfg.ObjectiveScale)
}
