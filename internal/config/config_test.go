package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_PATH", "")
	t.Setenv("PAYROLL_DAY", "")
	t.Setenv("SEED_DEMO", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "hr-core.db", cfg.Storage.Path)
	assert.Equal(t, 25, cfg.App.PayrollDay)
	assert.True(t, cfg.App.SeedDemo)
	assert.Equal(t, "development", cfg.App.Env)
}

func TestLoad_RejectsBadPayrollDay(t *testing.T) {
	t.Setenv("PAYROLL_DAY", "31")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("PAYROLL_DAY", "soon")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_ReadsOverrides(t *testing.T) {
	t.Setenv("STORAGE_PATH", "/tmp/hr.db")
	t.Setenv("PAYROLL_DAY", "10")
	t.Setenv("SEED_DEMO", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/hr.db", cfg.Storage.Path)
	assert.Equal(t, 10, cfg.App.PayrollDay)
	assert.False(t, cfg.App.SeedDemo)
}
