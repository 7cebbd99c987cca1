package util_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mvx-signer/internal/util"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("UTIL_TEST_INT", "42")
	t.Setenv("UTIL_TEST_BOOL", "true")
	t.Setenv("UTIL_TEST_DURATION", "3s")
	t.Setenv("UTIL_TEST_FLOAT", "2.5")
	t.Setenv("UTIL_TEST_ARR", " a, b ,,c ")
	t.Setenv("UTIL_TEST_ENUM", "nope")
	t.Setenv("UTIL_TEST_BAD_INT", "x")

	assert.Equal(t, "fallback", util.GetEnv("UTIL_TEST_MISSING", "fallback"))
	assert.Equal(t, 42, util.GetEnvAsInt("UTIL_TEST_INT", 1))
	assert.Equal(t, 1, util.GetEnvAsInt("UTIL_TEST_BAD_INT", 1))
	assert.True(t, util.GetEnvAsBool("UTIL_TEST_BOOL", false))
	assert.Equal(t, 3*time.Second, util.GetEnvAsDuration("UTIL_TEST_DURATION", time.Second))
	assert.InDelta(t, 2.5, util.GetEnvAsFloat("UTIL_TEST_FLOAT", 1), 0.0001)
	assert.Equal(t, []string{"a", "b", "c"}, util.GetEnvAsStringArr("UTIL_TEST_ARR", nil))
	assert.Equal(t, []string{"x"}, util.GetEnvAsStringArr("UTIL_TEST_MISSING", []string{"x"}))
	assert.Equal(t, "debug", util.GetEnvEnum("UTIL_TEST_ENUM", "debug", []string{"debug", "info"}))

	t.Setenv("UTIL_TEST_LEVEL", "WARN")
	assert.Equal(t, "debug", util.GetEnvEnum("UTIL_TEST_LEVEL", "debug", util.LogLevels))
	t.Setenv("UTIL_TEST_LEVEL", "warn")
	assert.Equal(t, "warn", util.GetEnvEnum("UTIL_TEST_LEVEL", "debug", util.LogLevels))
}

type initialized struct {
	Name  string
	Count int
	Skip  *int `wire:"-"`
	skip  string
}

func TestIsStructInitialized(t *testing.T) {
	require.NoError(t, util.IsStructInitialized(&initialized{Name: "a", Count: 1}))

	err := util.IsStructInitialized(initialized{Name: "a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Count")

	require.Error(t, util.IsStructInitialized((*initialized)(nil)))
	require.Error(t, util.IsStructInitialized(3))
}

func TestGenerateRandomHexString(t *testing.T) {
	s, err := util.GenerateRandomHexString(16)
	require.NoError(t, err)
	assert.Len(t, s, 32)
}

func TestGetProjectRootDir(t *testing.T) {
	assert.FileExists(t, util.GetProjectRootDir()+"/go.mod")
}
