package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAllSamples(t *testing.T) {
	// Arrange
	var out, errOut bytes.Buffer

	// Act
	err := run(&out, &errOut, []string{"run", "--sample", "--input-dir", t.TempDir()})

	// Assert
	require.NoError(t, err, errOut.String())
	for _, want := range []string{
		"day 10 part 1 sample: 4 ✅",
		"day 10 part 2 sample: 4 ✅",
		"day 11 part 1 sample: 374 ✅",
		"day 11 part 2 sample: 8410 ✅",
		"day 12 part 1 sample: 21 ✅",
		"day 12 part 2 sample: 525152 ✅",
		"day 16 part 1 sample: 46 ✅",
		"day 16 part 2 sample: 51 ✅",
		"day 17 part 1 sample: 102 ✅",
		"day 17 part 2 sample: 94 ✅",
		"day 18 part 1 sample: 62 ✅",
		"day 21 part 1 sample: 16 ✅",
	} {
		assert.Contains(t, out.String(), want)
	}
}

func TestRunRealInputFromDir(t *testing.T) {
	dir := t.TempDir()
	input := "111111111111\n999999999991\n999999999991\n999999999991\n999999999991\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "17.input"), []byte(input), 0o644))

	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"run", "--day", "17", "--part", "2", "--skip-sample", "--input-dir", dir})

	require.NoError(t, err, errOut.String())
	assert.Contains(t, out.String(), "day 17 part 2: 71 (took")
}

func TestRunCustomConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.hcl")
	cfg := `
garden {
  steps        = 64
  sample_steps = 1
}
`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"run", "--day", "21", "--sample", "--config", path})

	// One step from S reaches two plots, not the sample's 16.
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, out.String(), "day 21 part 1 sample: 2 ❌")
}

func TestRunBadConfig(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"run", "--config", filepath.Join(t.TempDir(), "nope.hcl")})

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
}

func TestRunConflictingFlags(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"run", "--sample", "--skip-sample"})
	require.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run(&out, &errOut, []string{"config"}))
	assert.Equal(t, string(defaultConfig), out.String())
}
