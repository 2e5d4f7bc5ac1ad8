package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/signtable/validate"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// TestRoot_DefaultTable prints spacer, header and ten rows.
func TestRoot_DefaultTable(t *testing.T) {
	out, err := execute(t, "--color", "never", "--seed", "7")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 12)
	assert.Empty(t, strings.TrimSpace(lines[0]), "spacer line")
	assert.True(t, strings.HasSuffix(lines[1], "| minimum positive | replacements |"))

	marked := 0
	for _, l := range lines[2:] {
		if strings.HasPrefix(l, "|*") {
			marked++
		}
	}
	assert.GreaterOrEqual(t, marked, 1, "at least one row holds the minimum")
}

// TestRoot_SeedIsReproducible checks identical output for identical seeds.
func TestRoot_SeedIsReproducible(t *testing.T) {
	a, err := execute(t, "--color", "never", "--seed", "99", "5", "-9", "9")
	require.NoError(t, err)
	b, err := execute(t, "--color", "never", "--seed", "99", "5", "-9", "9")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, strings.Split(strings.TrimSuffix(a, "\n"), "\n"), 7)
}

// TestRoot_Errors verifies fail-fast behavior with nothing printed.
func TestRoot_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want error
	}{
		{"partial args", []string{"4", "1"}, validate.ErrArity},
		{"fractional size", []string{"2.5", "0", "9"}, validate.ErrInvalidNumber},
		{"reversed range", []string{"--min", "5", "--max", "3"}, validate.ErrInvalidRange},
		{"run of one", []string{"--max-run", "1"}, validate.ErrInvalidNumber},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"--color", "never"}, tc.args...)...)
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, out)
		})
	}
}

// TestConfigCmd prints the merged configuration.
func TestConfigCmd(t *testing.T) {
	out, err := execute(t, "config", "--max-run", "4", "6", "-3", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "size: 6")
	assert.Contains(t, out, "min: -3")
	assert.Contains(t, out, "max_run_length: 4")
}
