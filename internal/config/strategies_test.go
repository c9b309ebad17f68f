package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/ceac-cli/internal/model"
)

func writeStrategies(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "strategies.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadStrategies_Default(t *testing.T) {
	t.Parallel()

	set, err := LoadStrategies("", 5)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultStrategies(), set)
}

func TestLoadStrategies_File(t *testing.T) {
	t.Parallel()

	path := writeStrategies(t, `
strategies:
  - id: 2
    label: Annual
  - id: 1
    label: None
`)

	set, err := LoadStrategies(path, 2)
	require.NoError(t, err)
	assert.Equal(t, model.StrategySet{{ID: 2, Label: "Annual"}, {ID: 1, Label: "None"}}, set)
}

func TestLoadStrategies_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		n       int
		wantErr string
	}{
		{"count mismatch", "strategies:\n  - id: 1\n    label: A\n", 2, "lists 1 strategies"},
		{"out of range", "strategies:\n  - id: 3\n    label: A\n", 1, "outside 1..1"},
		{"duplicate", "strategies:\n  - id: 1\n    label: A\n  - id: 1\n    label: B\n", 2, "duplicate strategy id 1"},
		{"bad yaml", "strategies: {", 1, "parse strategies"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadStrategies(writeStrategies(t, tt.body), tt.n)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadStrategies_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadStrategies(filepath.Join(t.TempDir(), "nope.yaml"), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read strategies")
}
