package flagx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		allowed  []string
		expected []string
	}{
		{
			name:     "separate value is kept with its flag",
			args:     []string{"-a", ":8080", "-x", "nope"},
			allowed:  []string{"-a"},
			expected: []string{"-a", ":8080"},
		},
		{
			name:     "equals form is kept whole",
			args:     []string{"--config=conf.json", "-a=:8080"},
			allowed:  []string{"--config"},
			expected: []string{"--config=conf.json"},
		},
		{
			name:     "flag followed by another flag has no value",
			args:     []string{"-a", "-d", "dsn"},
			allowed:  []string{"-a"},
			expected: []string{"-a"},
		},
		{
			name:     "nothing allowed gives empty slice",
			args:     []string{"-a", "x"},
			allowed:  nil,
			expected: []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, FilterArgs(tc.args, tc.allowed))
		})
	}
}
