package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		names []string
		want  []string
	}{
		{
			name:  "short flag with separate value",
			args:  []string{"-c", "conf.json", "-n", "50"},
			names: []string{"c", "config"},
			want:  []string{"-c", "conf.json"},
		},
		{
			name:  "double dash with equals",
			args:  []string{"--config=alt.yaml", "-n", "50"},
			names: []string{"c", "config"},
			want:  []string{"--config=alt.yaml"},
		},
		{
			name:  "unknown flags and positionals ignored",
			args:  []string{"-x", "1", "--y=2", "positional"},
			names: []string{"c"},
			want:  []string{},
		},
		{
			name:  "flag without value at end is kept as-is",
			args:  []string{"-c"},
			names: []string{"c"},
			want:  []string{"-c"},
		},
		{
			name:  "next dash token is not consumed as value",
			args:  []string{"-c", "-seed", "7"},
			names: []string{"c", "seed"},
			want:  []string{"-c", "-seed", "7"},
		},
		{
			name:  "repeated flag keeps order",
			args:  []string{"-n", "10", "--n", "20"},
			names: []string{"n"},
			want:  []string{"-n", "10", "--n", "20"},
		},
		{
			name:  "lone dashes are not flags",
			args:  []string{"-", "--", "-n", "5"},
			names: []string{"n"},
			want:  []string{"-n", "5"},
		},
		{
			name:  "empty args",
			args:  []string{},
			names: []string{"c"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.names...))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	assert.Equal(t, "/path/short.json", ConfigFileFlag([]string{"-c", "/path/short.json"}))
	assert.Equal(t, "/path/long.yaml", ConfigFileFlag([]string{"-config", "/path/long.yaml", "-n", "3"}))
	assert.Empty(t, ConfigFileFlag([]string{"-x", "1"}))
	assert.Equal(t, "/2.json", ConfigFileFlag([]string{"-c", "/1.json", "--config=/2.json"}))
}
