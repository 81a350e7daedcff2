package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-d", "byteme.db"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-config=alt.json", "-d", "byteme.db"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-l"},
			allowedFlags: []string{"-l"},
			want:         []string{"-l"},
		},
		{
			name:         "next dash-prefixed token is not a value",
			args:         []string{"-d", "-l", "debug"},
			allowedFlags: []string{"-d", "-l"},
			want:         []string{"-d", "-l", "debug"},
		},
		{
			name:         "value that looks like a flag in equals form",
			args:         []string{"-d=--weird.db"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d=--weird.db"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	assert.Equal(t, "a.json", ConfigFileFlag([]string{"-c", "a.json", "-d", "x.db"}))
	assert.Equal(t, "b.json", ConfigFileFlag([]string{"-l", "info", "-config=b.json"}))
	assert.Equal(t, "", ConfigFileFlag([]string{"-d", "x.db"}))
	assert.Equal(t, "", ConfigFileFlag(nil))
}
