package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"document": "/tmp/cv.json",
		"template": "modern",
		"paper": "letter",
		"autosave_delay_ms": 250,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cv.json", cfg.Document)
	assert.Equal(t, "modern", cfg.Template)
	assert.Equal(t, "letter", cfg.Paper)
	assert.Equal(t, 250, cfg.AutosaveDelayMS)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty config", Config{}, false},
		{"valid paper a4", Config{Paper: "a4"}, false},
		{"valid paper letter", Config{Paper: "letter"}, false},
		{"invalid paper", Config{Paper: "tabloid"}, true},
		{"negative autosave delay", Config{AutosaveDelayMS: -1}, true},
		{"negative preview delay", Config{PreviewDelayMS: -10}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Template: "selenite"}
	defaults := Config{
		Template:        "simple",
		Paper:           "a4",
		Addr:            "127.0.0.1:8188",
		AutosaveDelayMS: 1000,
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "selenite", merged.Template, "explicit value wins")
	assert.Equal(t, "a4", merged.Paper)
	assert.Equal(t, "127.0.0.1:8188", merged.Addr)
	assert.Equal(t, 1000, merged.AutosaveDelayMS)
}

func TestDelayHelpers(t *testing.T) {
	cfg := Config{AutosaveDelayMS: 250, PreviewDelayMS: 400}
	assert.Equal(t, 250*time.Millisecond, cfg.AutosaveDelay())
	assert.Equal(t, 400*time.Millisecond, cfg.PreviewDelay())

	var zero Config
	assert.Equal(t, time.Duration(0), zero.AutosaveDelay())
}
