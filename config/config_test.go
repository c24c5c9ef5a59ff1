package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zentry/appicon/icon"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, 1024, cfg.Design.Size)
	assert.Equal(t, icon.RGB(10, 14, 39), cfg.Design.Palette.Background)
	assert.Equal(t, icon.RGB(255, 215, 0), cfg.Design.Palette.Accent)
	assert.Equal(t, "assets/icon.png", cfg.Output.Path)
	assert.Equal(t, "none", cfg.Journal.Type)
	assert.Equal(t, icon.DefaultICOSizes, cfg.ICOSizes())
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "bad design",
			mutate:  func(c *Config) { c.Design.Size = -1 },
			wantErr: true,
			errMsg:  "design.size must be positive",
		},
		{
			name:    "missing output",
			mutate:  func(c *Config) { c.Output.Path = "" },
			wantErr: true,
			errMsg:  "output.path is required",
		},
		{
			name:    "ico size too large",
			mutate:  func(c *Config) { c.Output.ICOSizes = []int{16, 512} },
			wantErr: true,
			errMsg:  "output.ico_sizes",
		},
		{
			name:    "unknown journal",
			mutate:  func(c *Config) { c.Journal.Type = "postgres" },
			wantErr: true,
			errMsg:  "journal.type must be",
		},
		{
			name:    "sqlite without path",
			mutate:  func(c *Config) { c.Journal.Type = "sqlite" },
			wantErr: true,
			errMsg:  "journal.path required for sqlite type",
		},
		{
			name:   "csv with path",
			mutate: func(c *Config) { c.Journal = JournalConfig{Type: "csv", Path: "renders.csv"} },
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: true,
			errMsg:  "log.level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: true,
			errMsg:  "log.format must be",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		ext  string
	}{
		{"json format", ".json"},
		{"yaml format", ".yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Output.ICO = "assets/icon.ico"
			path := filepath.Join(tmpDir, "test"+tt.ext)

			require.NoError(t, cfg.SaveToFile(path))

			_, err := os.Stat(path)
			require.NoError(t, err)

			loaded, err := LoadFromFile(path)
			require.NoError(t, err)

			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  path: out/app.png\nlog:\n  level: debug\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "out/app.png", cfg.Output.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, icon.DefaultDesign(), cfg.Design)
}

func TestLoadCustomPalette(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	body := "design:\n  palette:\n    background: '#000000'\n    accent: '#FFFFFF'\n    bullish: '#00FF00'\n    bearish: '#FF0000'\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, icon.RGB(0, 0, 0), cfg.Design.Palette.Background)
	assert.Equal(t, icon.RGB(0, 255, 0), cfg.Design.Palette.Bullish)
	assert.Len(t, cfg.Design.Candles, 4)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadRejectsInvalidColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("design:\n  palette:\n    accent: 'gold'\n"), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}
