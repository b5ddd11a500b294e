package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("HERBWALA_DB overrides database path", func(t *testing.T) {
		t.Setenv("HERBWALA_DB", "/tmp/herbwala-test.db")

		cfg := &Config{}
		cfg.applyEnvOverrides()

		assert.Equal(t, "/tmp/herbwala-test.db", cfg.Data.DatabasePath)
		assert.Equal(t, "/tmp/herbwala-test.db", cfg.DatabasePath())
	})

	t.Run("HERBWALA_DATA_DIR overrides data dir", func(t *testing.T) {
		t.Setenv("HERBWALA_DATA_DIR", "/srv/shop")

		cfg := &Config{}
		cfg.applyEnvOverrides()

		assert.Equal(t, "/srv/shop", cfg.DataDir())
	})

	t.Run("HERBWALA_WHATSAPP overrides contact phone", func(t *testing.T) {
		t.Setenv("HERBWALA_WHATSAPP", "+92 311 0000000")

		cfg := &Config{Contact: ContactConfig{WhatsApp: "from-file"}}
		cfg.applyEnvOverrides()

		assert.Equal(t, "+92 311 0000000", cfg.Contact.WhatsApp)
	})

	t.Run("HERBWALA_ORDER_EMAIL overrides contact email", func(t *testing.T) {
		t.Setenv("HERBWALA_ORDER_EMAIL", "sales@example.com")

		cfg := &Config{}
		cfg.applyEnvOverrides()

		assert.Equal(t, "sales@example.com", cfg.Contact.OrderEmail)
	})

	t.Run("HERBWALA_THEME overrides theme", func(t *testing.T) {
		t.Setenv("HERBWALA_THEME", "dark")

		cfg := &Config{}
		cfg.applyEnvOverrides()

		assert.Equal(t, "dark", cfg.UI.Theme)
	})

	t.Run("empty env vars leave config untouched", func(t *testing.T) {
		t.Setenv("HERBWALA_DB", "")
		t.Setenv("HERBWALA_THEME", "")

		cfg := &Config{
			Data: DataConfig{DatabasePath: "keep.db"},
			UI:   UIConfig{Theme: "light"},
		}
		cfg.applyEnvOverrides()

		assert.Equal(t, "keep.db", cfg.Data.DatabasePath)
		assert.Equal(t, "light", cfg.UI.Theme)
	})
}

func TestEnvOverridesApplyThroughLoad(t *testing.T) {
	t.Run("with config file", func(t *testing.T) {
		t.Setenv("HERBWALA_WHATSAPP", "+92 399 9999999")

		path := filepath.Join(t.TempDir(), "config.yaml")
		cfg := DefaultConfig()
		cfg.Contact.WhatsApp = "+92 300 1111111"
		require.NoError(t, cfg.Save(path))

		loaded, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "+92 399 9999999", loaded.Contact.WhatsApp)
	})

	t.Run("without config file", func(t *testing.T) {
		t.Setenv("HERBWALA_WHATSAPP", "+92 399 9999999")

		loaded, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "+92 399 9999999", loaded.Contact.WhatsApp)
	})
}
