package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openband/bandwire/pkg/band"
	"github.com/openband/bandwire/pkg/config"
)

func TestInitializeConfig(t *testing.T) {
	t.Run("writes defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, initializeConfig(path))
		assert.FileExists(t, path)

		cfg, err := config.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, band.DefaultProfileSize, cfg.Records.ProfileSize)
	})

	t.Run("creates nested directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a", "b", "config.yaml")
		require.NoError(t, initializeConfig(path))
		assert.FileExists(t, path)
	})
}

func TestReadPayloadHex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clock.hex")
	require.NoError(t, os.WriteFile(path, []byte("ea07 0800\n0100 1f00\n0000 0000 0000 0000"), 0600))

	data, err := readPayload(path, true)
	require.NoError(t, err)
	assert.Equal(t, band.SystemTimeSize, len(data))

	var st band.SystemTime
	require.NoError(t, st.UnmarshalBinary(data))
	assert.Equal(t, uint16(2026), st.Year)
	assert.Equal(t, uint16(31), st.Day)
}
