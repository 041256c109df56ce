//go:build unit

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCommand(t *testing.T) {
	dir := t.TempDir()

	t.Run("ValidRecord", func(t *testing.T) {
		path := filepath.Join(dir, "eth0.json")
		record := `{"interface_status":1,"ip_assignment":0,"proxy_settings":0,"interface_name":"eth0","ip_address":"192.168.1.5","netmask":24}`
		require.NoError(t, os.WriteFile(path, []byte(record), 0600))

		var out bytes.Buffer
		decodeCmd.SetOut(&out)
		require.NoError(t, decodeCmd.RunE(decodeCmd, []string{path}))
		assert.Contains(t, out.String(), "eth0")
		assert.Contains(t, out.String(), "192.168.1.5/24")
	})

	t.Run("InvalidRecord", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"interface_status":7}`), 0600))
		assert.Error(t, decodeCmd.RunE(decodeCmd, []string{path}))
	})

	t.Run("MissingFile", func(t *testing.T) {
		assert.Error(t, decodeCmd.RunE(decodeCmd, []string{filepath.Join(dir, "missing.json")}))
	})
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`interfaces:
  primary:
    name: eth0
    dhcp: true
  plugged_in:
    name: eth0
    dhcp: true
`), 0644))

	_, err := loadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation error")
}
