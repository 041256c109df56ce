//go:build unit

package config

import (
	"net/netip"
	"os"
	"path/filepath"
	"testing"

	"golang-ethmgr/internal/pkg/logging"
	"golang-ethmgr/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Logging: logging.LogConfig{
			Level:  "info",
			Format: "compact",
		},
		Interfaces: Interfaces{
			Primary: InterfaceConfig{Name: "eth0", DHCP: true},
			PluggedIn: InterfaceConfig{
				Name: "eth1",
				Static: &StaticConfig{
					IP:      "192.168.1.100",
					Netmask: "255.255.255.0",
					Gateway: "192.168.1.1",
					DNS:     []string{"8.8.8.8"},
				},
			},
		},
		StateDir:   DefaultStateDir,
		ResolvConf: DefaultResolvConf,
		API:        APIConfig{Listen: "127.0.0.1:8080"},
	}
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("ValidConfig", func(t *testing.T) {
		configContent := `logging:
  level: info
  format: simple

interfaces:
  primary:
    name: eth0
    dhcp: true
  plugged_in:
    name: eth1
    static:
      ip: 192.168.1.100
      netmask: 255.255.255.0
      gateway: 192.168.1.1
      dns: [8.8.8.8, 8.8.4.4]

api:
  listen: 127.0.0.1:8080
`
		configFile := filepath.Join(tempDir, "valid.yml")
		err := os.WriteFile(configFile, []byte(configContent), 0644)
		require.NoError(t, err)

		config, err := Load(configFile)
		require.NoError(t, err)
		assert.Equal(t, "info", config.Logging.Level)
		assert.Equal(t, "simple", config.Logging.Format)
		assert.Equal(t, DefaultStateDir, config.StateDir)
		assert.Equal(t, DefaultResolvConf, config.ResolvConf)
		assert.Equal(t, "127.0.0.1:8080", config.API.Listen)

		assert.Equal(t, "eth0", config.Interfaces.Primary.Name)
		assert.True(t, config.Interfaces.Primary.DHCP)
		assert.Nil(t, config.Interfaces.Primary.Static)

		eth1 := config.Interfaces.PluggedIn
		assert.Equal(t, "eth1", eth1.Name)
		require.NotNil(t, eth1.Static)
		assert.Equal(t, "192.168.1.100", eth1.Static.IP)
		assert.Equal(t, []string{"8.8.8.8", "8.8.4.4"}, eth1.Static.DNS)
		assert.NoError(t, config.Validate())
	})

	t.Run("NonExistentFile", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		configContent := `invalid: yaml: content: [
`
		configFile := filepath.Join(tempDir, "invalid.yml")
		err := os.WriteFile(configFile, []byte(configContent), 0644)
		require.NoError(t, err)

		_, err = Load(configFile)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"MissingName", func(c *Config) { c.Interfaces.PluggedIn.Name = "" }, "interface plugged_in: name is required"},
		{"SameInterface", func(c *Config) { c.Interfaces.PluggedIn.Name = "eth0" }, "cannot both use interface eth0"},
		{"WithoutDHCPOrStatic", func(c *Config) { c.Interfaces.Primary.DHCP = false }, "must specify either dhcp or static configuration"},
		{"BothDHCPAndStatic", func(c *Config) { c.Interfaces.PluggedIn.DHCP = true }, "cannot specify both dhcp and static configuration"},
		{"StaticMissingIP", func(c *Config) { c.Interfaces.PluggedIn.Static.IP = "" }, "static IP address is required"},
		{"StaticMissingNetmask", func(c *Config) { c.Interfaces.PluggedIn.Static.Netmask = "" }, "static netmask is required"},
		{"NonContiguousNetmask", func(c *Config) { c.Interfaces.PluggedIn.Static.Netmask = "255.0.255.0" }, "non-contiguous netmask"},
		{"GatewayOffSubnet", func(c *Config) { c.Interfaces.PluggedIn.Static.Gateway = "10.0.0.1" }, "is outside"},
		{"TooManyDNS", func(c *Config) { c.Interfaces.PluggedIn.Static.DNS = []string{"1.1.1.1", "8.8.8.8", "9.9.9.9"} }, "failed max=2 validation"},
		{"InvalidLogLevel", func(c *Config) { c.Logging.Level = "verbose" }, "Logging.Level: failed oneof"},
		{"InvalidListen", func(c *Config) { c.API.Listen = "not an address" }, "API.Listen: failed hostname_port validation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("StaticConfigWithOptionalGateway", func(t *testing.T) {
		c := validConfig()
		c.Interfaces.PluggedIn.Static.Gateway = ""
		assert.NoError(t, c.Validate())
	})

	t.Run("EmptyListenDisablesAPI", func(t *testing.T) {
		c := validConfig()
		c.API.Listen = ""
		assert.NoError(t, c.Validate())
	})
}

func TestInterfaceConfig_IPConfiguration(t *testing.T) {
	t.Run("DHCP", func(t *testing.T) {
		cfg, err := InterfaceConfig{Name: "eth0", DHCP: true}.IPConfiguration()
		require.NoError(t, err)
		assert.Equal(t, types.NewIPConfiguration(), cfg)
	})

	t.Run("Static", func(t *testing.T) {
		cfg, err := validConfig().Interfaces.PluggedIn.IPConfiguration()
		require.NoError(t, err)
		assert.Equal(t, types.AssignmentStatic, cfg.IPAssignment)
		require.NotNil(t, cfg.StaticIP)
		assert.Equal(t, netip.MustParsePrefix("192.168.1.100/24"), cfg.StaticIP.Address)
		assert.Equal(t, netip.MustParseAddr("192.168.1.1"), cfg.StaticIP.Gateway)
		assert.Equal(t, []netip.Addr{netip.MustParseAddr("8.8.8.8")}, cfg.StaticIP.DNSServers)
	})
}

func TestLoad_TOML(t *testing.T) {
	configContent := `state_dir = "/run/ethmgr"

[logging]
level = "debug"
format = "json"

[interfaces.primary]
name = "eth0"
dhcp = true

[interfaces.plugged_in]
name = "usb0"

[interfaces.plugged_in.static]
ip = "10.0.0.2"
netmask = "255.0.0.0"
dns = ["10.0.0.1"]
`
	configFile := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))

	config, err := Load(configFile)
	require.NoError(t, err)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "/run/ethmgr", config.StateDir)
	assert.Equal(t, "eth0", config.Interfaces.Primary.Name)
	assert.True(t, config.Interfaces.Primary.DHCP)
	require.NotNil(t, config.Interfaces.PluggedIn.Static)
	assert.Equal(t, "10.0.0.2", config.Interfaces.PluggedIn.Static.IP)
	assert.Equal(t, []string{"10.0.0.1"}, config.Interfaces.PluggedIn.Static.DNS)
	assert.NoError(t, config.Validate())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	configContent := `interfaces:
  primary:
    name: eth0
    dhcp: true
  plugged_in:
    name: eth1
    dhcp: true
api:
  listen: 127.0.0.1:8080
`
	configFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))

	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvStateDir, "/tmp/ethmgr")
	t.Setenv(EnvAPIListen, "")

	config, err := Load(configFile)
	require.NoError(t, err)
	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, "/tmp/ethmgr", config.StateDir)
	assert.Equal(t, DefaultResolvConf, config.ResolvConf)
	assert.Empty(t, config.API.Listen)
}
