package config

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
	"os"
	"path/filepath"
	"strings"

	"golang-ethmgr/internal/pkg/logging"
	"golang-ethmgr/internal/types"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	DefaultStateDir   = "/var/lib/ethmgr"
	DefaultResolvConf = "/etc/resolv.conf"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// InterfaceConfig binds a port to a kernel interface and gives the
// configuration it starts with.
type InterfaceConfig struct {
	Name   string        `yaml:"name" toml:"name" validate:"required,max=15,excludesall=/ "`
	DHCP   bool          `yaml:"dhcp,omitempty" toml:"dhcp,omitempty"`
	Static *StaticConfig `yaml:"static,omitempty" toml:"static,omitempty"`
}

// StaticConfig represents static IP configuration
type StaticConfig struct {
	IP      string   `yaml:"ip" toml:"ip" validate:"omitempty,ipv4"`
	Netmask string   `yaml:"netmask" toml:"netmask" validate:"omitempty,ipv4"`
	Gateway string   `yaml:"gateway" toml:"gateway" validate:"omitempty,ipv4"`
	DNS     []string `yaml:"dns,omitempty" toml:"dns,omitempty" validate:"max=2,dive,ip"`
}

// Interfaces holds the two ethernet ports.
type Interfaces struct {
	Primary   InterfaceConfig `yaml:"primary" toml:"primary"`
	PluggedIn InterfaceConfig `yaml:"plugged_in" toml:"plugged_in"`
}

// APIConfig configures the HTTP API. An empty Listen disables it.
type APIConfig struct {
	Listen string `yaml:"listen" toml:"listen" validate:"omitempty,hostname_port"`
}

// Config represents the main configuration structure
type Config struct {
	Logging    logging.LogConfig `yaml:"logging" toml:"logging"`
	Interfaces Interfaces        `yaml:"interfaces" toml:"interfaces"`
	StateDir   string            `yaml:"state_dir" toml:"state_dir"`
	ResolvConf string            `yaml:"resolv_conf" toml:"resolv_conf"`
	API        APIConfig         `yaml:"api" toml:"api"`
}

// Environment variables that override file settings.
const (
	EnvLogLevel   = "ETHMGR_LOG_LEVEL"
	EnvStateDir   = "ETHMGR_STATE_DIR"
	EnvResolvConf = "ETHMGR_RESOLV_CONF"
	EnvAPIListen  = "ETHMGR_API_LISTEN"
)

// Load loads configuration from a YAML file, or a TOML file when the path
// ends in .toml. Environment overrides are applied after parsing.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var config Config
	if strings.EqualFold(filepath.Ext(configPath), ".toml") {
		err = toml.Unmarshal(data, &config)
	} else {
		err = yaml.Unmarshal(data, &config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	config.applyEnv()
	config.applyDefaults()

	return &config, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Logging.Level = v
	}
	if v, ok := os.LookupEnv(EnvStateDir); ok {
		c.StateDir = v
	}
	if v, ok := os.LookupEnv(EnvResolvConf); ok {
		c.ResolvConf = v
	}
	if v, ok := os.LookupEnv(EnvAPIListen); ok {
		c.API.Listen = v
	}
}

func (c *Config) applyDefaults() {
	if c.StateDir == "" {
		c.StateDir = DefaultStateDir
	}
	if c.ResolvConf == "" {
		c.ResolvConf = DefaultResolvConf
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	ports := []struct {
		key    string
		config InterfaceConfig
	}{
		{"primary", c.Interfaces.Primary},
		{"plugged_in", c.Interfaces.PluggedIn},
	}
	for _, p := range ports {
		if p.config.Name == "" {
			return fmt.Errorf("interface %s: name is required", p.key)
		}
		if err := p.config.validate(); err != nil {
			return err
		}
	}
	if c.Interfaces.Primary.Name == c.Interfaces.PluggedIn.Name {
		return fmt.Errorf("primary and plugged_in cannot both use interface %s", c.Interfaces.Primary.Name)
	}

	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func (i InterfaceConfig) validate() error {
	if !i.DHCP && i.Static == nil {
		return fmt.Errorf("interface %s: must specify either dhcp or static configuration", i.Name)
	}
	if i.DHCP && i.Static != nil {
		return fmt.Errorf("interface %s: cannot specify both dhcp and static configuration", i.Name)
	}
	if i.Static != nil {
		if err := validateStaticConfig(i.Name, i.Static); err != nil {
			return err
		}
		if _, err := i.IPConfiguration(); err != nil {
			return fmt.Errorf("interface %s: %w", i.Name, err)
		}
	}
	return nil
}

func validateStaticConfig(interfaceName string, static *StaticConfig) error {
	if static.IP == "" {
		return fmt.Errorf("interface %s: static IP address is required", interfaceName)
	}
	if static.Netmask == "" {
		return fmt.Errorf("interface %s: static netmask is required", interfaceName)
	}
	return nil
}

func formatValidationErrors(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s validation", field, fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s validation", field, fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// IPConfiguration converts the interface settings to the configuration a
// source starts with.
func (i InterfaceConfig) IPConfiguration() (types.IPConfiguration, error) {
	config := types.NewIPConfiguration()
	if i.Static == nil {
		return config, nil
	}

	addr, err := netip.ParseAddr(i.Static.IP)
	if err != nil {
		return config, fmt.Errorf("invalid static IP %q: %w", i.Static.IP, err)
	}
	maskIP := net.ParseIP(i.Static.Netmask).To4()
	if maskIP == nil {
		return config, fmt.Errorf("invalid netmask %q", i.Static.Netmask)
	}
	ones, bits := net.IPMask(maskIP).Size()
	if bits == 0 {
		return config, fmt.Errorf("non-contiguous netmask %q", i.Static.Netmask)
	}

	static := &types.StaticIPConfig{Address: netip.PrefixFrom(addr, ones)}
	if i.Static.Gateway != "" {
		gw, err := netip.ParseAddr(i.Static.Gateway)
		if err != nil {
			return config, fmt.Errorf("invalid gateway %q: %w", i.Static.Gateway, err)
		}
		if !static.Address.Masked().Contains(gw) {
			return config, fmt.Errorf("gateway %s is outside %s", gw, static.Address.Masked())
		}
		static.Gateway = gw
	}
	for _, server := range i.Static.DNS {
		dns, err := netip.ParseAddr(server)
		if err != nil {
			return config, fmt.Errorf("invalid dns server %q: %w", server, err)
		}
		static.DNSServers = append(static.DNSServers, dns)
	}

	config.IPAssignment = types.AssignmentStatic
	config.StaticIP = static
	return config, nil
}
