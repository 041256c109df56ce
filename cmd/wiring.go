package cmd

import (
	"fmt"

	"golang-ethmgr/internal/adapter/infrastructure/file"
	"golang-ethmgr/internal/adapter/infrastructure/gateway"
	"golang-ethmgr/internal/adapter/infrastructure/network"
	"golang-ethmgr/internal/adapter/infrastructure/resolv"
	"golang-ethmgr/internal/adapter/local"
	"golang-ethmgr/internal/adapter/store"
	"golang-ethmgr/internal/ethernet"
	"golang-ethmgr/internal/pkg/config"
)

// loadConfig loads and validates the configuration file.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}
	return cfg, nil
}

func localSettings(ifaceConfig config.InterfaceConfig) (local.Settings, error) {
	defaults, err := ifaceConfig.IPConfiguration()
	if err != nil {
		return local.Settings{}, err
	}
	return local.Settings{Name: ifaceConfig.Name, Defaults: defaults}, nil
}

// createManager wires the in-process configuration source to a manager.
// Both must be closed by the caller, manager first.
func createManager(cfg *config.Config) (*ethernet.Manager, *local.Source, error) {
	networkMgr := network.NewManagerAdapter()
	fileMgr := file.NewManagerAdapter()

	records, err := store.New(cfg.StateDir, fileMgr)
	if err != nil {
		return nil, nil, err
	}

	primary, err := localSettings(cfg.Interfaces.Primary)
	if err != nil {
		return nil, nil, err
	}
	pluggedIn, err := localSettings(cfg.Interfaces.PluggedIn)
	if err != nil {
		return nil, nil, err
	}

	source, err := local.NewSource(local.Dependencies{
		Network:  networkMgr,
		Records:  records,
		Resolver: resolv.NewReaderAdapter(cfg.ResolvConf, fileMgr),
		Gateway:  gateway.NewDiscovererAdapter(),
	}, primary, pluggedIn)
	if err != nil {
		return nil, nil, err
	}

	return ethernet.NewManager(source, networkMgr), source, nil
}
