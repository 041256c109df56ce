package api

import (
	"errors"
	"fmt"

	"golang-ethmgr/internal/types"
)

func validateConfiguration(cfg *types.IPConfiguration) error {
	if _, err := types.IPAssignmentFromOrdinal(int(cfg.IPAssignment)); err != nil {
		return err
	}
	if _, err := types.ProxySettingsFromOrdinal(int(cfg.ProxySettings)); err != nil {
		return err
	}
	if cfg.IPAssignment == types.AssignmentStatic {
		if cfg.StaticIP == nil || !cfg.StaticIP.Address.IsValid() {
			return errors.New("static assignment requires static_ip.address")
		}
		if gw := cfg.StaticIP.Gateway; gw.IsValid() && !cfg.StaticIP.Address.Masked().Contains(gw) {
			return fmt.Errorf("gateway %s is outside %s", gw, cfg.StaticIP.Address)
		}
	}
	if cfg.ProxySettings == types.ProxyStatic {
		if cfg.HTTPProxy == nil || cfg.HTTPProxy.Host == "" || cfg.HTTPProxy.Port <= 0 {
			return errors.New("static proxy requires http_proxy host and port")
		}
	}
	return nil
}
