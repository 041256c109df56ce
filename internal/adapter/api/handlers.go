package api

import (
	"encoding/json"
	"net/http"

	"golang-ethmgr/internal/ethernet"
	"golang-ethmgr/internal/types"

	"github.com/go-chi/chi/v5"
	"github.com/sourcegraph/conc/pool"
)

// InterfaceResponse describes one port.
type InterfaceResponse struct {
	Interface       string                `json:"interface"`
	Name            string                `json:"name"`
	HardwareAddress string                `json:"hw_address,omitempty"`
	Status          string                `json:"status"`
	IPAssignment    string                `json:"ip_assignment"`
	ProxySettings   string                `json:"proxy_settings"`
	NetworkInfo     types.NetworkInfo     `json:"network_info"`
	LinkProperties  *types.LinkProperties `json:"link_properties,omitempty"`
	Listeners       int                   `json:"listeners"`
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) interfaceParam(w http.ResponseWriter, r *http.Request) (ethernet.Interface, bool) {
	name := chi.URLParam(r, "iface")
	iface, err := ethernet.ParseInterface(name)
	if err != nil {
		WriteNotFound(w, "interface "+name)
		return 0, false
	}
	return iface, true
}

func (s *Server) describe(iface ethernet.Interface) (*InterfaceResponse, error) {
	state, err := s.manager.Info(iface)
	if err != nil {
		return nil, err
	}
	return &InterfaceResponse{
		Interface:       iface.String(),
		Name:            state.Name(),
		HardwareAddress: state.HardwareAddress(),
		Status:          state.Status().String(),
		IPAssignment:    state.IPAssignment().String(),
		ProxySettings:   state.ProxySettings().String(),
		NetworkInfo:     state.NetworkInfo(),
		LinkProperties:  state.LinkProperties(),
		Listeners:       s.manager.ListenerCount(iface),
	}, nil
}

// handleList returns both ports. The snapshots are composed concurrently.
// GET /api/v1/interfaces
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	out := make([]*InterfaceResponse, len(ethernet.Interfaces))
	p := pool.New().WithErrors()
	for i, iface := range ethernet.Interfaces {
		p.Go(func() error {
			resp, err := s.describe(iface)
			if err != nil {
				return err
			}
			out[i] = resp
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		writeManagerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// GET /api/v1/interfaces/{iface}
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	iface, ok := s.interfaceParam(w, r)
	if !ok {
		return
	}
	resp, err := s.describe(iface)
	if err != nil {
		writeManagerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleRecord returns the snapshot as a persisted record.
// GET /api/v1/interfaces/{iface}/record
func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	iface, ok := s.interfaceParam(w, r)
	if !ok {
		return
	}
	state, err := s.manager.Info(iface)
	if err != nil {
		writeManagerError(w, err)
		return
	}
	data, err := state.MarshalJSON()
	if err != nil {
		WriteInternalError(w, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// GET /api/v1/interfaces/{iface}/configuration
func (s *Server) handleGetConfiguration(w http.ResponseWriter, r *http.Request) {
	iface, ok := s.interfaceParam(w, r)
	if !ok {
		return
	}
	cfg, err := s.manager.Configuration(iface)
	if err != nil {
		writeManagerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// PUT /api/v1/interfaces/{iface}/configuration
func (s *Server) handleSetConfiguration(w http.ResponseWriter, r *http.Request) {
	iface, ok := s.interfaceParam(w, r)
	if !ok {
		return
	}
	var cfg types.IPConfiguration
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		WriteInvalidRequest(w, "Invalid JSON: "+err.Error())
		return
	}
	if err := validateConfiguration(&cfg); err != nil {
		WriteError(w, http.StatusBadRequest, ErrCodeValidationFailed, err.Error())
		return
	}
	if err := s.manager.SetConfigurationFor(iface, &cfg); err != nil {
		writeManagerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// POST /api/v1/interfaces/{iface}/reconnect
func (s *Server) handleReconnect(w http.ResponseWriter, r *http.Request) {
	iface, ok := s.interfaceParam(w, r)
	if !ok {
		return
	}
	s.manager.Connect(iface)
	w.WriteHeader(http.StatusAccepted)
}

// POST /api/v1/interfaces/{iface}/teardown
func (s *Server) handleTeardown(w http.ResponseWriter, r *http.Request) {
	iface, ok := s.interfaceParam(w, r)
	if !ok {
		return
	}
	s.manager.Disconnect(iface)
	w.WriteHeader(http.StatusAccepted)
}
