// Package resolv reads the host resolver configuration using miekg/dns.
package resolv

import (
	"bytes"
	"fmt"

	"golang-ethmgr/internal/port"

	"github.com/miekg/dns"
)

// DefaultPath is the standard resolver configuration file.
const DefaultPath = "/etc/resolv.conf"

// ReaderAdapter implements the ResolverConfigReader port.
type ReaderAdapter struct {
	path  string
	files port.FileManager
}

// Ensure ReaderAdapter implements the ResolverConfigReader port
var _ port.ResolverConfigReader = (*ReaderAdapter)(nil)

// NewReaderAdapter creates a reader for the resolv.conf at path.
func NewReaderAdapter(path string, files port.FileManager) *ReaderAdapter {
	if path == "" {
		path = DefaultPath
	}
	return &ReaderAdapter{path: path, files: files}
}

// Nameservers returns the nameserver entries in file order.
func (r *ReaderAdapter) Nameservers() ([]string, error) {
	data, err := r.files.ReadFile(r.path)
	if err != nil {
		return nil, err
	}
	config, err := dns.ClientConfigFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.path, err)
	}
	return config.Servers, nil
}
