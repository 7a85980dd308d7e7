// Package discovery advertises the server on the local network over mDNS.
package discovery

import (
	"fmt"
	"net"

	"github.com/hashicorp/mdns"
)

const ServiceType = "_shapes._tcp"

type Advertiser struct {
	server *mdns.Server
}

// Advertise announces instance on port until Shutdown is called.
func Advertise(instance string, port int) (*Advertiser, error) {
	service, err := newService(instance, "", port, nil)
	if err != nil {
		return nil, err
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("start mdns server: %w", err)
	}
	return &Advertiser{server: server}, nil
}

func (a *Advertiser) Shutdown() error {
	return a.server.Shutdown()
}

// newService builds the service record. An empty host uses the OS hostname
// and nil ips resolves the host's addresses.
func newService(instance, host string, port int, ips []net.IP) (*mdns.MDNSService, error) {
	service, err := mdns.NewMDNSService(instance, ServiceType, "", host, port, ips, []string{"shapes editor"})
	if err != nil {
		return nil, fmt.Errorf("create mdns service: %w", err)
	}
	return service, nil
}
