package discovery

import (
	"net"
	"testing"
)

func TestNewService(t *testing.T) {
	svc, err := newService("studio", "studio.local.", 8080, []net.IP{net.IPv4(192, 168, 1, 20)})
	if err != nil {
		t.Fatal(err)
	}
	if svc.Service != ServiceType || svc.Port != 8080 || svc.Instance != "studio" {
		t.Errorf("service = %+v", svc)
	}
}

func TestNewServiceRejectsRelativeHost(t *testing.T) {
	if _, err := newService("studio", "studio", 8080, []net.IP{net.IPv4(127, 0, 0, 1)}); err == nil {
		t.Error("expected error for a host name that is not fully qualified")
	}
}
