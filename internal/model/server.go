package model

import (
	"context"
	"net"
)

// SecurityLayer abstracts how the server binds its listening socket,
// so TLS and plain transports are interchangeable at startup.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is the lifecycle contract for the HTTP front end.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
