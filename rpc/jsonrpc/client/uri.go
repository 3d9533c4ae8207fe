package client

import (
	"fmt"
	"net/url"
)

const (
	protoHTTP  = "http"
	protoHTTPS = "https"
	protoWSS   = "wss"
	protoWS    = "ws"

	// Path the node serves its websocket endpoint on.
	defaultWSPath = "/ws"
)

// Parsed URL structure
type parsedURL struct {
	url.URL
}

// Parse URL and set defaults
func newParsedURL(remoteAddr string) (*parsedURL, error) {
	u, err := url.Parse(remoteAddr)
	if err != nil {
		return nil, err
	}

	// default to http if nothing specified
	if u.Scheme == "" {
		u.Scheme = protoHTTP
	}

	return &parsedURL{*u}, nil
}

// Change protocol to HTTP for unknown protocols - useful for RPC connections
func (u *parsedURL) SetDefaultSchemeHTTP() {
	switch u.Scheme {
	case protoHTTP, protoHTTPS:
		// known protocols not changed
	case protoWS:
		u.Scheme = protoHTTP
	case protoWSS:
		u.Scheme = protoHTTPS
	default:
		u.Scheme = protoHTTP
	}
}

// SetSchemeWS flips the scheme to the websocket equivalent, preserving the
// security of the original scheme.
func (u *parsedURL) SetSchemeWS() {
	switch u.Scheme {
	case protoWS, protoWSS:
		// already websocket
	case protoHTTPS:
		u.Scheme = protoWSS
	default:
		u.Scheme = protoWS
	}
}

// WebsocketEndpoint derives the websocket URL from a remote node address:
// the scheme is mapped http→ws and https→wss, and the path is forced to /ws
// unless the address already carries one.
func WebsocketEndpoint(remote string) (string, error) {
	u, err := newParsedURL(remote)
	if err != nil {
		return "", fmt.Errorf("invalid remote %q: %w", remote, err)
	}
	u.SetSchemeWS()
	if u.Path == "" || u.Path == "/" {
		u.Path = defaultWSPath
	}
	return u.String(), nil
}
