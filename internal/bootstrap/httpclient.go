package bootstrap

import (
	"net"
	"net/http"
	"time"
)

// InitHTTPClient tunes connection pooling only. The directory is one large
// download, so neither the client nor the transport caps request time.
func InitHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
		MaxIdleConns:        4,
		IdleConnTimeout:     90 * time.Second,
	}
	return &http.Client{Transport: transport}
}
