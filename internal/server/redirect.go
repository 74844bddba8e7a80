package server

import (
	"net"
	"net/http"
)

// httpsRedirect answers every request with 307 Temporary Redirect to the
// same host and URI on the HTTPS listener. The port is taken from
// httpsAddress and dropped when it is the default 443.
func httpsRedirect(httpsAddress string) http.Handler {
	_, port, err := net.SplitHostPort(httpsAddress)
	if err != nil || port == "443" {
		port = ""
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host := r.Host
		if h, _, splitErr := net.SplitHostPort(host); splitErr == nil {
			host = h
		}

		if port != "" {
			host = net.JoinHostPort(host, port)
		}

		http.Redirect(w, r, "https://"+host+r.URL.RequestURI(), http.StatusTemporaryRedirect)
	})
}
