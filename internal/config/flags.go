package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// flagParser parses command-line arguments into a partial config and
// returns the positional arguments left after the flags.
type flagParser func(args []string) (*StructuredConfig, []string, error)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseServerFlags parses the server flags.
//
// Flags:
//
//	-a server address in format [host]:port
//	-https-address HTTPS server address in format [host]:port
//	-tls-cert / -tls-key certificate and key PEM files
//	-autocert-hosts comma separated host names for ACME certificates
//	-autocert-cache-dir ACME certificate cache directory
//	-d in-memory database DSN
//	-t accepted access token
//	-c/-config json file path with configs
//	-log-level log level
//	-read-header-timeout header read timeout (e.g., "5s")
//	-shutdown-timeout graceful shutdown timeout (e.g., "10s")
func parseServerFlags(args []string) (*StructuredConfig, []string, error) {
	var serverAddress, httpsAddress NetAddress
	var certFile, keyFile string
	var autocertHosts, autocertCacheDir string
	var databaseDSN string
	var token string
	var jsonConfigPath string
	var logLevel string
	var readHeaderTimeout, shutdownTimeout time.Duration

	fs := flag.NewFlagSet("user-keeper-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&httpsAddress, "https-address", "HTTPS net address host:port")
	fs.StringVar(&certFile, "tls-cert", "", "TLS certificate file")
	fs.StringVar(&keyFile, "tls-key", "", "TLS key file")
	fs.StringVar(&autocertHosts, "autocert-hosts", "", "Comma separated hosts for ACME certificates")
	fs.StringVar(&autocertCacheDir, "autocert-cache-dir", "", "ACME certificate cache directory")
	fs.StringVar(&databaseDSN, "d", "", "In-memory database DSN")
	fs.StringVar(&token, "t", "", "Accepted access token")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&readHeaderTimeout, "read-header-timeout", 0, "Header read timeout (e.g., 5s)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return &StructuredConfig{
		App: App{
			Token: token,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:  serverAddress.String(),
			HTTPSAddress: httpsAddress.String(),
			TLS: TLS{
				CertFile:         certFile,
				KeyFile:          keyFile,
				AutocertHosts:    splitList(autocertHosts),
				AutocertCacheDir: autocertCacheDir,
			},
			ReadHeaderTimeout: readHeaderTimeout,
			ShutdownTimeout:   shutdownTimeout,
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}

// parseClientFlags parses the client flags.
//
// Flags:
//
//	-a server base URL
//	-t access token
//	-timeout request timeout (e.g., "10s")
//	-insecure skip server certificate verification
//	-c/-config json file path with configs
//	-log-level log level
func parseClientFlags(args []string) (*StructuredConfig, []string, error) {
	var address, token, jsonConfigPath, logLevel string
	var timeout time.Duration
	var insecure bool

	fs := flag.NewFlagSet("user-keeper-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&address, "a", "", "Server base URL")
	fs.StringVar(&token, "t", "", "Access token")
	fs.DurationVar(&timeout, "timeout", 0, "Request timeout (e.g., 10s)")
	fs.BoolVar(&insecure, "insecure", false, "Skip server certificate verification")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return &StructuredConfig{
		Adapter: Adapter{
			Address:        address,
			Token:          token,
			RequestTimeout: timeout,
			Insecure:       insecure,
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host listens on every interface. It validates the
// port range, checks IP correctness unless host is empty or "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
