package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-public-url externally reachable base URL
//	-d database DSN
//	-db-driver database driver (postgres|sqlite)
//	-objects-backend object store backend (fs|http)
//	-objects-dir fs object store root
//	-objects-url http blob gateway base URL
//	-c/-config JSON or YAML config file path
//	-quarantine-ttl quarantine TTL (e.g., "72h")
//	-token-issuer token issuer name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sweep-interval in-process sweep period (e.g., "5m"), 0 disables
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("quarantine-vault", flag.ContinueOnError)

	var serverAddress NetAddress
	var publicURL string
	var databaseDSN, databaseDriver string
	var objectsBackend, objectsDir, objectsURL string
	var jsonConfigPath string
	var quarantineTTL time.Duration
	var tokenIssuer string
	var requestTimeout time.Duration
	var sweepInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&publicURL, "public-url", "", "Externally reachable base URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (postgres|sqlite)")
	fs.StringVar(&objectsBackend, "objects-backend", "", "Object store backend (fs|http)")
	fs.StringVar(&objectsDir, "objects-dir", "", "Object store root directory")
	fs.StringVar(&objectsURL, "objects-url", "", "HTTP blob gateway base URL")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON or YAML config file path (alias)")
	fs.DurationVar(&quarantineTTL, "quarantine-ttl", 0, "Quarantine TTL (e.g., 72h)")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Sweep interval (e.g., 5m), 0 disables")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenIssuer:   tokenIssuer,
			QuarantineTTL: quarantineTTL,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
			Objects: Objects{
				Backend: objectsBackend,
				Dir:     objectsDir,
				BaseURL: objectsURL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			PublicURL:      publicURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
