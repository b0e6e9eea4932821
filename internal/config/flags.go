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

// optionalBool is a flag.Value that remembers whether it was set, so that an
// explicit -migrate=false can be told apart from an absent flag.
type optionalBool struct {
	value *bool
}

func (b *optionalBool) String() string {
	if b.value == nil {
		return ""
	}
	return strconv.FormatBool(*b.value)
}

func (b *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.value = &v
	return nil
}

func (b *optionalBool) IsBoolFlag() bool { return true }

// ParseFlags parses server configuration flags from args (without the
// program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-migrate apply embedded migrations on startup
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-force-https redirect plain HTTP requests to HTTPS
//	-tls-cert TLS certificate file
//	-tls-key TLS private key file
//	-rate-limit requests per minute per client IP (0 disables)
//	-log-level log level
//	-log-file log file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	var serverAddress NetAddress
	var autoMigrate optionalBool
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var forceHTTPS bool
	var tlsCert, tlsKey string
	var rateLimit int
	var logLevel, logFile string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.Var(&autoMigrate, "migrate", "Apply embedded migrations on startup")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&forceHTTPS, "force-https", false, "Redirect plain HTTP requests to HTTPS")
	fs.StringVar(&tlsCert, "tls-cert", "", "TLS certificate file")
	fs.StringVar(&tlsKey, "tls-key", "", "TLS private key file")
	fs.IntVar(&rateLimit, "rate-limit", 0, "Requests per minute per client IP (0 disables)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Log file path (stdout when empty)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{},
		Storage: Storage{
			DB: DB{
				DSN:         databaseDSN,
				AutoMigrate: autoMigrate.value,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			ForceHTTPS:     forceHTTPS,
			TLSCertFile:    tlsCert,
			TLSKeyFile:     tlsKey,
			RateLimit:      rateLimit,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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
