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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-token provider bearer token
//	-sandbox provider environment selector ("true" or "false")
//	-provider-timeout outbound quote request timeout (e.g., "10s")
//	-user-agent User-Agent sent to the provider
//	-grams-threshold Shopify weight above which values are read as grams
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var jsonConfigPath string
	var requestTimeout time.Duration
	var token string
	var sandbox string
	var providerTimeout time.Duration
	var userAgent string
	var gramsThreshold float64

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&token, "token", "", "Melhor Envio bearer token")
	flag.StringVar(&sandbox, "sandbox", "", "Use the sandbox environment (true/false)")
	flag.DurationVar(&providerTimeout, "provider-timeout", 0, "Quote request timeout (e.g., 10s)")
	flag.StringVar(&userAgent, "user-agent", "", "User-Agent sent to the quote provider")
	flag.Float64Var(&gramsThreshold, "grams-threshold", 0, "Weight above which Shopify weights are read as grams")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Provider: Provider{
			Token:          token,
			Sandbox:        sandbox,
			UserAgent:      userAgent,
			RequestTimeout: providerTimeout,
		},
		Normalizer: Normalizer{
			GramsThreshold: gramsThreshold,
		},
		JSONFilePath: jsonConfigPath,
	}
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
		return errors.New("port number must be between 1 and 65535")
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
