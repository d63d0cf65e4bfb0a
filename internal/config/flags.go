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

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-db-driver credential store driver (pgx, sqlite3, memory)
//	-d database DSN
//	-redis-address redis address for request throttling
//	-c/-config json file path with configs
//	-token-issuer token issuer name
//	-access-token-secret access token signing secret
//	-verification-token-secret verification token signing secret
//	-reset-token-secret reset token signing secret
//	-access-token-ttl access token lifetime (e.g., "24h")
//	-reset-token-ttl reset token lifetime (e.g., "15m")
//	-public-url base URL used in emailed links
//	-mailer-url transactional mail API base URL
//	-request-timeout request timeout (e.g., "30s", "1m")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-user-auth", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var dbDriver, databaseDSN, redisAddress string
	var jsonConfigPath string
	var tokenIssuer, accessSecret, verificationSecret, resetSecret string
	var accessTTL, resetTTL, requestTimeout time.Duration
	var publicURL, mailerURL string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&dbDriver, "db-driver", "", "Credential store driver (pgx, sqlite3, memory)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisAddress, "redis-address", "", "Redis address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&accessSecret, "access-token-secret", "", "Access token signing secret")
	fs.StringVar(&verificationSecret, "verification-token-secret", "", "Verification token signing secret")
	fs.StringVar(&resetSecret, "reset-token-secret", "", "Reset token signing secret")
	fs.DurationVar(&accessTTL, "access-token-ttl", 0, "Access token lifetime (e.g., 24h)")
	fs.DurationVar(&resetTTL, "reset-token-ttl", 0, "Reset token lifetime (e.g., 15m)")
	fs.StringVar(&publicURL, "public-url", "", "Public base URL for emailed links")
	fs.StringVar(&mailerURL, "mailer-url", "", "Mail API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenIssuer:             tokenIssuer,
			AccessTokenSecret:       accessSecret,
			VerificationTokenSecret: verificationSecret,
			ResetTokenSecret:        resetSecret,
			AccessTokenTTL:          accessTTL,
			ResetTokenTTL:           resetTTL,
			PublicURL:               publicURL,
		},
		Storage: Storage{
			DB: DB{
				Driver: dbDriver,
				DSN:    databaseDSN,
			},
			Redis: Redis{
				Address: redisAddress,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Mailer: Mailer{
			BaseURL: mailerURL,
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
