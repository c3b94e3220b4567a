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

// ParseFlags parses all configuration flags. Positional arguments left after
// the flags are available through flag.Args (the client reads its command
// from there).
//
// Flags:
//
//	-a gateway address in format [host]:[port]
//	-c/-config json file path with configs
//	-backend backend kind (appwrite, selfhosted, memory)
//	-endpoint Appwrite endpoint URL
//	-project Appwrite project id
//	-database Appwrite database id
//	-object-store self-hosted picture store (cloudinary, gcs)
//	-local-db local SQLite file caching the session
//	-d PostgreSQL DSN for self-hosted accounts
//	-mongo-uri MongoDB connection string
//	-redis-uri Redis connection string
//	-token-sign-key session token signing key
//	-token-duration session duration (e.g., "24h")
//	-request-timeout outbound request timeout (e.g., "30s")
//	-log-level minimum log level
func ParseFlags() *StructuredConfig {
	var gatewayAddress NetAddress
	var jsonConfigPath string
	var kind, endpoint, projectID, databaseID, objectStore string
	var localDSN, databaseDSN, mongoURI, redisURI string
	var tokenSignKey, logLevel string
	var tokenDuration, requestTimeout time.Duration

	flag.Var(&gatewayAddress, "a", "Gateway address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&kind, "backend", "", "Backend kind: appwrite, selfhosted or memory")
	flag.StringVar(&endpoint, "endpoint", "", "Appwrite endpoint URL")
	flag.StringVar(&projectID, "project", "", "Appwrite project id")
	flag.StringVar(&databaseID, "database", "", "Appwrite database id")
	flag.StringVar(&objectStore, "object-store", "", "Self-hosted picture store: cloudinary or gcs")
	flag.StringVar(&localDSN, "local-db", "", "Local SQLite file caching the session")
	flag.StringVar(&databaseDSN, "d", "", "PostgreSQL DSN for self-hosted accounts")
	flag.StringVar(&mongoURI, "mongo-uri", "", "MongoDB connection string")
	flag.StringVar(&redisURI, "redis-uri", "", "Redis connection string")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Session duration (e.g., 24h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 30s)")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
		},
		Adapter: Adapter{
			Kind:           kind,
			Endpoint:       endpoint,
			ProjectID:      projectID,
			DatabaseID:     databaseID,
			ObjectStore:    objectStore,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Local: Local{DSN: localDSN},
			DB:    DB{DSN: databaseDSN},
			Mongo: Mongo{URI: mongoURI},
			Redis: Redis{URI: redisURI},
		},
		Server: Server{
			HTTPAddress: gatewayAddress.String(),
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress, or "" when
// nothing was set.
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
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
