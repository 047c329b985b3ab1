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
//	-a ops server address in format [host]:[port]
//	-d database DSN
//	-driver database driver ("pgx" or "sqlite3")
//	-c/-config json file path with configs
//	-api-base-url remote API base URL
//	-token-url OAuth token endpoint URL
//	-client-id OAuth client id
//	-client-secret OAuth client secret
//	-refresh-token OAuth refresh token
//	-sync-interval queue processor interval (e.g., "5m")
//	-pull-interval pull sync interval (e.g., "1h")
//	-batch-size max ids per network call
//	-min-changes min pending items before dispatch
//	-max-retries max dispatch attempts per item
//	-staleness-window max age before an item is dispatched regardless of min-changes
//	-request-timeout outbound request timeout (e.g., "30s")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var apiBaseURL string
	var tokenURL string
	var clientID string
	var clientSecret string
	var refreshToken string
	var syncInterval time.Duration
	var pullInterval time.Duration
	var batchSize int
	var minChanges int
	var maxRetries int
	var stalenessWindow time.Duration
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (pgx or sqlite3)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&apiBaseURL, "api-base-url", "", "Remote API base URL")
	flag.StringVar(&tokenURL, "token-url", "", "OAuth token endpoint URL")
	flag.StringVar(&clientID, "client-id", "", "OAuth client id")
	flag.StringVar(&clientSecret, "client-secret", "", "OAuth client secret")
	flag.StringVar(&refreshToken, "refresh-token", "", "OAuth refresh token")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Queue processor interval (e.g., 5m)")
	flag.DurationVar(&pullInterval, "pull-interval", 0, "Pull sync interval (e.g., 1h)")
	flag.IntVar(&batchSize, "batch-size", 0, "Max ids per network call")
	flag.IntVar(&minChanges, "min-changes", 0, "Min pending items before dispatch")
	flag.IntVar(&maxRetries, "max-retries", 0, "Max dispatch attempts per item")
	flag.DurationVar(&stalenessWindow, "staleness-window", 0, "Max age before forced dispatch")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 30s)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Adapter: Adapter{
			APIBaseURL:     apiBaseURL,
			TokenURL:       tokenURL,
			ClientID:       clientID,
			ClientSecret:   clientSecret,
			RefreshToken:   refreshToken,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			Interval:        syncInterval,
			PullInterval:    pullInterval,
			MinChanges:      minChanges,
			BatchSize:       batchSize,
			MaxRetries:      maxRetries,
			StalenessWindow: stalenessWindow,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the merge
// step can fall through to lower-precedence sources.
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
