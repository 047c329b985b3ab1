package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly duration parsing for file-based configuration.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		APIBaseURL     string   `json:"api_base_url"`
		TokenURL       string   `json:"token_url"`
		ClientID       string   `json:"client_id"`
		ClientSecret   string   `json:"client_secret"`
		RefreshToken   string   `json:"refresh_token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Sync struct {
		Interval        Duration `json:"interval"`
		PullInterval    Duration `json:"pull_interval"`
		MinChanges      int      `json:"min_changes"`
		BatchSize       int      `json:"batch_size"`
		MaxRetries      int      `json:"max_retries"`
		StalenessWindow Duration `json:"staleness_window"`
		MaxPullPages    int      `json:"max_pull_pages"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			APIBaseURL:     jsonCfg.Adapter.APIBaseURL,
			TokenURL:       jsonCfg.Adapter.TokenURL,
			ClientID:       jsonCfg.Adapter.ClientID,
			ClientSecret:   jsonCfg.Adapter.ClientSecret,
			RefreshToken:   jsonCfg.Adapter.RefreshToken,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Sync: Sync{
			Interval:        time.Duration(jsonCfg.Sync.Interval),
			PullInterval:    time.Duration(jsonCfg.Sync.PullInterval),
			MinChanges:      jsonCfg.Sync.MinChanges,
			BatchSize:       jsonCfg.Sync.BatchSize,
			MaxRetries:      jsonCfg.Sync.MaxRetries,
			StalenessWindow: time.Duration(jsonCfg.Sync.StalenessWindow),
			MaxPullPages:    jsonCfg.Sync.MaxPullPages,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
