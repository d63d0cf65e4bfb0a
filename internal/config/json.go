package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in its JSON file form.
type StructuredJSONConfig struct {
	App struct {
		TokenIssuer             string   `json:"token_issuer"`
		AccessTokenSecret       string   `json:"access_token_secret"`
		VerificationTokenSecret string   `json:"verification_token_secret"`
		ResetTokenSecret        string   `json:"reset_token_secret"`
		AccessTokenTTL          Duration `json:"access_token_ttl"`
		ResetTokenTTL           Duration `json:"reset_token_ttl"`
		VerificationTokenTTL    Duration `json:"verification_token_ttl"`
		PasswordHashCost        int      `json:"password_hash_cost"`
		PublicURL               string   `json:"public_url"`
		DefaultRole             string   `json:"default_role"`
		SuperuserRole           string   `json:"superuser_role"`
		Version                 string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Mailer struct {
		BaseURL string   `json:"base_url"`
		APIKey  string   `json:"api_key"`
		From    string   `json:"from"`
		Timeout Duration `json:"timeout"`
	} `json:"mailer,omitempty"`

	Workers struct {
		MailQueueSize int `json:"mail_queue_size"`
		MailWorkers   int `json:"mail_workers"`
	} `json:"workers,omitempty"`

	RateLimit struct {
		MaxAttempts int      `json:"max_attempts"`
		Window      Duration `json:"window"`
	} `json:"rate_limit,omitempty"`
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
			TokenIssuer:             jsonCfg.App.TokenIssuer,
			AccessTokenSecret:       jsonCfg.App.AccessTokenSecret,
			VerificationTokenSecret: jsonCfg.App.VerificationTokenSecret,
			ResetTokenSecret:        jsonCfg.App.ResetTokenSecret,
			AccessTokenTTL:          time.Duration(jsonCfg.App.AccessTokenTTL),
			ResetTokenTTL:           time.Duration(jsonCfg.App.ResetTokenTTL),
			VerificationTokenTTL:    time.Duration(jsonCfg.App.VerificationTokenTTL),
			PasswordHashCost:        jsonCfg.App.PasswordHashCost,
			PublicURL:               jsonCfg.App.PublicURL,
			DefaultRole:             jsonCfg.App.DefaultRole,
			SuperuserRole:           jsonCfg.App.SuperuserRole,
			Version:                 jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Mailer: Mailer{
			BaseURL: jsonCfg.Mailer.BaseURL,
			APIKey:  jsonCfg.Mailer.APIKey,
			From:    jsonCfg.Mailer.From,
			Timeout: time.Duration(jsonCfg.Mailer.Timeout),
		},
		Workers: Workers{
			MailQueueSize: jsonCfg.Workers.MailQueueSize,
			MailWorkers:   jsonCfg.Workers.MailWorkers,
		},
		RateLimit: RateLimit{
			MaxAttempts: jsonCfg.RateLimit.MaxAttempts,
			Window:      time.Duration(jsonCfg.RateLimit.Window),
		},
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
