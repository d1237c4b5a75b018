package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the configuration file,
// shared by the JSON and YAML encodings.
// Secrets (master key, link/token sign keys, DSN) may be supplied here too,
// but the environment is the recommended source for them.
type StructuredJSONConfig struct {
	App struct {
		MasterKey     string   `json:"master_key" yaml:"master_key"`
		LinkSignKey   string   `json:"link_sign_key" yaml:"link_sign_key"`
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		QuarantineTTL Duration `json:"quarantine_ttl" yaml:"quarantine_ttl"`
		Version       string   `json:"version" yaml:"version"`
		LogLevel      string   `json:"log_level" yaml:"log_level"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver" yaml:"driver"`
			DSN    string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`

		Objects struct {
			Backend          string   `json:"backend" yaml:"backend"`
			Dir              string   `json:"dir" yaml:"dir"`
			BaseURL          string   `json:"base_url" yaml:"base_url"`
			BatchDeleteLimit int      `json:"batch_delete_limit" yaml:"batch_delete_limit"`
			RequestTimeout   Duration `json:"request_timeout" yaml:"request_timeout"`
		} `json:"objects,omitempty" yaml:"objects,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		PublicURL      string   `json:"public_url" yaml:"public_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Workers struct {
		SweepInterval Duration `json:"sweep_interval" yaml:"sweep_interval"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	decoder := json.NewDecoder(jsonFile)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return jsonCfg.toStructuredConfig(), nil
}

func (c StructuredJSONConfig) toStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			MasterKey:     c.App.MasterKey,
			LinkSignKey:   c.App.LinkSignKey,
			TokenSignKey:  c.App.TokenSignKey,
			TokenIssuer:   c.App.TokenIssuer,
			QuarantineTTL: time.Duration(c.App.QuarantineTTL),
			Version:       c.App.Version,
			LogLevel:      c.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: c.Storage.DB.Driver,
				DSN:    c.Storage.DB.DSN,
			},
			Objects: Objects{
				Backend:          c.Storage.Objects.Backend,
				Dir:              c.Storage.Objects.Dir,
				BaseURL:          c.Storage.Objects.BaseURL,
				BatchDeleteLimit: c.Storage.Objects.BatchDeleteLimit,
				RequestTimeout:   time.Duration(c.Storage.Objects.RequestTimeout),
			},
		},
		Server: Server{
			HTTPAddress:    c.Server.HTTPAddress,
			PublicURL:      c.Server.PublicURL,
			RequestTimeout: time.Duration(c.Server.RequestTimeout),
		},
		Workers: Workers{
			SweepInterval: time.Duration(c.Workers.SweepInterval),
		},
	}
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
