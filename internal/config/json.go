package config

import (
	"fmt"
	"os"
	"time"

	"github.com/bytedance/sonic"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the
// JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		Token   string `json:"token"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress  string `json:"http_address"`
		HTTPSAddress string `json:"https_address"`
		TLS          struct {
			CertFile         string   `json:"cert_file"`
			KeyFile          string   `json:"key_file"`
			AutocertHosts    []string `json:"autocert_hosts"`
			AutocertCacheDir string   `json:"autocert_cache_dir"`
		} `json:"tls,omitempty"`
		ReadHeaderTimeout Duration `json:"read_header_timeout"`
		ShutdownTimeout   Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		Address        string   `json:"address"`
		Token          string   `json:"token"`
		RequestTimeout Duration `json:"request_timeout"`
		Insecure       bool     `json:"insecure"`
	} `json:"adapter,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := sonic.ConfigStd.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Token:   jsonCfg.App.Token,
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:  jsonCfg.Server.HTTPAddress,
			HTTPSAddress: jsonCfg.Server.HTTPSAddress,
			TLS: TLS{
				CertFile:         jsonCfg.Server.TLS.CertFile,
				KeyFile:          jsonCfg.Server.TLS.KeyFile,
				AutocertHosts:    jsonCfg.Server.TLS.AutocertHosts,
				AutocertCacheDir: jsonCfg.Server.TLS.AutocertCacheDir,
			},
			ReadHeaderTimeout: time.Duration(jsonCfg.Server.ReadHeaderTimeout),
			ShutdownTimeout:   time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			Address:        jsonCfg.Adapter.Address,
			Token:          jsonCfg.Adapter.Token,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Insecure:       jsonCfg.Adapter.Insecure,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := sonic.Unmarshal(b, &v); err != nil {
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(time.Duration(d).String())
}
