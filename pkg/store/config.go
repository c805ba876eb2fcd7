// Package store holds the client-side configuration and the persisted
// session credential. Arrival data itself is never cached locally; it
// belongs to the backend.
package store

import (
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config selects the backend and bounds every network call.
type Config interface {
	BaseURL() string
	Timeout() time.Duration
}

// LoadConfig reads .arribo.yaml (working directory or home) plus the
// ARRIBO_* environment.
func LoadConfig() (Config, error) {
	viper.SetDefault("base_url", "http://127.0.0.1:5000")
	viper.SetDefault("timeout", "15s")
	viper.SetConfigName(".arribo") // .yaml is implicit
	viper.SetEnvPrefix("ARRIBO")
	viper.AutomaticEnv()

	if override := os.Getenv("ARRIBO_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &fileConfig{
		URL:  viper.GetString("base_url"),
		Wait: viper.GetDuration("timeout"),
	}
	if cfg.Wait <= 0 {
		// Never leave the transport unbounded.
		cfg.Wait = 15 * time.Second
	}
	return cfg, nil
}

type fileConfig struct {
	URL  string        `json:"base_url"`
	Wait time.Duration `json:"timeout"`
}

func (f *fileConfig) BaseURL() string        { return f.URL }
func (f *fileConfig) Timeout() time.Duration { return f.Wait }
