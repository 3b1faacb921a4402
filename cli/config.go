package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "cmdargs"
	envPrefix  = "CMDARGS"
)

type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	LogFile  string       `mapstructure:"log_file"`
	LogJSON  bool         `mapstructure:"log_json"`
	Catalog  []string     `mapstructure:"catalog"`
	Consul   ConsulConfig `mapstructure:"consul"`
}

type ConsulConfig struct {
	Address    string `mapstructure:"address"`
	Token      string `mapstructure:"token"`
	Datacenter string `mapstructure:"datacenter"`
	Prefix     string `mapstructure:"prefix"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so that Unmarshal picks up environment values.
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("log_json", false)
	v.SetDefault("catalog", []string{})
	v.SetDefault("consul.address", "")
	v.SetDefault("consul.token", "")
	v.SetDefault("consul.datacenter", "")
	v.SetDefault("consul.prefix", "")
	return v
}

// loadConfig reads file, or cmdargs.{yaml,toml,json,...} from the working
// directory and ~/.cmdargs when file is empty. A missing default file is not
// an error.
func loadConfig(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".cmdargs"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}
