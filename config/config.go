// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/clearsol/clear-restake/config/chain"
	"github.com/creasty/defaults"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config is read once at startup and never mutated afterwards.
type Config struct {
	ApiURL       string `mapstructure:"apiUrl" default:"https://clearsol.network/api"`
	Network      string `mapstructure:"network" default:"mainnet"`
	LabelAddress string `mapstructure:"labelAddress"`
	KeypairPath  string `mapstructure:"keypairPath"`

	// WalletAddress connects a watch-only wallet when no keypair is configured.
	WalletAddress string `mapstructure:"walletAddress"`

	ApiAddr    string `mapstructure:"apiAddr" default:":8080"`
	HealthPort uint16 `mapstructure:"healthPort" default:"9001"`

	LogLevel string `mapstructure:"logLevel" default:"info"`
	LogJSON  bool   `mapstructure:"logJson"`

	// seconds
	LabelCacheTTL uint64 `mapstructure:"labelCacheTTL" default:"600"`

	OpenTelemetryCollectorURL string `mapstructure:"openTelemetryCollectorURL"`
	Env                       string `mapstructure:"env" default:"local"`
	Id                        string `mapstructure:"id" default:"clear-restake"`

	Token TokenConfig              `mapstructure:"token"`
	Chain chain.GeneralChainConfig `mapstructure:"chain"`
}

var envBindings = map[string]string{
	"apiUrl":                    "CLEAR_API_URL",
	"network":                   "CLEAR_NETWORK",
	"labelAddress":              "CLEAR_LABEL_ADDRESS",
	"keypairPath":               "CLEAR_KEYPAIR_PATH",
	"walletAddress":             "CLEAR_WALLET_ADDRESS",
	"apiAddr":                   "CLEAR_API_ADDR",
	"healthPort":                "CLEAR_HEALTH_PORT",
	"logLevel":                  "CLEAR_LOG_LEVEL",
	"logJson":                   "CLEAR_LOG_JSON",
	"labelCacheTTL":             "CLEAR_LABEL_CACHE_TTL",
	"openTelemetryCollectorURL": "CLEAR_OTEL_COLLECTOR_URL",
	"env":                       "CLEAR_ENV",
	"id":                        "CLEAR_ID",
	"token.symbol":              "CLEAR_TOKEN_SYMBOL",
	"token.name":                "CLEAR_TOKEN_NAME",
	"token.iconUrl":             "CLEAR_TOKEN_ICON_URL",
	"chain.name":                "CLEAR_CHAIN_NAME",
	"chain.endpoint":            "CLEAR_RPC_URL",
	"chain.commitment":          "CLEAR_COMMITMENT",
	"chain.confirmTimeout":      "CLEAR_CONFIRM_TIMEOUT",
	"chain.pollInterval":        "CLEAR_POLL_INTERVAL",
}

// GetConfig loads the configuration from the environment when path is `env`,
// otherwise from the file at path.
func GetConfig(path string) (*Config, error) {
	if strings.ToLower(path) == "env" {
		return GetConfigFromENV()
	}
	return GetConfigFromFile(path)
}

// GetConfigFromFile reads the configuration from a JSON or YAML file.
func GetConfigFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed reading config file %s: %w", path, err)
	}

	return decode(v)
}

// GetConfigFromENV reads the configuration from CLEAR_ prefixed environment variables.
func GetConfigFromENV() (*Config, error) {
	v := viper.New()
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	c := &Config{}
	err := v.Unmarshal(c, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, err
	}

	err = defaults.Set(c)
	if err != nil {
		return nil, err
	}

	c.ParseFlags()
	err = c.Validate()
	if err != nil {
		return nil, err
	}

	return c, nil
}

// ParseFlags applies command line overrides.
func (c *Config) ParseFlags() {
	keypair := viper.GetString(KeypairFlagName)
	if keypair != "" {
		c.KeypairPath = keypair
	}
}

func (c *Config) Validate() error {
	if c.Network == "" {
		return fmt.Errorf("required field network empty")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %s: %w", c.LogLevel, err)
	}
	return c.Chain.Validate()
}

func (c *Config) LabelTTL() time.Duration {
	// nolint:gosec
	return time.Duration(c.LabelCacheTTL) * time.Second
}
