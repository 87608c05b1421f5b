// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/0xnurrabby/Bonsai/internal/chain"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all runtime configuration.
type Config struct {
	Chain  ChainConfig  `yaml:"chain"`
	Screen ScreenConfig `yaml:"screen"`
	Store  StoreConfig  `yaml:"store"`
}

// ChainConfig holds endpoints and contract addresses.
type ChainConfig struct {
	// RPCURL is the read-only node endpoint for balance/nonce signals.
	RPCURL string `yaml:"rpc_url"`
	// WalletURL is the wallet provider endpoint actions are submitted to.
	WalletURL string `yaml:"wallet_url"`
	ChainID   uint64 `yaml:"chain_id"`
	// PetContract receives the tagged action log calls.
	PetContract string `yaml:"pet_contract"`
	// USDCContract and the tip fields configure the optional tip action.
	USDCContract string `yaml:"usdc_contract"`
	TipRecipient string `yaml:"tip_recipient"`
	// TipAmount is in token base units (USDC has six decimals).
	TipAmount uint64 `yaml:"tip_amount"`
	// DataSuffix is an opaque attribution suffix passed through to the
	// wallet; empty disables the capability.
	DataSuffix string `yaml:"data_suffix"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

// StoreConfig holds persistence settings.
type StoreConfig struct {
	DataDir string `yaml:"data_dir"`
}

var cfg Config

// Init loads the embedded defaults, overlays the YAML file at path when one
// is given, and validates the result.
func Init(path string) error {
	cfg = Config{}
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return fmt.Errorf("config: embedded defaults: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	return cfg.validate()
}

// Cfg returns the loaded configuration.
func Cfg() *Config {
	return &cfg
}

func (c *Config) validate() error {
	if !chain.ValidAddress(c.Chain.PetContract) {
		return fmt.Errorf("config: pet_contract %q is not a valid address", c.Chain.PetContract)
	}
	if !chain.ValidAddress(c.Chain.USDCContract) {
		return fmt.Errorf("config: usdc_contract %q is not a valid address", c.Chain.USDCContract)
	}
	if c.Chain.TipRecipient != "" && !chain.ValidAddress(c.Chain.TipRecipient) {
		return fmt.Errorf("config: tip_recipient %q is not a valid address", c.Chain.TipRecipient)
	}
	if c.Chain.ChainID == 0 {
		return fmt.Errorf("config: chain_id must be set")
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("config: screen dimensions must be positive")
	}
	if c.Screen.TPS <= 0 {
		c.Screen.TPS = 60
	}
	if c.Store.DataDir == "" {
		c.Store.DataDir = "data"
	}
	return nil
}
