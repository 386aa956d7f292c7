// Package config loads cardroom configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Variant names accepted in table blocks.
const (
	VariantFiveCardDraw  = "five-card-draw"
	VariantSevenCardStud = "seven-card-stud"
	VariantTexasHoldem   = "texas-holdem"
)

// Config is the complete cardroom configuration.
type Config struct {
	Server ServerSettings `hcl:"server,block"`
	Tables []TableConfig  `hcl:"table,block"`
}

// ServerSettings contains server-level configuration.
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
	DataDir  string `hcl:"data_dir,optional"`
}

// TableConfig defines one table.
type TableConfig struct {
	Name       string `hcl:"name,label"`
	Variant    string `hcl:"variant"`
	Seats      int    `hcl:"seats,optional"`
	MinBet     int    `hcl:"min_bet,optional"`
	RaiseLimit int    `hcl:"raise_limit,optional"`
	BuyIn      int    `hcl:"buy_in,optional"`
}

// Default returns the configuration used when no file is present: one
// hold'em table on the loopback interface.
func Default() *Config {
	cfg := &Config{
		Server: ServerSettings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
		},
		Tables: []TableConfig{
			{Name: "main", Variant: VariantTexasHoldem},
		},
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults rather than an error.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %s", filename, diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %s", filename, diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = "localhost"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	for i := range c.Tables {
		t := &c.Tables[i]
		if t.Seats == 0 {
			if t.Variant == VariantSevenCardStud {
				t.Seats = 7
			} else {
				t.Seats = 6
			}
		}
		if t.MinBet == 0 {
			t.MinBet = 2
		}
		if t.RaiseLimit == 0 {
			t.RaiseLimit = 100
		}
		if t.BuyIn == 0 {
			t.BuyIn = 200
		}
	}
}

// Validate checks the configuration for values the cardroom cannot run
// with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.Server.Port)
	}
	if len(c.Tables) == 0 {
		return fmt.Errorf("config: at least one table must be configured")
	}

	for _, t := range c.Tables {
		switch t.Variant {
		case VariantFiveCardDraw, VariantTexasHoldem:
			if t.Seats < 2 {
				return fmt.Errorf("config: table %s: seats must be at least 2", t.Name)
			}
		case VariantSevenCardStud:
			if t.Seats < 2 || t.Seats > 7 {
				return fmt.Errorf("config: table %s: stud seats must be between 2 and 7", t.Name)
			}
		default:
			return fmt.Errorf("config: table %s: unknown variant %q", t.Name, t.Variant)
		}
		if t.MinBet <= 0 {
			return fmt.Errorf("config: table %s: min_bet must be positive", t.Name)
		}
		if t.RaiseLimit <= 0 {
			return fmt.Errorf("config: table %s: raise_limit must be positive", t.Name)
		}
		if t.BuyIn <= 0 {
			return fmt.Errorf("config: table %s: buy_in must be positive", t.Name)
		}
	}
	return nil
}

// ListenAddress returns the host:port the server binds to.
func (c *Config) ListenAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// TableByName returns the named table configuration, or nil.
func (c *Config) TableByName(name string) *TableConfig {
	for i := range c.Tables {
		if c.Tables[i].Name == name {
			return &c.Tables[i]
		}
	}
	return nil
}
