// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"

	"github.com/solsafe/cli/pkg/constants"
	"github.com/spf13/viper"
)

// Config is the deployment the advisor reports on. It is built once at
// startup and never mutated afterwards.
type Config struct {
	programID   string
	rpcEndpoint string
	validators  []string
	quorum      int
	minJurors   int
}

// Default returns the compiled-in devnet deployment.
func Default() *Config {
	return &Config{
		programID:   constants.ProgramID,
		rpcEndpoint: constants.RPCEndpoint,
		validators:  append([]string(nil), constants.DevnetValidators...),
		quorum:      constants.DefaultQuorum,
		minJurors:   constants.DefaultMinJurors,
	}
}

// Load reads path (json, yaml or toml, picked by extension) on top of the
// defaults. Keys missing from the file keep their default value.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault(constants.ConfigKeyProgramID, constants.ProgramID)
	v.SetDefault(constants.ConfigKeyRPCEndpoint, constants.RPCEndpoint)
	v.SetDefault(constants.ConfigKeyValidators, constants.DevnetValidators)
	v.SetDefault(constants.ConfigKeyQuorum, constants.DefaultQuorum)
	v.SetDefault(constants.ConfigKeyMinJurors, constants.DefaultMinJurors)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed reading config %s: %w", path, err)
	}

	cfg := &Config{
		programID:   v.GetString(constants.ConfigKeyProgramID),
		rpcEndpoint: v.GetString(constants.ConfigKeyRPCEndpoint),
		validators:  v.GetStringSlice(constants.ConfigKeyValidators),
		quorum:      v.GetInt(constants.ConfigKeyQuorum),
		minJurors:   v.GetInt(constants.ConfigKeyMinJurors),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values against what the initialize and
// sync_validators instructions accept. Identifiers stay opaque.
func (c *Config) Validate() error {
	switch {
	case c.programID == "":
		return constants.ErrEmptyProgramID
	case c.rpcEndpoint == "":
		return constants.ErrEmptyRPCEndpoint
	case len(c.validators) == 0:
		return constants.ErrNoValidators
	case len(c.validators) > constants.MaxValidators:
		return fmt.Errorf("%w: %d > %d", constants.ErrTooManyValidators, len(c.validators), constants.MaxValidators)
	case c.quorum < 1 || c.quorum > constants.MaxQuorum:
		return fmt.Errorf("%w: %d", constants.ErrInvalidQuorum, c.quorum)
	case c.minJurors < 0:
		return fmt.Errorf("%w: %d is negative", constants.ErrInvalidMinJurors, c.minJurors)
	case c.minJurors > c.quorum:
		return fmt.Errorf("%w: %d exceeds quorum %d", constants.ErrInvalidMinJurors, c.minJurors, c.quorum)
	}
	return nil
}

func (c *Config) ProgramID() string {
	return c.programID
}

func (c *Config) RPCEndpoint() string {
	return c.rpcEndpoint
}

// Validators returns a copy of the validator list in display order.
func (c *Config) Validators() []string {
	return append([]string(nil), c.validators...)
}

func (c *Config) Quorum() int {
	return c.quorum
}

func (c *Config) MinJurors() int {
	return c.minJurors
}
