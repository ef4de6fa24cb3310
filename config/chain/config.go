// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chain

import (
	"fmt"
)

type GeneralChainConfig struct {
	Name       string `mapstructure:"name" default:"solana"`
	Endpoint   string `mapstructure:"endpoint"`
	Commitment string `mapstructure:"commitment" default:"confirmed"`
	// seconds
	ConfirmTimeout uint64 `mapstructure:"confirmTimeout" default:"90"`
	// milliseconds
	PollInterval uint64 `mapstructure:"pollInterval" default:"500"`
}

func (c *GeneralChainConfig) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("required field chain.Endpoint empty for chain %s", c.Name)
	}
	if c.ConfirmTimeout == 0 {
		return fmt.Errorf("required field chain.ConfirmTimeout empty for chain %s", c.Name)
	}
	if c.PollInterval == 0 {
		return fmt.Errorf("required field chain.PollInterval empty for chain %s", c.Name)
	}
	return nil
}
