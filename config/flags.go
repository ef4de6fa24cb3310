// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName  = "config"
	KeypairFlagName = "keypair"
	YesFlagName     = "yes"
)

func BindFlags(rootCMD *cobra.Command) {
	rootCMD.PersistentFlags().String(ConfigFlagName, "config.yaml", "Path to JSON/YAML configuration file or `env` to read it from the environment")
	_ = viper.BindPFlag(ConfigFlagName, rootCMD.PersistentFlags().Lookup(ConfigFlagName))

	rootCMD.PersistentFlags().String(KeypairFlagName, "", "Path to a solana-keygen keypair file, overrides the configured keypair")
	_ = viper.BindPFlag(KeypairFlagName, rootCMD.PersistentFlags().Lookup(KeypairFlagName))

	rootCMD.PersistentFlags().Bool(YesFlagName, false, "Approve wallet signature requests without prompting")
	_ = viper.BindPFlag(YesFlagName, rootCMD.PersistentFlags().Lookup(YesFlagName))
}
