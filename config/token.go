package config

// TokenConfig describes the native asset shown next to the amount field.
type TokenConfig struct {
	Symbol  string `mapstructure:"symbol" json:"symbol" default:"SOL"`
	Name    string `mapstructure:"name" json:"name" default:"Solana"`
	IconURL string `mapstructure:"iconUrl" json:"iconUrl" default:"https://raw.githubusercontent.com/solana-labs/token-list/main/assets/mainnet/So11111111111111111111111111111111111111112/logo.png"`
}
