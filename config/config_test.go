package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/clearsol/clear-restake/config"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestRunConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) writeConfig(content string) string {
	path := filepath.Join(s.T().TempDir(), "config.yaml")
	s.Nil(os.WriteFile(path, []byte(content), 0600))
	return path
}

func (s *ConfigTestSuite) Test_GetConfigFromFile_Defaults() {
	path := s.writeConfig(`
labelAddress: 9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin
chain:
  endpoint: https://api.mainnet-beta.solana.com
`)

	c, err := config.GetConfig(path)

	s.Nil(err)
	s.Equal("https://clearsol.network/api", c.ApiURL)
	s.Equal("mainnet", c.Network)
	s.Equal("9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin", c.LabelAddress)
	s.Equal("SOL", c.Token.Symbol)
	s.Equal("confirmed", c.Chain.Commitment)
	s.Equal(uint64(90), c.Chain.ConfirmTimeout)
	s.Equal(600*time.Second, c.LabelTTL())
}

func (s *ConfigTestSuite) Test_GetConfigFromFile_Overrides() {
	path := s.writeConfig(`
apiUrl: http://localhost:3000/api
network: devnet
logLevel: debug
labelCacheTTL: 60
token:
  symbol: dSOL
chain:
  endpoint: https://api.devnet.solana.com
  commitment: finalized
`)

	c, err := config.GetConfigFromFile(path)

	s.Nil(err)
	s.Equal("http://localhost:3000/api", c.ApiURL)
	s.Equal("devnet", c.Network)
	s.Equal("dSOL", c.Token.Symbol)
	s.Equal("finalized", c.Chain.Commitment)
	s.Equal(time.Minute, c.LabelTTL())
}

func (s *ConfigTestSuite) Test_GetConfigFromFile_MissingEndpoint() {
	path := s.writeConfig(`network: mainnet`)

	_, err := config.GetConfigFromFile(path)

	s.NotNil(err)
}

func (s *ConfigTestSuite) Test_GetConfigFromFile_InvalidLogLevel() {
	path := s.writeConfig(`
logLevel: loud
chain:
  endpoint: https://api.mainnet-beta.solana.com
`)

	_, err := config.GetConfigFromFile(path)

	s.NotNil(err)
}

func (s *ConfigTestSuite) Test_GetConfigFromFile_MissingFile() {
	_, err := config.GetConfigFromFile(filepath.Join(s.T().TempDir(), "missing.yaml"))

	s.NotNil(err)
}

func (s *ConfigTestSuite) Test_GetConfigFromENV() {
	s.T().Setenv("CLEAR_API_URL", "http://localhost:3000/api")
	s.T().Setenv("CLEAR_NETWORK", "devnet")
	s.T().Setenv("CLEAR_LABEL_ADDRESS", "label")
	s.T().Setenv("CLEAR_RPC_URL", "https://api.devnet.solana.com")
	s.T().Setenv("CLEAR_HEALTH_PORT", "9100")
	s.T().Setenv("CLEAR_CONFIRM_TIMEOUT", "30")

	c, err := config.GetConfig("env")

	s.Nil(err)
	s.Equal("http://localhost:3000/api", c.ApiURL)
	s.Equal("devnet", c.Network)
	s.Equal("label", c.LabelAddress)
	s.Equal("https://api.devnet.solana.com", c.Chain.Endpoint)
	s.Equal(uint16(9100), c.HealthPort)
	s.Equal(uint64(30), c.Chain.ConfirmTimeout)
	s.Equal("solana", c.Chain.Name)
}
