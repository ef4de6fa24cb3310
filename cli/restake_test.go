package cli

import (
	"bytes"
	"testing"

	"github.com/clearsol/clear-restake/protocol/clear"
	"github.com/clearsol/clear-restake/restake"
	"github.com/stretchr/testify/suite"
)

type PrintTestSuite struct {
	suite.Suite
}

func TestRunPrintTestSuite(t *testing.T) {
	suite.Run(t, new(PrintTestSuite))
}

func (s *PrintTestSuite) Test_PrintConfirmation() {
	out := &bytes.Buffer{}

	printConfirmation(out, &restake.Confirmation{
		Amount:  "1.5",
		Receive: "1.4321",
		Symbol:  "bitSOL",
		APY:     "7.42%",
	})

	s.Equal("Amount: 1.5 SOL\nYou will receive: 1.4321 bitSOL\nAPY: 7.42%\n", out.String())
}

func (s *PrintTestSuite) Test_PrintConfirmation_WithoutQuote() {
	out := &bytes.Buffer{}

	printConfirmation(out, &restake.Confirmation{Amount: "1.5"})

	s.Equal("Amount: 1.5 SOL\n", out.String())
}

func (s *PrintTestSuite) Test_PrintLabel() {
	out := &bytes.Buffer{}

	printLabel(out, &clear.ClearLabel{
		TokenSymbol:     "bitSOL",
		Mint:            "mint",
		PublicKey:       "label",
		YieldPercentage: 7.42,
		Metadata: clear.Metadata{
			Name: "Clear bitSOL",
		},
	})

	s.Equal("Name: Clear bitSOL\nSymbol: bitSOL\nMint: mint\nBin: label\nYield: 7.42% APY\n", out.String())
}
