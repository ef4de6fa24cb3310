package svm_test

import (
	"testing"

	"github.com/clearsol/clear-restake/chains/svm"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/suite"
)

type TransactionTestSuite struct {
	suite.Suite
}

func TestRunTransactionTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}

func (s *TransactionTestSuite) Test_DecodeTransaction_RoundTrip() {
	payer := solana.PublicKey{4}
	tx, err := transferTransaction(payer)
	s.Nil(err)
	encoded, err := svm.EncodeTransaction(tx)
	s.Nil(err)

	decoded, err := svm.DecodeTransaction(encoded)

	s.Nil(err)
	s.Equal(payer, decoded.Message.AccountKeys[0])
	s.Equal(solana.Hash{1}, decoded.Message.RecentBlockhash)
}

func (s *TransactionTestSuite) Test_DecodeTransaction_InvalidBase64() {
	_, err := svm.DecodeTransaction("not base64!")

	s.NotNil(err)
}

func (s *TransactionTestSuite) Test_DecodeTransaction_InvalidPayload() {
	_, err := svm.DecodeTransaction("AQ==")

	s.NotNil(err)
}
