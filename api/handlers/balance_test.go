package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clearsol/clear-restake/api/handlers"
	"github.com/clearsol/clear-restake/config"
	"github.com/clearsol/clear-restake/restake"
	mock_restake "github.com/clearsol/clear-restake/restake/mock"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BalanceHandlerTestSuite struct {
	suite.Suite

	owner          solana.PublicKey
	mockWallet     *mock_restake.MockWallet
	mockConnection *mock_restake.MockConnection
	handler        *handlers.BalanceHandler
}

func TestRunBalanceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceHandlerTestSuite))
}

func (s *BalanceHandlerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.owner = solana.PublicKey{3}
	s.mockWallet = mock_restake.NewMockWallet(ctrl)
	s.mockConnection = mock_restake.NewMockConnection(ctrl)
	s.handler = handlers.NewBalanceHandler(
		s.mockWallet,
		restake.NewBalanceRefresher(s.mockConnection, nil),
		config.TokenConfig{
			Symbol:  "SOL",
			Name:    "Solana",
			IconURL: "https://example.com/sol.png",
		},
	)
}

func (s *BalanceHandlerTestSuite) Test_HandleRequest_WalletNotConnected() {
	s.mockWallet.EXPECT().PublicKey().Return(solana.PublicKey{}, false)
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, httptest.NewRequest(http.MethodGet, "/v1/balance", nil))

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *BalanceHandlerTestSuite) Test_HandleRequest_Unknown() {
	s.mockWallet.EXPECT().PublicKey().Return(s.owner, true)
	s.mockConnection.EXPECT().GetBalance(gomock.Any(), s.owner).Return(uint64(0), errors.New("rpc down"))
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, httptest.NewRequest(http.MethodGet, "/v1/balance", nil))

	s.Equal(http.StatusServiceUnavailable, recorder.Code)
}

func (s *BalanceHandlerTestSuite) Test_HandleRequest_Valid() {
	s.mockWallet.EXPECT().PublicKey().Return(s.owner, true)
	s.mockConnection.EXPECT().GetBalance(gomock.Any(), s.owner).Return(uint64(2_500_000_000), nil)
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, httptest.NewRequest(http.MethodGet, "/v1/balance", nil))

	s.Equal(http.StatusOK, recorder.Code)
	s.JSONEq(`{
		"owner": "`+s.owner.String()+`",
		"lamports": 2500000000,
		"sol": "2.5000",
		"max": "2.49",
		"token": {
			"symbol": "SOL",
			"name": "Solana",
			"iconUrl": "https://example.com/sol.png"
		}
	}`, recorder.Body.String())
}
