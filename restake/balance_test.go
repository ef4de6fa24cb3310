package restake_test

import (
	"context"
	"errors"
	"testing"

	"github.com/clearsol/clear-restake/restake"
	mock_restake "github.com/clearsol/clear-restake/restake/mock"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BalanceRefresherTestSuite struct {
	suite.Suite

	owner          solana.PublicKey
	mockConnection *mock_restake.MockConnection
	mockMetrics    *mock_restake.MockBalanceMetrics
	refresher      *restake.BalanceRefresher
}

func TestRunBalanceRefresherTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceRefresherTestSuite))
}

func (s *BalanceRefresherTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.owner = solana.PublicKey{3}
	s.mockConnection = mock_restake.NewMockConnection(ctrl)
	s.mockMetrics = mock_restake.NewMockBalanceMetrics(ctrl)
	s.refresher = restake.NewBalanceRefresher(s.mockConnection, s.mockMetrics)
}

func (s *BalanceRefresherTestSuite) Test_Balance_UnknownInitially() {
	_, ok := s.refresher.Balance()
	s.False(ok)

	_, ok = s.refresher.Max()
	s.False(ok)
}

func (s *BalanceRefresherTestSuite) Test_Refresh_Successful() {
	s.mockConnection.EXPECT().GetBalance(gomock.Any(), s.owner).Return(uint64(2_500_000_000), nil)
	s.mockMetrics.EXPECT().TrackBalance(uint64(2_500_000_000))

	balance, ok := s.refresher.Refresh(context.Background(), s.owner)

	s.True(ok)
	s.Equal("2.5", balance.String())
	lamports, _ := s.refresher.Lamports()
	s.Equal(uint64(2_500_000_000), lamports)
	maxAmount, ok := s.refresher.Max()
	s.True(ok)
	s.Equal("2.49", maxAmount)
}

func (s *BalanceRefresherTestSuite) Test_Refresh_FailureKeepsPreviousBalance() {
	s.mockConnection.EXPECT().GetBalance(gomock.Any(), s.owner).Return(uint64(1_000_000_000), nil)
	s.mockMetrics.EXPECT().TrackBalance(gomock.Any())
	s.mockConnection.EXPECT().GetBalance(gomock.Any(), s.owner).Return(uint64(0), errors.New("rpc down"))

	_, _ = s.refresher.Refresh(context.Background(), s.owner)
	balance, ok := s.refresher.Refresh(context.Background(), s.owner)

	s.True(ok)
	s.Equal("1", balance.String())
}

func (s *BalanceRefresherTestSuite) Test_Refresh_FailureWithoutPreviousBalance() {
	s.mockConnection.EXPECT().GetBalance(gomock.Any(), s.owner).Return(uint64(0), errors.New("rpc down"))

	_, ok := s.refresher.Refresh(context.Background(), s.owner)

	s.False(ok)
}

func (s *BalanceRefresherTestSuite) Test_Refresh_WithoutConnection() {
	refresher := restake.NewBalanceRefresher(nil, nil)

	_, ok := refresher.Refresh(context.Background(), s.owner)

	s.False(ok)
}
