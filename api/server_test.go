package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clearsol/clear-restake/api"
	"github.com/clearsol/clear-restake/api/handlers"
	"github.com/clearsol/clear-restake/config"
	"github.com/clearsol/clear-restake/protocol/clear"
	"github.com/clearsol/clear-restake/restake"
	mock_restake "github.com/clearsol/clear-restake/restake/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RouterTestSuite struct {
	suite.Suite

	mockLabels *mock_restake.MockLabelProvider
	router     http.Handler
}

func TestRunRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockLabels = mock_restake.NewMockLabelProvider(ctrl)
	mockWallet := mock_restake.NewMockWallet(ctrl)
	mockConnection := mock_restake.NewMockConnection(ctrl)

	refresher := restake.NewBalanceRefresher(mockConnection, nil)
	orchestrator := restake.NewOrchestrator("https://clearsol.network/api", mockWallet, mockConnection, nil, s.mockLabels, refresher, nil)
	s.router = api.NewRouter(
		handlers.NewRestakeHandler(orchestrator, refresher, s.mockLabels),
		handlers.NewLabelHandler(s.mockLabels),
		handlers.NewBalanceHandler(mockWallet, refresher, config.TokenConfig{Symbol: "SOL"}),
	)
}

func (s *RouterTestSuite) Test_Label() {
	s.mockLabels.EXPECT().Label().Return(&clear.ClearLabel{TokenSymbol: "bitSOL"}, true)
	recorder := httptest.NewRecorder()

	s.router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/label", nil))

	s.Equal(http.StatusOK, recorder.Code)
}

func (s *RouterTestSuite) Test_Status() {
	recorder := httptest.NewRecorder()

	s.router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/status", nil))

	s.Equal(http.StatusOK, recorder.Code)
	s.JSONEq(`{"state":{"status":"idle"}}`, recorder.Body.String())
}

func (s *RouterTestSuite) Test_InvalidMethod() {
	recorder := httptest.NewRecorder()

	s.router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/restake", nil))

	s.Equal(http.StatusMethodNotAllowed, recorder.Code)
}

func (s *RouterTestSuite) Test_UnknownRoute() {
	recorder := httptest.NewRecorder()

	s.router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/signatures", nil))

	s.Equal(http.StatusNotFound, recorder.Code)
}
