package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/clearsol/clear-restake/amount"
	"github.com/clearsol/clear-restake/config"
	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

const BALANCE_DECIMALS = 4

type Owner interface {
	PublicKey() (solana.PublicKey, bool)
}

type BalanceRefresher interface {
	Refresh(ctx context.Context, owner solana.PublicKey) (decimal.Decimal, bool)
	Lamports() (uint64, bool)
	Max() (string, bool)
}

type BalanceResponse struct {
	Owner    string             `json:"owner"`
	Lamports uint64             `json:"lamports"`
	SOL      string             `json:"sol"`
	Max      string             `json:"max"`
	Token    config.TokenConfig `json:"token"`
}

type BalanceHandler struct {
	owner     Owner
	refresher BalanceRefresher
	token     config.TokenConfig
}

func NewBalanceHandler(owner Owner, refresher BalanceRefresher, token config.TokenConfig) *BalanceHandler {
	return &BalanceHandler{
		owner:     owner,
		refresher: refresher,
		token:     token,
	}
}

// HandleRequest refreshes and returns the wallet balance. A failed refresh
// returns the last known balance.
func (h *BalanceHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner.PublicKey()
	if !ok {
		JSONError(w, fmt.Errorf("wallet not connected"), http.StatusBadRequest)
		return
	}

	balance, ok := h.refresher.Refresh(r.Context(), owner)
	if !ok {
		JSONError(w, fmt.Errorf("balance unknown"), http.StatusServiceUnavailable)
		return
	}

	lamports, _ := h.refresher.Lamports()
	maxAmount, _ := h.refresher.Max()
	JSONResponse(w, BalanceResponse{
		Owner:    owner.String(),
		Lamports: lamports,
		SOL:      amount.Format(balance, BALANCE_DECIMALS),
		Max:      maxAmount,
		Token:    h.token,
	}, http.StatusOK)
}
