// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package restake

import (
	"context"
	"sync"

	"github.com/clearsol/clear-restake/amount"
	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// BalanceRefresher keeps the last known SOL balance of the wallet. Failed
// refreshes are logged and keep the previous value.
type BalanceRefresher struct {
	conn    Connection
	metrics BalanceMetrics

	lock     sync.RWMutex
	balance  decimal.Decimal
	lamports uint64
	known    bool
}

func NewBalanceRefresher(conn Connection, metrics BalanceMetrics) *BalanceRefresher {
	return &BalanceRefresher{
		conn:    conn,
		metrics: metrics,
	}
}

// Refresh fetches the balance of owner and returns the latest known value.
func (r *BalanceRefresher) Refresh(ctx context.Context, owner solana.PublicKey) (decimal.Decimal, bool) {
	if r.conn == nil {
		return r.Balance()
	}

	lamports, err := r.conn.GetBalance(ctx, owner)
	if err != nil {
		log.Warn().Err(err).Msgf("Failed to fetch balance of %s", owner)
		return r.Balance()
	}

	r.lock.Lock()
	r.lamports = lamports
	r.balance = amount.FromBaseUnits(lamports)
	r.known = true
	balance := r.balance
	r.lock.Unlock()

	if r.metrics != nil {
		r.metrics.TrackBalance(lamports)
	}
	log.Debug().Msgf("Balance of %s is %s SOL", owner, balance)
	return balance, true
}

func (r *BalanceRefresher) Balance() (decimal.Decimal, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.balance, r.known
}

func (r *BalanceRefresher) Lamports() (uint64, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.lamports, r.known
}

// Max is the largest amount that can be restaked from the known balance.
func (r *BalanceRefresher) Max() (string, bool) {
	balance, ok := r.Balance()
	if !ok || balance.IsZero() {
		return "", false
	}
	return amount.Max(balance), true
}
