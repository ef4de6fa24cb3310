// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package restake

import (
	"context"

	"github.com/clearsol/clear-restake/chains/svm"
	"github.com/clearsol/clear-restake/protocol/clear"
	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

type Wallet interface {
	PublicKey() (solana.PublicKey, bool)
	CanSign() bool
	// SignTransaction may block until the wallet owner approves or rejects the request.
	SignTransaction(ctx context.Context, tx *solana.Transaction) (*solana.Transaction, error)
}

type Connection interface {
	GetBalance(ctx context.Context, owner solana.PublicKey) (uint64, error)
	SimulateTransaction(ctx context.Context, tx *solana.Transaction) (*svm.SimulationResult, error)
	GetLatestBlockhash(ctx context.Context) (*svm.BlockhashWithExpiry, error)
	SendRawTransaction(ctx context.Context, raw []byte) (solana.Signature, error)
	ConfirmTransaction(ctx context.Context, req svm.ConfirmationRequest) error
}

type DepositAPI interface {
	Deposit(ctx context.Context, req *clear.DepositRequest) (*clear.DepositResponse, error)
}

type LabelProvider interface {
	Label() (*clear.ClearLabel, bool)
}

type Refresher interface {
	Refresh(ctx context.Context, owner solana.PublicKey) (decimal.Decimal, bool)
}

type Metrics interface {
	StartSubmission(id string)
	EndSubmission(id string, outcome string)
}

type BalanceMetrics interface {
	TrackBalance(lamports uint64)
}
