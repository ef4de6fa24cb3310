// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package restake

import (
	"github.com/clearsol/clear-restake/protocol/clear"
	"github.com/gagliardetto/solana-go"
)

// Attempt is a single submission from precondition check to terminal status.
type Attempt struct {
	ID     string
	Amount string
	Owner  solana.PublicKey

	Request               clear.DepositRequest
	Quote                 *clear.Quote
	SerializedTransaction string
	Signature             solana.Signature
}
