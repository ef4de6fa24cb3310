// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package svm

import (
	"encoding/base64"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// BlockhashWithExpiry is the latest blockhash together with the last block height
// at which a transaction referencing it can still land.
type BlockhashWithExpiry struct {
	Blockhash            solana.Hash
	LastValidBlockHeight uint64
}

// ConfirmationRequest identifies the broadcast transaction to wait for.
type ConfirmationRequest struct {
	BlockhashWithExpiry
	Signature solana.Signature
}

// SimulationResult is the outcome of a dry run of a signed transaction.
type SimulationResult struct {
	Err           interface{}
	Logs          []string
	UnitsConsumed *uint64
}

// DecodeTransaction deserializes a base64 encoded (versioned or legacy) transaction.
func DecodeTransaction(b64 string) (*solana.Transaction, error) {
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 transaction: %w", err)
	}

	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(data))
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize transaction: %w", err)
	}

	return tx, nil
}

// EncodeTransaction serializes the transaction into base64.
func EncodeTransaction(tx *solana.Transaction) (string, error) {
	data, err := tx.MarshalBinary()
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(data), nil
}
