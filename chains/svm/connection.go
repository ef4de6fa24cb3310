// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package svm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog/log"
)

var (
	ErrBlockheightExceeded = errors.New("block height exceeded, transaction expired")
)

type TransactionError struct {
	Signature solana.Signature
	Err       interface{}
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction %s failed: %v", e.Signature, e.Err)
}

type RPCClient interface {
	GetBalance(ctx context.Context, account solana.PublicKey, commitment rpc.CommitmentType) (*rpc.GetBalanceResult, error)
	SimulateTransaction(ctx context.Context, transaction *solana.Transaction) (*rpc.SimulateTransactionResponse, error)
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
	SendRawTransaction(ctx context.Context, rawTx []byte) (solana.Signature, error)
	GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, transactionSignatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
	GetBlockHeight(ctx context.Context, commitment rpc.CommitmentType) (uint64, error)
}

// Connection is the process wide view of a Solana RPC node.
type Connection struct {
	client       RPCClient
	commitment   rpc.CommitmentType
	pollInterval time.Duration
	timeout      time.Duration
}

func NewConnection(client RPCClient, config *SVMConfig) *Connection {
	return &Connection{
		client:       client,
		commitment:   config.Commitment,
		pollInterval: config.PollInterval,
		timeout:      config.ConfirmTimeout,
	}
}

// GetBalance returns the owner balance in lamports.
func (c *Connection) GetBalance(ctx context.Context, owner solana.PublicKey) (uint64, error) {
	res, err := c.client.GetBalance(ctx, owner, c.commitment)
	if err != nil {
		return 0, err
	}

	return res.Value, nil
}

func (c *Connection) SimulateTransaction(ctx context.Context, tx *solana.Transaction) (*SimulationResult, error) {
	res, err := c.client.SimulateTransaction(ctx, tx)
	if err != nil {
		return nil, err
	}
	if res == nil || res.Value == nil {
		return nil, fmt.Errorf("empty simulation result")
	}

	return &SimulationResult{
		Err:           res.Value.Err,
		Logs:          res.Value.Logs,
		UnitsConsumed: res.Value.UnitsConsumed,
	}, nil
}

func (c *Connection) GetLatestBlockhash(ctx context.Context) (*BlockhashWithExpiry, error) {
	res, err := c.client.GetLatestBlockhash(ctx, c.commitment)
	if err != nil {
		return nil, err
	}
	if res == nil || res.Value == nil {
		return nil, fmt.Errorf("empty blockhash result")
	}

	return &BlockhashWithExpiry{
		Blockhash:            res.Value.Blockhash,
		LastValidBlockHeight: res.Value.LastValidBlockHeight,
	}, nil
}

func (c *Connection) SendRawTransaction(ctx context.Context, raw []byte) (solana.Signature, error) {
	return c.client.SendRawTransaction(ctx, raw)
}

// ConfirmTransaction polls the signature status until the transaction reaches the
// configured commitment, the blockhash expires or the confirmation timeout elapses.
func (c *Connection) ConfirmTransaction(ctx context.Context, req ConfirmationRequest) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	for {
		statuses, err := c.client.GetSignatureStatuses(ctx, false, req.Signature)
		if err != nil {
			log.Warn().Msgf("Error fetching signature status of %s: %v", req.Signature, err)
		} else if statuses != nil && len(statuses.Value) > 0 && statuses.Value[0] != nil {
			status := statuses.Value[0]
			if status.Err != nil {
				return &TransactionError{
					Signature: req.Signature,
					Err:       status.Err,
				}
			}

			if c.reached(status.ConfirmationStatus) {
				return nil
			}
		}

		height, err := c.client.GetBlockHeight(ctx, c.commitment)
		if err != nil {
			log.Warn().Msgf("Error fetching block height: %v", err)
		} else if height > req.LastValidBlockHeight {
			return ErrBlockheightExceeded
		}

		log.Debug().Msgf("Waiting for confirmation of %s", req.Signature)
		select {
		case <-ctx.Done():
			return fmt.Errorf("timed out waiting for confirmation of %s", req.Signature)
		case <-time.After(c.pollInterval):
		}
	}
}

// Ping checks that the node answers.
func (c *Connection) Ping(ctx context.Context) error {
	_, err := c.client.GetBlockHeight(ctx, c.commitment)
	return err
}

func (c *Connection) reached(status rpc.ConfirmationStatusType) bool {
	switch c.commitment {
	case rpc.CommitmentFinalized:
		return status == rpc.ConfirmationStatusFinalized
	case rpc.CommitmentConfirmed:
		return status == rpc.ConfirmationStatusConfirmed || status == rpc.ConfirmationStatusFinalized
	default:
		return true
	}
}
