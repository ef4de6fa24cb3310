// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package svm

import (
	"fmt"
	"time"

	"github.com/clearsol/clear-restake/config/chain"
	"github.com/creasty/defaults"
	"github.com/gagliardetto/solana-go/rpc"
)

type SVMConfig struct {
	GeneralChainConfig chain.GeneralChainConfig

	Commitment     rpc.CommitmentType
	ConfirmTimeout time.Duration
	PollInterval   time.Duration
}

// NewSVMConfig validates the general chain configuration and converts it into
// the values used by the RPC connection.
func NewSVMConfig(c chain.GeneralChainConfig) (*SVMConfig, error) {
	err := defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	commitment := rpc.CommitmentType(c.Commitment)
	switch commitment {
	case rpc.CommitmentProcessed, rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
	default:
		return nil, fmt.Errorf("unsupported commitment '%s'", c.Commitment)
	}

	return &SVMConfig{
		GeneralChainConfig: c,
		Commitment:         commitment,
		// nolint:gosec
		ConfirmTimeout: time.Duration(c.ConfirmTimeout) * time.Second,
		// nolint:gosec
		PollInterval: time.Duration(c.PollInterval) * time.Millisecond,
	}, nil
}
