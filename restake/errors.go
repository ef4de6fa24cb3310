// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package restake

import (
	"encoding/json"
	"errors"
	"fmt"
)

const DEFAULT_FAILURE_MESSAGE = "Transaction failed"

var (
	ErrSubmissionInFlight = errors.New("submission already in progress")
	ErrResetRequired      = errors.New("previous submission finished, reset before submitting again")
	ErrMissingTransaction = errors.New("Invalid API response: missing transaction data")

	ErrWalletNotConnected  = &PreconditionError{Reason: "Wallet not connected"}
	ErrLabelMissing        = &PreconditionError{Reason: "Label configuration missing"}
	ErrSigningNotSupported = &PreconditionError{Reason: "Wallet does not support signing"}
	ErrAPIURLMissing       = &PreconditionError{Reason: "API URL not configured"}
	ErrConnectionMissing   = &PreconditionError{Reason: "Connection not established"}
	ErrInvalidAmount       = &PreconditionError{Reason: "Please enter a valid amount"}
)

// PreconditionError aborts a submission before it starts. The status is left idle.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Reason
}

// SimulationError carries the RPC simulation diagnostic of a rejected transaction.
type SimulationError struct {
	Err  interface{}
	Logs []string
}

func (e *SimulationError) Error() string {
	details, err := json.Marshal(e.Err)
	if err != nil {
		details = []byte(fmt.Sprintf("%v", e.Err))
	}
	return fmt.Sprintf("Simulation failed: %s", details)
}
