// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package restake

import (
	"encoding/json"

	"github.com/clearsol/clear-restake/protocol/clear"
	"github.com/gagliardetto/solana-go"
)

type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusError
}

// State is an immutable snapshot of the submission status. Values are only
// built through the constructors below so a success never carries an error
// and an idle state never carries a quote.
type State struct {
	status    Status
	amount    string
	quote     *clear.Quote
	signature solana.Signature
	message   string
}

func Idle() State {
	return State{status: StatusIdle}
}

func Submitting(amount string, quote *clear.Quote) State {
	return State{
		status: StatusSubmitting,
		amount: amount,
		quote:  quote,
	}
}

func Succeeded(amount string, quote *clear.Quote, signature solana.Signature) State {
	return State{
		status:    StatusSuccess,
		amount:    amount,
		quote:     quote,
		signature: signature,
	}
}

func Failed(amount string, quote *clear.Quote, message string) State {
	if message == "" {
		message = DEFAULT_FAILURE_MESSAGE
	}
	return State{
		status:  StatusError,
		amount:  amount,
		quote:   quote,
		message: message,
	}
}

func (s State) Status() Status {
	return s.status
}

// Amount is the SOL amount of the current attempt as entered.
func (s State) Amount() string {
	return s.amount
}

// Quote is available once the deposit API answered for the current attempt.
func (s State) Quote() (*clear.Quote, bool) {
	return s.quote, s.quote != nil
}

func (s State) Signature() (solana.Signature, bool) {
	return s.signature, s.status == StatusSuccess
}

// ErrorMessage is the user facing failure reason of an errored attempt.
func (s State) ErrorMessage() string {
	return s.message
}

type stateJSON struct {
	Status    string       `json:"status"`
	Amount    string       `json:"amount,omitempty"`
	Quote     *clear.Quote `json:"quote,omitempty"`
	Signature string       `json:"signature,omitempty"`
	Error     string       `json:"error,omitempty"`
}

func (s State) MarshalJSON() ([]byte, error) {
	out := stateJSON{
		Status: s.status.String(),
		Amount: s.amount,
		Quote:  s.quote,
		Error:  s.message,
	}
	if sig, ok := s.Signature(); ok {
		out.Signature = sig.String()
	}
	return json.Marshal(out)
}
