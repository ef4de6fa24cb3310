// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package restake

import (
	"context"
	"fmt"
	"sync"

	"github.com/clearsol/clear-restake/amount"
	"github.com/clearsol/clear-restake/chains/svm"
	"github.com/clearsol/clear-restake/protocol/clear"
	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const SUBSCRIBER_BUFFER = 8

// Orchestrator drives a deposit from the Clear API quote to the confirmed
// transaction. At most one attempt is in flight at any time.
type Orchestrator struct {
	apiURL    string
	wallet    Wallet
	conn      Connection
	api       DepositAPI
	labels    LabelProvider
	refresher Refresher
	metrics   Metrics

	lock        sync.Mutex
	state       State
	attempt     *Attempt
	subscribers map[int]chan State
	nextSubID   int
}

func NewOrchestrator(
	apiURL string,
	wallet Wallet,
	conn Connection,
	api DepositAPI,
	labels LabelProvider,
	refresher Refresher,
	metrics Metrics,
) *Orchestrator {
	return &Orchestrator{
		apiURL:      apiURL,
		wallet:      wallet,
		conn:        conn,
		api:         api,
		labels:      labels,
		refresher:   refresher,
		metrics:     metrics,
		state:       Idle(),
		subscribers: make(map[int]chan State),
	}
}

// Submit validates the submission preconditions and starts the deposit chain.
// Precondition failures are returned synchronously and leave the status idle.
// The returned channel receives the result of the chain once it reaches a
// terminal status. The chain is not cancelled when ctx is.
func (o *Orchestrator) Submit(ctx context.Context, raw string) (<-chan error, error) {
	o.lock.Lock()
	defer o.lock.Unlock()

	switch o.state.Status() {
	case StatusSubmitting:
		return nil, ErrSubmissionInFlight
	case StatusSuccess, StatusError:
		return nil, ErrResetRequired
	}

	attempt, err := o.prepare(raw)
	if err != nil {
		log.Warn().Msgf("Restake rejected: %s", err)
		return nil, err
	}

	o.attempt = attempt
	o.setState(Submitting(attempt.Amount, nil))
	log.Info().Str("attempt", attempt.ID).Msgf(
		"Restaking %s SOL (%s lamports) from %s into %s",
		attempt.Amount, attempt.Request.Lamports, attempt.Owner, attempt.Request.BinAddress,
	)

	done := make(chan error, 1)
	go func() {
		done <- o.execute(context.WithoutCancel(ctx), attempt)
		close(done)
	}()
	return done, nil
}

// Reset returns the status to idle. An in-flight chain keeps running but its
// result no longer changes the state.
func (o *Orchestrator) Reset() {
	o.lock.Lock()
	defer o.lock.Unlock()

	if o.attempt != nil {
		log.Debug().Str("attempt", o.attempt.ID).Msgf("Detaching attempt on reset")
	}
	o.attempt = nil
	o.setState(Idle())
}

func (o *Orchestrator) State() State {
	o.lock.Lock()
	defer o.lock.Unlock()

	return o.state
}

// Attempt returns a copy of the current attempt.
func (o *Orchestrator) Attempt() (Attempt, bool) {
	o.lock.Lock()
	defer o.lock.Unlock()

	if o.attempt == nil {
		return Attempt{}, false
	}
	return *o.attempt, true
}

// Subscribe returns the current state and a channel receiving every later state
// change. Slow subscribers only observe the most recent states. The returned
// function unsubscribes.
func (o *Orchestrator) Subscribe() (State, <-chan State, func()) {
	o.lock.Lock()
	defer o.lock.Unlock()

	id := o.nextSubID
	o.nextSubID++
	stateChn := make(chan State, SUBSCRIBER_BUFFER)
	o.subscribers[id] = stateChn

	return o.state, stateChn, func() {
		o.lock.Lock()
		defer o.lock.Unlock()

		if _, ok := o.subscribers[id]; ok {
			delete(o.subscribers, id)
			close(stateChn)
		}
	}
}

func (o *Orchestrator) prepare(raw string) (*Attempt, error) {
	owner, ok := o.publicKey()
	if !ok {
		return nil, ErrWalletNotConnected
	}

	var label *clear.ClearLabel
	if o.labels != nil {
		label, ok = o.labels.Label()
	}
	if !ok || label == nil {
		return nil, ErrLabelMissing
	}

	if !o.wallet.CanSign() {
		return nil, ErrSigningNotSupported
	}

	if o.apiURL == "" || o.api == nil {
		return nil, ErrAPIURLMissing
	}

	if o.conn == nil {
		return nil, ErrConnectionMissing
	}

	normalized := amount.Normalize(raw)
	if !amount.Valid(normalized) {
		return nil, ErrInvalidAmount
	}
	value, err := amount.Parse(normalized)
	if err != nil || !value.IsPositive() {
		return nil, ErrInvalidAmount
	}
	lamports, err := amount.ToBaseUnits(value)
	if err != nil || lamports == 0 {
		return nil, ErrInvalidAmount
	}

	return &Attempt{
		ID:     uuid.NewString(),
		Amount: normalized,
		Owner:  owner,
		Request: clear.DepositRequest{
			UserPublicKey: owner.String(),
			BinAddress:    label.Bin(),
			Lamports:      fmt.Sprint(lamports),
		},
	}, nil
}

func (o *Orchestrator) publicKey() (solana.PublicKey, bool) {
	if o.wallet == nil {
		return solana.PublicKey{}, false
	}
	return o.wallet.PublicKey()
}

func (o *Orchestrator) execute(ctx context.Context, attempt *Attempt) error {
	if o.metrics != nil {
		o.metrics.StartSubmission(attempt.ID)
	}

	signature, err := o.restake(ctx, attempt)
	if err != nil {
		log.Error().Err(err).Str("attempt", attempt.ID).Msgf("Restake failed")
		o.update(attempt, func(a *Attempt) State {
			return Failed(a.Amount, a.Quote, err.Error())
		})
		o.endSubmission(attempt, StatusError)
		return err
	}

	log.Info().Str("attempt", attempt.ID).Msgf("Restake successful, transaction: %s", signature)
	o.update(attempt, func(a *Attempt) State {
		a.Signature = signature
		return Succeeded(a.Amount, a.Quote, signature)
	})
	o.endSubmission(attempt, StatusSuccess)

	if o.refresher != nil {
		o.refresher.Refresh(ctx, attempt.Owner)
	}
	return nil
}

func (o *Orchestrator) restake(ctx context.Context, attempt *Attempt) (solana.Signature, error) {
	res, err := o.api.Deposit(ctx, &attempt.Request)
	if err != nil {
		return solana.Signature{}, err
	}

	quote := res.Quote
	o.update(attempt, func(a *Attempt) State {
		a.Quote = &quote
		a.SerializedTransaction = res.SerializedTransaction
		return Submitting(a.Amount, a.Quote)
	})
	log.Debug().Str("attempt", attempt.ID).Msgf("Received quote, expected %s %s", quote.ExpectedBitAmount, quote.Bin.TokenSymbol)

	if res.SerializedTransaction == "" {
		return solana.Signature{}, ErrMissingTransaction
	}

	tx, err := svm.DecodeTransaction(res.SerializedTransaction)
	if err != nil {
		return solana.Signature{}, err
	}

	log.Debug().Str("attempt", attempt.ID).Msgf("Requesting wallet signature")
	signed, err := o.wallet.SignTransaction(ctx, tx)
	if err != nil {
		return solana.Signature{}, err
	}

	simulation, err := o.conn.SimulateTransaction(ctx, signed)
	if err != nil {
		return solana.Signature{}, err
	}
	if simulation.Err != nil {
		return solana.Signature{}, &SimulationError{
			Err:  simulation.Err,
			Logs: simulation.Logs,
		}
	}
	if simulation.UnitsConsumed != nil {
		log.Debug().Str("attempt", attempt.ID).Msgf("Simulation consumed %d compute units", *simulation.UnitsConsumed)
	}

	blockhash, err := o.conn.GetLatestBlockhash(ctx)
	if err != nil {
		return solana.Signature{}, err
	}

	raw, err := signed.MarshalBinary()
	if err != nil {
		return solana.Signature{}, err
	}
	signature, err := o.conn.SendRawTransaction(ctx, raw)
	if err != nil {
		return solana.Signature{}, err
	}

	log.Debug().Str("attempt", attempt.ID).Msgf("Broadcast transaction %s, waiting for confirmation", signature)
	err = o.conn.ConfirmTransaction(ctx, svm.ConfirmationRequest{
		BlockhashWithExpiry: *blockhash,
		Signature:           signature,
	})
	if err != nil {
		return solana.Signature{}, err
	}

	return signature, nil
}

// update applies a change of the attempt if it is still the active one.
func (o *Orchestrator) update(attempt *Attempt, change func(a *Attempt) State) {
	o.lock.Lock()
	defer o.lock.Unlock()

	if o.attempt != attempt {
		log.Debug().Str("attempt", attempt.ID).Msgf("Ignoring result of detached attempt")
		return
	}

	o.setState(change(attempt))
}

func (o *Orchestrator) endSubmission(attempt *Attempt, status Status) {
	if o.metrics == nil {
		return
	}
	o.metrics.EndSubmission(attempt.ID, status.String())
}

// setState must be called with the lock held.
func (o *Orchestrator) setState(state State) {
	o.state = state
	for _, stateChn := range o.subscribers {
		select {
		case stateChn <- state:
		default:
			select {
			case <-stateChn:
			default:
			}
			stateChn <- state
		}
	}
}
