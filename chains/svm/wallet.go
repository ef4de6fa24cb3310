// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package svm

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

var (
	ErrUserRejected        = errors.New("user rejected the request")
	ErrSigningNotSupported = errors.New("wallet does not support signing")
)

type Approver interface {
	// Approve blocks until the transaction is approved or rejected by the wallet owner.
	Approve(ctx context.Context, tx *solana.Transaction) (bool, error)
}

// KeypairWallet signs transactions with a local solana-keygen keypair. A wallet
// without a key is watch-only and a wallet without a public key is disconnected.
type KeypairWallet struct {
	publicKey solana.PublicKey
	key       solana.PrivateKey
	approver  Approver
}

// NewKeypairWallet loads the keypair from a solana-keygen JSON file.
func NewKeypairWallet(path string, approver Approver) (*KeypairWallet, error) {
	key, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed loading keypair %s: %w", path, err)
	}

	return NewPrivateKeyWallet(key, approver), nil
}

func NewPrivateKeyWallet(key solana.PrivateKey, approver Approver) *KeypairWallet {
	return &KeypairWallet{
		publicKey: key.PublicKey(),
		key:       key,
		approver:  approver,
	}
}

// NewWatchWallet returns a wallet that exposes a public key but cannot sign.
func NewWatchWallet(publicKey solana.PublicKey) *KeypairWallet {
	return &KeypairWallet{
		publicKey: publicKey,
	}
}

// PublicKey returns the wallet public key and whether the wallet is connected.
func (w *KeypairWallet) PublicKey() (solana.PublicKey, bool) {
	if w == nil || w.publicKey.IsZero() {
		return solana.PublicKey{}, false
	}

	return w.publicKey, true
}

func (w *KeypairWallet) CanSign() bool {
	return w != nil && len(w.key) > 0
}

// SignTransaction asks the approver for consent and adds the wallet signature at
// the signer slot of the wallet public key. Other signatures are left untouched.
func (w *KeypairWallet) SignTransaction(ctx context.Context, tx *solana.Transaction) (*solana.Transaction, error) {
	if !w.CanSign() {
		return nil, ErrSigningNotSupported
	}

	if w.approver != nil {
		approved, err := w.approver.Approve(ctx, tx)
		if err != nil {
			return nil, err
		}
		if !approved {
			return nil, ErrUserRejected
		}
	}

	required := int(tx.Message.Header.NumRequiredSignatures)
	index := -1
	for i := 0; i < required && i < len(tx.Message.AccountKeys); i++ {
		if tx.Message.AccountKeys[i].Equals(w.publicKey) {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, fmt.Errorf("wallet %s is not a signer of the transaction", w.publicKey)
	}

	payload, err := tx.Message.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize message: %w", err)
	}

	sig, err := w.key.Sign(payload)
	if err != nil {
		return nil, err
	}

	for len(tx.Signatures) < required {
		tx.Signatures = append(tx.Signatures, solana.Signature{})
	}
	tx.Signatures[index] = sig

	return tx, nil
}
