// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package svm

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gagliardetto/solana-go"
)

// AutoApprover approves every transaction.
type AutoApprover struct{}

func (AutoApprover) Approve(_ context.Context, _ *solana.Transaction) (bool, error) {
	return true, nil
}

// PromptApprover prints a summary of the transaction and waits for the owner to
// answer on the input stream. It is only interrupted by an answer or a closed input.
// Concurrent requests are prompted one at a time.
type PromptApprover struct {
	lock sync.Mutex
	in   *bufio.Reader
	out  io.Writer
}

func NewPromptApprover(in io.Reader, out io.Writer) *PromptApprover {
	return &PromptApprover{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (a *PromptApprover) Approve(_ context.Context, tx *solana.Transaction) (bool, error) {
	a.lock.Lock()
	defer a.lock.Unlock()

	fmt.Fprintf(a.out, "Transaction requires %d signature(s)\n", tx.Message.Header.NumRequiredSignatures)
	if len(tx.Message.AccountKeys) > 0 {
		fmt.Fprintf(a.out, "Fee payer: %s\n", tx.Message.AccountKeys[0])
	}
	fmt.Fprintf(a.out, "Instructions: %d\n", len(tx.Message.Instructions))
	fmt.Fprint(a.out, "Approve transaction? [y/N]: ")

	answer, err := a.in.ReadString('\n')
	if err != nil && answer == "" {
		if err == io.EOF {
			return false, nil
		}
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
