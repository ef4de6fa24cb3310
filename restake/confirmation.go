package restake

import (
	"fmt"

	"github.com/clearsol/clear-restake/amount"
	"github.com/clearsol/clear-restake/protocol/clear"
	"github.com/shopspring/decimal"
)

const RECEIVE_DECIMALS = 4

// Confirmation is what the user is shown while and after an attempt runs.
type Confirmation struct {
	Amount  string `json:"amount"`
	Receive string `json:"receive,omitempty"`
	Symbol  string `json:"symbol,omitempty"`
	APY     string `json:"apy,omitempty"`
}

func NewConfirmation(state State, label *clear.ClearLabel) *Confirmation {
	c := &Confirmation{
		Amount: state.Amount(),
	}

	if label != nil {
		c.Symbol = label.TokenSymbol
		c.APY = fmt.Sprintf("%v%%", label.YieldPercentage)
	}

	quote, ok := state.Quote()
	if !ok {
		return c
	}

	expected, err := decimal.NewFromString(quote.ExpectedBitAmount)
	if err != nil || !expected.IsPositive() {
		return c
	}
	c.Receive = amount.Format(expected.Shift(-amount.DECIMALS), RECEIVE_DECIMALS)
	if c.Symbol == "" {
		c.Symbol = quote.Bin.TokenSymbol
	}
	return c
}
