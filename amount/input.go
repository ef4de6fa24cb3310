// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package amount

import "github.com/shopspring/decimal"

// Input holds the text of the amount field between edits.
type Input struct {
	value   string
	focused bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Focus() {
	i.focused = true
}

// Change applies an edit. Rejected edits leave the value untouched. Edits made
// while the field is not focused are normalized immediately.
func (i *Input) Change(raw string) {
	i.value = Accept(i.value, raw)
	if !i.focused {
		i.value = Normalize(i.value)
	}
}

func (i *Input) Blur() {
	i.focused = false
	i.value = Normalize(i.value)
}

// SetMax fills the field with the maximum restakable amount. A zero balance is ignored.
func (i *Input) SetMax(balance decimal.Decimal) {
	if !balance.IsPositive() {
		return
	}

	i.value = Max(balance)
}

func (i *Input) Clear() {
	i.value = ""
}

func (i *Input) Value() string {
	return i.value
}

// Amount returns the numeric value of the field, zero when empty or unparsable.
func (i *Input) Amount() decimal.Decimal {
	d, err := Parse(i.value)
	if err != nil {
		return decimal.Zero
	}
	return d
}
