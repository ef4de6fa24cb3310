package amount_test

import (
	"testing"

	"github.com/clearsol/clear-restake/amount"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AmountTestSuite struct {
	suite.Suite
}

func TestRunAmountTestSuite(t *testing.T) {
	suite.Run(t, new(AmountTestSuite))
}

func (s *AmountTestSuite) Test_Accept_ValidEdits() {
	for _, raw := range []string{"", "1", "1.", "1.5", "0.000000001", "123456789.123456789", ".5"} {
		s.Equal(raw, amount.Accept("9", raw))
	}
}

func (s *AmountTestSuite) Test_Accept_LonePoint() {
	s.Equal("0.", amount.Accept("", "."))
}

func (s *AmountTestSuite) Test_Accept_RejectedEdits() {
	for _, raw := range []string{"1.0000000001", "abc", "1,5", "-1", "1..2", "1.2.3", " 1", "1e9"} {
		s.Equal("1.2", amount.Accept("1.2", raw), raw)
	}
}

func (s *AmountTestSuite) Test_Valid() {
	for _, raw := range []string{"", "1", "1.", "007.50", "0.000000001", ".5"} {
		s.True(amount.Valid(raw), raw)
	}
	for _, raw := range []string{"1e3", "+3", "-1", "1.0000000004", "1,5", " 1", "0x10"} {
		s.False(amount.Valid(raw), raw)
	}
}

func (s *AmountTestSuite) Test_Normalize() {
	cases := map[string]string{
		"":          "",
		"0":         "0",
		"007":       "7",
		"007.50":    "7.50",
		"5.":        "5.",
		".5":        "0.5",
		"0.":        "0.",
		"000.00100": "0.00100",
		"10":        "10",
	}

	for raw, expected := range cases {
		s.Equal(expected, amount.Normalize(raw), raw)
	}
}

func (s *AmountTestSuite) Test_Normalize_Idempotent() {
	for _, raw := range []string{"", "0", "007.50", "5.", ".5", "0000", "1.123456789", "00.000000000"} {
		once := amount.Normalize(raw)
		s.Equal(once, amount.Normalize(once), raw)
	}
}

func (s *AmountTestSuite) Test_Parse_EmptyIsZero() {
	d, err := amount.Parse("")

	s.Nil(err)
	s.True(d.IsZero())
}

func (s *AmountTestSuite) Test_Parse_Invalid() {
	_, err := amount.Parse("abc")

	s.NotNil(err)
}

func (s *AmountTestSuite) Test_ToBaseUnits() {
	units, err := amount.ToBaseUnits(decimal.RequireFromString("1.5"))
	s.Nil(err)
	s.Equal(uint64(1500000000), units)

	units, err = amount.ToBaseUnits(decimal.RequireFromString("0.000000001"))
	s.Nil(err)
	s.Equal(uint64(1), units)

	units, err = amount.ToBaseUnits(decimal.RequireFromString("0.0000000015"))
	s.Nil(err)
	s.Equal(uint64(2), units)
}

func (s *AmountTestSuite) Test_ToBaseUnits_Negative() {
	_, err := amount.ToBaseUnits(decimal.RequireFromString("-1"))

	s.NotNil(err)
}

func (s *AmountTestSuite) Test_FromBaseUnits() {
	s.Equal("2.5", amount.FromBaseUnits(2500000000).String())
	s.Equal("0.0000", amount.Format(amount.FromBaseUnits(0), 4))
}

func (s *AmountTestSuite) Test_Max() {
	s.Equal("1.49", amount.Max(decimal.RequireFromString("1.5")))
	s.Equal("0", amount.Max(decimal.RequireFromString("0.005")))
	s.Equal("10", amount.Max(decimal.RequireFromString("10.01")))
	s.Equal("0.123456789", amount.Max(decimal.RequireFromString("0.133456789")))
}

type InputTestSuite struct {
	suite.Suite

	input *amount.Input
}

func TestRunInputTestSuite(t *testing.T) {
	suite.Run(t, new(InputTestSuite))
}

func (s *InputTestSuite) SetupTest() {
	s.input = amount.NewInput()
	s.input.Focus()
}

func (s *InputTestSuite) Test_Change_KeepsRawWhileFocused() {
	s.input.Change("007.5")

	s.Equal("007.5", s.input.Value())
}

func (s *InputTestSuite) Test_Blur_Normalizes() {
	s.input.Change("007.5")
	s.input.Blur()

	s.Equal("7.5", s.input.Value())
}

func (s *InputTestSuite) Test_Change_RejectedEditKeepsValue() {
	s.input.Change("1.5")
	s.input.Change("1.5x")

	s.Equal("1.5", s.input.Value())
	s.Equal("1.5", s.input.Amount().String())
}

func (s *InputTestSuite) Test_Change_UnfocusedNormalizes() {
	s.input.Blur()
	s.input.Change("0012")

	s.Equal("12", s.input.Value())
}

func (s *InputTestSuite) Test_Empty_IsZeroAmount() {
	s.input.Blur()

	s.Equal("", s.input.Value())
	s.True(s.input.Amount().IsZero())
}

func (s *InputTestSuite) Test_SetMax() {
	s.input.SetMax(decimal.RequireFromString("2"))
	s.Equal("1.99", s.input.Value())

	s.input.Clear()
	s.input.SetMax(decimal.Zero)
	s.Equal("", s.input.Value())
}
