package clear

import "fmt"

type DepositRequest struct {
	UserPublicKey string `json:"userPublicKey"`
	BinAddress    string `json:"binAddress"`
	// amount in lamports as a decimal string
	Lamports string `json:"lamports"`
}

type AccountMeta struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"isSigner"`
	IsWritable bool   `json:"isWritable"`
}

type Instruction struct {
	ProgramID string        `json:"programId"`
	Accounts  []AccountMeta `json:"accounts"`
	Data      string        `json:"data"`
}

type BinQuote struct {
	Address     string `json:"address"`
	BitMint     string `json:"bitMint"`
	TokenSymbol string `json:"tokenSymbol"`
	CurrentBvl  string `json:"currentBvl"`
	BitRate     string `json:"bitRate"`
	Activated   bool   `json:"activated"`
	CanActivate bool   `json:"canActivate"`
	Depth       int    `json:"depth"`
}

type Quote struct {
	Lamports          string   `json:"lamports"`
	ExpectedBitAmount string   `json:"expectedBitAmount"`
	Bin               BinQuote `json:"bin"`
}

type DepositResponse struct {
	Instructions                []Instruction `json:"instructions"`
	AddressLookupTableAddresses []string      `json:"addressLookupTableAddresses"`
	SerializedTransaction       string        `json:"serializedTransaction"`
	Quote                       Quote         `json:"quote"`
}

type Metadata struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ClearLabel describes the deposit target. It is read only.
type ClearLabel struct {
	TokenSymbol     string   `json:"tokenSymbol"`
	Mint            string   `json:"mint"`
	PublicKey       string   `json:"publicKey"`
	BinAddress      string   `json:"binAddress"`
	YieldPercentage float64  `json:"yieldPercentage"`
	Metadata        Metadata `json:"metadata"`
}

// Bin returns the address deposits are sent to. Labels that do not expose a
// separate bin are deposited into directly.
func (l *ClearLabel) Bin() string {
	if l.BinAddress != "" {
		return l.BinAddress
	}
	return l.PublicKey
}

// APIError is returned for non 2xx responses of the Clear API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("API error: %d", e.StatusCode)
}
