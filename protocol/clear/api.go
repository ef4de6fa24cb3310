package clear

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	CLEAR_API_URL      = "https://clearsol.network/api"
	LABEL_RETRIES      = 3
	LABEL_RETRY_WAIT   = 500 * time.Millisecond
	DEPOSIT_TIMEOUT    = 30 * time.Second
	LABEL_HTTP_TIMEOUT = 10 * time.Second
)

type ClearAPI struct {
	url string

	// HTTPClient sends deposit requests, which are never retried.
	HTTPClient  *http.Client
	LabelClient *http.Client
}

func NewClearAPI(url string) *ClearAPI {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = LABEL_RETRIES - 1 // RetryMax is a number of retries after an initial attempt
	retryClient.RetryWaitMin = LABEL_RETRY_WAIT
	retryClient.RetryWaitMax = LABEL_RETRY_WAIT
	retryClient.HTTPClient.Timeout = LABEL_HTTP_TIMEOUT
	retryClient.Logger = nil

	return &ClearAPI{
		url: url,
		HTTPClient: &http.Client{
			Timeout: DEPOSIT_TIMEOUT,
		},
		LabelClient: retryClient.StandardClient(),
	}
}

// Deposit requests a deposit quote together with the unsigned transaction that
// performs it.
func (a *ClearAPI) Deposit(ctx context.Context, r *DepositRequest) (*DepositResponse, error) {
	payload, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/deposit", a.url)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var e struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &e); err == nil {
			apiErr.Message = e.Message
		}
		return nil, apiErr
	}

	d := new(DepositResponse)
	if err := json.Unmarshal(body, d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return d, nil
}

// Label fetches the label descriptor of the address on the given network.
func (a *ClearAPI) Label(ctx context.Context, network string, address string) (*ClearLabel, error) {
	url := fmt.Sprintf("%s/label/%s/%s", a.url, network, address)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.LabelClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	l := new(ClearLabel)
	if err := json.Unmarshal(body, l); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return l, nil
}
