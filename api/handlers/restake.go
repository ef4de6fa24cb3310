package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/clearsol/clear-restake/protocol/clear"
	"github.com/clearsol/clear-restake/restake"
)

type Restaker interface {
	Submit(ctx context.Context, amount string) (<-chan error, error)
	Reset()
	State() restake.State
	Subscribe() (restake.State, <-chan restake.State, func())
}

type MaxProvider interface {
	Max() (string, bool)
}

type LabelProvider interface {
	Label() (*clear.ClearLabel, bool)
}

type RestakeBody struct {
	Amount string `json:"amount"`
	// Max restakes the balance minus the fee reserve and ignores Amount.
	Max bool `json:"max"`
}

type StatusResponse struct {
	State        restake.State         `json:"state"`
	Confirmation *restake.Confirmation `json:"confirmation,omitempty"`
}

type RestakeHandler struct {
	restaker Restaker
	balances MaxProvider
	labels   LabelProvider
}

func NewRestakeHandler(restaker Restaker, balances MaxProvider, labels LabelProvider) *RestakeHandler {
	return &RestakeHandler{
		restaker: restaker,
		balances: balances,
		labels:   labels,
	}
}

// HandleRestake starts a submission and returns status code 202 once the
// deposit chain is running. The result is observed through the status endpoints.
func (h *RestakeHandler) HandleRestake(w http.ResponseWriter, r *http.Request) {
	b := &RestakeBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	amount := b.Amount
	if b.Max {
		var ok bool
		amount, ok = h.balances.Max()
		if !ok {
			JSONError(w, fmt.Errorf("balance unknown"), http.StatusServiceUnavailable)
			return
		}
	}

	_, err = h.restaker.Submit(r.Context(), amount)
	if err != nil {
		var precondition *restake.PreconditionError
		switch {
		case errors.As(err, &precondition):
			JSONError(w, err, http.StatusBadRequest)
		case errors.Is(err, restake.ErrSubmissionInFlight), errors.Is(err, restake.ErrResetRequired):
			JSONError(w, err, http.StatusConflict)
		default:
			JSONError(w, err, http.StatusInternalServerError)
		}
		return
	}

	JSONResponse(w, h.status(), http.StatusAccepted)
}

// HandleReset detaches the current attempt and returns the idle state.
func (h *RestakeHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	h.restaker.Reset()
	JSONResponse(w, h.status(), http.StatusOK)
}

// HandleStatus returns the current state with the confirmation details.
func (h *RestakeHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	JSONResponse(w, h.status(), http.StatusOK)
}

// HandleStream is an sse handler that sends every state change until the
// submission reaches a terminal status.
func (h *RestakeHandler) HandleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		JSONError(w, fmt.Errorf("streaming not supported"), http.StatusInternalServerError)
		return
	}

	state, stateChn, unsubscribe := h.restaker.Subscribe()
	defer unsubscribe()

	h.setheaders(w)
	w.WriteHeader(http.StatusOK)

	h.writeEvent(w, h.statusOf(state))
	flusher.Flush()
	if state.Status().Terminal() {
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case state, ok := <-stateChn:
			{
				if !ok {
					return
				}

				h.writeEvent(w, h.statusOf(state))
				flusher.Flush()
				if state.Status().Terminal() {
					return
				}
			}
		}
	}
}

func (h *RestakeHandler) status() StatusResponse {
	return h.statusOf(h.restaker.State())
}

func (h *RestakeHandler) statusOf(state restake.State) StatusResponse {
	resp := StatusResponse{
		State: state,
	}
	if state.Status() == restake.StatusIdle {
		return resp
	}

	var label *clear.ClearLabel
	if h.labels != nil {
		label, _ = h.labels.Label()
	}
	resp.Confirmation = restake.NewConfirmation(state, label)
	return resp
}

func (h *RestakeHandler) writeEvent(w http.ResponseWriter, resp StatusResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "data: %s\n\n", data)
}

func (h *RestakeHandler) setheaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}
