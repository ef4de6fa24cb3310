package handlers

import (
	"fmt"
	"net/http"
)

type LabelHandler struct {
	labels LabelProvider
}

func NewLabelHandler(labels LabelProvider) *LabelHandler {
	return &LabelHandler{
		labels: labels,
	}
}

// HandleRequest returns the cached label descriptor of the deposit target.
func (h *LabelHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	label, ok := h.labels.Label()
	if !ok || label == nil {
		JSONError(w, fmt.Errorf("label not available"), http.StatusNotFound)
		return
	}

	JSONResponse(w, label, http.StatusOK)
}
