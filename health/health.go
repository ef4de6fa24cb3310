// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package health

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const PROBE_TIMEOUT = 5 * time.Second

type Probe interface {
	Ping(ctx context.Context) error
}

// Handler returns ok when every probe answers, otherwise 503 with the failing probes.
func Handler(probes map[string]Probe) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), PROBE_TIMEOUT)
		defer cancel()

		failed := make([]string, 0)
		for name, probe := range probes {
			err := probe.Ping(ctx)
			if err != nil {
				log.Warn().Err(err).Msgf("Health probe %s failed", name)
				failed = append(failed, name)
			}
		}

		if len(failed) > 0 {
			sort.Strings(failed)
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(fmt.Sprintf("unavailable: %s", strings.Join(failed, ","))))
			return
		}

		_, _ = w.Write([]byte("ok"))
	}
}

// StartHealthEndpoint starts /health endpoint on provided port that returns ok on invocation
func StartHealthEndpoint(port uint16, probes map[string]Probe) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", Handler(probes))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	log.Info().Msgf("started /health endpoint on port %d", port)
	err := srv.ListenAndServe()
	if err != nil {
		log.Err(err).Msgf("Failed starting health server")
		return
	}
}
