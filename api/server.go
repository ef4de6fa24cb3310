package api

import (
	"context"
	"net/http"
	"time"

	"github.com/clearsol/clear-restake/api/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

func NewRouter(
	restakeHandler *handlers.RestakeHandler,
	labelHandler *handlers.LabelHandler,
	balanceHandler *handlers.BalanceHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/v1/label", labelHandler.HandleRequest).Methods("GET")
	r.HandleFunc("/v1/balance", balanceHandler.HandleRequest).Methods("GET")
	r.HandleFunc("/v1/restake", restakeHandler.HandleRestake).Methods("POST")
	r.HandleFunc("/v1/reset", restakeHandler.HandleReset).Methods("POST")
	r.HandleFunc("/v1/status", restakeHandler.HandleStatus).Methods("GET")
	r.HandleFunc("/v1/status/stream", restakeHandler.HandleStream).Methods("GET")
	return r
}

func Serve(
	ctx context.Context,
	addr string,
	restakeHandler *handlers.RestakeHandler,
	labelHandler *handlers.LabelHandler,
	balanceHandler *handlers.BalanceHandler,
) {
	server := &http.Server{
		Addr:        addr,
		Handler:     NewRouter(restakeHandler, labelHandler, balanceHandler),
		ReadTimeout: time.Second * 10,
	}
	go func() {
		log.Info().Msgf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Msgf("Error shutting down server")
	} else {
		log.Info().Msgf("Server shut down gracefully.")
	}
}
