package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

type CafeHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	address   string
}

func NewCafeHttpServer(router *Router, muxRouter *mux.Router, address string) *CafeHttpServer {
	return &CafeHttpServer{
		router:    router,
		muxRouter: muxRouter,
		address:   address,
	}
}

// Start registers the routes, serves until an interrupt or termination signal
// arrives, then shuts down gracefully.
func (s *CafeHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.muxRouter,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("address", s.address).Msg("[CafeHttpServer] Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("[CafeHttpServer] ListenAndServe failed")
		}
	}()

	<-stop
	log.Info().Msg("[CafeHttpServer] Shutting down the server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("[CafeHttpServer] Server forced to shutdown")
	}

	log.Info().Msg("[CafeHttpServer] Server exiting")
}
