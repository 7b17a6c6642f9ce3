package server

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/advisorkit/relay/internal/api/server/client"
	"github.com/advisorkit/relay/internal/api/server/handlers"
	"github.com/advisorkit/relay/internal/config"
	"github.com/advisorkit/relay/internal/logger"
)

var localLogger *logger.Logger

func Init() {
	localLogger = logger.NewLogger("Server")
}

func Run() {
	handler, err := initializeHandler()
	if err != nil {
		localLogger.Fatal("Failed to initialize backend client: ", err)
	}

	router := mux.NewRouter()
	registerRoutes(router, handler)

	// Browser clients sit on a different origin than the relay.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "https://localhost:3000", "*"},
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
	}).Handler(requestLogging(router))

	address := net.JoinHostPort(config.Host, config.Port)
	srv := &http.Server{
		Addr:    address,
		Handler: corsHandler,
	}

	localLogger.Info("Server started on http://" + address + "/")
	localLogger.Info("Proxying to " + config.BackendURL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		localLogger.Fatal("Error starting server: ", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			localLogger.Error("Shutdown error: ", err)
		}
		localLogger.Info("Server stopped")
	}
}

// initializeHandler builds the backend client up front so a bad backend URL
// fails the process at startup instead of on the first request.
func initializeHandler() (*handlers.Handler, error) {
	backendClient, err := client.NewBackendClient(client.ClientConfig{BaseURL: config.BackendURL})
	if err != nil {
		return nil, err
	}
	return handlers.NewHandler(backendClient), nil
}
