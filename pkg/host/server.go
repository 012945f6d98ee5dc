package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"gamecore/pkg/commands"
	"gamecore/pkg/log"
	"github.com/gorilla/mux"
)

// HostServer is a development host for the game core. It exposes the
// command boundary over HTTP the way the production shell exposes it
// over its webview invoke channel: POST /invoke/{command} with a JSON
// argument body, plus a websocket event stream at /events.
type HostServer struct {
	server *http.Server
	tls    *TLSConfig
	events *EventBroker
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewHostServerOptions struct {
	Port       int
	TLS        *TLSConfig
	Dispatcher *commands.Dispatcher
	Events     *EventBroker
}

// NewHostServer creates a new http.Server for handling command invocations
func NewHostServer(opts NewHostServerOptions) *HostServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts.Dispatcher, opts.Events),
	}
	return &HostServer{
		server: server,
		tls:    opts.TLS,
		events: opts.Events,
	}
}

// NewRouter builds the host route table.
func NewRouter(dispatcher *commands.Dispatcher, events *EventBroker) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/invoke/{command}", HandleInvoke(dispatcher)).
		Methods(http.MethodPost, http.MethodOptions)
	if events != nil {
		router.HandleFunc("/events", events.HandleSubscribe).
			Methods(http.MethodGet)
	}
	return router
}

// HandleInvoke routes a command invocation to the dispatcher. The
// response body is the command's JSON result; failures are reported as
// a plain string error message, matching the invoke channel contract.
func HandleInvoke(dispatcher *commands.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		name := mux.Vars(r)["command"]

		request, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body: %v", err)
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}

		result, err := dispatcher.Invoke(r.Context(), name, request)
		if err != nil {
			if commands.IsUnknownCommand(err) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			log.Error("Command %q failed: %v", name, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(result); err != nil {
			log.Error("Failed to write result: %v", err)
		}
	}
}

// Start starts the HostServer
func (s *HostServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("Host server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("Host server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("Host server closed")
			return
		}
		log.Error("Host server error: %v", err)
	}
}

// Stop stops the HostServer
func (s *HostServer) Stop(ctx context.Context) error {
	if s.events != nil {
		s.events.CloseAll()
	}
	return s.server.Shutdown(ctx)
}
