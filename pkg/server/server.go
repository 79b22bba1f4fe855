package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"sqlgate/pkg/audit"
	"sqlgate/pkg/authn"
	"sqlgate/pkg/config"
	"sqlgate/pkg/gate"
	"sqlgate/pkg/report"
	"sqlgate/pkg/server/store"
)

type Server struct {
	Settings  config.Settings
	Router    *mux.Router
	Gate      *gate.Gate
	Login     *authn.Service
	Execution store.ExecutionStore
	Reports   *report.Generator
	Audit     *audit.Logger
	srv       *http.Server
}

func NewServer(
	settings config.Settings,
	gateway *gate.Gate,
	login *authn.Service,
	execution store.ExecutionStore,
	reports *report.Generator,
	auditLog *audit.Logger,
) *Server {

	router := mux.NewRouter().UseEncodedPath()

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)

	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, cors(router)),
		Addr:    settings.BindAddress + ":" + settings.Port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Settings:  settings,
		Router:    router,
		Gate:      gateway,
		Login:     login,
		Execution: execution,
		Reports:   reports,
		Audit:     auditLog,
		srv:       srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
