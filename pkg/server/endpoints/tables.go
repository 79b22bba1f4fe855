package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"sqlgate/pkg/server"
)

// RegisterTablesEndpoints registers the schema introspection endpoints
func RegisterTablesEndpoints(s *server.Server) {
	s.Router.HandleFunc("/api/v1/tables", handleTables(s)).Methods("GET")
	s.Router.HandleFunc("/api/v1/tables/{table}/columns", handleColumns(s)).Methods("GET")
}

func handleTables(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tables, err := s.Execution.Tables(r.Context())
		if err != nil {
			respondWithError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, tables)
	}
}

func handleColumns(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table := mux.Vars(r)["table"]
		columns, err := s.Execution.Columns(r.Context(), table)
		if err != nil {
			respondWithError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, columns)
	}
}
