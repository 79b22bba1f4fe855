package endpoints

import (
	"net/http"

	"sqlgate/pkg/gate"
	"sqlgate/pkg/server"
	"sqlgate/pkg/statement"
)

// ExecResponse acknowledges a committed mutation
type ExecResponse struct {
	CodeStatus int    `json:"codestatus"`
	Msg        string `json:"msg"`
}

// RegisterExeSQLEndpoint registers the mutation entry point
func RegisterExeSQLEndpoint(s *server.Server) {
	s.Router.HandleFunc("/api/v1/exesql", handleExeSQL(s)).Methods("POST")
}

func handleExeSQL(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := readStatement(r)
		if err != nil {
			respondWithError(w, err)
			return
		}

		stmt, err := statement.Parse(raw)
		if err != nil {
			respondWithError(w, err)
			return
		}

		decision, err := s.Gate.Authorize(r.Context(), gate.ModeWrite, stmt, r.Header.Get("Authorization"))
		if err != nil {
			auditStatement(s, r, stmt, "", err)
			respondWithError(w, err)
			return
		}

		if err := s.Execution.Exec(r.Context(), stmt.Raw); err != nil {
			auditStatement(s, r, stmt, decision.Phone, err)
			respondWithError(w, err)
			return
		}

		auditStatement(s, r, stmt, decision.Phone, nil)
		respondWithJSON(w, http.StatusOK, ExecResponse{CodeStatus: http.StatusOK, Msg: "success"})
	}
}
