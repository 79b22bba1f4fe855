package endpoints

import (
	"net/http"

	"sqlgate/pkg/audit"
	"sqlgate/pkg/gate"
	"sqlgate/pkg/server"
	"sqlgate/pkg/statement"
)

// RegisterOpenSQLEndpoint registers the select entry point
func RegisterOpenSQLEndpoint(s *server.Server) {
	s.Router.HandleFunc("/api/v1/opensql", handleOpenSQL(s)).Methods("POST")
}

func handleOpenSQL(s *server.Server) http.HandlerFunc {
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

		decision, err := s.Gate.Authorize(r.Context(), gate.ModeRead, stmt, r.Header.Get("Authorization"))
		if err != nil {
			auditStatement(s, r, stmt, "", err)
			respondWithError(w, err)
			return
		}

		rows, err := s.Execution.Query(r.Context(), stmt.Raw)
		if err != nil {
			auditStatement(s, r, stmt, decision.Phone, err)
			respondWithError(w, err)
			return
		}

		auditStatement(s, r, stmt, decision.Phone, nil)
		respondWithJSON(w, http.StatusOK, rows)
	}
}

func auditStatement(s *server.Server, r *http.Request, stmt statement.Statement, phone string, failure error) {
	event := audit.StatementEvent{
		Verb:     stmt.Verb.String(),
		Table:    stmt.BareTable(),
		Phone:    phone,
		ClientIP: clientIP(r),
		Success:  failure == nil,
	}
	if failure != nil {
		event.ErrorMessage = failure.Error()
	}
	s.Audit.Log(event)
}
