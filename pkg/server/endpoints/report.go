package endpoints

import (
	"encoding/json"
	"net/http"

	"sqlgate/pkg/apperr"
	"sqlgate/pkg/report"
	"sqlgate/pkg/server"
)

// ReportResponse returns the path of a rendered report
type ReportResponse struct {
	CodeStatus int    `json:"codestatus"`
	Path       string `json:"path"`
}

// RegisterReportEndpoint registers the report generation endpoint
func RegisterReportEndpoint(s *server.Server) {
	s.Router.HandleFunc("/api/v1/report", handleReport(s)).Methods("POST")
}

func handleReport(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req report.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, apperr.New(apperr.KindWrongEndpoint, "invalid request body"))
			return
		}

		path, err := s.Reports.Generate(r.Context(), req)
		if err != nil {
			respondWithError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, ReportResponse{CodeStatus: http.StatusOK, Path: path})
	}
}
