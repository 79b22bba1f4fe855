package endpoints

import (
	"encoding/json"
	"net/http"

	"sqlgate/pkg/apperr"
	"sqlgate/pkg/audit"
	"sqlgate/pkg/server"
)

// LoginRequest is the OTP login body
type LoginRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

// RegisterLoginEndpoint registers the OTP login endpoint
func RegisterLoginEndpoint(s *server.Server) {
	s.Router.HandleFunc("/api/v1/login", handleLogin(s)).Methods("POST")
}

func handleLogin(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, apperr.New(apperr.KindWrongEndpoint, "invalid request body"))
			return
		}
		if req.Phone == "" || req.OTP == "" {
			respondWithError(w, apperr.New(apperr.KindWrongEndpoint, "phone and otp are required"))
			return
		}

		resp, err := s.Login.Login(r.Context(), req.Phone, req.OTP)
		if err != nil {
			s.Audit.Log(audit.LoginEvent{
				Phone:        req.Phone,
				ClientIP:     clientIP(r),
				Success:      false,
				ErrorMessage: err.Error(),
			})
			respondWithError(w, err)
			return
		}

		s.Audit.Log(audit.LoginEvent{
			Phone:    req.Phone,
			ClientIP: clientIP(r),
			Success:  true,
		})
		respondWithJSON(w, http.StatusOK, resp)
	}
}
