package endpoints

import (
	"encoding/json"
	"io"
	"net"
	"net/http"

	"sqlgate/pkg/apperr"
)

// maxStatementBytes caps the request body read for SQL endpoints.
const maxStatementBytes = 1 << 20

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

func respondWithError(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInvalidCredential {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	respondWithJSON(w, kind.Status(), apperr.BodyOf(err))
}

func readStatement(r *http.Request) (string, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxStatementBytes))
	if err != nil {
		return "", apperr.Wrap(apperr.KindExecutionFailed, "Something went wrong", err)
	}
	return string(body), nil
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
