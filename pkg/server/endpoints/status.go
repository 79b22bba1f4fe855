package endpoints

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"sqlgate/pkg/server"
)

// RegisterStatusEndpoint registers the status page
func RegisterStatusEndpoint(s *server.Server) {
	s.Router.HandleFunc("/", handleStatus()).Methods("GET")
}

func handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("SQLGATE_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}

		accept := r.Header.Get("Accept")
		format := r.URL.Query().Get("format")
		if format == "json" || strings.Contains(accept, "application/json") {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{"version": version})
			return
		}

		html := `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width">
    <title>SQL Gateway Status</title>
  </head>
  <body>
    <h1>Status</h1>
    <p>Your SQL gateway is running!</p>
    <dl>
      <dt>Version:</dt>
      <dd>` + version + `</dd>
    </dl>
  </body>
</html>
`

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}
}
