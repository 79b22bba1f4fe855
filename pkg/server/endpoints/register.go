package endpoints

import (
	"sqlgate/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterOpenSQLEndpoint(srv)
	RegisterExeSQLEndpoint(srv)
	RegisterLoginEndpoint(srv)
	RegisterTablesEndpoints(srv)
	RegisterReportEndpoint(srv)
	RegisterStatusEndpoint(srv)
}
