// Package main provides the SQL command gateway: an HTTP server that accepts
// raw SQL, checks it against a per-table permission matrix, and executes it
// transactionally.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: store interfaces and GORM implementations
//   - pkg/statement: SQL verb classification and table extraction
//   - pkg/gate: permission matrix enforcement
//   - pkg/token: JWT access credentials
//   - pkg/authn: OTP login
//   - pkg/report: templated report generation
//   - pkg/audit: audit logging
//   - pkg/config: configuration management
//
// # Quick Start
//
// The server is run via the sqlgatectl CLI:
//
//	# Generate a token signing secret
//	export SQLGATE_JWT_SECRET="$(sqlgatectl jwt-secret generate)"
//
//	# Run parameter database migrations
//	sqlgatectl db migrate
//
//	# Load the permission matrix
//	sqlgatectl permission load permissions.yml
//
//	# Start the server
//	sqlgatectl server
//
// # Environment Variables
//
//   - SQLGATE_PARAMETER_DATABASE_URL: PostgreSQL connection string of the permission database
//   - SQLGATE_TRANSACTION_DATABASE_URL: PostgreSQL connection string client SQL runs against
//   - SQLGATE_JWT_SECRET: secret signing access tokens
//   - SQLGATE_LOG_LEVEL: log level (debug enables SQL logging)
//   - SQLGATE_PORT: server port (default: 8000)
package main
