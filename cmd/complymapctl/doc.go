// Package main implements complymapctl, the command line interface for the
// ComplyMap compliance graph server.
//
// ComplyMap tracks compliance frameworks, the requirements within them, how
// completely each tenant in a corporate hierarchy fulfills those
// requirements, and the mapping graph that lets work done against one
// framework count toward another.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: data access layer over PostgreSQL
//   - pkg/engine: compliance computations and validated writes
//   - pkg/compliance: pure domain calculations (coverage, transitive benefit, hierarchy)
//   - pkg/catalog: framework catalog loading
//   - pkg/model: database models
//   - pkg/db: database connection utilities
//   - pkg/audit: audit logging
//   - pkg/config: configuration management
//
// # Quick Start
//
// The server is run via the complymapctl CLI:
//
//	# Run database migrations
//	complymapctl db migrate
//
//	# Load the framework catalog
//	complymapctl framework load catalogs/
//
//	# Start the server
//	complymapctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - AUDIT_DATABASE_URL: PostgreSQL connection string for the audit sink
//   - COMPLYMAP_CONFIG_PATH: Directory holding complymap.yml
//   - COMPLYMAP_LOG_LEVEL: Log level (debug enables SQL logging)
//   - PORT: Server port (default: 8000)
//   - BIND_ADDRESS: Server bind address (default: 0.0.0.0)
package main
