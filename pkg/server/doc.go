// Package server provides the HTTP server for the compliance API.
//
// This package implements the core HTTP server that handles all REST API
// requests. It uses gorilla/mux for routing and gorilla/handlers for
// request logging.
//
// # Server Setup
//
//	srv := server.NewServer(stores, engine, cfg, db, host, port)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds:
//
//   - Stores: data access layer over PostgreSQL
//   - Engine: compliance computations and validated writes
//   - Config: server configuration
//   - Router: HTTP request router
//   - DB: database connection
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers the API surface including:
//
//   - /frameworks and /frameworks/{code}/requirements - framework catalog
//   - /tenants and /tenants/{code}/... - tenant hierarchy and governance
//   - /tenants/{code}/frameworks/{framework}/... - fulfillment assessments
//   - /mappings and /mappings/{id}/gaps - mapping graph and gap analysis
//   - /reports/coverage and /reports/transitive - cross-framework reports
package server
