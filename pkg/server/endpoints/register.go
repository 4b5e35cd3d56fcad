package endpoints

import (
	"github.com/complymap/complymap/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterHealthEndpoints(srv)
	RegisterFrameworksEndpoints(srv)
	RegisterTenantsEndpoints(srv)
	RegisterGovernanceEndpoints(srv)
	RegisterFulfillmentsEndpoints(srv)
	RegisterMappingsEndpoints(srv)
	RegisterReportsEndpoints(srv)
	RegisterGapsEndpoints(srv)
}
