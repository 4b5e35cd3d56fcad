// Package engine orchestrates the compliance calculations over the store
// layer. It loads a consistent snapshot of the inputs, builds the
// in-memory indexes, and runs the pure functions from pkg/compliance.
package engine

import (
	"fmt"

	"github.com/complymap/complymap/pkg/audit"
	"github.com/complymap/complymap/pkg/compliance"
	"github.com/complymap/complymap/pkg/model"
	"github.com/complymap/complymap/pkg/server/store"
)

// GovernanceScopeCompliance is the policy scope that decides whether
// fulfillment reads aggregate across the tenant hierarchy.
const GovernanceScopeCompliance = "compliance"

// Engine runs compliance computations against consistent snapshots and
// applies validated writes through the live stores.
type Engine struct {
	stores      store.Stores
	snapshotter store.Snapshotter
}

// New creates an engine over the live stores and a snapshot runner.
func New(stores store.Stores, snapshotter store.Snapshotter) *Engine {
	return &Engine{stores: stores, snapshotter: snapshotter}
}

// Coverage computes the coverage report for a framework pair. All reads
// happen in one snapshot.
func (e *Engine) Coverage(sourceCode, targetCode string) (*compliance.CoverageReport, error) {
	var report compliance.CoverageReport
	err := e.snapshotter.Snapshot(func(s store.Stores) error {
		source, err := s.Frameworks.FetchFrameworkByCode(sourceCode)
		if err != nil {
			return fmt.Errorf("source framework %q: %w", sourceCode, err)
		}
		target, err := s.Frameworks.FetchFrameworkByCode(targetCode)
		if err != nil {
			return fmt.Errorf("target framework %q: %w", targetCode, err)
		}

		sourceReqs, err := s.Frameworks.ListRequirements(source.ID)
		if err != nil {
			return err
		}
		targetReqs, err := s.Frameworks.ListRequirements(target.ID)
		if err != nil {
			return err
		}
		mappings, err := s.Mappings.ListMappingsBetween(source.ID, target.ID)
		if err != nil {
			return err
		}

		graph := compliance.NewMappingGraph(mappings)
		report = compliance.CalculateCoverage(*source, *target, sourceReqs, targetReqs, graph)
		return nil
	})
	if err != nil {
		audit.Log(audit.ComputationEvent{
			Kind:            "coverage",
			SourceFramework: sourceCode,
			TargetFramework: targetCode,
			ErrorMessage:    err.Error(),
		})
		return nil, err
	}

	audit.Log(audit.ComputationEvent{
		Kind:            "coverage",
		SourceFramework: sourceCode,
		TargetFramework: targetCode,
		Success:         true,
	})
	return &report, nil
}

// TransitiveBenefit computes how a tenant's fulfillment of the source
// framework propagates toward the target framework. The tenant's
// governance for the compliance scope decides whether ancestor records
// join the aggregation.
func (e *Engine) TransitiveBenefit(sourceCode, targetCode, tenantCode string) (*compliance.TransitiveReport, error) {
	var report compliance.TransitiveReport
	err := e.snapshotter.Snapshot(func(s store.Stores) error {
		source, err := s.Frameworks.FetchFrameworkByCode(sourceCode)
		if err != nil {
			return fmt.Errorf("source framework %q: %w", sourceCode, err)
		}
		target, err := s.Frameworks.FetchFrameworkByCode(targetCode)
		if err != nil {
			return fmt.Errorf("target framework %q: %w", targetCode, err)
		}
		tenant, err := s.Tenants.FetchTenantByCode(tenantCode)
		if err != nil {
			return fmt.Errorf("tenant %q: %w", tenantCode, err)
		}

		sourceReqs, err := s.Frameworks.ListRequirements(source.ID)
		if err != nil {
			return err
		}
		targetReqs, err := s.Frameworks.ListRequirements(target.ID)
		if err != nil {
			return err
		}
		mappings, err := s.Mappings.ListMappingsBetween(source.ID, target.ID)
		if err != nil {
			return err
		}

		merged, err := e.fulfillmentScope(s, *tenant, source.ID)
		if err != nil {
			return err
		}

		graph := compliance.NewMappingGraph(mappings)
		report = compliance.CalculateTransitiveBenefit(*source, *target, *tenant,
			sourceReqs, targetReqs, graph, compliance.FulfillmentPercentages(merged))
		return nil
	})
	if err != nil {
		audit.Log(audit.ComputationEvent{
			Kind:            "transitive",
			SourceFramework: sourceCode,
			TargetFramework: targetCode,
			TenantCode:      tenantCode,
			ErrorMessage:    err.Error(),
		})
		return nil, err
	}

	audit.Log(audit.ComputationEvent{
		Kind:            "transitive",
		SourceFramework: sourceCode,
		TargetFramework: targetCode,
		TenantCode:      tenantCode,
		Success:         true,
	})
	return &report, nil
}

// FulfillmentsForTenant returns the tenant's fulfillment records for one
// framework with the hierarchy aggregation scope applied: under
// hierarchical governance the ancestor chain's records fill the holes,
// the tenant's own record winning per requirement.
func (e *Engine) FulfillmentsForTenant(tenantCode, frameworkCode string) ([]model.Fulfillment, error) {
	var out []model.Fulfillment
	err := e.snapshotter.Snapshot(func(s store.Stores) error {
		tenant, err := s.Tenants.FetchTenantByCode(tenantCode)
		if err != nil {
			return fmt.Errorf("tenant %q: %w", tenantCode, err)
		}
		framework, err := s.Frameworks.FetchFrameworkByCode(frameworkCode)
		if err != nil {
			return fmt.Errorf("framework %q: %w", frameworkCode, err)
		}

		merged, err := e.fulfillmentScope(s, *tenant, framework.ID)
		if err != nil {
			return err
		}
		for _, f := range merged {
			out = append(out, f)
		}
		return nil
	})
	return out, err
}

// fulfillmentScope reads the fulfillment records the tenant's governance
// model makes visible for one framework. Hierarchical governance with a
// parent pulls in the ancestor chain; shared and independent read only
// the tenant's own records. A tenant with no configured governance reads
// its own records.
func (e *Engine) fulfillmentScope(s store.Stores, tenant model.Tenant, frameworkID int64) (map[int64]model.Fulfillment, error) {
	own, err := s.Fulfillments.ListForTenantFramework(tenant.ID, frameworkID)
	if err != nil {
		return nil, err
	}

	chain := [][]model.Fulfillment{own}
	if tenant.ParentID != nil {
		rules, err := s.Governance.ListRules()
		if err != nil {
			return nil, err
		}
		resolver := compliance.NewGovernanceResolver(rules)

		rule, err := resolver.Resolve(tenant.ID, GovernanceScopeCompliance, nil)
		if err == nil && rule.GovernanceModel == model.GovernanceModelHierarchical {
			tenants, err := s.Tenants.ListTenants()
			if err != nil {
				return nil, err
			}
			hierarchy := compliance.NewHierarchyIndex(tenants)
			ancestors, err := hierarchy.Ancestors(tenant.ID)
			if err != nil {
				return nil, err
			}
			for _, ancestor := range ancestors {
				records, err := s.Fulfillments.ListForTenantFramework(ancestor.ID, frameworkID)
				if err != nil {
					return nil, err
				}
				chain = append(chain, records)
			}
		}
	}

	return compliance.AggregateFulfillments(chain...), nil
}
