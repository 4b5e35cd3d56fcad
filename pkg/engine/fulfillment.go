package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/complymap/complymap/pkg/compliance"
	"github.com/complymap/complymap/pkg/model"
	"github.com/complymap/complymap/pkg/server/store"
)

// FulfillmentUpdate carries the mutable fields of a fulfillment record.
// Nil fields are left unchanged.
type FulfillmentUpdate struct {
	Applicable    *bool
	Percentage    *float64
	Status        *string
	Justification *string
	LastReview    *time.Time
	NextReview    *time.Time
}

// GetOrCreateFulfillment returns the record for a (tenant, requirement)
// pair, creating it on first access. Under hierarchical governance a new
// record inherits the parent's applicability and justification as a
// starting point; the percentage always starts at zero.
func (e *Engine) GetOrCreateFulfillment(tenantCode, frameworkCode, requirementID string) (*model.Fulfillment, error) {
	tenant, err := e.stores.Tenants.FetchTenantByCode(tenantCode)
	if err != nil {
		return nil, fmt.Errorf("tenant %q: %w", tenantCode, err)
	}
	framework, err := e.stores.Frameworks.FetchFrameworkByCode(frameworkCode)
	if err != nil {
		return nil, fmt.Errorf("framework %q: %w", frameworkCode, err)
	}
	requirement, err := e.stores.Frameworks.FetchRequirement(framework.ID, requirementID)
	if err != nil {
		return nil, fmt.Errorf("requirement %q: %w", requirementID, err)
	}

	fulfillment, err := e.stores.Fulfillments.FetchFulfillment(tenant.ID, requirement.ID)
	if err == nil {
		return fulfillment, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	fulfillment = &model.Fulfillment{
		TenantID:      tenant.ID,
		RequirementID: requirement.ID,
		Applicable:    true,
		Status:        model.FulfillmentStatusNotStarted,
	}
	e.seedFromParent(*tenant, requirement.ID, fulfillment)

	if err := e.stores.Fulfillments.CreateFulfillment(fulfillment); err != nil {
		return nil, err
	}
	return fulfillment, nil
}

// seedFromParent copies the parent's applicability and justification onto
// a fresh record when the tenant's compliance governance is hierarchical.
// The fulfillment percentage is never inherited.
func (e *Engine) seedFromParent(tenant model.Tenant, requirementID int64, fulfillment *model.Fulfillment) {
	if tenant.ParentID == nil {
		return
	}
	rules, err := e.stores.Governance.ListRules()
	if err != nil {
		return
	}
	rule, err := compliance.NewGovernanceResolver(rules).Resolve(tenant.ID, GovernanceScopeCompliance, nil)
	if err != nil || rule.GovernanceModel != model.GovernanceModelHierarchical {
		return
	}
	parent, err := e.stores.Fulfillments.FetchFulfillment(*tenant.ParentID, requirementID)
	if err != nil {
		return
	}
	fulfillment.Applicable = parent.Applicable
	fulfillment.Justification = parent.Justification
}

// UpdateFulfillment applies an assessment update to the record for a
// (tenant, requirement) pair, creating it on first access.
func (e *Engine) UpdateFulfillment(tenantCode, frameworkCode, requirementID string, update FulfillmentUpdate) (*model.Fulfillment, error) {
	if update.Percentage != nil && (*update.Percentage < 0 || *update.Percentage > 100) {
		return nil, fmt.Errorf("fulfillment percentage %.2f not in [0, 100]", *update.Percentage)
	}

	fulfillment, err := e.GetOrCreateFulfillment(tenantCode, frameworkCode, requirementID)
	if err != nil {
		return nil, err
	}

	if update.Applicable != nil {
		fulfillment.Applicable = *update.Applicable
	}
	if update.Percentage != nil {
		fulfillment.FulfillmentPercentage = *update.Percentage
	}
	if update.Status != nil {
		fulfillment.Status = *update.Status
	}
	if update.Justification != nil {
		fulfillment.Justification = update.Justification
	}
	if update.LastReview != nil {
		fulfillment.LastReview = update.LastReview
	}
	if update.NextReview != nil {
		fulfillment.NextReview = update.NextReview
	}

	if err := e.stores.Fulfillments.UpdateFulfillment(fulfillment); err != nil {
		return nil, err
	}
	return fulfillment, nil
}
