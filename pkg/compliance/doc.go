// Package compliance implements the compliance graph engine: tenant
// hierarchy traversal, governance resolution, cross-framework coverage,
// transitive benefit propagation, and gap analysis. All calculations are
// pure functions over inputs read from a single consistent snapshot.
package compliance
