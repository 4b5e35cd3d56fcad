// Package catalog loads framework reference data from YAML files.
//
// A catalog file describes one framework and its requirements. Loading
// is idempotent: frameworks are keyed by code and requirements by
// (framework, requirement_id), so a reload updates in place. The
// package can also watch a directory and reload files as they change.
package catalog
