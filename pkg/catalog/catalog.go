package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/complymap/complymap/pkg/audit"
	"github.com/complymap/complymap/pkg/model"
	"github.com/complymap/complymap/pkg/server/store"
)

// Document is the on-disk shape of a framework catalog file.
type Document struct {
	Framework    FrameworkDoc     `yaml:"framework"`
	Requirements []RequirementDoc `yaml:"requirements"`
}

// FrameworkDoc describes a framework's reference data.
type FrameworkDoc struct {
	Code      string `yaml:"code"`
	Name      string `yaml:"name"`
	Version   string `yaml:"version"`
	Industry  string `yaml:"industry"`
	Mandatory bool   `yaml:"mandatory"`
	Active    *bool  `yaml:"active"`
}

// RequirementDoc describes a single requirement entry.
type RequirementDoc struct {
	RequirementID string `yaml:"requirement_id"`
	Title         string `yaml:"title"`
	Priority      string `yaml:"priority"`
	Type          string `yaml:"type"`
}

var validPriorities = map[string]bool{
	model.PriorityCritical: true,
	model.PriorityHigh:     true,
	model.PriorityMedium:   true,
	model.PriorityLow:      true,
}

var validTypes = map[string]bool{
	model.RequirementTypeDetailed: true,
	model.RequirementTypeSummary:  true,
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the document for the fields an upsert needs.
func (d *Document) Validate() error {
	if d.Framework.Code == "" {
		return fmt.Errorf("catalog framework is missing a code")
	}
	if d.Framework.Name == "" {
		return fmt.Errorf("catalog framework %q is missing a name", d.Framework.Code)
	}

	seen := make(map[string]bool, len(d.Requirements))
	for i, req := range d.Requirements {
		if req.RequirementID == "" {
			return fmt.Errorf("requirement %d of framework %q is missing a requirement_id", i, d.Framework.Code)
		}
		if seen[req.RequirementID] {
			return fmt.Errorf("duplicate requirement %q in framework %q", req.RequirementID, d.Framework.Code)
		}
		seen[req.RequirementID] = true
		if req.Priority != "" && !validPriorities[req.Priority] {
			return fmt.Errorf("requirement %q has unknown priority %q", req.RequirementID, req.Priority)
		}
		if req.Type != "" && !validTypes[req.Type] {
			return fmt.Errorf("requirement %q has unknown type %q", req.RequirementID, req.Type)
		}
	}
	return nil
}

// Loader upserts catalog documents into the frameworks store.
type Loader struct {
	frameworks store.FrameworksStore
}

// NewLoader returns a Loader backed by the given store.
func NewLoader(frameworks store.FrameworksStore) *Loader {
	return &Loader{frameworks: frameworks}
}

// Result summarizes a catalog load.
type Result struct {
	FrameworkCode string
	Requirements  int
}

// LoadFile reads one catalog file and upserts its framework and
// requirements. Frameworks are keyed by code, requirements by
// (framework, requirement_id); reloading a file is idempotent.
func (l *Loader) LoadFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return l.Load(doc)
}

// Load upserts a parsed catalog document.
func (l *Loader) Load(doc *Document) (*Result, error) {
	active := true
	if doc.Framework.Active != nil {
		active = *doc.Framework.Active
	}
	industry := doc.Framework.Industry
	if industry == "" {
		industry = model.IndustryAll
	}

	framework := &model.Framework{
		Code:      doc.Framework.Code,
		Name:      doc.Framework.Name,
		Version:   doc.Framework.Version,
		Industry:  industry,
		Mandatory: doc.Framework.Mandatory,
		Active:    active,
	}
	if err := l.frameworks.UpsertFramework(framework); err != nil {
		audit.Log(audit.FrameworkLoadEvent{
			FrameworkCode: doc.Framework.Code,
			ErrorMessage:  err.Error(),
		})
		return nil, fmt.Errorf("failed to upsert framework %q: %w", doc.Framework.Code, err)
	}

	for _, req := range doc.Requirements {
		priority := req.Priority
		if priority == "" {
			priority = model.PriorityMedium
		}
		reqType := req.Type
		if reqType == "" {
			reqType = model.RequirementTypeDetailed
		}
		requirement := &model.Requirement{
			FrameworkID:   framework.ID,
			RequirementID: req.RequirementID,
			Title:         req.Title,
			Priority:      priority,
			ReqType:       reqType,
		}
		if err := l.frameworks.UpsertRequirement(requirement); err != nil {
			audit.Log(audit.FrameworkLoadEvent{
				FrameworkCode: doc.Framework.Code,
				ErrorMessage:  err.Error(),
			})
			return nil, fmt.Errorf("failed to upsert requirement %q of %q: %w",
				req.RequirementID, doc.Framework.Code, err)
		}
	}

	audit.Log(audit.FrameworkLoadEvent{
		FrameworkCode:    doc.Framework.Code,
		RequirementCount: len(doc.Requirements),
		Success:          true,
	})
	return &Result{FrameworkCode: doc.Framework.Code, Requirements: len(doc.Requirements)}, nil
}

// LoadDir loads every .yml and .yaml file in a directory, in name order.
func (l *Loader) LoadDir(dir string) ([]Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isCatalogFile(entry.Name()) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		result, err := l.LoadFile(path)
		if err != nil {
			return results, err
		}
		results = append(results, *result)
	}
	return results, nil
}

func isCatalogFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yml" || ext == ".yaml"
}
