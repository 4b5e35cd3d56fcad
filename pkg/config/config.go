package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/complymap/config"
	ConfigFileName    = "complymap.yml"
)

// Config holds all server configuration settings
type Config struct {
	// TrustedProxies is a list of CIDR ranges for trusted proxies
	TrustedProxies []string `yaml:"trusted_proxies" json:"trusted_proxies"`

	// APIResourceListLimitMax is the maximum number of results for listing requests
	APIResourceListLimitMax int `yaml:"api_resource_list_limit_max" json:"api_resource_list_limit_max"`

	// MappingStrengthCeiling is the upper bound accepted for mapping
	// percentages at write time
	MappingStrengthCeiling float64 `yaml:"mapping_strength_ceiling" json:"mapping_strength_ceiling"`

	// GapConfidenceReviewThreshold is the confidence score below which
	// identified gaps are queued for analyst review
	GapConfidenceReviewThreshold int `yaml:"gap_confidence_review_threshold" json:"gap_confidence_review_threshold"`

	// CatalogPath is the directory holding framework catalog YAML files
	CatalogPath string `yaml:"catalog_path" json:"catalog_path"`

	// AuditEnabled toggles emission of audit events
	AuditEnabled bool `yaml:"audit_enabled" json:"audit_enabled"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	// Load config
	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		TrustedProxies:               []string{},
		APIResourceListLimitMax:      1000,
		MappingStrengthCeiling:       150,
		GapConfidenceReviewThreshold: 60,
		CatalogPath:                  "",
		AuditEnabled:                 true,
		sources:                      make(map[string]string),
	}
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*Config, error) {
	config := newDefault()

	// Initialize all sources as "default"
	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	// Determine config file path
	configPath := os.Getenv("COMPLYMAP_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	// Try to load from config file
	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	// Override with environment variables
	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"trusted_proxies", "api_resource_list_limit_max",
		"mapping_strength_ceiling", "gap_confidence_review_threshold",
		"catalog_path", "audit_enabled",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if len(file.TrustedProxies) > 0 {
		c.TrustedProxies = file.TrustedProxies
		c.sources["trusted_proxies"] = "file"
	}
	if file.APIResourceListLimitMax != 0 {
		c.APIResourceListLimitMax = file.APIResourceListLimitMax
		c.sources["api_resource_list_limit_max"] = "file"
	}
	if file.MappingStrengthCeiling != 0 {
		c.MappingStrengthCeiling = file.MappingStrengthCeiling
		c.sources["mapping_strength_ceiling"] = "file"
	}
	if file.GapConfidenceReviewThreshold != 0 {
		c.GapConfidenceReviewThreshold = file.GapConfidenceReviewThreshold
		c.sources["gap_confidence_review_threshold"] = "file"
	}
	if file.CatalogPath != "" {
		c.CatalogPath = file.CatalogPath
		c.sources["catalog_path"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("COMPLYMAP_TRUSTED_PROXIES"); val != "" {
		c.TrustedProxies = splitAndTrim(val)
		c.sources["trusted_proxies"] = "environment"
	}
	if val := os.Getenv("COMPLYMAP_API_RESOURCE_LIST_LIMIT_MAX"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.APIResourceListLimitMax = i
			c.sources["api_resource_list_limit_max"] = "environment"
		}
	}
	if val := os.Getenv("COMPLYMAP_MAPPING_STRENGTH_CEILING"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			c.MappingStrengthCeiling = f
			c.sources["mapping_strength_ceiling"] = "environment"
		}
	}
	if val := os.Getenv("COMPLYMAP_GAP_CONFIDENCE_REVIEW_THRESHOLD"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.GapConfidenceReviewThreshold = i
			c.sources["gap_confidence_review_threshold"] = "environment"
		}
	}
	if val := os.Getenv("COMPLYMAP_CATALOG_PATH"); val != "" {
		c.CatalogPath = val
		c.sources["catalog_path"] = "environment"
	}
	if val := os.Getenv("COMPLYMAP_AUDIT_ENABLED"); val != "" {
		c.AuditEnabled = val == "true" || val == "1"
		c.sources["audit_enabled"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// IsTrustedProxy checks if an IP is from a trusted proxy
func (c *Config) IsTrustedProxy(ip string) bool {
	if len(c.TrustedProxies) == 0 {
		return false
	}

	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}

	for _, cidr := range c.TrustedProxies {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			// Try as plain IP
			if net.ParseIP(cidr) != nil && cidr == ip {
				return true
			}
			continue
		}
		if network.Contains(parsedIP) {
			return true
		}
	}
	return false
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate trusted proxies are valid CIDR ranges
	for _, cidr := range c.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			if net.ParseIP(cidr) == nil {
				return fmt.Errorf("invalid trusted_proxies value: %s", cidr)
			}
		}
	}

	if c.MappingStrengthCeiling < 100 {
		return fmt.Errorf("mapping_strength_ceiling must be at least 100, got %v", c.MappingStrengthCeiling)
	}
	if c.GapConfidenceReviewThreshold < 0 || c.GapConfidenceReviewThreshold > 100 {
		return fmt.Errorf("gap_confidence_review_threshold must be in [0, 100], got %d", c.GapConfidenceReviewThreshold)
	}

	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "trusted_proxies", Value: strings.Join(c.TrustedProxies, ","), Source: c.Source("trusted_proxies")},
		{Name: "api_resource_list_limit_max", Value: strconv.Itoa(c.APIResourceListLimitMax), Source: c.Source("api_resource_list_limit_max")},
		{Name: "mapping_strength_ceiling", Value: strconv.FormatFloat(c.MappingStrengthCeiling, 'f', -1, 64), Source: c.Source("mapping_strength_ceiling")},
		{Name: "gap_confidence_review_threshold", Value: strconv.Itoa(c.GapConfidenceReviewThreshold), Source: c.Source("gap_confidence_review_threshold")},
		{Name: "catalog_path", Value: c.CatalogPath, Source: c.Source("catalog_path")},
		{Name: "audit_enabled", Value: strconv.FormatBool(c.AuditEnabled), Source: c.Source("audit_enabled")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
