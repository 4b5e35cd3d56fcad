package model

//go:generate go run github.com/dmarkham/enumer -type MappingType -trimprefix MappingType -transform lower -yaml -sql -output mapping_type.gen.go

// MappingType classifies how a source requirement relates to its target.
type MappingType int

const (
	// MappingTypeFull satisfies the target requirement completely.
	MappingTypeFull MappingType = iota
	// MappingTypeExceeds goes beyond the target; strength may exceed 100.
	MappingTypeExceeds
	// MappingTypePartial satisfies the target only in part.
	MappingTypePartial
)
