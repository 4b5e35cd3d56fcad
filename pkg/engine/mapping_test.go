package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/complymap/complymap/pkg/compliance"
	"github.com/complymap/complymap/pkg/model"
)

func TestEngineCreateMapping(t *testing.T) {
	req := MappingRequest{
		SourceFramework:   "iso27001",
		SourceRequirement: "A.5.1",
		TargetFramework:   "nist-csf",
		TargetRequirement: "PR.AC-1",
		MappingPercentage: 120,
		MappingType:       model.MappingTypeExceeds,
		Bidirectional:     true,
	}

	t.Run("stores a valid edge", func(t *testing.T) {
		m := newMockStores()
		m.Frameworks.On("FetchFrameworkByCode", "iso27001").Return(&fwkISO, nil)
		m.Frameworks.On("FetchFrameworkByCode", "nist-csf").Return(&fwkCSF, nil)
		m.Frameworks.On("FetchRequirement", int64(1), "A.5.1").Return(&isoReqs[0], nil)
		m.Frameworks.On("FetchRequirement", int64(2), "PR.AC-1").Return(&csfReqs[0], nil)
		m.Mappings.On("CreateMapping", mock.MatchedBy(func(mapping *model.Mapping) bool {
			return mapping.SourceRequirementID == 10 &&
				mapping.TargetRequirementID == 20 &&
				mapping.MappingPercentage == 120 &&
				mapping.Bidirectional
		})).Return(nil)

		mapping, err := newTestEngine(m).CreateMapping(req, compliance.DefaultStrengthCeiling)
		require.NoError(t, err)
		assert.Equal(t, model.MappingTypeExceeds, mapping.MappingType)
		m.Mappings.AssertExpectations(t)
	})

	t.Run("rejects strength above the ceiling before touching the store", func(t *testing.T) {
		m := newMockStores()
		over := req
		over.MappingPercentage = 151

		_, err := newTestEngine(m).CreateMapping(over, compliance.DefaultStrengthCeiling)
		assert.ErrorIs(t, err, compliance.ErrInvalidMappingStrength)
		m.Frameworks.AssertNotCalled(t, "FetchFrameworkByCode", mock.Anything)
		m.Mappings.AssertNotCalled(t, "CreateMapping", mock.Anything)
	})

	t.Run("rejects negative strength", func(t *testing.T) {
		m := newMockStores()
		neg := req
		neg.MappingPercentage = -1

		_, err := newTestEngine(m).CreateMapping(neg, compliance.DefaultStrengthCeiling)
		assert.ErrorIs(t, err, compliance.ErrInvalidMappingStrength)
	})
}
