package registry

import (
	"testing"

	"fluxcrm/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeOrgTypesDefaultsFirst(t *testing.T) {
	custom := []models.OrgType{
		{ID: "c1", Name: "DIAGNOSTIC_CHAIN", Color: "bg-teal-100 text-teal-800"},
	}
	merged := MergeOrgTypes(models.DefaultOrgTypes, custom)

	require.Len(t, merged, len(models.DefaultOrgTypes)+1)
	for i, d := range models.DefaultOrgTypes {
		assert.Equal(t, d.Name, merged[i].Name)
	}
	assert.Equal(t, "DIAGNOSTIC_CHAIN", merged[len(merged)-1].Name)
}

func TestMergeOrgTypesDropsCaseInsensitiveDuplicates(t *testing.T) {
	custom := []models.OrgType{
		{ID: "c1", Name: "hospital"},
		{ID: "c2", Name: "LAB"},
		{ID: "c3", Name: "Lab"},
	}
	merged := MergeOrgTypes(models.DefaultOrgTypes, custom)

	require.Len(t, merged, len(models.DefaultOrgTypes)+1)
	last := merged[len(merged)-1]
	assert.Equal(t, "c2", last.ID)
	assert.Equal(t, "LAB", last.Name)
}

func TestMergeLeadStagesSortsByOrder(t *testing.T) {
	custom := []models.LeadStage{
		{ID: "c1", Name: "TECHNICAL_REVIEW", Order: 3},
	}
	merged := MergeLeadStages(models.DefaultLeadStages, custom)

	require.Len(t, merged, len(models.DefaultLeadStages)+1)
	for i := 1; i < len(merged); i++ {
		assert.LessOrEqual(t, merged[i-1].Order, merged[i].Order)
	}
	// Stable sort keeps the default ahead of a custom stage at equal order.
	assert.Equal(t, "TECHNICAL_REVIEW", merged[3].Name)
	assert.True(t, merged[2].IsDefault)
}

func TestMergeLeadStagesDropsDuplicateNames(t *testing.T) {
	custom := []models.LeadStage{
		{ID: "c1", Name: "identified", Order: 99},
	}
	merged := MergeLeadStages(models.DefaultLeadStages, custom)
	assert.Len(t, merged, len(models.DefaultLeadStages))
}

func TestOrgTypeNameTaken(t *testing.T) {
	custom := []models.OrgType{{ID: "c1", Name: "LAB"}}
	assert.True(t, OrgTypeNameTaken("hospital", custom))
	assert.True(t, OrgTypeNameTaken("lab", custom))
	assert.False(t, OrgTypeNameTaken("PHARMACY", custom))
}

func TestStageNameTaken(t *testing.T) {
	custom := []models.LeadStage{{ID: "c1", Name: "TECHNICAL_REVIEW"}}
	assert.True(t, StageNameTaken("Identified", custom))
	assert.True(t, StageNameTaken("technical_review", custom))
	assert.False(t, StageNameTaken("ONBOARDING", custom))
}
