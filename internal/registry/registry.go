// Package registry merges the built-in stage and organization-type labels
// with user-defined entries. Precedence is fixed: defaults first, customs
// appended, with case-insensitive uniqueness against everything already
// merged.
package registry

import (
	"sort"
	"strings"

	"fluxcrm/models"
)

// MergeOrgTypes combines the default organization types with custom ones.
// A custom entry whose name collides (case-insensitively) with an earlier
// entry is dropped.
func MergeOrgTypes(defaults, custom []models.OrgType) []models.OrgType {
	merged := make([]models.OrgType, 0, len(defaults)+len(custom))
	seen := make(map[string]bool, len(defaults)+len(custom))
	for _, t := range defaults {
		merged = append(merged, t)
		seen[strings.ToUpper(t.Name)] = true
	}
	for _, t := range custom {
		key := strings.ToUpper(t.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, t)
	}
	return merged
}

// MergeLeadStages combines the default pipeline stages with custom ones and
// sorts the result by stage order. The sort is stable, so at equal order
// defaults keep precedence over customs.
func MergeLeadStages(defaults, custom []models.LeadStage) []models.LeadStage {
	merged := make([]models.LeadStage, 0, len(defaults)+len(custom))
	seen := make(map[string]bool, len(defaults)+len(custom))
	for _, s := range defaults {
		merged = append(merged, s)
		seen[strings.ToUpper(s.Name)] = true
	}
	for _, s := range custom {
		key := strings.ToUpper(s.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, s)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Order < merged[j].Order
	})
	return merged
}

// OrgTypeNameTaken reports whether name collides case-insensitively with a
// default or custom organization type.
func OrgTypeNameTaken(name string, custom []models.OrgType) bool {
	upper := strings.ToUpper(name)
	for _, t := range models.DefaultOrgTypes {
		if strings.ToUpper(t.Name) == upper {
			return true
		}
	}
	for _, t := range custom {
		if strings.ToUpper(t.Name) == upper {
			return true
		}
	}
	return false
}

// StageNameTaken reports whether name collides case-insensitively with a
// default or custom lead stage.
func StageNameTaken(name string, custom []models.LeadStage) bool {
	upper := strings.ToUpper(name)
	for _, s := range models.DefaultLeadStages {
		if strings.ToUpper(s.Name) == upper {
			return true
		}
	}
	for _, s := range custom {
		if strings.ToUpper(s.Name) == upper {
			return true
		}
	}
	return false
}
