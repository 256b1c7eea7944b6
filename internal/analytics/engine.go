// Package analytics computes the read-side dashboard and geography
// reports. Both are stateless projections over the current lead and
// organization collections; a store error fails the whole report, never a
// partial one.
package analytics

import (
	"context"

	"fluxcrm/internal/metrics"
	"fluxcrm/models"
)

// LeadFilter narrows lead queries. Zero-valued fields do not filter.
// A non-nil OrgIDs restricts to leads whose organization is in the set;
// callers must not pass an empty non-nil set (see Engine short-circuits).
type LeadFilter struct {
	Stage  string
	Status string
	OrgIDs []string
}

// OrganizationFilter narrows organization queries. Zero-valued fields do
// not filter.
type OrganizationFilter struct {
	Type  string
	State string
}

// LeadReader is the lead-collection surface the engine needs: counts and
// full fetches under a filter.
type LeadReader interface {
	Count(ctx context.Context, f LeadFilter) (int64, error)
	Find(ctx context.Context, f LeadFilter) ([]models.Lead, error)
}

// OrganizationReader is the organization-collection surface the engine
// needs.
type OrganizationReader interface {
	Count(ctx context.Context, f OrganizationFilter) (int64, error)
	IDs(ctx context.Context, f OrganizationFilter) ([]string, error)
}

// LabelSource lists the currently valid names of a growable enum (defaults
// merged with user-defined entries). Read fresh on every report so new
// labels show up immediately.
type LabelSource interface {
	Names(ctx context.Context) ([]string, error)
}

// Engine produces the dashboard and geography reports.
type Engine struct {
	leads      LeadReader
	orgs       OrganizationReader
	stages     LabelSource
	types      LabelSource
	scanSizeGB float64
}

func NewEngine(leads LeadReader, orgs OrganizationReader, stages, types LabelSource, scanSizeGB float64) *Engine {
	return &Engine{leads: leads, orgs: orgs, stages: stages, types: types, scanSizeGB: scanSizeGB}
}

// Dashboard computes the full dashboard report.
func (e *Engine) Dashboard(ctx context.Context) (*models.DashboardReport, error) {
	totalLeads, err := e.leads.Count(ctx, LeadFilter{})
	if err != nil {
		return nil, err
	}
	totalOrgs, err := e.orgs.Count(ctx, OrganizationFilter{})
	if err != nil {
		return nil, err
	}

	stageNames, err := e.stages.Names(ctx)
	if err != nil {
		return nil, err
	}
	byStage := make(map[string]int64, len(stageNames))
	for _, stage := range stageNames {
		n, err := e.leads.Count(ctx, LeadFilter{Stage: stage})
		if err != nil {
			return nil, err
		}
		byStage[stage] = n
	}

	byStatus := make(map[string]int64, len(models.LeadStatuses))
	for _, status := range models.LeadStatuses {
		n, err := e.leads.Count(ctx, LeadFilter{Status: status})
		if err != nil {
			return nil, err
		}
		byStatus[status] = n
	}

	typeNames, err := e.types.Names(ctx)
	if err != nil {
		return nil, err
	}
	byOrgType := make(map[string]int64, len(typeNames))
	for _, orgType := range typeNames {
		ids, err := e.orgs.IDs(ctx, OrganizationFilter{Type: orgType})
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			// No membership query with an empty id set.
			byOrgType[orgType] = 0
			continue
		}
		n, err := e.leads.Count(ctx, LeadFilter{OrgIDs: ids})
		if err != nil {
			return nil, err
		}
		byOrgType[orgType] = n
	}

	open, err := e.leads.Find(ctx, LeadFilter{Status: models.StatusOpen})
	if err != nil {
		return nil, err
	}
	won, err := e.leads.Find(ctx, LeadFilter{Status: models.StatusWon})
	if err != nil {
		return nil, err
	}

	// Pipeline value: leads with no offered price are excluded from the
	// sum's input set, not counted as zero. Open deals without an offer
	// are unscoped opportunities.
	var pipelineValue float64
	var probabilitySum int64
	for _, l := range open {
		if l.OfferedPrice != nil {
			pipelineValue += *l.OfferedPrice
		}
		probabilitySum += int64(l.Probability)
	}

	// Won sums: a missing price contributes zero (best known commitment
	// for a closed deal). Recurring revenue needs both agreed price and
	// volume; a lead missing either contributes nothing.
	var wonOffered, wonAgreed, monthlyRevenue float64
	var totalVolume int64
	for _, l := range won {
		if l.OfferedPrice != nil {
			wonOffered += *l.OfferedPrice
		}
		if l.AgreedPrice != nil {
			wonAgreed += *l.AgreedPrice
		}
		if l.ExpectedVolume != nil {
			totalVolume += int64(*l.ExpectedVolume)
		}
		if l.AgreedPrice != nil && l.ExpectedVolume != nil {
			monthlyRevenue += *l.AgreedPrice * float64(*l.ExpectedVolume)
		}
	}

	closed := byStatus[models.StatusWon] + byStatus[models.StatusLost]
	var winRate float64
	if closed > 0 {
		winRate = metrics.Round1(float64(byStatus[models.StatusWon]) / float64(closed) * 100)
	}

	var avgProbability float64
	if len(open) > 0 {
		avgProbability = metrics.Round1(float64(probabilitySum) / float64(len(open)))
	}

	dailyLoad, monthlyLoad := metrics.DataLoad(totalVolume, e.scanSizeGB)

	return &models.DashboardReport{
		TotalLeads:         totalLeads,
		TotalOrganizations: totalOrgs,
		LeadsByStage:       byStage,
		LeadsByStatus:      byStatus,
		LeadsByOrgType:     byOrgType,
		PipelineValue:      metrics.Round2(pipelineValue),
		WonOffered:         metrics.Round2(wonOffered),
		WonAgreed:          metrics.Round2(wonAgreed),
		MonthlyRevenue:     metrics.Round2(monthlyRevenue),
		AnnualRevenue:      metrics.Round2(monthlyRevenue * 12),
		TotalVolume:        totalVolume,
		DailyDataLoad:      dailyLoad,
		MonthlyDataLoad:    monthlyLoad,
		WinRate:            winRate,
		AvgProbability:     avgProbability,
	}, nil
}

// Geography computes the per-state rollup. Every state in the fixed list
// gets an entry; states without organizations short-circuit to zeros
// without touching the leads collection.
func (e *Engine) Geography(ctx context.Context) (map[string]models.RegionSummary, error) {
	report := make(map[string]models.RegionSummary, len(models.IndianStates))
	for _, state := range models.IndianStates {
		orgCount, err := e.orgs.Count(ctx, OrganizationFilter{State: state})
		if err != nil {
			return nil, err
		}
		if orgCount == 0 {
			report[state] = models.RegionSummary{}
			continue
		}

		ids, err := e.orgs.IDs(ctx, OrganizationFilter{State: state})
		if err != nil {
			return nil, err
		}
		leadCount, err := e.leads.Count(ctx, LeadFilter{OrgIDs: ids})
		if err != nil {
			return nil, err
		}
		won, err := e.leads.Find(ctx, LeadFilter{Status: models.StatusWon, OrgIDs: ids})
		if err != nil {
			return nil, err
		}

		var monthlyRevenue float64
		for _, l := range won {
			if l.AgreedPrice != nil && l.ExpectedVolume != nil {
				monthlyRevenue += *l.AgreedPrice * float64(*l.ExpectedVolume)
			}
		}

		report[state] = models.RegionSummary{
			Organizations:  orgCount,
			Leads:          leadCount,
			MonthlyRevenue: metrics.Round2(monthlyRevenue),
		}
	}
	return report, nil
}
