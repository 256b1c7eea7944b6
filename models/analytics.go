package models

// DashboardReport is the full dashboard payload. Everything here is
// computed fresh per request; nothing is cached or stored.
type DashboardReport struct {
	TotalLeads         int64            `json:"total_leads"`
	TotalOrganizations int64            `json:"total_organizations"`
	LeadsByStage       map[string]int64 `json:"leads_by_stage"`
	LeadsByStatus      map[string]int64 `json:"leads_by_status"`
	LeadsByOrgType     map[string]int64 `json:"leads_by_org_type"`
	PipelineValue      float64          `json:"pipeline_value"`
	WonOffered         float64          `json:"won_offered"`
	WonAgreed          float64          `json:"won_agreed"`
	MonthlyRevenue     float64          `json:"monthly_revenue"`
	AnnualRevenue      float64          `json:"annual_revenue"`
	TotalVolume        int64            `json:"total_volume"`
	DailyDataLoad      float64          `json:"daily_data_load"`
	MonthlyDataLoad    float64          `json:"monthly_data_load"`
	WinRate            float64          `json:"win_rate"`
	AvgProbability     float64          `json:"avg_probability"`
}

// RegionSummary is the per-state slice of the geography report.
type RegionSummary struct {
	Organizations  int64   `json:"organizations"`
	Leads          int64   `json:"leads"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
}
