package models

// Lead statuses form a fixed three-way partition. Unlike stages, the set is
// not user-extensible.
const (
	StatusOpen = "OPEN"
	StatusWon  = "WON"
	StatusLost = "LOST"
)

// LeadStatuses lists the fixed statuses in reporting order.
var LeadStatuses = []string{StatusOpen, StatusWon, StatusLost}

// Lead is a stored sales lead document. Offered and agreed prices are
// independently optional; a nil price is "not known", which several
// aggregations treat differently from zero.
type Lead struct {
	ID                string   `json:"id" bson:"id"`
	LeadCode          string   `json:"lead_code" bson:"lead_code"`
	LeadName          string   `json:"lead_name" bson:"lead_name"`
	OrganizationID    string   `json:"organization_id" bson:"organization_id"`
	Product           string   `json:"product" bson:"product"`
	OfferedPrice      *float64 `json:"offered_price" bson:"offered_price"`
	AgreedPrice       *float64 `json:"agreed_price" bson:"agreed_price"`
	ExpectedVolume    *int     `json:"expected_volume" bson:"expected_volume"`
	Stage             string   `json:"stage" bson:"stage"`
	Probability       int      `json:"probability" bson:"probability"`
	Status            string   `json:"status" bson:"status"`
	ExpectedCloseDate *string  `json:"expected_close_date" bson:"expected_close_date"`
	SalesOwner        string   `json:"sales_owner" bson:"sales_owner"`
	Source            *string  `json:"source" bson:"source"`
	Remarks           *string  `json:"remarks" bson:"remarks"`
	CreatedAt         string   `json:"created_at" bson:"created_at"`
}

// EffectivePrice resolves the price used for revenue projections:
// agreed price when set, otherwise offered price, otherwise zero.
func (l Lead) EffectivePrice() float64 {
	if l.AgreedPrice != nil {
		return *l.AgreedPrice
	}
	if l.OfferedPrice != nil {
		return *l.OfferedPrice
	}
	return 0
}

// Volume returns the expected monthly volume, zero when not set.
func (l Lead) Volume() int {
	if l.ExpectedVolume == nil {
		return 0
	}
	return *l.ExpectedVolume
}

type LeadInput struct {
	LeadName          string   `json:"lead_name" binding:"required"`
	OrganizationID    string   `json:"organization_id" binding:"required"`
	Product           string   `json:"product" binding:"required"`
	OfferedPrice      *float64 `json:"offered_price"`
	AgreedPrice       *float64 `json:"agreed_price"`
	ExpectedVolume    *int     `json:"expected_volume"`
	Stage             string   `json:"stage"`
	Probability       *int     `json:"probability"`
	Status            string   `json:"status"`
	ExpectedCloseDate *string  `json:"expected_close_date"`
	SalesOwner        string   `json:"sales_owner" binding:"required"`
	Source            *string  `json:"source"`
	Remarks           *string  `json:"remarks"`
}

type LeadUpdate struct {
	LeadName          *string  `json:"lead_name"`
	Product           *string  `json:"product"`
	OfferedPrice      *float64 `json:"offered_price"`
	AgreedPrice       *float64 `json:"agreed_price"`
	ExpectedVolume    *int     `json:"expected_volume"`
	Stage             *string  `json:"stage"`
	Probability       *int     `json:"probability"`
	Status            *string  `json:"status"`
	ExpectedCloseDate *string  `json:"expected_close_date"`
	SalesOwner        *string  `json:"sales_owner"`
	Source            *string  `json:"source"`
	Remarks           *string  `json:"remarks"`
}

// LeadResponse enriches a lead with its organization and the derived
// revenue and data-load projections. None of these fields are stored.
type LeadResponse struct {
	Lead
	OrganizationName  *string `json:"organization_name"`
	OrganizationType  *string `json:"organization_type"`
	MonthlyRevenue    float64 `json:"monthly_revenue"`
	AnnualRevenue     float64 `json:"annual_revenue"`
	DailyDataLoadGB   float64 `json:"daily_data_load_gb"`
	MonthlyDataLoadGB float64 `json:"monthly_data_load_gb"`
}

// LeadStage is one entry of the growable pipeline-stage enum. Defaults are
// compiled in; custom stages live in the lead_stages collection.
type LeadStage struct {
	ID        string `json:"id" bson:"id"`
	Name      string `json:"name" bson:"name"`
	Order     int    `json:"order" bson:"order"`
	Color     string `json:"color" bson:"color"`
	IsDefault bool   `json:"is_default" bson:"is_default"`
}

type LeadStageInput struct {
	Name  string `json:"name" binding:"required"`
	Order int    `json:"order"`
	Color string `json:"color"`
}

// DefaultLeadStages are the built-in pipeline stages in pipeline order.
var DefaultLeadStages = []LeadStage{
	{ID: "default-identified", Name: "IDENTIFIED", Order: 1, Color: "bg-slate-500/20 text-slate-400 border-slate-500/30", IsDefault: true},
	{ID: "default-qualified", Name: "QUALIFIED", Order: 2, Color: "bg-blue-500/20 text-blue-400 border-blue-500/30", IsDefault: true},
	{ID: "default-demo", Name: "DEMO", Order: 3, Color: "bg-cyan-500/20 text-cyan-400 border-cyan-500/30", IsDefault: true},
	{ID: "default-pilot", Name: "PILOT", Order: 4, Color: "bg-amber-500/20 text-amber-400 border-amber-500/30", IsDefault: true},
	{ID: "default-commercial", Name: "COMMERCIAL", Order: 5, Color: "bg-purple-500/20 text-purple-400 border-purple-500/30", IsDefault: true},
	{ID: "default-closed", Name: "CLOSED", Order: 6, Color: "bg-green-500/20 text-green-400 border-green-500/30", IsDefault: true},
}

// DefaultStage is the stage assigned to new leads when none is given.
const DefaultStage = "IDENTIFIED"

// DefaultProbability is the probability assigned to new leads.
const DefaultProbability = 10
