package analytics

import (
	"context"
	"errors"
	"slices"
	"testing"

	"fluxcrm/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

// fakeLeads filters an in-memory lead slice. It fails the report when a
// membership query arrives with an empty id set, which the engine must
// short-circuit around.
type fakeLeads struct {
	leads []models.Lead
	err   error
}

func (f *fakeLeads) matches(l models.Lead, q LeadFilter) bool {
	if q.Stage != "" && l.Stage != q.Stage {
		return false
	}
	if q.Status != "" && l.Status != q.Status {
		return false
	}
	if q.OrgIDs != nil && !slices.Contains(q.OrgIDs, l.OrganizationID) {
		return false
	}
	return true
}

func (f *fakeLeads) Count(_ context.Context, q LeadFilter) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if q.OrgIDs != nil && len(q.OrgIDs) == 0 {
		return 0, errors.New("membership query with empty id set")
	}
	var n int64
	for _, l := range f.leads {
		if f.matches(l, q) {
			n++
		}
	}
	return n, nil
}

func (f *fakeLeads) Find(_ context.Context, q LeadFilter) ([]models.Lead, error) {
	if f.err != nil {
		return nil, f.err
	}
	if q.OrgIDs != nil && len(q.OrgIDs) == 0 {
		return nil, errors.New("membership query with empty id set")
	}
	var out []models.Lead
	for _, l := range f.leads {
		if f.matches(l, q) {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeOrgs struct {
	orgs    []models.Organization
	idCalls int
}

func (f *fakeOrgs) matches(o models.Organization, q OrganizationFilter) bool {
	if q.Type != "" && o.Type != q.Type {
		return false
	}
	if q.State != "" && o.State != q.State {
		return false
	}
	return true
}

func (f *fakeOrgs) Count(_ context.Context, q OrganizationFilter) (int64, error) {
	var n int64
	for _, o := range f.orgs {
		if f.matches(o, q) {
			n++
		}
	}
	return n, nil
}

func (f *fakeOrgs) IDs(_ context.Context, q OrganizationFilter) ([]string, error) {
	f.idCalls++
	ids := make([]string, 0)
	for _, o := range f.orgs {
		if f.matches(o, q) {
			ids = append(ids, o.ID)
		}
	}
	return ids, nil
}

type fakeLabels struct {
	names []string
	err   error
}

func (f *fakeLabels) Names(_ context.Context) ([]string, error) {
	return f.names, f.err
}

func defaultStageNames() []string {
	names := make([]string, 0, len(models.DefaultLeadStages))
	for _, s := range models.DefaultLeadStages {
		names = append(names, s.Name)
	}
	return names
}

func newTestEngine(leads []models.Lead, orgs []models.Organization, typeNames []string) (*Engine, *fakeOrgs) {
	orgReader := &fakeOrgs{orgs: orgs}
	e := NewEngine(
		&fakeLeads{leads: leads},
		orgReader,
		&fakeLabels{names: defaultStageNames()},
		&fakeLabels{names: typeNames},
		0.25,
	)
	return e, orgReader
}

func TestDashboardStatusCountsSumToTotal(t *testing.T) {
	leads := []models.Lead{
		{ID: "l1", OrganizationID: "o1", Stage: "IDENTIFIED", Status: models.StatusOpen, Probability: 20},
		{ID: "l2", OrganizationID: "o1", Stage: "QUALIFIED", Status: models.StatusOpen, Probability: 40},
		{ID: "l3", OrganizationID: "o1", Stage: "CLOSED", Status: models.StatusWon},
		{ID: "l4", OrganizationID: "o1", Stage: "CLOSED", Status: models.StatusLost},
	}
	orgs := []models.Organization{{ID: "o1", Type: "HOSPITAL", State: "Karnataka"}}
	e, _ := newTestEngine(leads, orgs, []string{"HOSPITAL", "NGO"})

	report, err := e.Dashboard(context.Background())
	require.NoError(t, err)

	var statusSum int64
	for _, n := range report.LeadsByStatus {
		statusSum += n
	}
	assert.Equal(t, report.TotalLeads, statusSum)
	assert.Equal(t, int64(4), report.TotalLeads)
	assert.Equal(t, int64(1), report.TotalOrganizations)
	assert.Equal(t, int64(1), report.LeadsByStage["IDENTIFIED"])
	assert.Equal(t, int64(2), report.LeadsByStage["CLOSED"])
	assert.Equal(t, int64(0), report.LeadsByStage["PILOT"])
	assert.Equal(t, int64(4), report.LeadsByOrgType["HOSPITAL"])
	assert.Equal(t, int64(0), report.LeadsByOrgType["NGO"])
	assert.InDelta(t, 30.0, report.AvgProbability, 1e-9)
}

func TestDashboardWinRateZeroWithoutClosedLeads(t *testing.T) {
	leads := []models.Lead{
		{ID: "l1", OrganizationID: "o1", Stage: "IDENTIFIED", Status: models.StatusOpen, Probability: 50},
	}
	e, _ := newTestEngine(leads, nil, nil)

	report, err := e.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.WinRate)
}

func TestDashboardWinRateRounding(t *testing.T) {
	leads := []models.Lead{
		{ID: "l1", OrganizationID: "o1", Status: models.StatusWon, Stage: "CLOSED"},
		{ID: "l2", OrganizationID: "o1", Status: models.StatusWon, Stage: "CLOSED"},
		{ID: "l3", OrganizationID: "o1", Status: models.StatusLost, Stage: "CLOSED"},
	}
	e, _ := newTestEngine(leads, nil, nil)

	report, err := e.Dashboard(context.Background())
	require.NoError(t, err)
	// 2/3 as a percentage, one decimal.
	assert.InDelta(t, 66.7, report.WinRate, 1e-9)
}

func TestDashboardPipelineAndWonValueAsymmetry(t *testing.T) {
	leads := []models.Lead{
		{ID: "l1", OrganizationID: "o1", Stage: "DEMO", Status: models.StatusOpen, OfferedPrice: fptr(500)},
		{ID: "l2", OrganizationID: "o1", Stage: "CLOSED", Status: models.StatusWon, OfferedPrice: fptr(300), AgreedPrice: fptr(250)},
	}
	e, _ := newTestEngine(leads, nil, nil)

	report, err := e.Dashboard(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 500.0, report.PipelineValue, 1e-9)
	assert.InDelta(t, 300.0, report.WonOffered, 1e-9)
	assert.InDelta(t, 250.0, report.WonAgreed, 1e-9)
}

func TestDashboardRecurringRevenueNeedsBothFields(t *testing.T) {
	// Agreed price without a volume counts toward won_agreed but not
	// toward recurring revenue.
	leads := []models.Lead{
		{ID: "l1", OrganizationID: "o1", Stage: "CLOSED", Status: models.StatusWon, AgreedPrice: fptr(200)},
	}
	e, _ := newTestEngine(leads, nil, nil)

	report, err := e.Dashboard(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 200.0, report.WonAgreed, 1e-9)
	assert.Zero(t, report.MonthlyRevenue)
	assert.Zero(t, report.AnnualRevenue)
}

func TestDashboardRevenueAndDataLoad(t *testing.T) {
	leads := []models.Lead{
		{ID: "l1", OrganizationID: "o1", Stage: "CLOSED", Status: models.StatusWon, AgreedPrice: fptr(100), ExpectedVolume: iptr(120)},
	}
	e, _ := newTestEngine(leads, nil, nil)

	report, err := e.Dashboard(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 12000.0, report.MonthlyRevenue, 1e-9)
	assert.InDelta(t, 144000.0, report.AnnualRevenue, 1e-9)
	assert.Equal(t, int64(120), report.TotalVolume)
	// 120 scans at 0.25 GB each.
	assert.InDelta(t, 30.0, report.MonthlyDataLoad, 1e-9)
	assert.InDelta(t, 1.0, report.DailyDataLoad, 1e-9)
}

func TestDashboardEmptyTypeShortCircuits(t *testing.T) {
	// NGO has no organizations; the fake lead reader errors on a
	// membership query with an empty set, so the report only succeeds if
	// the engine never issues one.
	leads := []models.Lead{
		{ID: "l1", OrganizationID: "o1", Stage: "IDENTIFIED", Status: models.StatusOpen},
	}
	orgs := []models.Organization{{ID: "o1", Type: "HOSPITAL", State: "Kerala"}}
	e, _ := newTestEngine(leads, orgs, []string{"HOSPITAL", "NGO"})

	report, err := e.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.LeadsByOrgType["HOSPITAL"])
	assert.Equal(t, int64(0), report.LeadsByOrgType["NGO"])
}

func TestDashboardCountsCustomStages(t *testing.T) {
	leads := []models.Lead{
		{ID: "l1", OrganizationID: "o1", Stage: "TECHNICAL_REVIEW", Status: models.StatusOpen},
	}
	orgReader := &fakeOrgs{}
	e := NewEngine(
		&fakeLeads{leads: leads},
		orgReader,
		&fakeLabels{names: append(defaultStageNames(), "TECHNICAL_REVIEW")},
		&fakeLabels{},
		0.25,
	)

	report, err := e.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.LeadsByStage["TECHNICAL_REVIEW"])
}

func TestDashboardStoreErrorFailsWholeReport(t *testing.T) {
	e := NewEngine(
		&fakeLeads{err: errors.New("connection reset")},
		&fakeOrgs{},
		&fakeLabels{},
		&fakeLabels{},
		0.25,
	)
	report, err := e.Dashboard(context.Background())
	require.Error(t, err)
	assert.Nil(t, report)
}

func TestGeographyCoversEveryStateWhenEmpty(t *testing.T) {
	e, orgReader := newTestEngine(nil, nil, nil)

	report, err := e.Geography(context.Background())
	require.NoError(t, err)
	require.Len(t, report, len(models.IndianStates))
	for _, state := range models.IndianStates {
		summary, ok := report[state]
		require.True(t, ok, "missing state %s", state)
		assert.Equal(t, models.RegionSummary{}, summary)
	}
	// Empty states short-circuit before any id listing.
	assert.Zero(t, orgReader.idCalls)
}

func TestGeographySingleWonLead(t *testing.T) {
	orgs := []models.Organization{{ID: "o1", Type: "HOSPITAL", State: "Maharashtra"}}
	leads := []models.Lead{
		{ID: "l1", OrganizationID: "o1", Stage: "CLOSED", Status: models.StatusWon, AgreedPrice: fptr(100), ExpectedVolume: iptr(10)},
	}
	e, _ := newTestEngine(leads, orgs, nil)

	report, err := e.Geography(context.Background())
	require.NoError(t, err)

	summary := report["Maharashtra"]
	assert.Equal(t, int64(1), summary.Organizations)
	assert.Equal(t, int64(1), summary.Leads)
	assert.InDelta(t, 1000.0, summary.MonthlyRevenue, 1e-9)

	assert.Equal(t, models.RegionSummary{}, report["Goa"])
}

func TestGeographyStoreErrorFailsWholeReport(t *testing.T) {
	orgs := []models.Organization{{ID: "o1", Type: "HOSPITAL", State: "Maharashtra"}}
	e := NewEngine(
		&fakeLeads{err: errors.New("server selection timeout")},
		&fakeOrgs{orgs: orgs},
		&fakeLabels{},
		&fakeLabels{},
		0.25,
	)
	report, err := e.Geography(context.Background())
	require.Error(t, err)
	assert.Nil(t, report)
}
