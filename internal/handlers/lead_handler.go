package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"fluxcrm/config"
	"fluxcrm/internal/metrics"
	"fluxcrm/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func generateLeadCode() string {
	return "LEAD-" + strings.ToUpper(uuid.NewString()[:8])
}

// buildLeadResponse enriches a lead with its organization and the derived
// revenue and data-load projections.
func buildLeadResponse(c *gin.Context, lead models.Lead) models.LeadResponse {
	resp := models.LeadResponse{Lead: lead}

	var org models.Organization
	if err := config.DB.Collection("organizations").FindOne(c.Request.Context(), bson.M{"id": lead.OrganizationID}).Decode(&org); err == nil {
		resp.OrganizationName = &org.Name
		resp.OrganizationType = &org.Type
	}

	p := metrics.Project(lead.EffectivePrice(), lead.Volume(), config.AvgScanSizeGB)
	resp.MonthlyRevenue = p.MonthlyRevenue
	resp.AnnualRevenue = p.AnnualRevenue
	resp.DailyDataLoadGB = p.DailyDataLoadGB
	resp.MonthlyDataLoadGB = p.MonthlyDataLoadGB
	return resp
}

// CreateLeadHandler creates a lead against an existing organization.
func CreateLeadHandler(c *gin.Context) {
	var input models.LeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var org models.Organization
	if err := config.DB.Collection("organizations").FindOne(c.Request.Context(), bson.M{"id": input.OrganizationID}).Decode(&org); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
		return
	}

	stage := input.Stage
	if stage == "" {
		stage = models.DefaultStage
	}
	status := input.Status
	if status == "" {
		status = models.StatusOpen
	}
	probability := models.DefaultProbability
	if input.Probability != nil {
		probability = *input.Probability
	}

	lead := models.Lead{
		ID:                uuid.NewString(),
		LeadCode:          generateLeadCode(),
		LeadName:          input.LeadName,
		OrganizationID:    input.OrganizationID,
		Product:           input.Product,
		OfferedPrice:      input.OfferedPrice,
		AgreedPrice:       input.AgreedPrice,
		ExpectedVolume:    input.ExpectedVolume,
		Stage:             stage,
		Probability:       probability,
		Status:            status,
		ExpectedCloseDate: input.ExpectedCloseDate,
		SalesOwner:        input.SalesOwner,
		Source:            input.Source,
		Remarks:           input.Remarks,
		CreatedAt:         time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := config.DB.Collection("leads").InsertOne(c.Request.Context(), lead); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lead"})
		return
	}
	c.JSON(http.StatusOK, buildLeadResponse(c, lead))
}

func leadListQuery(c *gin.Context) bson.M {
	query := bson.M{}
	if stage := c.Query("stage"); stage != "" {
		query["stage"] = stage
	}
	if status := c.Query("status"); status != "" {
		query["status"] = status
	}
	if orgID := c.Query("organization_id"); orgID != "" {
		query["organization_id"] = orgID
	}
	if owner := c.Query("sales_owner"); owner != "" {
		query["sales_owner"] = owner
	}
	return query
}

// ListLeadsHandler lists leads, optionally filtered by stage, status,
// organization and sales owner. Supports limit and offset.
func ListLeadsHandler(c *gin.Context) {
	cursor, err := config.DB.Collection("leads").Find(c.Request.Context(), leadListQuery(c), listOptions(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch leads"})
		return
	}
	var leads []models.Lead
	if err := cursor.All(c.Request.Context(), &leads); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch leads"})
		return
	}

	responses := make([]models.LeadResponse, 0, len(leads))
	for _, lead := range leads {
		responses = append(responses, buildLeadResponse(c, lead))
	}
	c.JSON(http.StatusOK, responses)
}

// GetLeadHandler returns one lead.
func GetLeadHandler(c *gin.Context) {
	id := c.Param("id")
	var lead models.Lead
	if err := config.DB.Collection("leads").FindOne(c.Request.Context(), bson.M{"id": id}).Decode(&lead); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}
	c.JSON(http.StatusOK, buildLeadResponse(c, lead))
}

// UpdateLeadHandler applies a partial update; absent fields are left
// untouched.
func UpdateLeadHandler(c *gin.Context) {
	id := c.Param("id")
	var input models.LeadUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{}
	if input.LeadName != nil {
		update["lead_name"] = *input.LeadName
	}
	if input.Product != nil {
		update["product"] = *input.Product
	}
	if input.OfferedPrice != nil {
		update["offered_price"] = *input.OfferedPrice
	}
	if input.AgreedPrice != nil {
		update["agreed_price"] = *input.AgreedPrice
	}
	if input.ExpectedVolume != nil {
		update["expected_volume"] = *input.ExpectedVolume
	}
	if input.Stage != nil {
		update["stage"] = *input.Stage
	}
	if input.Probability != nil {
		update["probability"] = *input.Probability
	}
	if input.Status != nil {
		update["status"] = *input.Status
	}
	if input.ExpectedCloseDate != nil {
		update["expected_close_date"] = *input.ExpectedCloseDate
	}
	if input.SalesOwner != nil {
		update["sales_owner"] = *input.SalesOwner
	}
	if input.Source != nil {
		update["source"] = *input.Source
	}
	if input.Remarks != nil {
		update["remarks"] = *input.Remarks
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No update data provided"})
		return
	}

	leads := config.DB.Collection("leads")
	result, err := leads.UpdateOne(c.Request.Context(), bson.M{"id": id}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lead"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	var lead models.Lead
	if err := leads.FindOne(c.Request.Context(), bson.M{"id": id}).Decode(&lead); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load updated lead"})
		return
	}
	c.JSON(http.StatusOK, buildLeadResponse(c, lead))
}

// DeleteLeadHandler removes a lead together with its milestones, documents
// and notes.
func DeleteLeadHandler(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	result, err := config.DB.Collection("leads").DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lead"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	related := bson.M{"lead_id": id}
	for _, name := range []string{"milestones", "documents", "lead_notes"} {
		if _, err := config.DB.Collection(name).DeleteMany(ctx, related); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete related records"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lead deleted"})
}

// ExportLeadsHandler streams the current lead list as an XLSX workbook.
// Accepts the same filters as ListLeadsHandler.
func ExportLeadsHandler(c *gin.Context) {
	cursor, err := config.DB.Collection("leads").Find(c.Request.Context(), leadListQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data for export"})
		return
	}
	var leads []models.Lead
	if err := cursor.All(c.Request.Context(), &leads); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data for export"})
		return
	}

	f := excelize.NewFile()
	sheetName := "Leads"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Lead Code", "Lead Name", "Product", "Stage", "Status", "Probability", "Offered Price", "Agreed Price", "Expected Volume", "Monthly Revenue", "Sales Owner", "Created At"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, lead := range leads {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), lead.LeadCode)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), lead.LeadName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), lead.Product)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), lead.Stage)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), lead.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), lead.Probability)
		if lead.OfferedPrice != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), *lead.OfferedPrice)
		}
		if lead.AgreedPrice != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), *lead.AgreedPrice)
		}
		if lead.ExpectedVolume != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), *lead.ExpectedVolume)
		}
		p := metrics.Project(lead.EffectivePrice(), lead.Volume(), config.AvgScanSizeGB)
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), p.MonthlyRevenue)
		f.SetCellValue(sheetName, fmt.Sprintf("K%d", row), lead.SalesOwner)
		f.SetCellValue(sheetName, fmt.Sprintf("L%d", row), lead.CreatedAt)
	}

	fileName := fmt.Sprintf("leads_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}
