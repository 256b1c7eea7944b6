package handlers

import (
	"net/http"
	"time"

	"fluxcrm/config"
	"fluxcrm/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func orgLeadCount(c *gin.Context, orgID string) (int64, error) {
	return config.DB.Collection("leads").CountDocuments(c.Request.Context(), bson.M{"organization_id": orgID})
}

// CreateOrganizationHandler creates an organization.
func CreateOrganizationHandler(c *gin.Context) {
	var input models.OrganizationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	org := models.Organization{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Type:      input.Type,
		State:     input.State,
		City:      input.City,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := config.DB.Collection("organizations").InsertOne(c.Request.Context(), org); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create organization"})
		return
	}
	c.JSON(http.StatusOK, models.OrganizationResponse{Organization: org})
}

// ListOrganizationsHandler lists organizations, optionally filtered by
// type and state, each with its derived lead count.
func ListOrganizationsHandler(c *gin.Context) {
	query := bson.M{}
	if orgType := c.Query("type"); orgType != "" {
		query["type"] = orgType
	}
	if state := c.Query("state"); state != "" {
		query["state"] = state
	}

	cursor, err := config.DB.Collection("organizations").Find(c.Request.Context(), query, listOptions(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch organizations"})
		return
	}
	var orgs []models.Organization
	if err := cursor.All(c.Request.Context(), &orgs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch organizations"})
		return
	}

	responses := make([]models.OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		count, err := orgLeadCount(c, org.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not count leads"})
			return
		}
		responses = append(responses, models.OrganizationResponse{Organization: org, LeadCount: count})
	}
	c.JSON(http.StatusOK, responses)
}

// GetOrganizationHandler returns one organization with its lead count.
func GetOrganizationHandler(c *gin.Context) {
	id := c.Param("id")
	var org models.Organization
	if err := config.DB.Collection("organizations").FindOne(c.Request.Context(), bson.M{"id": id}).Decode(&org); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
		return
	}
	count, err := orgLeadCount(c, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not count leads"})
		return
	}
	c.JSON(http.StatusOK, models.OrganizationResponse{Organization: org, LeadCount: count})
}

// UpdateOrganizationHandler applies a partial update; absent fields are
// left untouched.
func UpdateOrganizationHandler(c *gin.Context) {
	id := c.Param("id")
	var input models.OrganizationUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{}
	if input.Name != nil {
		update["name"] = *input.Name
	}
	if input.Type != nil {
		update["type"] = *input.Type
	}
	if input.State != nil {
		update["state"] = *input.State
	}
	if input.City != nil {
		update["city"] = *input.City
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No update data provided"})
		return
	}

	orgs := config.DB.Collection("organizations")
	result, err := orgs.UpdateOne(c.Request.Context(), bson.M{"id": id}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update organization"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
		return
	}

	var org models.Organization
	if err := orgs.FindOne(c.Request.Context(), bson.M{"id": id}).Decode(&org); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load updated organization"})
		return
	}
	count, err := orgLeadCount(c, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not count leads"})
		return
	}
	c.JSON(http.StatusOK, models.OrganizationResponse{Organization: org, LeadCount: count})
}

// DeleteOrganizationHandler removes an organization.
func DeleteOrganizationHandler(c *gin.Context) {
	id := c.Param("id")
	result, err := config.DB.Collection("organizations").DeleteOne(c.Request.Context(), bson.M{"id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete organization"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Organization deleted"})
}
