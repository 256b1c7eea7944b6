package handlers

import (
	"net/http"

	"fluxcrm/config"
	"fluxcrm/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// CreateMilestoneHandler attaches a milestone to an existing lead.
func CreateMilestoneHandler(c *gin.Context) {
	var input models.MilestoneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var lead models.Lead
	if err := config.DB.Collection("leads").FindOne(c.Request.Context(), bson.M{"id": input.LeadID}).Decode(&lead); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	status := input.Status
	if status == "" {
		status = "PENDING"
	}
	milestone := models.Milestone{
		ID:        uuid.NewString(),
		LeadID:    input.LeadID,
		Name:      input.Name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Status:    status,
	}
	if _, err := config.DB.Collection("milestones").InsertOne(c.Request.Context(), milestone); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create milestone"})
		return
	}
	c.JSON(http.StatusOK, milestone)
}

// ListMilestonesHandler lists milestones, optionally for one lead.
func ListMilestonesHandler(c *gin.Context) {
	query := bson.M{}
	if leadID := c.Query("lead_id"); leadID != "" {
		query["lead_id"] = leadID
	}

	cursor, err := config.DB.Collection("milestones").Find(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch milestones"})
		return
	}
	var milestones []models.Milestone
	if err := cursor.All(c.Request.Context(), &milestones); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch milestones"})
		return
	}
	if milestones == nil {
		milestones = make([]models.Milestone, 0)
	}
	c.JSON(http.StatusOK, milestones)
}

// UpdateMilestoneHandler applies a partial update.
func UpdateMilestoneHandler(c *gin.Context) {
	id := c.Param("id")
	var input models.MilestoneUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{}
	if input.Name != nil {
		update["name"] = *input.Name
	}
	if input.StartDate != nil {
		update["start_date"] = *input.StartDate
	}
	if input.EndDate != nil {
		update["end_date"] = *input.EndDate
	}
	if input.Status != nil {
		update["status"] = *input.Status
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No update data provided"})
		return
	}

	milestones := config.DB.Collection("milestones")
	result, err := milestones.UpdateOne(c.Request.Context(), bson.M{"id": id}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update milestone"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
		return
	}

	var milestone models.Milestone
	if err := milestones.FindOne(c.Request.Context(), bson.M{"id": id}).Decode(&milestone); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load updated milestone"})
		return
	}
	c.JSON(http.StatusOK, milestone)
}

// DeleteMilestoneHandler removes a milestone.
func DeleteMilestoneHandler(c *gin.Context) {
	id := c.Param("id")
	result, err := config.DB.Collection("milestones").DeleteOne(c.Request.Context(), bson.M{"id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete milestone"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Milestone deleted"})
}
