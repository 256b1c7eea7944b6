package handlers

import (
	"net/http"
	"strings"

	"fluxcrm/config"
	"fluxcrm/internal/registry"
	"fluxcrm/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const defaultStageColor = "bg-slate-500/20 text-slate-400 border-slate-500/30"

// ListLeadStagesHandler returns the merged stage registry sorted by
// pipeline order.
func ListLeadStagesHandler(c *gin.Context) {
	cursor, err := config.DB.Collection("lead_stages").Find(c.Request.Context(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch lead stages"})
		return
	}
	var custom []models.LeadStage
	if err := cursor.All(c.Request.Context(), &custom); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch lead stages"})
		return
	}
	c.JSON(http.StatusOK, registry.MergeLeadStages(models.DefaultLeadStages, custom))
}

// CreateLeadStageHandler adds a custom pipeline stage. Names are stored
// upper-cased; a stage without an explicit order goes after the defaults.
func CreateLeadStageHandler(c *gin.Context) {
	var input models.LeadStageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stages := config.DB.Collection("lead_stages")
	ctx := c.Request.Context()

	cursor, err := stages.Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch lead stages"})
		return
	}
	var custom []models.LeadStage
	if err := cursor.All(ctx, &custom); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch lead stages"})
		return
	}
	if registry.StageNameTaken(input.Name, custom) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Lead stage already exists"})
		return
	}

	order := input.Order
	if order <= 0 {
		order = len(models.DefaultLeadStages) + len(custom) + 1
	}
	color := input.Color
	if color == "" {
		color = defaultStageColor
	}
	stage := models.LeadStage{
		ID:    uuid.NewString(),
		Name:  strings.ToUpper(input.Name),
		Order: order,
		Color: color,
	}
	if _, err := stages.InsertOne(ctx, stage); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lead stage"})
		return
	}
	c.JSON(http.StatusOK, stage)
}

// DeleteLeadStageHandler removes a custom stage. Defaults cannot be
// deleted.
func DeleteLeadStageHandler(c *gin.Context) {
	id := c.Param("id")
	if strings.HasPrefix(id, "default-") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete default lead stage"})
		return
	}
	result, err := config.DB.Collection("lead_stages").DeleteOne(c.Request.Context(), bson.M{"id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lead stage"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead stage not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lead stage deleted"})
}
