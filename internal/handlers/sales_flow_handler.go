package handlers

import (
	"net/http"

	"fluxcrm/config"
	"fluxcrm/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CreateSalesFlowHandler adds one playbook step.
func CreateSalesFlowHandler(c *gin.Context) {
	var input models.SalesFlowInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	step := models.SalesFlowStep{
		ID:          uuid.NewString(),
		PlayerType:  input.PlayerType,
		StepNumber:  input.StepNumber,
		Description: input.Description,
		Owner:       input.Owner,
		Output:      input.Output,
	}
	if _, err := config.DB.Collection("sales_flow").InsertOne(c.Request.Context(), step); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sales flow step"})
		return
	}
	c.JSON(http.StatusOK, step)
}

// ListSalesFlowHandler lists playbook steps in step order, optionally for
// one player type.
func ListSalesFlowHandler(c *gin.Context) {
	query := bson.M{}
	if playerType := c.Query("player_type"); playerType != "" {
		query["player_type"] = playerType
	}

	opts := options.Find().SetSort(bson.D{{Key: "step_number", Value: 1}})
	cursor, err := config.DB.Collection("sales_flow").Find(c.Request.Context(), query, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch sales flow"})
		return
	}
	var steps []models.SalesFlowStep
	if err := cursor.All(c.Request.Context(), &steps); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch sales flow"})
		return
	}
	if steps == nil {
		steps = make([]models.SalesFlowStep, 0)
	}
	c.JSON(http.StatusOK, steps)
}

// UpdateSalesFlowHandler applies a partial update.
func UpdateSalesFlowHandler(c *gin.Context) {
	id := c.Param("id")
	var input models.SalesFlowUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{}
	if input.StepNumber != nil {
		update["step_number"] = *input.StepNumber
	}
	if input.Description != nil {
		update["description"] = *input.Description
	}
	if input.Owner != nil {
		update["owner"] = *input.Owner
	}
	if input.Output != nil {
		update["output"] = *input.Output
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No update data provided"})
		return
	}

	flows := config.DB.Collection("sales_flow")
	result, err := flows.UpdateOne(c.Request.Context(), bson.M{"id": id}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sales flow step"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sales flow step not found"})
		return
	}

	var step models.SalesFlowStep
	if err := flows.FindOne(c.Request.Context(), bson.M{"id": id}).Decode(&step); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load updated sales flow step"})
		return
	}
	c.JSON(http.StatusOK, step)
}

// DeleteSalesFlowHandler removes a playbook step.
func DeleteSalesFlowHandler(c *gin.Context) {
	id := c.Param("id")
	result, err := config.DB.Collection("sales_flow").DeleteOne(c.Request.Context(), bson.M{"id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sales flow step"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sales flow step not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sales flow step deleted"})
}
