package handlers

import (
	"net/http"
	"time"

	"fluxcrm/config"
	"fluxcrm/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CreateLeadNoteHandler attaches a note to an existing lead, recording the
// caller as author.
func CreateLeadNoteHandler(c *gin.Context) {
	var input models.LeadNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var lead models.Lead
	if err := config.DB.Collection("leads").FindOne(c.Request.Context(), bson.M{"id": input.LeadID}).Decode(&lead); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	updateType := input.UpdateType
	if updateType == "" {
		updateType = "GENERAL"
	}
	note := models.LeadNote{
		ID:         uuid.NewString(),
		LeadID:     input.LeadID,
		Content:    input.Content,
		UpdateType: updateType,
		CreatedBy:  c.GetString("userName"),
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := config.DB.Collection("lead_notes").InsertOne(c.Request.Context(), note); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create note"})
		return
	}
	c.JSON(http.StatusOK, note)
}

// ListLeadNotesHandler lists notes newest first, optionally for one lead.
func ListLeadNotesHandler(c *gin.Context) {
	query := bson.M{}
	if leadID := c.Query("lead_id"); leadID != "" {
		query["lead_id"] = leadID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := config.DB.Collection("lead_notes").Find(c.Request.Context(), query, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch notes"})
		return
	}
	var notes []models.LeadNote
	if err := cursor.All(c.Request.Context(), &notes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch notes"})
		return
	}
	if notes == nil {
		notes = make([]models.LeadNote, 0)
	}
	c.JSON(http.StatusOK, notes)
}

// DeleteLeadNoteHandler removes a note.
func DeleteLeadNoteHandler(c *gin.Context) {
	id := c.Param("id")
	result, err := config.DB.Collection("lead_notes").DeleteOne(c.Request.Context(), bson.M{"id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete note"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted"})
}
