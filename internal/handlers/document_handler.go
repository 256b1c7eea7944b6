package handlers

import (
	"net/http"

	"fluxcrm/config"
	"fluxcrm/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// CreateDocumentHandler attaches a document record to an existing lead.
func CreateDocumentHandler(c *gin.Context) {
	var input models.DocumentInput
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
		status = "DRAFT"
	}
	doc := models.Document{
		ID:         uuid.NewString(),
		LeadID:     input.LeadID,
		Type:       input.Type,
		CustomName: input.CustomName,
		SharedAt:   input.SharedAt,
		SignedAt:   input.SignedAt,
		Status:     status,
	}
	if _, err := config.DB.Collection("documents").InsertOne(c.Request.Context(), doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create document"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ListDocumentsHandler lists documents, optionally for one lead.
func ListDocumentsHandler(c *gin.Context) {
	query := bson.M{}
	if leadID := c.Query("lead_id"); leadID != "" {
		query["lead_id"] = leadID
	}

	cursor, err := config.DB.Collection("documents").Find(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch documents"})
		return
	}
	var docs []models.Document
	if err := cursor.All(c.Request.Context(), &docs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch documents"})
		return
	}
	if docs == nil {
		docs = make([]models.Document, 0)
	}
	c.JSON(http.StatusOK, docs)
}

// UpdateDocumentHandler applies a partial update.
func UpdateDocumentHandler(c *gin.Context) {
	id := c.Param("id")
	var input models.DocumentUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{}
	if input.Type != nil {
		update["type"] = *input.Type
	}
	if input.CustomName != nil {
		update["custom_name"] = *input.CustomName
	}
	if input.SharedAt != nil {
		update["shared_at"] = *input.SharedAt
	}
	if input.SignedAt != nil {
		update["signed_at"] = *input.SignedAt
	}
	if input.Status != nil {
		update["status"] = *input.Status
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No update data provided"})
		return
	}

	documents := config.DB.Collection("documents")
	result, err := documents.UpdateOne(c.Request.Context(), bson.M{"id": id}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update document"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	var doc models.Document
	if err := documents.FindOne(c.Request.Context(), bson.M{"id": id}).Decode(&doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load updated document"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// DeleteDocumentHandler removes a document record.
func DeleteDocumentHandler(c *gin.Context) {
	id := c.Param("id")
	result, err := config.DB.Collection("documents").DeleteOne(c.Request.Context(), bson.M{"id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}
