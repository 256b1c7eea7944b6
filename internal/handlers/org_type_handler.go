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

const defaultOrgTypeColor = "bg-slate-500/20 text-slate-400 border-slate-500/30"

// ListOrgTypesHandler returns the merged type registry: defaults first,
// custom types appended.
func ListOrgTypesHandler(c *gin.Context) {
	cursor, err := config.DB.Collection("org_types").Find(c.Request.Context(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch organization types"})
		return
	}
	var custom []models.OrgType
	if err := cursor.All(c.Request.Context(), &custom); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch organization types"})
		return
	}
	c.JSON(http.StatusOK, registry.MergeOrgTypes(models.DefaultOrgTypes, custom))
}

// CreateOrgTypeHandler adds a custom organization type. Names are stored
// upper-cased and must not collide with any default or custom type.
func CreateOrgTypeHandler(c *gin.Context) {
	var input models.OrgTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	types := config.DB.Collection("org_types")
	ctx := c.Request.Context()

	cursor, err := types.Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch organization types"})
		return
	}
	var custom []models.OrgType
	if err := cursor.All(ctx, &custom); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch organization types"})
		return
	}
	if registry.OrgTypeNameTaken(input.Name, custom) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization type already exists"})
		return
	}

	color := input.Color
	if color == "" {
		color = defaultOrgTypeColor
	}
	orgType := models.OrgType{
		ID:    uuid.NewString(),
		Name:  strings.ToUpper(input.Name),
		Color: color,
	}
	if _, err := types.InsertOne(ctx, orgType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create organization type"})
		return
	}
	c.JSON(http.StatusOK, orgType)
}

// DeleteOrgTypeHandler removes a custom organization type. Defaults cannot
// be deleted.
func DeleteOrgTypeHandler(c *gin.Context) {
	id := c.Param("id")
	if strings.HasPrefix(id, "default-") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete default organization type"})
		return
	}
	result, err := config.DB.Collection("org_types").DeleteOne(c.Request.Context(), bson.M{"id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete organization type"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Organization type not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Organization type deleted"})
}
