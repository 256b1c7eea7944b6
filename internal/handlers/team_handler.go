package handlers

import (
	"errors"
	"net/http"
	"time"

	"fluxcrm/config"
	"fluxcrm/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ListTeamHandler returns every account. Admin only.
func ListTeamHandler(c *gin.Context) {
	cursor, err := config.DB.Collection("users").Find(c.Request.Context(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch team members"})
		return
	}
	var members []models.User
	if err := cursor.All(c.Request.Context(), &members); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch team members"})
		return
	}
	if members == nil {
		members = make([]models.User, 0)
	}
	c.JSON(http.StatusOK, members)
}

// InviteTeamMemberHandler creates an account with an explicit role.
// Admin only.
func InviteTeamMemberHandler(c *gin.Context) {
	var input models.InviteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidRole(input.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	users := config.DB.Collection("users")
	ctx := c.Request.Context()

	var existing models.User
	err := users.FindOne(ctx, bson.M{"email": input.Email}).Decode(&existing)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing users"})
		return
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		ID:        uuid.NewString(),
		Email:     input.Email,
		Password:  hashed,
		Name:      input.Name,
		Role:      input.Role,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := users.InsertOne(ctx, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	c.JSON(http.StatusOK, user)
}
