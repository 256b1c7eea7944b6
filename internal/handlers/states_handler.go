package handlers

import (
	"net/http"

	"fluxcrm/models"

	"github.com/gin-gonic/gin"
)

// ListIndianStatesHandler returns the fixed region list used for
// organization locations and the geography report.
func ListIndianStatesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"states": models.IndianStates})
}
