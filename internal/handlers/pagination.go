package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// listOptions turns the limit and offset query parameters into Mongo find
// options. Invalid values fall back to the defaults.
func listOptions(c *gin.Context) *options.FindOptionsBuilder {
	limit := int64(defaultListLimit)
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			limit = min(n, maxListLimit)
		}
	}

	opts := options.Find().SetLimit(limit)
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			opts.SetSkip(n)
		}
	}
	return opts
}
