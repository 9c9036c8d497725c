package query

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Paging reads limit/offset query params. Invalid or missing values fall back to def and 0;
// limit is capped at max.
func Paging(c *gin.Context, def, max int) (limit, offset int) {
	limit = def
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > max {
		limit = max
	}
	if raw := strings.TrimSpace(c.Query("offset")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			offset = v
		}
	}
	return limit, offset
}
