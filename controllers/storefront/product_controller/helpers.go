package product_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/moghost88/cozy-corner-goods/middleware"
	"github.com/moghost88/cozy-corner-goods/models"
	"github.com/moghost88/cozy-corner-goods/storage"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// parseFilterState builds the filter state from query parameters. The
// mutators enforce the subcategory-needs-a-category rule, so a subcategory
// sent alongside category=all is silently dropped.
func parseFilterState(c *gin.Context) models.FilterState {
	state := models.DefaultFilterState()
	state.SearchQuery = c.Query("q")
	state.SetCategory(c.DefaultQuery("category", "all"))
	state.SetSubcategory(c.DefaultQuery("subcategory", "all"))
	if raw := c.Query("minRating"); raw != "" {
		if rating, err := strconv.Atoi(raw); err == nil {
			state.SetMinRating(rating)
		}
	}
	state.SortBy = models.ParseSortOption(c.Query("sortBy"))
	return state
}

func parsePage(c *gin.Context) int {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	return page
}

// sessionKV scopes shopper state storage to the current session.
func sessionKV(c *gin.Context) storage.KV {
	sid, _ := middleware.GetSessionIDFromContext(c)
	return storage.Namespaced(baseKV, "shopper:"+sid+":")
}
