package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"jarin-io/api/pkg/util"
)

// GetPaginationArgs extracts pagination parameters from the request query.
func GetPaginationArgs(c *gin.Context) util.PaginationArgs {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	sort := c.DefaultQuery("sort", "created_at_desc")

	return util.PaginationArgs{
		Limit: limit,
		Skip:  skip,
		Sort:  sort,
	}
}
