package helper_util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetPaginationParams reads pageSize and pageIndex from the query string.
// Missing or non-numeric values become 0 and are normalized by GetPageSizeAndPageIndex.
func GetPaginationParams(c *gin.Context) (pageSize int, pageIndex int) {
	pageSize, err := strconv.Atoi(c.Query("pageSize"))
	if err != nil {
		pageSize = 0
	}
	pageIndex, err = strconv.Atoi(c.Query("pageIndex"))
	if err != nil {
		pageIndex = 0
	}
	return pageSize, pageIndex
}
