package helper_util

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetPageSizeAndPageIndex(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		pageSize  int
		pageIndex int
		want      Pagination
	}{
		{"first page", 25, 10, 0, Pagination{PageSize: 10, PageIndex: 0}},
		{"last valid page", 25, 10, 2, Pagination{PageSize: 10, PageIndex: 2}},
		{"clamps past the end", 25, 10, 5, Pagination{PageSize: 10, PageIndex: 2}},
		{"exact multiple clamps to last full page", 20, 10, 2, Pagination{PageSize: 10, PageIndex: 1}},
		{"empty result forces page zero", 0, 10, 3, Pagination{PageSize: 10, PageIndex: 0}},
		{"non-positive page size uses default", 25, 0, 1, Pagination{PageSize: DefaultPageSize, PageIndex: 1}},
		{"negative page size uses default", 5, -4, 0, Pagination{PageSize: DefaultPageSize, PageIndex: 0}},
		{"negative page index", 25, 10, -1, Pagination{PageSize: 10, PageIndex: 0}},
		{"max int page index clamps", 25, 10, math.MaxInt, Pagination{PageSize: 10, PageIndex: 2}},
		{"huge page index clamps", 25, 2, 1 << 62, Pagination{PageSize: 2, PageIndex: 12}},
		{"huge page size", 25, math.MaxInt, 3, Pagination{PageSize: math.MaxInt, PageIndex: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetPageSizeAndPageIndex(tt.total, tt.pageSize, tt.pageIndex))
		})
	}
}

func TestGetSkipAndLimit(t *testing.T) {
	got := GetSkipAndLimit(GetPageSizeAndPageIndex(25, 10, 5))
	assert.Equal(t, SkipLimit{Skip: 20, Limit: 10}, got)
}

func TestGetSkipAndLimit_HugePageIndex(t *testing.T) {
	for _, pageIndex := range []int{1 << 62, math.MaxInt} {
		got := GetSkipAndLimit(GetPageSizeAndPageIndex(25, 2, pageIndex))
		assert.Equal(t, SkipLimit{Skip: 24, Limit: 2}, got, "pageIndex=%d", pageIndex)
	}
}

func TestSkipAlwaysInsideResultSet(t *testing.T) {
	for total := 0; total <= 60; total++ {
		for pageSize := 1; pageSize <= 12; pageSize++ {
			for pageIndex := 0; pageIndex <= 70; pageIndex += 7 {
				w := GetSkipAndLimit(GetPageSizeAndPageIndex(total, pageSize, pageIndex))
				if total == 0 {
					assert.Equal(t, int64(0), w.Skip)
					continue
				}
				assert.Less(t, w.Skip, int64(total), "total=%d pageSize=%d pageIndex=%d", total, pageSize, pageIndex)
				assert.Equal(t, int64(pageSize), w.Limit)
			}
		}
	}
}

func TestGetPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/settings/action-history?pageSize=20&pageIndex=3", nil)
	pageSize, pageIndex := GetPaginationParams(c)
	assert.Equal(t, 20, pageSize)
	assert.Equal(t, 3, pageIndex)

	c.Request = httptest.NewRequest("GET", "/settings/action-history?pageSize=abc", nil)
	pageSize, pageIndex = GetPaginationParams(c)
	assert.Equal(t, 0, pageSize)
	assert.Equal(t, 0, pageIndex)
}
