package helper_util

// DefaultPageSize is used whenever a caller asks for a non-positive page size.
var DefaultPageSize = 10

type Pagination struct {
	PageSize  int `json:"pageSize"`
	PageIndex int `json:"pageIndex"`
}

type SkipLimit struct {
	Skip  int64
	Limit int64
}

// GetPageSizeAndPageIndex normalizes a requested page against the total number of records.
// Out-of-range pages clamp to the last page; an empty result set always yields page 0.
func GetPageSizeAndPageIndex(total, pageSize, pageIndex int) Pagination {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
		if pageSize <= 0 {
			pageSize = 10
		}
	}
	if pageIndex < 0 || total <= 0 {
		pageIndex = 0
	}
	// pageIndex may be close to MaxInt, so it is never multiplied here.
	if last := (total - 1) / pageSize; total > 0 && pageIndex > last {
		pageIndex = last
	}

	return Pagination{PageSize: pageSize, PageIndex: pageIndex}
}

func GetSkipAndLimit(p Pagination) SkipLimit {
	return SkipLimit{
		Skip:  int64(p.PageIndex) * int64(p.PageSize),
		Limit: int64(p.PageSize),
	}
}
