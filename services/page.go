package services

// PageResult is the envelope every pagination query returns.
type PageResult struct {
	Total   int64 `json:"total"`
	Records any   `json:"records"`
}
