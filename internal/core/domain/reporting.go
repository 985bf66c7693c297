package domain

// BucketCount is the dashboard tile figure for one stage bucket.
type BucketCount struct {
	Key    string `json:"key"`
	Module string `json:"module"`
	Total  int64  `json:"total"`
}
