package sanity

import "time"

const (
	storeName          = "sanity"
	defaultDataset     = "production"
	defaultAPIVersion  = "2025-05-04"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBody       = 512
)
