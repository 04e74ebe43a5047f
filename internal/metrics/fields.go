package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod    = "method"
	AttrPath      = "path"
	AttrStatus    = "status"
	AttrStore     = "content_store"
	AttrOperation = "operation"
	AttrView      = "view"
)
