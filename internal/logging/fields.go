package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldLeagueID   = "league_id"
	FieldPeriod     = "period"
	FieldEntryID    = "entry_id"
	FieldStage      = "stage"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
