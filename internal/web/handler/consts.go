package handler

const (
	// APIPrefix is the common prefix of all API routes.
	APIPrefix = "/api/v1"

	// RouterRootPath is the root path of a route group.
	RouterRootPath = "/"

	// ParamFormID names the form id route parameter.
	ParamFormID = "formID"

	// ErrNilACPFatalLogMsg is used if app, cfg or plugin pointer is nil.
	ErrNilACPFatalLogMsg = "app, cfg or plugin is nil"
)
