package hooks

// ValidationResult is filled in by validate handlers. A zero value means the value passed.
type ValidationResult struct {
	Invalid    bool
	MessageKey string
	Message    string
}

// ValidationPayload carries one submitted email field.
type ValidationPayload struct {
	FormID   string
	Field    string
	Value    string
	Required bool
	Result   ValidationResult
}

// Invalidate marks the field as rejected with the message registered under key.
func (p *ValidationPayload) Invalidate(key, message string) {
	p.Result = ValidationResult{
		Invalid:    true,
		MessageKey: key,
		Message:    message,
	}
}

// SaveFormPayload carries the form settings an editor submitted.
type SaveFormPayload struct {
	FormID  string
	Enabled bool
	Editor  bool
	Saved   bool
}

// Notice is one admin notice.
type Notice struct {
	Level       string `json:"level"`
	Message     string `json:"message"`
	Dismissible bool   `json:"dismissible"`
}

// NoticesPayload collects the notices of an admin page view.
type NoticesPayload struct {
	Notices []Notice
}

// Message is one entry of the message catalogue.
type Message struct {
	Description string `json:"description"`
	Default     string `json:"default"`
}

// MessagesPayload collects message catalogue entries by key.
type MessagesPayload struct {
	Messages map[string]Message
}
