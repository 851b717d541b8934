package blocker

const (
	// MessageKey identifies the rejection message in the host message catalogue.
	MessageKey = "disposable_emails_found"

	// MessageDescription tells an editor when the message is shown.
	MessageDescription = "Email was disposable/temporary"

	// DefaultMessage is shown to the submitter unless configured otherwise.
	DefaultMessage = "Disposable/Temporary emails are not allowed! Please use a non temporary email"
)
