package service

import "time"

// NoticeKind classifies engine notices.
type NoticeKind int

const (
	// NoticeSubmitted reports a successful submission.
	NoticeSubmitted NoticeKind = iota
	// NoticeSubmissionFailed reports a submission the provider or the
	// network rejected. The participant may re-toggle ready to retry.
	NoticeSubmissionFailed
	// NoticeSessionInvalid reports that the provider dropped the key; a new
	// session is being established.
	NoticeSessionInvalid
	// NoticeSessionError reports that no session could be established.
	NoticeSessionError
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeSubmitted:
		return "submitted"
	case NoticeSubmissionFailed:
		return "submission failed"
	case NoticeSessionInvalid:
		return "session lost"
	case NoticeSessionError:
		return "session error"
	default:
		return "notice"
	}
}

// Notice is a user-visible engine event.
type Notice struct {
	Kind NoticeKind
	Step int
	Err  error
	At   time.Time
}

// Blocking reports whether the UI should hold the participant on an overlay
// until acknowledged.
func (n Notice) Blocking() bool {
	return n.Kind == NoticeSubmissionFailed || n.Kind == NoticeSessionInvalid
}
