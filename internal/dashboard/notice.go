// Package dashboard holds the view state behind the monitoring console: the
// station directory, the telemetry table, the employee approval list, and the
// notification bell. Each view owns its own fetch lifecycle against the API
// and stays eventually consistent with the server; the only shared state is
// the current user, resolved once and handed to the views that need it.
package dashboard

// Level classifies a Notice.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice is a transient, non-blocking user notification. Failed fetches and
// mutation outcomes surface as notices; they never break the view.
type Notice struct {
	Level   Level
	Title   string
	Message string
}

// NoticeFunc receives notices. A nil NoticeFunc drops them.
type NoticeFunc func(Notice)

func (f NoticeFunc) post(level Level, title, message string) {
	if f != nil {
		f(Notice{Level: level, Title: title, Message: message})
	}
}
