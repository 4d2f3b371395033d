// Package notify is the toast boundary: mutation outcomes surface here as
// dismissible notifications. Auth failures never do (they redirect), and
// role failures are silent.
package notify

import "github.com/rs/zerolog"

// Notifier receives user-facing notifications.
type Notifier interface {
	Success(title, description string)
	Error(title, description string)
}

type logNotifier struct {
	log zerolog.Logger
}

// NewLog returns a Notifier that writes notifications to the log. The CLI
// uses it directly; a richer front end would supply its own.
func NewLog(log zerolog.Logger) Notifier {
	return &logNotifier{log: log}
}

func (n *logNotifier) Success(title, description string) {
	n.log.Info().Str("title", title).Msg(description)
}

func (n *logNotifier) Error(title, description string) {
	n.log.Error().Str("title", title).Msg(description)
}
