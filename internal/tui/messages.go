package tui

import "github.com/jask/jaskfocus/internal/database/repository"

// tickMsg is one elapsed second. seq pins the message to the tick chain that
// scheduled it; a stale tick from before a pause carries an old seq and is
// dropped.
type tickMsg struct {
	seq int
}

// statusClearMsg expires a status-bar notice.
type statusClearMsg struct {
	seq int
}

type statsMsg struct {
	today  repository.Totals
	week   repository.Totals
	recent []repository.Session
	err    error
}

type sessionSavedMsg struct {
	err error
}

type configSavedMsg struct {
	err error
}
