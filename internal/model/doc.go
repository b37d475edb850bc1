package model

// Package model defines the data structures shared by the socket client and
// the UI: connection states, classified socket errors, and the log entries
// that make up the scrollback. States and errors are string enums so that
// their names can be shown to the user as-is.
