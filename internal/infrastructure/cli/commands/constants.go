package commands

// Error messages
const (
	ErrHistoryDisabled = "history is disabled (history.enabled: false)"
	ErrInvalidLimit    = "--limit must be >= 0"
)

// Success messages
const (
	MsgNoHistoryRecorded = "No history recorded yet."
	MsgHistoryCleared    = "History cleared."
	MsgWatching          = "Watching %s for changes (Ctrl+C to stop)"
)
