// Package platform turns classified intents into OS side effects: opening a
// browser tab or a system-settings pane. Everything here is best-effort and
// fire-and-forget; failures are reported as an Outcome, never as an error.
package platform

// Outcome reports whether an external action was launched. Callers are free
// to discard it; the headless pipeline has no UI to surface a failure to.
type Outcome struct {
	OK     bool
	Detail string
}

func launched(detail string) Outcome {
	return Outcome{OK: true, Detail: detail}
}

func failed(detail string) Outcome {
	return Outcome{OK: false, Detail: detail}
}
