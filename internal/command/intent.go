// Package command implements the interpretation core: it segments a
// transcription into independent commands, classifies each segment into an
// intent, and dispatches intents through the platform gateway in order.
package command

// IntentKind identifies the classified meaning of a segment.
type IntentKind string

// Intent kinds. Classification is total: every segment maps to exactly one
// kind, with KindUnrecognized as the terminal fallback.
const (
	KindSearch       IntentKind = "search"
	KindOpenSite     IntentKind = "open_site"
	KindOpenSettings IntentKind = "open_settings"
	KindUnrecognized IntentKind = "unrecognized"
)

// Intent is the classified form of one segment. Exactly one of the payload
// fields is meaningful, selected by Kind: Query for KindSearch, URL for
// KindOpenSite, Target for KindOpenSettings.
type Intent struct {
	Kind   IntentKind
	Query  string
	URL    string
	Target string
}
