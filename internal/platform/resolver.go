package platform

// SettingsResolver resolves a raw settings phrase to a platform-native target
// and opens it. One implementation exists per OS family; the right one is
// picked once at startup, so the dispatch path carries no runtime OS
// branching.
type SettingsResolver interface {
	// ResolveTarget maps a lower-cased settings phrase ("settings sound") to
	// the platform target identifier. Pure; always returns something (the
	// family default when nothing matches).
	ResolveTarget(target string) string

	// OpenTarget launches the platform facility for a resolved target.
	OpenTarget(targetID string) Outcome
}

// NewSettingsResolver selects the resolver for a platform identifier
// (runtime.GOOS values). Unknown families get a no-op resolver.
func NewSettingsResolver(goos string) SettingsResolver {
	switch goos {
	case "windows":
		return &windowsResolver{launch: startDetached}
	case "darwin":
		return &macResolver{launch: startDetached}
	case "linux":
		return &linuxResolver{launch: startDetached, lookPath: lookPath}
	default:
		return noopResolver{}
	}
}

// noopResolver is the unknown-OS fallback: resolution yields nothing and
// opening is a silent no-op.
type noopResolver struct{}

func (noopResolver) ResolveTarget(string) string { return "" }

func (noopResolver) OpenTarget(string) Outcome {
	return failed("unsupported platform")
}
