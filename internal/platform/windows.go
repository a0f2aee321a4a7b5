package platform

// windowsRules maps settings phrases to ms-settings: URI variants
// (Windows 10/11 URI scheme).
var windowsRules = RuleTable{
	Rules: []SettingsRule{
		{Keywords: []string{"sound", "audio", "volume"}, Target: "ms-settings:sound"},
		{Keywords: []string{"display", "screen", "monitor"}, Target: "ms-settings:display"},
		{Keywords: []string{"privacy", "security"}, Target: "ms-settings:privacy"},
		{Keywords: []string{"bluetooth", "device"}, Target: "ms-settings:bluetooth"},
		{Keywords: []string{"wifi", "network", "internet"}, Target: "ms-settings:network"},
		{Keywords: []string{"power", "battery", "sleep"}, Target: "ms-settings:powersleep"},
	},
	Default: "ms-settings:",
}

type windowsResolver struct {
	launch launchFunc
}

func (r *windowsResolver) ResolveTarget(target string) string {
	return windowsRules.Resolve(target)
}

// OpenTarget hands the URI to the shell's start facility, which knows how to
// dispatch ms-settings: URIs to the Settings app.
func (r *windowsResolver) OpenTarget(targetID string) Outcome {
	if err := r.launch("cmd", "/c", "start", "", targetID); err != nil {
		return failed(err.Error())
	}
	return launched(targetID)
}
