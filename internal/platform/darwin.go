package platform

// macRules maps settings phrases to System Preferences pane URIs.
var macRules = RuleTable{
	Rules: []SettingsRule{
		{Keywords: []string{"sound", "audio", "volume"}, Target: "x-apple.systempreferences:com.apple.preference.sound"},
		{Keywords: []string{"display", "screen", "monitor"}, Target: "x-apple.systempreferences:com.apple.preference.displays"},
		{Keywords: []string{"privacy", "security"}, Target: "x-apple.systempreferences:com.apple.preference.security?Privacy"},
		{Keywords: []string{"network", "wifi", "internet"}, Target: "x-apple.systempreferences:com.apple.preference.network"},
		{Keywords: []string{"update"}, Target: "x-apple.systempreferences:com.apple.preferences.softwareupdate"},
	},
	Default: "x-apple.systempreferences:",
}

type macResolver struct {
	launch launchFunc
}

func (r *macResolver) ResolveTarget(target string) string {
	return macRules.Resolve(target)
}

func (r *macResolver) OpenTarget(targetID string) Outcome {
	if err := r.launch("open", targetID); err != nil {
		return failed(err.Error())
	}
	return launched(targetID)
}
