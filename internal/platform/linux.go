package platform

import "os/exec"

// linuxRules maps settings phrases to gnome-control-center panes. An empty
// target opens the control center without a pane argument.
var linuxRules = RuleTable{
	Rules: []SettingsRule{
		{Keywords: []string{"sound", "audio", "volume"}, Target: "sound"},
		{Keywords: []string{"display", "screen", "monitor"}, Target: "display"},
		{Keywords: []string{"network", "wifi"}, Target: "network"},
		{Keywords: []string{"bluetooth"}, Target: "bluetooth"},
		{Keywords: []string{"power"}, Target: "power"},
	},
	Default: "",
}

const controlCenterBin = "gnome-control-center"

func lookPath(name string) (string, error) {
	return exec.LookPath(name)
}

type linuxResolver struct {
	launch   launchFunc
	lookPath func(name string) (string, error)
}

func (r *linuxResolver) ResolveTarget(target string) string {
	return linuxRules.Resolve(target)
}

// OpenTarget invokes gnome-control-center with the pane as its argument.
// A missing binary is a silent no-op failure, not an error.
func (r *linuxResolver) OpenTarget(targetID string) Outcome {
	if _, err := r.lookPath(controlCenterBin); err != nil {
		return failed(controlCenterBin + " not found")
	}
	args := []string{}
	if targetID != "" {
		args = append(args, targetID)
	}
	if err := r.launch(controlCenterBin, args...); err != nil {
		return failed(err.Error())
	}
	return launched(controlCenterBin + " " + targetID)
}
