package platform

import (
	"errors"
	"reflect"
	"testing"
)

// captureLaunch records the launch invocation instead of starting a process.
func captureLaunch(calls *[][]string, err error) launchFunc {
	return func(name string, args ...string) error {
		*calls = append(*calls, append([]string{name}, args...))
		return err
	}
}

func TestNewSettingsResolver_Selection(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"windows", "*platform.windowsResolver"},
		{"darwin", "*platform.macResolver"},
		{"linux", "*platform.linuxResolver"},
		{"plan9", "platform.noopResolver"},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			got := reflect.TypeOf(NewSettingsResolver(tt.goos)).String()
			if got != tt.want {
				t.Errorf("NewSettingsResolver(%s) = %s, want %s", tt.goos, got, tt.want)
			}
		})
	}
}

func TestWindowsResolver_OpenTarget(t *testing.T) {
	var calls [][]string
	r := &windowsResolver{launch: captureLaunch(&calls, nil)}

	out := r.OpenTarget("ms-settings:sound")
	if !out.OK {
		t.Fatalf("OpenTarget failed: %s", out.Detail)
	}
	want := [][]string{{"cmd", "/c", "start", "", "ms-settings:sound"}}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("launch calls = %v, want %v", calls, want)
	}
}

func TestMacResolver_OpenTarget(t *testing.T) {
	var calls [][]string
	r := &macResolver{launch: captureLaunch(&calls, nil)}

	out := r.OpenTarget("x-apple.systempreferences:com.apple.preference.sound")
	if !out.OK {
		t.Fatalf("OpenTarget failed: %s", out.Detail)
	}
	want := [][]string{{"open", "x-apple.systempreferences:com.apple.preference.sound"}}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("launch calls = %v, want %v", calls, want)
	}
}

func TestLinuxResolver_OpenTarget(t *testing.T) {
	var calls [][]string
	r := &linuxResolver{
		launch:   captureLaunch(&calls, nil),
		lookPath: func(string) (string, error) { return "/usr/bin/gnome-control-center", nil },
	}

	out := r.OpenTarget("sound")
	if !out.OK {
		t.Fatalf("OpenTarget failed: %s", out.Detail)
	}
	want := [][]string{{"gnome-control-center", "sound"}}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("launch calls = %v, want %v", calls, want)
	}
}

func TestLinuxResolver_NoPaneArgument(t *testing.T) {
	var calls [][]string
	r := &linuxResolver{
		launch:   captureLaunch(&calls, nil),
		lookPath: func(string) (string, error) { return "/usr/bin/gnome-control-center", nil },
	}

	r.OpenTarget("")
	want := [][]string{{"gnome-control-center"}}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("launch calls = %v, want %v", calls, want)
	}
}

func TestLinuxResolver_MissingBinaryIsSilentNoop(t *testing.T) {
	var calls [][]string
	r := &linuxResolver{
		launch:   captureLaunch(&calls, nil),
		lookPath: func(string) (string, error) { return "", errors.New("not found") },
	}

	out := r.OpenTarget("sound")
	if out.OK {
		t.Error("OpenTarget with missing binary reported OK")
	}
	if len(calls) != 0 {
		t.Errorf("launch was called %d times, want 0", len(calls))
	}
}

func TestNoopResolver(t *testing.T) {
	r := noopResolver{}
	if got := r.ResolveTarget("sound settings"); got != "" {
		t.Errorf("ResolveTarget = %q, want empty", got)
	}
	if out := r.OpenTarget("anything"); out.OK {
		t.Error("OpenTarget reported OK on unsupported platform")
	}
}

func TestLaunchFailureReported(t *testing.T) {
	var calls [][]string
	r := &windowsResolver{launch: captureLaunch(&calls, errors.New("boom"))}

	out := r.OpenTarget("ms-settings:")
	if out.OK {
		t.Error("OpenTarget reported OK despite launch failure")
	}
	if out.Detail != "boom" {
		t.Errorf("Detail = %q, want boom", out.Detail)
	}
}
