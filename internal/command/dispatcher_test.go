package command

import (
	"reflect"
	"testing"

	"github.com/bgdnvk/hush/internal/platform"
)

// fakeGateway records every external call in order.
type fakeGateway struct {
	calls []string
	ok    bool
}

func (g *fakeGateway) Search(query string) platform.Outcome {
	g.calls = append(g.calls, "search:"+query)
	return platform.Outcome{OK: g.ok}
}

func (g *fakeGateway) OpenSite(url string) platform.Outcome {
	g.calls = append(g.calls, "site:"+url)
	return platform.Outcome{OK: g.ok}
}

func (g *fakeGateway) OpenSettings(target string) platform.Outcome {
	g.calls = append(g.calls, "settings:"+target)
	return platform.Outcome{OK: g.ok}
}

type fakeRecorder struct {
	entries []string
}

func (r *fakeRecorder) Record(kind, detail string, ok bool) {
	r.entries = append(r.entries, kind+":"+detail)
}

func newTestDispatcher(gw *fakeGateway, rec Recorder) *Dispatcher {
	return NewDispatcher(newTestClassifier(), gw, rec, false)
}

func TestDispatcher_Execute(t *testing.T) {
	tests := []struct {
		name          string
		transcription string
		wantCalls     []string
	}{
		{
			name:          "search then open site",
			transcription: "search for cats and open youtube",
			wantCalls:     []string{"search:cats", "site:https://www.youtube.com"},
		},
		{
			name:          "open site then search, in that order",
			transcription: "open youtube then search dogs",
			wantCalls:     []string{"site:https://www.youtube.com", "search:dogs"},
		},
		{
			name:          "settings target",
			transcription: "open settings sound",
			wantCalls:     []string{"settings:settings sound"},
		},
		{
			name:          "unrecognized makes no calls",
			transcription: "frobnicate the whatsit",
			wantCalls:     nil,
		},
		{
			name:          "empty transcription makes no calls",
			transcription: "",
			wantCalls:     nil,
		},
		{
			name:          "case insensitive",
			transcription: "OPEN YouTube",
			wantCalls:     []string{"site:https://www.youtube.com"},
		},
		{
			name:          "unrecognized segment does not stop later segments",
			transcription: "frobnicate and open gmail",
			wantCalls:     []string{"site:https://mail.google.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{ok: true}
			newTestDispatcher(gw, nil).Execute(tt.transcription)
			if !reflect.DeepEqual(gw.calls, tt.wantCalls) {
				t.Errorf("Execute(%q) calls = %v, want %v", tt.transcription, gw.calls, tt.wantCalls)
			}
		})
	}
}

func TestDispatcher_Idempotent(t *testing.T) {
	gw := &fakeGateway{ok: true}
	d := newTestDispatcher(gw, nil)

	d.Execute("open youtube and search cats")
	first := append([]string(nil), gw.calls...)

	gw.calls = nil
	d.Execute("open youtube and search cats")

	if !reflect.DeepEqual(gw.calls, first) {
		t.Errorf("second run calls = %v, want same as first %v", gw.calls, first)
	}
}

func TestDispatcher_FailedLaunchDoesNotStopDispatch(t *testing.T) {
	gw := &fakeGateway{ok: false}
	d := newTestDispatcher(gw, nil)

	d.Execute("open youtube and open gmail")

	want := []string{"site:https://www.youtube.com", "site:https://mail.google.com"}
	if !reflect.DeepEqual(gw.calls, want) {
		t.Errorf("calls = %v, want %v", gw.calls, want)
	}
}

func TestDispatcher_RecordsExecutedIntents(t *testing.T) {
	gw := &fakeGateway{ok: true}
	rec := &fakeRecorder{}
	d := newTestDispatcher(gw, rec)

	d.Execute("open youtube then search dogs and frobnicate")

	want := []string{"open_site:https://www.youtube.com", "search:dogs"}
	if !reflect.DeepEqual(rec.entries, want) {
		t.Errorf("recorded = %v, want %v", rec.entries, want)
	}
}

func TestDispatcher_EmptyQueryNotExecuted(t *testing.T) {
	gw := &fakeGateway{ok: true}
	d := newTestDispatcher(gw, nil)

	// "search for" strips to the literal query "for"; the segment itself is
	// never empty after splitting, so this is the closest reachable case.
	d.Execute("search for ")

	want := []string{"search:for"}
	if !reflect.DeepEqual(gw.calls, want) {
		t.Errorf("calls = %v, want %v", gw.calls, want)
	}
}
