package command

import (
	"fmt"

	"github.com/bgdnvk/hush/internal/platform"
)

// Gateway is the capability surface the dispatcher executes intents through.
// Implementations are best-effort: they report an Outcome and never return an
// error, so a failed launch can not disturb later segments.
type Gateway interface {
	Search(query string) platform.Outcome
	OpenSite(url string) platform.Outcome
	OpenSettings(target string) platform.Outcome
}

// Recorder receives one entry per executed intent. Recording is best-effort;
// implementations must not block dispatch.
type Recorder interface {
	Record(kind, detail string, ok bool)
}

// Dispatcher runs a whole transcription: split, then classify and execute
// each segment strictly in order. It keeps no state between runs, so repeated
// identical transcriptions produce identical call sequences.
type Dispatcher struct {
	classifier *Classifier
	gateway    Gateway
	recorder   Recorder
	debug      bool
}

// NewDispatcher wires a dispatcher. recorder may be nil.
func NewDispatcher(classifier *Classifier, gateway Gateway, recorder Recorder, debug bool) *Dispatcher {
	return &Dispatcher{
		classifier: classifier,
		gateway:    gateway,
		recorder:   recorder,
		debug:      debug,
	}
}

// Execute interprets and runs one transcription. Fire and forget: there is no
// synchronous consumer of success or failure, so nothing is returned. Every
// gateway Outcome is handed to the recorder and then dropped.
func (d *Dispatcher) Execute(transcription string) {
	for _, segment := range Split(transcription) {
		intent := d.classifier.Classify(segment)
		if d.debug {
			fmt.Printf("hush: segment %q -> %s\n", segment, intent.Kind)
		}

		switch intent.Kind {
		case KindSearch:
			if intent.Query == "" {
				continue
			}
			d.record(string(KindSearch), intent.Query, d.gateway.Search(intent.Query))
		case KindOpenSite:
			d.record(string(KindOpenSite), intent.URL, d.gateway.OpenSite(intent.URL))
		case KindOpenSettings:
			d.record(string(KindOpenSettings), intent.Target, d.gateway.OpenSettings(intent.Target))
		case KindUnrecognized:
			// Normal terminal outcome, not an error. No external call.
		}
	}
}

// record forwards an outcome to the recorder, then discards it. The discard
// is the contract: execution is best effort and failures stay silent.
func (d *Dispatcher) record(kind, detail string, out platform.Outcome) {
	if d.recorder != nil {
		d.recorder.Record(kind, detail, out.OK)
	}
	if d.debug && !out.OK {
		fmt.Printf("hush: %s launch failed: %s\n", kind, out.Detail)
	}
}
