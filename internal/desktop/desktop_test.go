package desktop

import "testing"

func TestRunWithStdin_MissingBinary(t *testing.T) {
	// A failed start must surface the error (and release the stdin pipe)
	// instead of hanging on Wait.
	if err := runWithStdin("payload", "hush-no-such-binary-for-test"); err == nil {
		t.Error("runWithStdin with a missing binary returned nil error")
	}
}
