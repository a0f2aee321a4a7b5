// Package desktop wraps the host desktop utilities the MCP tool server
// exposes: clipboard, input injection, screenshots, speech, and application
// launching. Every function here is a thin pass-through to one OS utility;
// there is no decision logic beyond picking the utility for the platform.
package desktop

import (
	"context"
	"os/exec"
	"time"
)

const commandTimeout = 15 * time.Second

// Desktop selects platform utilities once at construction.
type Desktop struct {
	goos string
}

// New creates a Desktop for a platform identifier (runtime.GOOS).
func New(goos string) *Desktop {
	return &Desktop{goos: goos}
}

func run(name string, args ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	return exec.CommandContext(ctx, name, args...).Run()
}

func output(name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, name, args...).Output()
	return string(out), err
}

func runWithStdin(stdin string, name string, args ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, name, args...)
	pipe, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		pipe.Close()
		return err
	}
	if _, err := pipe.Write([]byte(stdin)); err != nil {
		pipe.Close()
		return err
	}
	if err := pipe.Close(); err != nil {
		return err
	}
	return cmd.Wait()
}
