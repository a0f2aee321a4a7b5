// Package mcpd exposes the desktop tool set over the Model Context Protocol
// (stdio transport). Each tool is a thin wrapper around a desktop or platform
// collaborator; failures come back in the tool result and never crash the
// server.
package mcpd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bgdnvk/hush/internal/command"
	"github.com/bgdnvk/hush/internal/desktop"
	"github.com/bgdnvk/hush/internal/history"
	"github.com/bgdnvk/hush/internal/platform"
)

// Deps carries the collaborators the tool handlers delegate to.
type Deps struct {
	Dispatcher *command.Dispatcher
	Browser    *platform.Browser
	Desktop    *desktop.Desktop
	Store      *history.Store
}

// Server is the MCP desktop tool server.
type Server struct {
	mcp  *server.MCPServer
	deps Deps
}

// New builds the server and registers the tool set.
func New(version string, deps Deps) *Server {
	s := &Server{
		mcp:  server.NewMCPServer("hush-desktop", version, server.WithToolCapabilities(true)),
		deps: deps,
	}
	s.registerTools()
	return s
}

// ServeStdio blocks serving MCP over stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("silent_execute",
		mcp.WithDescription("Interpret a transcribed voice command and execute it silently (search, open site, open settings)."),
		mcp.WithString("transcription", mcp.Required(), mcp.Description("Free-form transcribed command text")),
	), s.handleSilentExecute)

	s.mcp.AddTool(mcp.NewTool("nav_open_url",
		mcp.WithDescription("Open a URL in a browser tab."),
		mcp.WithString("url", mcp.Required(), mcp.Description("URL to open")),
	), s.handleOpenURL)

	s.mcp.AddTool(mcp.NewTool("nav_open_application",
		mcp.WithDescription("Launch a desktop application by name."),
		mcp.WithString("app_name", mcp.Required(), mcp.Description("Application name")),
	), s.handleOpenApplication)

	s.mcp.AddTool(mcp.NewTool("desktop_get_clipboard",
		mcp.WithDescription("Read the current clipboard text."),
	), s.handleGetClipboard)

	s.mcp.AddTool(mcp.NewTool("desktop_set_clipboard",
		mcp.WithDescription("Replace the clipboard text."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text to place on the clipboard")),
	), s.handleSetClipboard)

	s.mcp.AddTool(mcp.NewTool("desktop_type",
		mcp.WithDescription("Type text into the focused field."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text to type")),
	), s.handleType)

	s.mcp.AddTool(mcp.NewTool("desktop_key_press",
		mcp.WithDescription("Press a key chord, e.g. \"ctrl backspace\"."),
		mcp.WithString("keys", mcp.Required(), mcp.Description("Space-separated keys pressed together")),
	), s.handleKeyPress)

	s.mcp.AddTool(mcp.NewTool("desktop_click",
		mcp.WithDescription("Click a mouse button at absolute screen coordinates."),
		mcp.WithNumber("x", mcp.Required(), mcp.Description("X coordinate")),
		mcp.WithNumber("y", mcp.Required(), mcp.Description("Y coordinate")),
		mcp.WithString("button", mcp.Description("left, middle or right; default left")),
	), s.handleClick)

	s.mcp.AddTool(mcp.NewTool("desktop_scroll",
		mcp.WithDescription("Scroll the active area in a direction by an amount in pixels."),
		mcp.WithString("direction", mcp.Required(), mcp.Description("up, down, left or right")),
		mcp.WithNumber("amount", mcp.Description("Scroll amount in pixels; default 500")),
	), s.handleScroll)

	s.mcp.AddTool(mcp.NewTool("desktop_capture_screenshot",
		mcp.WithDescription("Capture the screen to a PNG file."),
		mcp.WithString("path", mcp.Description("Destination file; a temp file is used when empty")),
	), s.handleScreenshot)

	s.mcp.AddTool(mcp.NewTool("desktop_capture_region",
		mcp.WithDescription("Capture a rectangular screen region to a PNG file."),
		mcp.WithNumber("x", mcp.Required(), mcp.Description("Region left edge")),
		mcp.WithNumber("y", mcp.Required(), mcp.Description("Region top edge")),
		mcp.WithNumber("width", mcp.Required(), mcp.Description("Region width")),
		mcp.WithNumber("height", mcp.Required(), mcp.Description("Region height")),
		mcp.WithString("path", mcp.Description("Destination file; a temp file is used when empty")),
	), s.handleCaptureRegion)

	s.mcp.AddTool(mcp.NewTool("file_read_text",
		mcp.WithDescription("Read a UTF-8 text file."),
		mcp.WithString("path", mcp.Required(), mcp.Description("File path; a leading ~ expands to the home directory")),
	), s.handleFileRead)

	s.mcp.AddTool(mcp.NewTool("file_write_text",
		mcp.WithDescription("Write text to a file, creating parent directories as needed."),
		mcp.WithString("path", mcp.Required(), mcp.Description("File path; a leading ~ expands to the home directory")),
		mcp.WithString("content", mcp.Required(), mcp.Description("File content")),
	), s.handleFileWrite)

	s.mcp.AddTool(mcp.NewTool("tts_speak",
		mcp.WithDescription("Speak text aloud via the platform speech engine."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text to speak")),
		mcp.WithNumber("rate", mcp.Description("Speech rate in words per minute")),
	), s.handleSpeak)

	s.mcp.AddTool(mcp.NewTool("action_log",
		mcp.WithDescription("Append a custom entry to the action history."),
		mcp.WithString("kind", mcp.Required(), mcp.Description("Action type")),
		mcp.WithString("detail", mcp.Description("Action detail")),
	), s.handleActionLog)

	s.mcp.AddTool(mcp.NewTool("action_last",
		mcp.WithDescription("Report the most recent logged action. True undo is out of scope; this only reports."),
	), s.handleActionLast)
}

func (s *Server) record(kind, detail string, ok bool) {
	if s.deps.Store != nil {
		s.deps.Store.Record(kind, detail, ok)
	}
}

func (s *Server) handleSilentExecute(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	transcription, err := req.RequireString("transcription")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	// The dispatcher records its own history entries.
	s.deps.Dispatcher.Execute(transcription)
	return mcp.NewToolResultText("executed"), nil
}

func (s *Server) handleOpenURL(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := req.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out := s.deps.Browser.OpenTab(url)
	s.record("nav_open_url", url, out.OK)
	if !out.OK {
		return mcp.NewToolResultError(out.Detail), nil
	}
	return mcp.NewToolResultText("opened " + url), nil
}

func (s *Server) handleOpenApplication(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("app_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	launchErr := s.deps.Desktop.OpenApplication(name)
	s.record("nav_open_application", name, launchErr == nil)
	if launchErr != nil {
		return mcp.NewToolResultError(launchErr.Error()), nil
	}
	return mcp.NewToolResultText("launched " + name), nil
}

func (s *Server) handleGetClipboard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := s.deps.Desktop.ClipboardGet()
	s.record("desktop_get_clipboard", "", err == nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleSetClipboard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	setErr := s.deps.Desktop.ClipboardSet(text)
	s.record("desktop_set_clipboard", text, setErr == nil)
	if setErr != nil {
		return mcp.NewToolResultError(setErr.Error()), nil
	}
	return mcp.NewToolResultText("clipboard set"), nil
}

func (s *Server) handleType(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	typeErr := s.deps.Desktop.Type(text)
	s.record("desktop_type", text, typeErr == nil)
	if typeErr != nil {
		return mcp.NewToolResultError(typeErr.Error()), nil
	}
	return mcp.NewToolResultText("typed"), nil
}

func (s *Server) handleKeyPress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("keys")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	keys := strings.Fields(raw)
	pressErr := s.deps.Desktop.KeyPress(keys)
	s.record("desktop_key_press", raw, pressErr == nil)
	if pressErr != nil {
		return mcp.NewToolResultError(pressErr.Error()), nil
	}
	return mcp.NewToolResultText("pressed " + raw), nil
}

func (s *Server) handleClick(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	x, err := req.RequireInt("x")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	y, err := req.RequireInt("y")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	button := req.GetString("button", "left")
	clickErr := s.deps.Desktop.Click(x, y, button)
	s.record("desktop_click", fmt.Sprintf("%s at %d,%d", button, x, y), clickErr == nil)
	if clickErr != nil {
		return mcp.NewToolResultError(clickErr.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("clicked %s at %d,%d", button, x, y)), nil
}

func (s *Server) handleScroll(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	direction, err := req.RequireString("direction")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	amount := req.GetInt("amount", 500)
	scrollErr := s.deps.Desktop.Scroll(direction, amount)
	s.record("desktop_scroll", fmt.Sprintf("%s %d", direction, amount), scrollErr == nil)
	if scrollErr != nil {
		return mcp.NewToolResultError(scrollErr.Error()), nil
	}
	return mcp.NewToolResultText("scrolled " + direction), nil
}

func (s *Server) handleCaptureRegion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	x, err := req.RequireInt("x")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	y, err := req.RequireInt("y")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	width, err := req.RequireInt("width")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	height, err := req.RequireInt("height")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	path := req.GetString("path", "")
	written, capErr := s.deps.Desktop.CaptureRegion(path, x, y, width, height)
	s.record("desktop_capture_region", written, capErr == nil)
	if capErr != nil {
		return mcp.NewToolResultError(capErr.Error()), nil
	}
	return mcp.NewToolResultText("saved " + written), nil
}

func (s *Server) handleFileRead(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	expanded, err := expandHome(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, readErr := os.ReadFile(expanded)
	s.record("file_read_text", path, readErr == nil)
	if readErr != nil {
		return mcp.NewToolResultError(readErr.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleFileWrite(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	expanded, err := expandHome(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	writeErr := os.MkdirAll(filepath.Dir(expanded), 0o755)
	if writeErr == nil {
		writeErr = os.WriteFile(expanded, []byte(content), 0o644)
	}
	s.record("file_write_text", path, writeErr == nil)
	if writeErr != nil {
		return mcp.NewToolResultError(writeErr.Error()), nil
	}
	return mcp.NewToolResultText("wrote " + path), nil
}

func expandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}

func (s *Server) handleScreenshot(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := req.GetString("path", "")
	written, err := s.deps.Desktop.Screenshot(path)
	s.record("desktop_capture_screenshot", written, err == nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText("saved " + written), nil
}

func (s *Server) handleSpeak(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rate := req.GetInt("rate", 0)
	speakErr := s.deps.Desktop.Speak(text, rate)
	s.record("tts_speak", text, speakErr == nil)
	if speakErr != nil {
		return mcp.NewToolResultError(speakErr.Error()), nil
	}
	return mcp.NewToolResultText("spoke"), nil
}

func (s *Server) handleActionLog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := req.RequireString("kind")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	detail := req.GetString("detail", "")
	if s.deps.Store == nil {
		return mcp.NewToolResultError("history store unavailable"), nil
	}
	if _, err := s.deps.Store.Append(kind, detail, true); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText("logged"), nil
}

func (s *Server) handleActionLast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.deps.Store == nil {
		return mcp.NewToolResultError("history store unavailable"), nil
	}
	last, err := s.deps.Store.Last()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if last == nil {
		return mcp.NewToolResultError("no previous action"), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("last action: %s %s (success=%t)",
		last.Kind, last.Detail, last.OK)), nil
}
