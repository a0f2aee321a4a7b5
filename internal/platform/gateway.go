package platform

import "net/url"

const searchBaseURL = "https://www.google.com/search?q="

// Gateway is the OS-specific execution boundary. The OS family is fixed when
// the gateway is built and never re-evaluated per call.
type Gateway struct {
	resolver SettingsResolver
	browser  *Browser
}

// NewGateway builds a gateway for a platform identifier (runtime.GOOS).
func NewGateway(goos string, browser *Browser) *Gateway {
	return &Gateway{
		resolver: NewSettingsResolver(goos),
		browser:  browser,
	}
}

// Search opens a web search for the query in a browser tab.
func (g *Gateway) Search(query string) Outcome {
	return g.browser.OpenTab(searchBaseURL + url.QueryEscape(query))
}

// OpenSite opens a site URL in a browser tab.
func (g *Gateway) OpenSite(siteURL string) Outcome {
	return g.browser.OpenTab(siteURL)
}

// OpenSettings resolves a raw settings phrase against the platform's rule
// table and opens the resulting target.
func (g *Gateway) OpenSettings(target string) Outcome {
	return g.resolver.OpenTarget(g.resolver.ResolveTarget(target))
}
