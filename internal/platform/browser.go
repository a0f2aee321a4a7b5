package platform

// Browser opens URLs in the default browser, or in a named browser app when
// one was supplied out-of-band (config key browser.app).
type Browser struct {
	goos   string
	app    string
	launch launchFunc
}

// NewBrowser creates a browser opener for a platform identifier. app may be
// empty, in which case the OS default browser handles the URL.
func NewBrowser(goos, app string) *Browser {
	return &Browser{goos: goos, app: app, launch: startDetached}
}

// OpenTab opens a URL in a new browser tab, best effort.
func (b *Browser) OpenTab(url string) Outcome {
	var err error
	switch b.goos {
	case "darwin":
		if b.app != "" {
			err = b.launch("open", "-a", b.app, url)
		} else {
			err = b.launch("open", url)
		}
	case "windows":
		if b.app != "" {
			err = b.launch(b.app, url)
		} else {
			err = b.launch("cmd", "/c", "start", "", url)
		}
	case "linux":
		if b.app != "" {
			err = b.launch(b.app, url)
		} else {
			err = b.launch("xdg-open", url)
		}
	default:
		return failed("unsupported platform")
	}
	if err != nil {
		return failed(err.Error())
	}
	return launched(url)
}
