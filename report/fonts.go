package report

// FontConfig records the font family chosen for each of the four roles.
// Global is the cascading role: setting it rewrites title, headers and body
// in the same step, after which any individual role can still be overridden
// on its own.
type FontConfig struct {
	Global  string `json:"global"`
	Title   string `json:"title"`
	Headers string `json:"headers"`
	Body    string `json:"body"`
}

// SetGlobal applies a new global family and cascades it to every role.
func (f *FontConfig) SetGlobal(name string) {
	f.Global = name
	f.Title = name
	f.Headers = name
	f.Body = name
}

// SetTitle overrides the title role only.
func (f *FontConfig) SetTitle(name string) { f.Title = name }

// SetHeaders overrides the headers role only.
func (f *FontConfig) SetHeaders(name string) { f.Headers = name }

// SetBody overrides the body role only.
func (f *FontConfig) SetBody(name string) { f.Body = name }
