package core

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	ViewStreamPath = "/__hello_view"
	ReloadPath     = "/__hello_reload"
)

const (
	PageTitle      = "HelloProject"
	PageHeadline   = "Hello World! It Works! 🚀"
	MessageCaption = "From HelloProject Backend"
)

var Features = []string{
	"✅ React Frontend",
	"✅ Django Ninja Backend",
	"✅ Docker Containerization",
	"✅ AWS Deployment Ready",
	"✅ Nginx Reverse Proxy",
}

var TechStack = []string{
	"React",
	"Django Ninja",
	"Docker",
	"AWS",
	"Nginx",
}

type pageData struct {
	Title          string
	Headline       string
	MessageCaption string
	Phase          string
	Message        string
	Error          string
	Features       []string
	TechStack      []string
	ViewID         string
	Fallback       string
	StreamPath     string
	LiveReload     bool
	ReloadPath     string
}

// Renderer turns a view state into markup. Output depends only on the state
// passed in and the renderer's own settings.
type Renderer struct {
	tmpl       *template.Template
	liveReload bool
}

// NewRenderer parses the embedded templates. Assets are minified into
// config.OutputDir only when the cache is enabled.
func NewRenderer(env string, config *Config) (*Renderer, error) {
	cacheDir := ""
	if config.CacheEnabled {
		cacheDir = config.OutputDir
	}

	tmpl, err := template.New("hello").
		Funcs(TemplateFuncs(env, config.PublicDir, cacheDir)).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Renderer{
		tmpl:       tmpl,
		liveReload: env == "dev",
	}, nil
}

// Render writes the full page for s.
func (r *Renderer) Render(w io.Writer, s State) error {
	return r.execute(w, "page", r.data(s, ""))
}

// RenderLive writes the full page for s and, while s is pending, the hook
// that subscribes the browser to the view with the given id. If the stream
// closes before a section arrives, the hook swaps in the failure section.
func (r *Renderer) RenderLive(w io.Writer, s State, viewID string) error {
	if PhaseOf(s) != PhasePending || viewID == "" {
		return r.execute(w, "page", r.data(s, ""))
	}

	var fallback bytes.Buffer
	if err := r.RenderSection(&fallback, failed()); err != nil {
		return err
	}

	data := r.data(s, viewID)
	data.Fallback = fallback.String()
	return r.execute(w, "page", data)
}

// RenderSection writes only the API response block for s.
func (r *Renderer) RenderSection(w io.Writer, s State) error {
	return r.execute(w, "api-section", r.data(s, ""))
}

func (r *Renderer) execute(w io.Writer, name string, data pageData) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func (r *Renderer) data(s State, viewID string) pageData {
	data := pageData{
		Title:          PageTitle,
		Headline:       PageHeadline,
		MessageCaption: MessageCaption,
		Phase:          string(PhaseOf(s)),
		Features:       Features,
		TechStack:      TechStack,
		ViewID:         viewID,
		StreamPath:     ViewStreamPath,
		LiveReload:     r.liveReload,
		ReloadPath:     ReloadPath,
	}

	switch st := s.(type) {
	case Success:
		data.Message = st.Message
	case Failure:
		data.Error = st.Text
	}

	return data
}
