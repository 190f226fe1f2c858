package hello

import (
	"bytes"
	"context"
	"net/http"

	"github.com/helloproject/hello/core"
)

// pageHandler serves the HelloProject page. Every request mounts a fresh
// view, which performs the page's one API fetch. The rendered page is never
// cached because it depends on that fetch.
type pageHandler struct {
	config   *core.Config
	renderer *core.Renderer
	fetcher  core.Fetcher
	registry *core.Registry
}

func (p *pageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	view := core.NewView(p.fetcher)
	view.Debug = p.config.DebugLogs

	if p.config.WaitForAPI {
		view.Mount(r.Context())
		<-view.Done()
		state := view.State()
		view.Unmount()

		if core.PhaseOf(state) == core.PhasePending {
			return
		}
		p.write(w, state, "")
		return
	}

	id := p.registry.Add(view)
	view.Mount(context.Background())

	state := view.State()
	if core.PhaseOf(state) != core.PhasePending {
		p.registry.Remove(id)
	}
	p.write(w, state, id)
}

func (p *pageHandler) write(w http.ResponseWriter, state core.State, viewID string) {
	var buf bytes.Buffer
	if err := p.renderer.RenderLive(&buf, state, viewID); err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if p.config.DebugHeaders {
		w.Header().Set("X-Hello-View", string(core.PhaseOf(state)))
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}
