// Package view renders the console's HTML. Templates are embedded and parsed
// once; each page is its own set cloned from the shared layout and partials.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/*.html
var files embed.FS

// shared are parsed into every page set.
var shared = []string{"templates/layout.html", "templates/partials.html"}

// Engine implements fiber.Views.
type Engine struct {
	funcs template.FuncMap

	mu    sync.RWMutex
	pages map[string]*template.Template
}

var _ fiber.Views = (*Engine)(nil)

// New creates an engine. assetBase prefixes stored upload paths; loc is the
// display timezone of dates.
func New(assetBase string, loc *time.Location) *Engine {
	return &Engine{funcs: funcMap(assetBase, loc)}
}

// Load parses every page template.
func (e *Engine) Load() error {
	base, err := template.New("base").Funcs(e.funcs).ParseFS(files, shared...)
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}

	names, err := fs.Glob(files, "templates/*.html")
	if err != nil {
		return err
	}

	pages := make(map[string]*template.Template, len(names))
	for _, n := range names {
		if isShared(n) {
			continue
		}
		set, err := base.Clone()
		if err != nil {
			return err
		}
		if _, err := set.ParseFS(files, n); err != nil {
			return fmt.Errorf("parse %s: %w", n, err)
		}
		pages[strings.TrimSuffix(path.Base(n), ".html")] = set
	}

	e.mu.Lock()
	e.pages = pages
	e.mu.Unlock()
	return nil
}

// Render executes page name wrapped in layout ("layout" unless given).
func (e *Engine) Render(w io.Writer, name string, binding any, layout ...string) error {
	e.mu.RLock()
	loaded := e.pages != nil
	e.mu.RUnlock()
	if !loaded {
		if err := e.Load(); err != nil {
			return err
		}
	}

	e.mu.RLock()
	set, ok := e.pages[name]
	e.mu.RUnlock()
	if !ok {
		return fmt.Errorf("view: unknown template %q", name)
	}

	wrapper := "layout"
	if len(layout) > 0 && layout[0] != "" {
		wrapper = layout[0]
	}
	return set.ExecuteTemplate(w, wrapper, binding)
}

func isShared(name string) bool {
	for _, s := range shared {
		if s == name {
			return true
		}
	}
	return false
}

//go:embed static
var static embed.FS

// Static is the stylesheet tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
