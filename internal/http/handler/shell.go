package handler

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"karirkit/internal/http/middleware"
	"karirkit/internal/resource"
	"karirkit/internal/view"
)

// groupOrder is the sidebar order of navigation groups.
var groupOrder = []string{resource.GroupSeeker, resource.GroupAdmin}

// Shell wraps pages in the layout chrome: sidebar, current user, flash toast.
type Shell struct {
	entries []resource.Entry
}

func NewShell(entries ...resource.Entry) *Shell {
	return &Shell{entries: entries}
}

// Visible filters out admin-only entries for non-admins.
func (s *Shell) Visible(c *fiber.Ctx) []resource.Entry {
	u := middleware.UserFrom(c)
	admin := u != nil && u.IsAdmin()
	out := make([]resource.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.AdminOnly && !admin {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (s *Shell) nav(c *fiber.Ctx) []view.NavGroup {
	path := c.Path()
	var groups []view.NavGroup
	for _, g := range groupOrder {
		group := view.NavGroup{Title: g}
		for _, e := range s.Visible(c) {
			if e.Group != g {
				continue
			}
			active := path == e.WebPath || strings.HasPrefix(path, e.WebPath+"/")
			group.Items = append(group.Items, view.NavItem{Title: e.Title, Path: e.WebPath, Active: active})
		}
		if len(group.Items) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

func (s *Shell) page(c *fiber.Ctx, title string, data any) view.Page {
	return view.Page{
		Title:     title,
		User:      middleware.UserFrom(c),
		Nav:       s.nav(c),
		Flash:     middleware.FlashFrom(c),
		RequestID: middleware.RequestIDFrom(c),
		Data:      data,
	}
}

// Render writes template name inside the full layout.
func (s *Shell) Render(c *fiber.Ctx, status int, name, title string, data any) error {
	c.Status(status)
	return c.Render(name, s.page(c, title, data))
}

// RenderBare writes template name without the sidebar.
func (s *Shell) RenderBare(c *fiber.Ctx, status int, name, title string, data any) error {
	c.Status(status)
	p := s.page(c, title, data)
	p.Nav = nil
	return c.Render(name, p, "bare")
}

// redirect sends the browser to path after a POST.
func redirect(c *fiber.Ctx, path string) error {
	return c.Redirect(path, fiber.StatusSeeOther)
}

// safeReturn accepts only same-site relative paths, so return and next
// parameters cannot bounce the browser to another host.
func safeReturn(raw, fallback string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return fallback
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host != "" || u.Scheme != "" {
		return fallback
	}
	return raw
}

// formValues returns every submitted value of key, for urlencoded and
// multipart bodies alike.
func formValues(c *fiber.Ctx, key string) []string {
	if mf, err := c.MultipartForm(); err == nil {
		return mf.Value[key]
	}
	var out []string
	for _, v := range c.Request().PostArgs().PeekMulti(key) {
		out = append(out, string(v))
	}
	return out
}

// postValues is the whole urlencoded body.
func postValues(c *fiber.Ctx) url.Values {
	if mf, err := c.MultipartForm(); err == nil {
		return url.Values(mf.Value)
	}
	out := url.Values{}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		out.Add(string(k), string(v))
	})
	return out
}

func queryValues(c *fiber.Ctx) url.Values {
	out := url.Values{}
	c.Request().URI().QueryArgs().VisitAll(func(k, v []byte) {
		out.Add(string(k), string(v))
	})
	return out
}
