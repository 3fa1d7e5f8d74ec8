package handler

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"karirkit/internal/logging"
	"karirkit/internal/view"
)

// dashboardFanout bounds concurrent count requests to the API.
const dashboardFanout = 4

// Dashboard shows one tile per resource the user can open, with its total.
func Dashboard(shell *Shell, modules []Module, log logging.Logger) fiber.Handler {
	if log == nil {
		log = logging.Nop()
	}
	byKey := make(map[string]Module, len(modules))
	for _, m := range modules {
		byKey[m.Entry().Key] = m
	}

	return func(c *fiber.Ctx) error {
		entries := shell.Visible(c)
		cards := make([]view.DashboardCard, len(entries))
		ctx := c.UserContext()

		var g errgroup.Group
		g.SetLimit(dashboardFanout)
		for i, e := range entries {
			i, e := i, e // per-iteration copies (go directive < 1.22)
			cards[i] = view.DashboardCard{Title: e.Title, Path: e.WebPath}
			m, ok := byKey[e.Key]
			if !ok {
				cards[i].Err = true
				continue
			}
			g.Go(func() error {
				n, err := m.Count(ctx)
				if err != nil {
					log.Warn(ctx, "dashboard count failed", "resource", e.Key, "error", err)
					cards[i].Err = true
					return nil
				}
				cards[i].Total = n
				return nil
			})
		}
		_ = g.Wait()

		return shell.Render(c, fiber.StatusOK, "dashboard", "Beranda", cards)
	}
}
