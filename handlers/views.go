package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jalexanderII/todo-railway/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var listTemplate = template.Must(template.New("list.html").Funcs(template.FuncMap{
	"fmtTime": func(t time.Time) string { return t.Format("2006-01-02 15:04") },
}).ParseFS(templateFS, "templates/list.html"))

type itemRow struct {
	*models.Item
	Status string
}

type listPage struct {
	Username string
	Items    []itemRow
}

// @Summary Render the caller's list.
// @Description HTML page of the caller's items; anonymous visitors see an empty list.
// @Tags pages
// @Produce html
// @Success 200 "HTML page"
// @Router /todo/ [get]
func ListItemsPage(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		page := listPage{Username: CurrentUsername(c), Items: []itemRow{}}

		if caller := CurrentUserID(c); caller != "" {
			items, err := h.Items.List(c.UserContext(), caller)
			if err != nil {
				return h.itemError(c, err)
			}
			now := time.Now()
			for _, item := range items {
				page.Items = append(page.Items, itemRow{Item: item, Status: item.Status(now)})
			}
		}

		var buf bytes.Buffer
		if err := listTemplate.Execute(&buf, page); err != nil {
			h.L.WithError(err).Error("[ListView] failed to render")
			return fiber.ErrInternalServerError
		}
		c.Type("html", "utf-8")
		return c.Send(buf.Bytes())
	}
}
