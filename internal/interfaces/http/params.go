package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/medagenda/clinica-api/internal/application/dto"
)

// pageFromQuery lee limit/offset del query string con defaults y tope de 100.
func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	page.DefaultPage()
	if page.Limit > 100 {
		page.Limit = 100
	}
	return page
}

// rangeFromQuery lee from/to del query string. Acepta RFC3339 o fecha simple
// (YYYY-MM-DD); una fecha simple en "to" cubre hasta el final de ese día.
func rangeFromQuery(c *fiber.Ctx) (time.Time, time.Time, error) {
	from, _, err := parseQueryTime(c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, dateOnly, err := parseQueryTime(c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if dateOnly {
		to = to.Add(24*time.Hour - time.Second)
	}
	return from, to, nil
}

func parseQueryTime(s string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(time.RFC3339, s); err == nil {
		return t, false, nil
	}
	t, err = time.Parse("2006-01-02", s)
	return t, true, err
}
