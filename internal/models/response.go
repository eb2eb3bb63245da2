package models

import "github.com/gofiber/fiber/v2"

// PageInfo points at an adjacent feed page.
type PageInfo struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pagination carries next/prev page pointers; each is present only when more
// data exists in that direction.
type Pagination struct {
	Next *PageInfo `json:"next,omitempty"`
	Prev *PageInfo `json:"prev,omitempty"`
}

// BuildPagination computes the pagination descriptor for a page/limit slice
// over total matching records.
func BuildPagination(page, limit int, total int64) Pagination {
	var p Pagination
	if int64(page*limit) < total {
		p.Next = &PageInfo{Page: page + 1, Limit: limit}
	}
	if page > 1 {
		p.Prev = &PageInfo{Page: page - 1, Limit: limit}
	}
	return p
}

// Respond writes the standard success envelope.
func Respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// RespondCount writes the success envelope with a count field.
func RespondCount(c *fiber.Ctx, data interface{}, count int) error {
	return c.JSON(fiber.Map{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

// RespondPage writes the success envelope with count and pagination fields.
func RespondPage(c *fiber.Ctx, data interface{}, count int, pagination Pagination) error {
	return c.JSON(fiber.Map{
		"success":    true,
		"count":      count,
		"pagination": pagination,
		"data":       data,
	})
}
