package api

import "github.com/gofiber/fiber/v2"

// Every endpoint, success or failure, answers with the same envelope so the
// frontend can branch on a single boolean.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func OK(data interface{}, message string) Response {
	return Response{Success: true, Message: message, Data: data}
}

func List(data interface{}, total int64, page, limit int) Response {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Response{
		Success: true,
		Message: "Success",
		Data:    data,
		Pagination: &Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	}
}

func Error(message string) Response {
	return Response{Success: false, Message: message, Data: nil}
}

// PageParams reads page/limit query parameters with the same clamping rules
// the old API used: page >= 1, 1 <= limit <= maxLimit.
func PageParams(c *fiber.Ctx, defaultLimit, maxLimit int) (page, limit, offset int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("limit", defaultLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit, (page - 1) * limit
}
