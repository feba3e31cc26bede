package response

import "taskboard/internal/core/domain"

// MessageResponse is the wire shape shared by mutation results and errors:
// a single short message, nothing else.
type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	User    domain.IdentityClaim `json:"user"`
}

type CreateTodoResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
