package request

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
}

type CreateTodoRequest struct {
	Username       string `json:"username" validate:"required"`
	Title          string `json:"title" validate:"required"`
	TargetDatetime string `json:"target_datetime" validate:"required"`
}

type SetStatusRequest struct {
	Status string `json:"status"`
}
