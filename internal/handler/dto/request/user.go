package request

type UpsertUserRequest struct {
	Name string `json:"name" binding:"required"`
}
