package response_models

type UserResponse struct {
	ID        string `json:"id"`
	AlienID   string `json:"alienId"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
