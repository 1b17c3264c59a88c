package dto

type CreateAppUserRequest struct {
	Username string   `json:"username" validate:"required,max=50"`
	Role     string   `json:"role"`
	Provider *string  `json:"provider"`
	Image    *string  `json:"image"`
	Tags     []string `json:"tags"`
}

type UpdateUserRequest struct {
	Id       NumericID `json:"id" validate:"required"`
	Username string    `json:"username" validate:"required,max=50"`
	Role     string    `json:"role"`
	Image    *string   `json:"image"`
	Provider *string   `json:"provider"`
}

type DeleteUserRequest struct {
	Id NumericID `json:"id" validate:"required"`
}

// AppUserPayload is the wire shape of a user. CreatedAt is epoch
// milliseconds, unlike message timestamps which are ISO strings.
type AppUserPayload struct {
	Id        string   `json:"id"`
	Username  string   `json:"username"`
	CreatedAt int64    `json:"createdAt"`
	Role      string   `json:"role"`
	Image     *string  `json:"image"`
	Provider  *string  `json:"provider"`
	Tags      []string `json:"tags"`
}
