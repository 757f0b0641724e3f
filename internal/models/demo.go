package models

// DemoFields are the raw values of the demo request form.
// The email only gets the input-level check, there is no structural re-check.
type DemoFields struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required,html5email"`
	Status  string `form:"status" validate:"required,oneof=teacher student admin"`
	Message string `form:"message" validate:"required"`
}

// DemoRequest is the persisted demo request
type DemoRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Status    Role   `json:"status"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}
