package requests

type CreateTherapist struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=100"`
	Phone string `json:"phone" validate:"required,max=20"`
}
