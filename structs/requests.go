package structs

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,max=15"`
	Message string `json:"message" validate:"required"`
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"max=100"`
}

type AnnouncementRequest struct {
	Subject string `json:"subject" validate:"required,max=150"`
	Body    string `json:"body" validate:"required"`
}

type PostRequest struct {
	Title     string `json:"title" validate:"required,max=150"`
	Slug      string `json:"slug" validate:"required,max=150"`
	Body      string `json:"body" validate:"required"`
	Published bool   `json:"published"`
}
