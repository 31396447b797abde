package httpdto

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ContactDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ContactResponse struct {
	Success bool         `json:"success"`
	Data    []ContactDTO `json:"data"`
}

type WaitlistRequest struct {
	Email string `json:"email"`
}

type WaitlistResponse struct {
	Success bool `json:"success"`
}
