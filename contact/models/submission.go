package models

// Submission is one contact form post. It lives for a single request.
type Submission struct {
	Name      string `json:"name" schema:"name"`
	Email     string `json:"email" schema:"email"`
	Phone     string `json:"phone" schema:"phone"`
	Subject   string `json:"temat_wybrany" schema:"temat_wybrany"`
	Message   string `json:"message" schema:"message"`
	Recaptcha string `json:"g-recaptcha-response" schema:"g-recaptcha-response"`
}

// SuccessResponse is returned once the provider accepted the message.
type SuccessResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
}
