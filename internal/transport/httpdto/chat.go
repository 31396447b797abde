package httpdto

type ChatRequest struct {
	Message string `json:"message"`
	Tool    string `json:"tool"`
	Email   string `json:"email"`
	Plan    string `json:"plan"`
}

type ReplyResponse struct {
	Reply string `json:"reply"`
}

// ImageResponse carries the provider-hosted URL of a generated logo.
type ImageResponse struct {
	Image string `json:"image"`
}
