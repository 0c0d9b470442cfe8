// internal/app/features/postapi/types.go
package postapi

type addPostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Location    string `json:"location,omitempty"`
	Quantity    string `json:"quantity,omitempty"`
}

type updatePostRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Location    *string `json:"location,omitempty"`
	Quantity    *string `json:"quantity,omitempty"`
}

type switchVoteRequest struct {
	ID string `json:"id"`
}

type mailRequest struct {
	FromMail string `json:"frommail"`
	Password string `json:"password"`
	ToMail   string `json:"tomail"`
	Subject  string `json:"Subject"`
	Body     string `json:"Body"`
}

type mailResponse struct {
	Msg string `json:"msg"`
}
