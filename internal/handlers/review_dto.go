package handlers

type ReviewRequest struct {
	Rating  int    `json:"rating" example:"5"`
	Comment string `json:"comment" example:"Outstanding!"`
}

// ReviewUpdateRequest supports partial updates; omitted fields keep their
// current values.
type ReviewUpdateRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}
