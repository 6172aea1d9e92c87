package dto

// CreatedDTO is returned by POST endpoints.
type CreatedDTO struct {
	ID uint64 `json:"id"`
}
