package dto

// NamedItemRequest creates or renames a simple catalog entry (brand, unit
// size, expense category).
type NamedItemRequest struct {
	Name string `json:"name" binding:"required"`
}

// NamedItemResponse is the API shape of a simple catalog entry.
type NamedItemResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
