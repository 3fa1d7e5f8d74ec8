package model

// Pagination mirrors the pagination block of every list response.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// Page is the list envelope returned by the KarirKit API: {items, pagination}.
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// Entity is implemented by every resource so that lists can reason about row ids.
type Entity interface {
	GetID() string
}

// IDs returns the ids of the given entities in display order.
func IDs[T Entity](items []T) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.GetID())
	}
	return ids
}
