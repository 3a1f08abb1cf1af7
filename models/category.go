package models

// Category is shared across all users; ordinary users only read it.
type Category struct {
	ID   int    `json:"category_id"`
	Name string `json:"category_name"`
}
