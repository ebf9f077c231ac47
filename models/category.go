package models

// Category is both the menu taxonomy and the controlled vocabulary for
// Worker.Profession during partner registration.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// CategoryRequest represents the request structure for creating/updating categories
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon"`
}
