package model

// Category is one browse category.
type Category struct {
	Href  string  `json:"href"`
	Icons []Image `json:"icons"`
	ID    string  `json:"id"`
	Name  string  `json:"name"`
}

// Categories is the envelope of the browse-categories endpoint.
type Categories struct {
	Categories Page[Category] `json:"categories"`
}
