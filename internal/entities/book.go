package entities

// Book is a single catalog record. The JSON tags are shared by the REST API
// and the persisted data file.
type Book struct {
	ID            string `json:"id"`
	ISBN          string `json:"isbn"` // 13-digit ISBN, stored without hyphens
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre"`
	YearPublished int    `json:"yearPublished"`
}

// BookInput carries the caller-supplied fields of a book. The store assigns
// the ID; callers never do.
type BookInput struct {
	ISBN          string `json:"isbn"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre"`
	YearPublished int    `json:"yearPublished"`
}
