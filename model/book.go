package model

// Book is the catalog record for one title. It is immutable for the
// lifetime of a page view; a new page view re-fetches it.
type Book struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Description     string `json:"description"`
	Copies          int    `json:"copies"`
	CopiesAvailable int    `json:"copiesAvailable"`
	Category        string `json:"category"`
	Img             string `json:"img,omitempty"`
}
