package entities

// PageRequest asks for one page of a list. Token is the NextPageToken of the
// previous page, empty for the first one.
type PageRequest struct {
	Size  int
	Token string
}

type Page[T any] struct {
	Items         []T    `json:"items"`
	NextPageToken string `json:"next_page_token,omitempty"`
}
