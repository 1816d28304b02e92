package model

// Message is a member question to the library, optionally answered by
// an admin. Closed flips to true once a response is recorded.
type Message struct {
	ID         int64  `json:"id"`
	UserEmail  string `json:"userEmail"`
	Title      string `json:"title"`
	Question   string `json:"question"`
	AdminEmail string `json:"adminEmail,omitempty"`
	Response   string `json:"response,omitempty"`
	Closed     bool   `json:"closed"`
}
