package model

import "time"

// Review is created upstream by the review-submission action; this
// client never mutates or deletes one.
type Review struct {
	ID                int64     `json:"id"`
	UserEmail         string    `json:"userEmail"`
	Date              time.Time `json:"date"`
	Rating            int       `json:"rating"`
	BookID            int64     `json:"bookId"`
	ReviewDescription string    `json:"reviewDescription"`
}
