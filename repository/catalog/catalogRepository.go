// Package catalog is the client for the remote library catalog and
// lending API. All state it reads and writes lives upstream; nothing
// is cached or persisted locally.
package catalog

import (
	"context"
	"errors"

	"librarybff/model"
)

// ErrNotFound is returned when the requested book id is unknown
// upstream. All other failures are plain string-reduced errors.
var ErrNotFound = errors.New("catalog: not found")

// ReviewPage is one server page of reviews plus reported totals.
type ReviewPage struct {
	Reviews    []model.Review
	TotalItems int
	TotalPages int
}

// MessagePage is one server page of member messages plus totals.
type MessagePage struct {
	Messages   []model.Message
	TotalItems int
	TotalPages int
}

type Repo interface {
	BookByID(ctx context.Context, id int64) (*model.Book, error)

	// ReviewsByBook fetches reviews for a book. page is 0-based on the
	// wire; size <= 0 omits paging and returns the server's default
	// window (used by the detail page to compute the aggregate).
	ReviewsByBook(ctx context.Context, bookID int64, page, size int) (*ReviewPage, error)

	UserHasReviewed(ctx context.Context, bookID int64, token string) (bool, error)
	UserLoanCount(ctx context.Context, token string) (int, error)
	UserHasCheckedOut(ctx context.Context, bookID int64, token string) (bool, error)

	Checkout(ctx context.Context, bookID int64, token string) error
	SubmitReview(ctx context.Context, bookID int64, rating int, text, token string) error

	// Admin surface.
	AddBook(ctx context.Context, b model.Book, token string) error
	IncreaseQuantity(ctx context.Context, bookID int64, token string) error
	DecreaseQuantity(ctx context.Context, bookID int64, token string) error
	OpenMessages(ctx context.Context, page, size int, token string) (*MessagePage, error)
	AnswerMessage(ctx context.Context, id int64, response, token string) error

	// Member messages.
	MessagesByUser(ctx context.Context, email string, page, size int, token string) (*MessagePage, error)
	SubmitQuestion(ctx context.Context, title, question, token string) error
}
