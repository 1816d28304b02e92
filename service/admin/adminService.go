// Package admin wraps the privileged catalog operations: adding books,
// adjusting inventory, and answering member messages. These are plain
// field-to-request mappings; all enforcement happens upstream.
package admin

import (
	"context"
	"errors"

	"librarybff/model"
	"librarybff/repository/catalog"
)

type Repo interface {
	AddBook(ctx context.Context, b model.Book, token string) error
	IncreaseQuantity(ctx context.Context, bookID int64, token string) error
	DecreaseQuantity(ctx context.Context, bookID int64, token string) error
	OpenMessages(ctx context.Context, page, size int, token string) (*catalog.MessagePage, error)
	AnswerMessage(ctx context.Context, id int64, response, token string) error
}

type Service interface {
	AddBook(ctx context.Context, b model.Book, token string) error
	ChangeQuantity(ctx context.Context, bookID int64, increase bool, token string) error
	OpenMessages(ctx context.Context, page, size int, token string) (*catalog.MessagePage, error)
	Answer(ctx context.Context, messageID int64, response, token string) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) AddBook(ctx context.Context, b model.Book, token string) error {
	if b.Title == "" || b.Author == "" || b.Category == "" || b.Copies < 0 {
		return errors.New("invalid payload")
	}
	// A new title starts with every copy on the shelf.
	b.CopiesAvailable = b.Copies
	return s.r.AddBook(ctx, b, token)
}

func (s *service) ChangeQuantity(ctx context.Context, bookID int64, increase bool, token string) error {
	if bookID <= 0 {
		return errors.New("invalid book id")
	}
	if increase {
		return s.r.IncreaseQuantity(ctx, bookID, token)
	}
	return s.r.DecreaseQuantity(ctx, bookID, token)
}

func (s *service) OpenMessages(ctx context.Context, page, size int, token string) (*catalog.MessagePage, error) {
	return s.r.OpenMessages(ctx, page, size, token)
}

func (s *service) Answer(ctx context.Context, messageID int64, response, token string) error {
	if messageID <= 0 || response == "" {
		return errors.New("invalid payload")
	}
	return s.r.AnswerMessage(ctx, messageID, response, token)
}
