// Package reviewpage keeps one page of a book's reviews plus its
// pagination metadata consistent with the active page index.
package reviewpage

import (
	"context"
	"errors"
	"sync"

	"librarybff/model"
	"librarybff/repository/catalog"
)

type ErrCode string

const (
	ErrNoBookID        ErrCode = "NO_BOOK_ID"
	ErrBadPage         ErrCode = "BAD_PAGE"
	ErrPageUnavailable ErrCode = "PAGE_UNAVAILABLE"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func errOf(c ErrCode) error        { return codedError{code: c} }

// Code extracts the error code, or "" for uncoded errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Repo interface {
	ReviewsByBook(ctx context.Context, bookID int64, page, size int) (*catalog.ReviewPage, error)
}

type Orchestrator struct {
	repo     Repo
	pageSize int

	mu      sync.Mutex
	epoch   uint64
	bookID  int64
	window  model.PageWindow
	reviews []model.Review
	pageErr string
}

func New(r Repo, bookID int64, pageSize int) *Orchestrator {
	return &Orchestrator{repo: r, bookID: bookID, pageSize: pageSize}
}

// Load fetches page pageIndex (1-based; the wire is 0-based) and
// replaces the review list and server-reported totals. A failure sets
// a page-level error and halts this instance; there is no retry and no
// fallback to a previous page's data.
func (o *Orchestrator) Load(ctx context.Context, pageIndex int) error {
	o.mu.Lock()
	if o.bookID <= 0 {
		o.mu.Unlock()
		return errOf(ErrNoBookID)
	}
	if o.pageErr != "" {
		o.mu.Unlock()
		return errOf(ErrPageUnavailable)
	}
	if pageIndex < 1 {
		o.mu.Unlock()
		return errOf(ErrBadPage)
	}
	o.epoch++
	e := o.epoch
	bookID := o.bookID
	size := o.pageSize
	o.mu.Unlock()

	res, err := o.repo.ReviewsByBook(ctx, bookID, pageIndex-1, size)

	o.mu.Lock()
	defer o.mu.Unlock()
	if e != o.epoch {
		// Superseded by a newer load; discard silently.
		return nil
	}
	if err != nil {
		o.pageErr = err.Error()
		return err
	}
	o.reviews = res.Reviews
	o.window = model.PageWindow{
		PageIndex:  pageIndex,
		PageSize:   size,
		TotalItems: res.TotalItems,
		TotalPages: res.TotalPages,
	}
	return nil
}

// GoToPage re-runs Load for page n. Precondition: 1 <= n <= totalPages
// of the last loaded window.
func (o *Orchestrator) GoToPage(ctx context.Context, n int) error {
	o.mu.Lock()
	total := o.window.TotalPages
	o.mu.Unlock()
	if n < 1 || n > total {
		return errOf(ErrBadPage)
	}
	return o.Load(ctx, n)
}

// SwitchBook retargets the orchestrator to another book and reloads
// from page 1. Results still in flight for the previous book are
// discarded on arrival.
func (o *Orchestrator) SwitchBook(ctx context.Context, bookID int64) error {
	o.mu.Lock()
	o.epoch++
	o.bookID = bookID
	o.reviews = nil
	o.window = model.PageWindow{}
	o.pageErr = ""
	o.mu.Unlock()
	return o.Load(ctx, 1)
}

func (o *Orchestrator) Reviews() []model.Review {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.reviews
}

func (o *Orchestrator) Window() model.PageWindow {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.window
}

func (o *Orchestrator) Err() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pageErr
}
