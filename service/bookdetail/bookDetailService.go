// Package bookdetail owns all state for one book's detail page: the
// book record, the review list and half-star rating, the caller's
// review/checkout flags and active loan count. Five retrievals run
// independently and settle into one view model; checkout and review
// submission are gated on that view and refresh only the slice they
// invalidate.
package bookdetail

import (
	"context"
	"log/slog"
	"sync"

	"librarybff/auth"
	"librarybff/model"
	"librarybff/repository/catalog"
)

type Repo interface {
	BookByID(ctx context.Context, id int64) (*model.Book, error)
	ReviewsByBook(ctx context.Context, bookID int64, page, size int) (*catalog.ReviewPage, error)
	UserHasReviewed(ctx context.Context, bookID int64, token string) (bool, error)
	UserLoanCount(ctx context.Context, token string) (int, error)
	UserHasCheckedOut(ctx context.Context, bookID int64, token string) (bool, error)
	Checkout(ctx context.Context, bookID int64, token string) error
	SubmitReview(ctx context.Context, bookID int64, rating int, text, token string) error
}

// View is the detail page's view model. The *Known flags separate
// "not fetched yet" from a real false/zero; consumers must not read an
// unknown slice as a fact.
type View struct {
	Book    *model.Book    `json:"book,omitempty"`
	Reviews []model.Review `json:"reviews"`

	Rating       float64 `json:"rating"`
	ReviewsKnown bool    `json:"reviewsKnown"`

	ReviewLeft      bool `json:"reviewLeft"`
	ReviewLeftKnown bool `json:"reviewLeftKnown"`

	CheckedOut      bool `json:"checkedOut"`
	CheckedOutKnown bool `json:"checkedOutKnown"`

	LoanCount      int  `json:"loanCount"`
	LoanCountKnown bool `json:"loanCountKnown"`

	// Loading covers only the initial book retrieval; the page is
	// renderable as soon as the book record resolves.
	Loading bool `json:"loading"`

	// PageErr replaces the whole page, BannerErr flags a failed
	// secondary slice, ActionErr sits next to the failed action.
	PageErr   string `json:"pageError,omitempty"`
	BannerErr string `json:"bannerError,omitempty"`
	ActionErr string `json:"actionError,omitempty"`
}

type Orchestrator struct {
	repo        Repo
	tokens      auth.TokenSource
	loanCeiling int
	log         *slog.Logger

	mu     sync.Mutex
	wg     sync.WaitGroup
	epoch  uint64
	bookID int64
	view   View
	halted bool
}

func New(r Repo, ts auth.TokenSource, loanCeiling int, log *slog.Logger) *Orchestrator {
	return &Orchestrator{repo: r, tokens: ts, loanCeiling: loanCeiling, log: log}
}

// Load starts a page view for bookID. The five retrievals are issued
// concurrently; each resolves into its own slice of the view model.
// Calling Load again supersedes any still-pending results of the
// previous call.
func (o *Orchestrator) Load(ctx context.Context, bookID int64) error {
	if bookID <= 0 {
		return errOf(ErrNoBookID)
	}

	o.mu.Lock()
	o.epoch++
	e := o.epoch
	o.bookID = bookID
	o.view = View{Loading: true}
	o.halted = false
	o.mu.Unlock()

	o.spawn(func() { o.fetchBook(ctx, e, bookID) })
	o.spawn(func() { o.fetchReviews(ctx, e, bookID) })
	if o.tokens.IsAuthenticated() {
		o.spawn(func() { o.fetchReviewLeft(ctx, e, bookID) })
		o.spawn(func() { o.fetchLoanCount(ctx, e) })
		o.spawn(func() { o.fetchCheckedOut(ctx, e, bookID) })
	}
	return nil
}

// Wait blocks until all in-flight retrievals have settled.
func (o *Orchestrator) Wait() { o.wg.Wait() }

// View returns a snapshot of the current view model.
func (o *Orchestrator) View() View {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.view
}

// Checkout asks the server to record a loan for the current user.
// Client-side gates reject before any request is sent; the server
// stays the source of truth for double-checkout prevention.
func (o *Orchestrator) Checkout(ctx context.Context) error {
	o.mu.Lock()
	if o.halted {
		o.mu.Unlock()
		return errOf(ErrPageUnavailable)
	}
	if o.view.Book == nil {
		o.mu.Unlock()
		return errOf(ErrBookNotLoaded)
	}
	e := o.epoch
	bookID := o.bookID
	checkedOut := o.view.CheckedOutKnown && o.view.CheckedOut
	atCeiling := o.view.LoanCountKnown && o.view.LoanCount >= o.loanCeiling
	o.mu.Unlock()

	if !o.tokens.IsAuthenticated() {
		return errOf(ErrNotSignedIn)
	}
	if checkedOut {
		return errOf(ErrAlreadyCheckedOut)
	}
	if atCeiling {
		return errOf(ErrLoanLimit)
	}

	tok, err := o.tokens.Token(ctx)
	if err != nil {
		return err
	}
	if err := o.repo.Checkout(ctx, bookID, tok); err != nil {
		o.apply(e, func(v *View) { v.ActionErr = err.Error() })
		return err
	}

	applied := o.apply(e, func(v *View) {
		v.CheckedOut = true
		v.CheckedOutKnown = true
		v.ActionErr = ""
	})
	// The loan count depends on checkout state; refresh it only now
	// that the checkout response has been observed.
	if applied {
		o.spawn(func() { o.fetchLoanCount(ctx, e) })
	}
	return nil
}

// SubmitReview submits one review for the current book. At most one
// review per user per book is enforced server-side; the gate here only
// mirrors it.
func (o *Orchestrator) SubmitReview(ctx context.Context, rating int, text string) error {
	o.mu.Lock()
	if o.halted {
		o.mu.Unlock()
		return errOf(ErrPageUnavailable)
	}
	if o.view.Book == nil {
		o.mu.Unlock()
		return errOf(ErrBookNotLoaded)
	}
	e := o.epoch
	bookID := o.bookID
	reviewLeft := o.view.ReviewLeftKnown && o.view.ReviewLeft
	o.mu.Unlock()

	if !o.tokens.IsAuthenticated() {
		return errOf(ErrNotSignedIn)
	}
	if rating < 1 || rating > 5 {
		return errOf(ErrBadRating)
	}
	if reviewLeft {
		return errOf(ErrAlreadyReviewed)
	}

	tok, err := o.tokens.Token(ctx)
	if err != nil {
		return err
	}
	if err := o.repo.SubmitReview(ctx, bookID, rating, text, tok); err != nil {
		o.apply(e, func(v *View) { v.ActionErr = err.Error() })
		return err
	}

	applied := o.apply(e, func(v *View) {
		v.ReviewLeft = true
		v.ReviewLeftKnown = true
		v.ActionErr = ""
	})
	// A new review invalidates the review list and the aggregate.
	if applied {
		o.spawn(func() { o.fetchReviews(ctx, e, bookID) })
	}
	return nil
}

// ----- retrieval tasks -----

func (o *Orchestrator) fetchBook(ctx context.Context, epoch uint64, bookID int64) {
	b, err := o.repo.BookByID(ctx, bookID)
	if err != nil {
		o.fail(epoch, err)
		return
	}
	o.apply(epoch, func(v *View) {
		v.Book = b
		v.Loading = false
	})
}

func (o *Orchestrator) fetchReviews(ctx context.Context, epoch uint64, bookID int64) {
	page, err := o.repo.ReviewsByBook(ctx, bookID, 0, 0)
	if err != nil {
		o.banner(epoch, err)
		return
	}
	rating := model.HalfStarAverage(page.Reviews)
	o.apply(epoch, func(v *View) {
		v.Reviews = page.Reviews
		v.Rating = rating
		v.ReviewsKnown = true
	})
}

func (o *Orchestrator) fetchReviewLeft(ctx context.Context, epoch uint64, bookID int64) {
	tok, ok := o.credential(ctx, epoch)
	if !ok {
		return
	}
	left, err := o.repo.UserHasReviewed(ctx, bookID, tok)
	if err != nil {
		o.banner(epoch, err)
		return
	}
	o.apply(epoch, func(v *View) {
		v.ReviewLeft = left
		v.ReviewLeftKnown = true
	})
}

func (o *Orchestrator) fetchLoanCount(ctx context.Context, epoch uint64) {
	tok, ok := o.credential(ctx, epoch)
	if !ok {
		return
	}
	n, err := o.repo.UserLoanCount(ctx, tok)
	if err != nil {
		o.banner(epoch, err)
		return
	}
	o.apply(epoch, func(v *View) {
		v.LoanCount = n
		v.LoanCountKnown = true
	})
}

func (o *Orchestrator) fetchCheckedOut(ctx context.Context, epoch uint64, bookID int64) {
	tok, ok := o.credential(ctx, epoch)
	if !ok {
		return
	}
	out, err := o.repo.UserHasCheckedOut(ctx, bookID, tok)
	if err != nil {
		o.banner(epoch, err)
		return
	}
	o.apply(epoch, func(v *View) {
		v.CheckedOut = out
		v.CheckedOutKnown = true
	})
}

// ----- view model plumbing -----

func (o *Orchestrator) spawn(f func()) {
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		f()
	}()
}

// apply mutates the view model unless the result is stale (a newer
// Load superseded the epoch) or the page has already failed.
func (o *Orchestrator) apply(epoch uint64, mutate func(*View)) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if epoch != o.epoch || o.halted {
		return false
	}
	mutate(&o.view)
	return true
}

// fail records a page-level error; the page instance stops applying
// any further results.
func (o *Orchestrator) fail(epoch uint64, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if epoch != o.epoch || o.halted {
		return
	}
	o.view.Loading = false
	o.view.PageErr = err.Error()
	o.halted = true
	o.log.Error("book detail page failed", "book_id", o.bookID, "err", err)
}

// banner records a secondary retrieval failure without blocking the
// slices that already loaded.
func (o *Orchestrator) banner(epoch uint64, err error) {
	ok := o.apply(epoch, func(v *View) { v.BannerErr = err.Error() })
	if ok {
		o.log.Warn("book detail slice failed", "err", err)
	}
}

func (o *Orchestrator) credential(ctx context.Context, epoch uint64) (string, bool) {
	tok, err := o.tokens.Token(ctx)
	if err != nil {
		o.banner(epoch, err)
		return "", false
	}
	return tok, true
}
