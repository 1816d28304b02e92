package bookdetail

import "errors"

// errors used by controllers

type ErrCode string

const (
	ErrNoBookID          ErrCode = "NO_BOOK_ID"
	ErrBookNotLoaded     ErrCode = "BOOK_NOT_LOADED"
	ErrNotSignedIn       ErrCode = "NOT_SIGNED_IN"
	ErrLoanLimit         ErrCode = "LOAN_LIMIT"
	ErrAlreadyCheckedOut ErrCode = "ALREADY_CHECKED_OUT"
	ErrAlreadyReviewed   ErrCode = "ALREADY_REVIEWED"
	ErrBadRating         ErrCode = "BAD_RATING"
	ErrPageUnavailable   ErrCode = "PAGE_UNAVAILABLE"
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
