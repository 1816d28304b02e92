package catalog

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"librarybff/model"
	"librarybff/util/httpx"
)

var codec = jsoniter.ConfigFastest

type httpRepo struct {
	baseURL string
	client  *http.Client
}

// NewHTTP builds a Repo against the given catalog API base URL.
func NewHTTP(baseURL string) Repo {
	return &httpRepo{baseURL: strings.TrimRight(baseURL, "/"), client: httpx.Client()}
}

// Spring Data REST collection shape: items under _embedded, totals
// under page.
type reviewPageWire struct {
	Embedded struct {
		Reviews []model.Review `json:"reviews"`
	} `json:"_embedded"`
	Page pageWire `json:"page"`
}

type messagePageWire struct {
	Embedded struct {
		Messages []model.Message `json:"messages"`
	} `json:"_embedded"`
	Page pageWire `json:"page"`
}

type pageWire struct {
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

func (r *httpRepo) BookByID(ctx context.Context, id int64) (*model.Book, error) {
	var b model.Book
	err := r.call(ctx, http.MethodGet, fmt.Sprintf("/api/books/%d", id), nil, "", nil, &b)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *httpRepo) ReviewsByBook(ctx context.Context, bookID int64, page, size int) (*ReviewPage, error) {
	q := url.Values{"bookId": {strconv.FormatInt(bookID, 10)}}
	if size > 0 {
		q.Set("page", strconv.Itoa(page))
		q.Set("size", strconv.Itoa(size))
	}
	var w reviewPageWire
	if err := r.call(ctx, http.MethodGet, "/api/reviews/search/findByBookId", q, "", nil, &w); err != nil {
		return nil, err
	}
	return &ReviewPage{
		Reviews:    w.Embedded.Reviews,
		TotalItems: w.Page.TotalElements,
		TotalPages: w.Page.TotalPages,
	}, nil
}

func (r *httpRepo) UserHasReviewed(ctx context.Context, bookID int64, token string) (bool, error) {
	q := url.Values{"bookId": {strconv.FormatInt(bookID, 10)}}
	var left bool
	err := r.call(ctx, http.MethodGet, "/api/reviews/secure/user/book", q, token, nil, &left)
	return left, err
}

func (r *httpRepo) UserLoanCount(ctx context.Context, token string) (int, error) {
	var n int
	err := r.call(ctx, http.MethodGet, "/api/books/secure/currentloans/count", nil, token, nil, &n)
	return n, err
}

func (r *httpRepo) UserHasCheckedOut(ctx context.Context, bookID int64, token string) (bool, error) {
	q := url.Values{"bookId": {strconv.FormatInt(bookID, 10)}}
	var out bool
	err := r.call(ctx, http.MethodGet, "/api/books/secure/ischeckedout/byuser", q, token, nil, &out)
	return out, err
}

func (r *httpRepo) Checkout(ctx context.Context, bookID int64, token string) error {
	q := url.Values{"bookId": {strconv.FormatInt(bookID, 10)}}
	return r.call(ctx, http.MethodPut, "/api/books/secure/checkout", q, token, nil, nil)
}

func (r *httpRepo) SubmitReview(ctx context.Context, bookID int64, rating int, text, token string) error {
	body := map[string]any{
		"rating":            rating,
		"bookId":            bookID,
		"reviewDescription": text,
	}
	return r.call(ctx, http.MethodPost, "/api/reviews/secure", nil, token, body, nil)
}

func (r *httpRepo) AddBook(ctx context.Context, b model.Book, token string) error {
	body := map[string]any{
		"title":           b.Title,
		"author":          b.Author,
		"description":     b.Description,
		"copies":          b.Copies,
		"copiesAvailable": b.CopiesAvailable,
		"category":        b.Category,
		"img":             b.Img,
	}
	return r.call(ctx, http.MethodPost, "/api/admin/secure/add/book", nil, token, body, nil)
}

func (r *httpRepo) IncreaseQuantity(ctx context.Context, bookID int64, token string) error {
	q := url.Values{"bookId": {strconv.FormatInt(bookID, 10)}}
	return r.call(ctx, http.MethodPut, "/api/admin/secure/increase/book/quantity", q, token, nil, nil)
}

func (r *httpRepo) DecreaseQuantity(ctx context.Context, bookID int64, token string) error {
	q := url.Values{"bookId": {strconv.FormatInt(bookID, 10)}}
	return r.call(ctx, http.MethodPut, "/api/admin/secure/decrease/book/quantity", q, token, nil, nil)
}

func (r *httpRepo) OpenMessages(ctx context.Context, page, size int, token string) (*MessagePage, error) {
	q := url.Values{
		"closed": {"false"},
		"page":   {strconv.Itoa(page)},
		"size":   {strconv.Itoa(size)},
	}
	return r.messagePage(ctx, "/api/messages/search/findByClosed", q, token)
}

func (r *httpRepo) MessagesByUser(ctx context.Context, email string, page, size int, token string) (*MessagePage, error) {
	q := url.Values{
		"userEmail": {email},
		"page":      {strconv.Itoa(page)},
		"size":      {strconv.Itoa(size)},
	}
	return r.messagePage(ctx, "/api/messages/search/findByUserEmail", q, token)
}

func (r *httpRepo) SubmitQuestion(ctx context.Context, title, question, token string) error {
	body := map[string]any{"title": title, "question": question}
	return r.call(ctx, http.MethodPost, "/api/messages/secure/add/message", nil, token, body, nil)
}

func (r *httpRepo) AnswerMessage(ctx context.Context, id int64, response, token string) error {
	body := map[string]any{"id": id, "response": response}
	return r.call(ctx, http.MethodPut, "/api/messages/secure/admin/message", nil, token, body, nil)
}

func (r *httpRepo) messagePage(ctx context.Context, path string, q url.Values, token string) (*MessagePage, error) {
	var w messagePageWire
	if err := r.call(ctx, http.MethodGet, path, q, token, nil, &w); err != nil {
		return nil, err
	}
	return &MessagePage{
		Messages:   w.Embedded.Messages,
		TotalItems: w.Page.TotalElements,
		TotalPages: w.Page.TotalPages,
	}, nil
}

// call issues one request and decodes the response into out (skipped
// when out is nil). 404 maps to ErrNotFound; other non-2xx statuses
// are reduced to a diagnostic string.
func (r *httpRepo) call(ctx context.Context, method, path string, q url.Values, token string, body any, out any) error {
	u := r.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		b, err := codec.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("catalog: %s %s failed: %s", method, path, resp.Status)
	}
	if out == nil {
		return nil
	}
	return codec.NewDecoder(resp.Body).Decode(out)
}
