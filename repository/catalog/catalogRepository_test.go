package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"librarybff/model"
	"librarybff/repository/catalog"
)

func TestBookByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/books/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":42,"title":"Domain-Driven Design","author":"Eric Evans","copies":4,"copiesAvailable":2,"category":"software"}`)
	}))
	defer srv.Close()

	repo := catalog.NewHTTP(srv.URL)
	b, err := repo.BookByID(context.Background(), 42)
	require.NoError(t, err)
	require.EqualValues(t, 42, b.ID)
	require.Equal(t, "Domain-Driven Design", b.Title)
	require.Equal(t, 2, b.CopiesAvailable)
}

func TestBookByID_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	repo := catalog.NewHTTP(srv.URL)
	_, err := repo.BookByID(context.Background(), 99)
	require.True(t, errors.Is(err, catalog.ErrNotFound))
}

func TestReviewsByBook_Paged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/reviews/search/findByBookId", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "42", q.Get("bookId"))
		require.Equal(t, "1", q.Get("page"))
		require.Equal(t, "5", q.Get("size"))
		io.WriteString(w, `{
			"_embedded": {"reviews": [
				{"id":6,"userEmail":"a@b.c","rating":4,"bookId":42,"reviewDescription":"solid"},
				{"id":7,"userEmail":"d@e.f","rating":5,"bookId":42,"reviewDescription":"great"}
			]},
			"page": {"totalElements": 7, "totalPages": 2}
		}`)
	}))
	defer srv.Close()

	repo := catalog.NewHTTP(srv.URL)
	page, err := repo.ReviewsByBook(context.Background(), 42, 1, 5)
	require.NoError(t, err)
	require.Len(t, page.Reviews, 2)
	require.Equal(t, 7, page.TotalItems)
	require.Equal(t, 2, page.TotalPages)
	require.Equal(t, "solid", page.Reviews[0].ReviewDescription)
}

func TestReviewsByBook_UnpagedOmitsPaging(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.False(t, q.Has("page"))
		require.False(t, q.Has("size"))
		io.WriteString(w, `{"_embedded":{"reviews":[]},"page":{"totalElements":0,"totalPages":0}}`)
	}))
	defer srv.Close()

	repo := catalog.NewHTTP(srv.URL)
	page, err := repo.ReviewsByBook(context.Background(), 42, 0, 0)
	require.NoError(t, err)
	require.Empty(t, page.Reviews)
}

func TestSecureReadsAttachBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/api/books/secure/currentloans/count":
			io.WriteString(w, `3`)
		case "/api/reviews/secure/user/book":
			io.WriteString(w, `true`)
		case "/api/books/secure/ischeckedout/byuser":
			io.WriteString(w, `false`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	repo := catalog.NewHTTP(srv.URL)
	ctx := context.Background()

	n, err := repo.UserLoanCount(ctx, "tok-123")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	left, err := repo.UserHasReviewed(ctx, 42, "tok-123")
	require.NoError(t, err)
	require.True(t, left)

	out, err := repo.UserHasCheckedOut(ctx, 42, "tok-123")
	require.NoError(t, err)
	require.False(t, out)
}

func TestCheckout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/books/secure/checkout", r.URL.Path)
		require.Equal(t, "42", r.URL.Query().Get("bookId"))
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
	}))
	defer srv.Close()

	repo := catalog.NewHTTP(srv.URL)
	require.NoError(t, repo.Checkout(context.Background(), 42, "tok"))
}

func TestSubmitReview(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/reviews/secure", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			Rating            int    `json:"rating"`
			BookID            int64  `json:"bookId"`
			ReviewDescription string `json:"reviewDescription"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, 5, body.Rating)
		require.EqualValues(t, 42, body.BookID)
		require.Equal(t, "great", body.ReviewDescription)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	repo := catalog.NewHTTP(srv.URL)
	require.NoError(t, repo.SubmitReview(context.Background(), 42, 5, "great", "tok"))
}

func TestAddBook_SendsFullRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/secure/add/book", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "New Title", body["title"])
		require.EqualValues(t, 3, body["copies"])
		require.EqualValues(t, 3, body["copiesAvailable"])
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	repo := catalog.NewHTTP(srv.URL)
	b := model.Book{Title: "New Title", Author: "A", Category: "fiction", Copies: 3, CopiesAvailable: 3}
	require.NoError(t, repo.AddBook(context.Background(), b, "tok"))
}

func TestOpenMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/messages/search/findByClosed", r.URL.Path)
		require.Equal(t, "false", r.URL.Query().Get("closed"))
		io.WriteString(w, `{
			"_embedded": {"messages": [{"id":1,"userEmail":"a@b.c","title":"hours","question":"open sunday?","closed":false}]},
			"page": {"totalElements": 1, "totalPages": 1}
		}`)
	}))
	defer srv.Close()

	repo := catalog.NewHTTP(srv.URL)
	page, err := repo.OpenMessages(context.Background(), 0, 5, "tok")
	require.NoError(t, err)
	require.Len(t, page.Messages, 1)
	require.Equal(t, "hours", page.Messages[0].Title)
}

func TestCall_StatusErrorIsStringReduced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	repo := catalog.NewHTTP(srv.URL)
	err := repo.Checkout(context.Background(), 42, "tok")
	require.Error(t, err)
	require.Contains(t, err.Error(), "503")
}
