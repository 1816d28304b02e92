package reviewpage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"librarybff/model"
	"librarybff/repository/catalog"
	rp "librarybff/service/reviewpage"
)

type repoMock struct {
	reviewsFn func(ctx context.Context, bookID int64, page, size int) (*catalog.ReviewPage, error)
	calls     int
}

func (m *repoMock) ReviewsByBook(ctx context.Context, bookID int64, page, size int) (*catalog.ReviewPage, error) {
	m.calls++
	return m.reviewsFn(ctx, bookID, page, size)
}

func serverPage(ids []int64, totalItems, totalPages int) *catalog.ReviewPage {
	p := &catalog.ReviewPage{TotalItems: totalItems, TotalPages: totalPages}
	for _, id := range ids {
		p.Reviews = append(p.Reviews, model.Review{ID: id, Rating: 4})
	}
	return p
}

func TestLoad_MapsPageIndexToWire(t *testing.T) {
	m := &repoMock{
		reviewsFn: func(ctx context.Context, bookID int64, page, size int) (*catalog.ReviewPage, error) {
			require.EqualValues(t, 9, bookID)
			require.Equal(t, 0, page, "page 1 is 0 on the wire")
			require.Equal(t, 5, size)
			return serverPage([]int64{1, 2, 3, 4}, 4, 1), nil
		},
	}
	o := rp.New(m, 9, 5)
	require.NoError(t, o.Load(context.Background(), 1))

	w := o.Window()
	require.Equal(t, 1, w.PageIndex)
	require.Equal(t, 4, w.TotalItems)
	require.Equal(t, 1, w.TotalPages)
	require.Len(t, o.Reviews(), 4)
	require.Equal(t, 1, w.FirstItemIndex())
	require.Equal(t, 4, w.LastItemIndex())
}

func TestLoad_Idempotent(t *testing.T) {
	m := &repoMock{
		reviewsFn: func(ctx context.Context, bookID int64, page, size int) (*catalog.ReviewPage, error) {
			return serverPage([]int64{10, 11, 12}, 3, 1), nil
		},
	}
	o := rp.New(m, 9, 5)
	require.NoError(t, o.Load(context.Background(), 1))
	first := o.Reviews()

	require.NoError(t, o.Load(context.Background(), 1))
	second := o.Reviews()

	require.Equal(t, first, second)
	require.Equal(t, 2, m.calls)
}

func TestLoad_DisplayRangeOnMiddlePage(t *testing.T) {
	m := &repoMock{
		reviewsFn: func(ctx context.Context, bookID int64, page, size int) (*catalog.ReviewPage, error) {
			require.Equal(t, 1, page)
			return serverPage([]int64{6, 7, 8, 9, 10}, 12, 3), nil
		},
	}
	o := rp.New(m, 9, 5)
	require.NoError(t, o.Load(context.Background(), 2))

	w := o.Window()
	require.Equal(t, 6, w.FirstItemIndex())
	require.Equal(t, 10, w.LastItemIndex())
	require.Equal(t, 12, w.TotalItems)
}

func TestGoToPage_RejectsOutOfRange(t *testing.T) {
	m := &repoMock{
		reviewsFn: func(ctx context.Context, bookID int64, page, size int) (*catalog.ReviewPage, error) {
			return serverPage([]int64{1}, 11, 3), nil
		},
	}
	o := rp.New(m, 9, 5)
	require.NoError(t, o.Load(context.Background(), 1))
	callsAfterLoad := m.calls

	require.Equal(t, rp.ErrBadPage, rp.Code(o.GoToPage(context.Background(), 0)))
	require.Equal(t, rp.ErrBadPage, rp.Code(o.GoToPage(context.Background(), 4)))
	require.Equal(t, callsAfterLoad, m.calls, "rejected navigation must not hit the server")

	require.NoError(t, o.GoToPage(context.Background(), 3))
	require.Equal(t, 3, o.Window().PageIndex)
}

func TestLoad_FailureHaltsInstance(t *testing.T) {
	failing := errors.New("reviews down")
	m := &repoMock{
		reviewsFn: func(ctx context.Context, bookID int64, page, size int) (*catalog.ReviewPage, error) {
			return nil, failing
		},
	}
	o := rp.New(m, 9, 5)

	err := o.Load(context.Background(), 1)
	require.Error(t, err)
	require.NotEmpty(t, o.Err())

	err = o.Load(context.Background(), 1)
	require.Equal(t, rp.ErrPageUnavailable, rp.Code(err))
	require.Equal(t, 1, m.calls, "a failed instance stops retrieving")
}

func TestLoad_RejectsBadInputs(t *testing.T) {
	o := rp.New(&repoMock{}, 0, 5)
	require.Equal(t, rp.ErrNoBookID, rp.Code(o.Load(context.Background(), 1)))

	o = rp.New(&repoMock{reviewsFn: func(ctx context.Context, bookID int64, page, size int) (*catalog.ReviewPage, error) {
		return serverPage(nil, 0, 0), nil
	}}, 9, 5)
	require.Equal(t, rp.ErrBadPage, rp.Code(o.Load(context.Background(), 0)))
}

func TestSwitchBook_ReloadsFromPageOne(t *testing.T) {
	m := &repoMock{
		reviewsFn: func(ctx context.Context, bookID int64, page, size int) (*catalog.ReviewPage, error) {
			if bookID == 9 {
				return serverPage([]int64{1, 2, 3, 4, 5}, 12, 3), nil
			}
			return serverPage([]int64{100}, 1, 1), nil
		},
	}
	o := rp.New(m, 9, 5)
	require.NoError(t, o.Load(context.Background(), 2))

	require.NoError(t, o.SwitchBook(context.Background(), 33))
	w := o.Window()
	require.Equal(t, 1, w.PageIndex)
	require.Equal(t, 1, w.TotalItems)
	require.Len(t, o.Reviews(), 1)
	require.EqualValues(t, 100, o.Reviews()[0].ID)
}
