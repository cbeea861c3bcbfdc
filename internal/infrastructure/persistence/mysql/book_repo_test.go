package mysql

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

func newBookRepo(t *testing.T) book.Repository {
	db := newTestDB(t)
	return NewBookRepository(db, NewTxManager(db))
}

func createBook(t *testing.T, repo book.Repository, title string, price float64, categoryID string) *book.Book {
	t.Helper()
	author := "Someone"
	pages := 100
	f := book.Fields{Title: &title, Author: &author, Price: &price, Pages: &pages}
	if categoryID != "" {
		f.Category = &categoryID
	}
	b, err := book.NewBook(f)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func TestBookRepository_CreateWithRatings(t *testing.T) {
	repo := newBookRepo(t)
	ctx := context.Background()

	title, author := "1984", "George Orwell"
	userID := uuid.NewString()
	b, err := book.NewBook(book.Fields{
		Title:  &title,
		Author: &author,
		Ratings: []book.Rating{
			{Star: 5, Comment: "Chilling", PostedBy: userID},
			{Star: 4, Comment: "A must-read"},
		},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, b))

	found, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "1984", found.Slug)
	require.Len(t, found.Ratings, 2)
	assert.Equal(t, 5, found.Ratings[0].Star)
	assert.Equal(t, userID, found.Ratings[0].PostedBy)
	assert.Equal(t, "A must-read", found.Ratings[1].Comment)
}

func TestBookRepository_FindFilters(t *testing.T) {
	repo := newBookRepo(t)
	ctx := context.Background()

	catID := uuid.NewString()
	createBook(t, repo, "The Great Gatsby", 10.99, catID)
	createBook(t, repo, "To Kill a Mockingbird", 8.99, catID)
	createBook(t, repo, "1984", 9.99, "")
	createBook(t, repo, "Pride and Prejudice", 7.99, "")

	list, err := repo.Find(ctx, plan(t, "price[gte]=9&sort=price"))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 9.99, list[0].Price)
	assert.Equal(t, 10.99, list[1].Price)

	list, err = repo.Find(ctx, plan(t, "price[gt]=8&price[lt]=10"))
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = repo.Find(ctx, plan(t, "category="+catID))
	require.NoError(t, err)
	assert.Len(t, list, 2)

	n, err := repo.Count(ctx, plan(t, "price[lte]=8.99").Filters)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	_, err = repo.Find(ctx, plan(t, "price[gte]=cheap"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = repo.Find(ctx, plan(t, "category=not-an-id"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestBookRepository_UpdateByID(t *testing.T) {
	repo := newBookRepo(t)
	ctx := context.Background()
	b := createBook(t, repo, "The Great Gatsby", 10.99, "")

	title := "Tender Is the Night"
	updated, err := repo.UpdateByID(ctx, b.ID, book.Fields{
		Title:   &title,
		Ratings: []book.Rating{{Star: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, "tender-is-the-night", updated.Slug)
	assert.Equal(t, 1, updated.Version)

	found, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tender Is the Night", found.Title)
	assert.Equal(t, 10.99, found.Price, "未提交的字段保持不变")
	require.Len(t, found.Ratings, 1)

	neg := -1.0
	_, err = repo.UpdateByID(ctx, b.ID, book.Fields{Price: &neg})
	assert.ErrorIs(t, err, book.ErrInvalidPrice)

	_, err = repo.UpdateByID(ctx, uuid.NewString(), book.Fields{Title: &title})
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestBookRepository_DeleteByID(t *testing.T) {
	repo := newBookRepo(t)
	ctx := context.Background()
	b := createBook(t, repo, "The Catcher in the Rye", 6.99, "")

	deleted, err := repo.DeleteByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, deleted.ID)

	_, err = repo.FindByID(ctx, b.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	_, err = repo.DeleteByID(ctx, b.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestStoreError(t *testing.T) {
	assert.Nil(t, storeError(nil, "x"))
	assert.ErrorIs(t, storeError(assert.AnError, "x"), apperrors.ErrStoreUnavailable)
	assert.ErrorIs(t, storeError(book.ErrBookNotFound, "x"), book.ErrBookNotFound)
}
