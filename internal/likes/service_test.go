package likes

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/marwandev/formalflow-backend/internal/catalog"
	apperrors "github.com/marwandev/formalflow-backend/pkg/errors"
)

func setupLikesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS liked_items (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  product_id INTEGER NOT NULL,
  created_at DATETIME
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_liked_items_user_product ON liked_items (user_id, product_id);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func newLikesService(t *testing.T) *Service {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return NewService(NewRepository(setupLikesTestDB(t)), cat, nil)
}

func TestLikeThenList(t *testing.T) {
	svc := newLikesService(t)
	ctx := context.Background()
	userID := uuid.New()

	view, err := svc.Like(ctx, userID, 1)
	require.NoError(t, err)
	require.Len(t, view.ProductIDs, 1)
	assert.Equal(t, 1, view.ProductIDs[0])
	require.Len(t, view.Products, 1)
	assert.Equal(t, "Classic Navy Blazer", view.Products[0].Name)
	assert.NotEmpty(t, view.Products[0].Image)
}

func TestLikeTwiceIsNoOp(t *testing.T) {
	svc := newLikesService(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.Like(ctx, userID, 2)
	require.NoError(t, err)
	view, err := svc.Like(ctx, userID, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, view.ProductIDs)
}

func TestLikeUnknownProduct(t *testing.T) {
	svc := newLikesService(t)

	_, err := svc.Like(context.Background(), uuid.New(), 9999)
	require.Error(t, err)
	typed := apperrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, apperrors.CodeNotFound, typed.Code())
}

func TestUnlike(t *testing.T) {
	svc := newLikesService(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.Like(ctx, userID, 1)
	require.NoError(t, err)
	_, err = svc.Like(ctx, userID, 2)
	require.NoError(t, err)

	view, err := svc.Unlike(ctx, userID, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, view.ProductIDs)

	// absent like stays silent
	view, err = svc.Unlike(ctx, userID, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, view.ProductIDs)
}

func TestLikesAreScopedPerUser(t *testing.T) {
	svc := newLikesService(t)
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.Like(ctx, alice, 1)
	require.NoError(t, err)

	view, err := svc.List(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, view.ProductIDs)
	assert.Empty(t, view.Products)
}
