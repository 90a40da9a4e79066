package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"devconnector_backend/internal/feature/posts/domain/entity"
	"devconnector_backend/internal/feature/posts/usecase"
)

type testUser struct {
	ID     uint `gorm:"primaryKey"`
	Name   string
	Email  string
	Avatar string
}

func (testUser) TableName() string { return "users" }

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&testUser{}, &PostModel{}), "failed to migrate tables")
	return db
}

func TestPostGorm_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(setupTestDB(t))

	p := &entity.Post{UserID: 1, Text: "hello", Name: "Jane", Avatar: "av"}
	require.NoError(t, repo.Create(ctx, p))
	assert.NotZero(t, p.ID)
	assert.False(t, p.Date.IsZero())

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Text)
	assert.Equal(t, "Jane", got.Name)
	assert.Equal(t, []entity.Like{}, got.Likes)
	assert.Equal(t, []entity.Comment{}, got.Comments)

	_, err = repo.FindByID(ctx, p.ID+100)
	assert.ErrorIs(t, err, usecase.ErrPostNotFound)
}

func TestPostGorm_List_NewestFirst(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rows := []PostModel{
		{UserID: 1, Text: "old", CreatedAt: base},
		{UserID: 2, Text: "new", CreatedAt: base.Add(2 * time.Hour)},
		{UserID: 3, Text: "middle", CreatedAt: base.Add(time.Hour)},
	}
	require.NoError(t, db.Create(&rows).Error)

	posts, err := repo.List(ctx)

	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "new", posts[0].Text)
	assert.Equal(t, "middle", posts[1].Text)
	assert.Equal(t, "old", posts[2].Text)
}

func TestPostGorm_SaveLikesAndComments(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(setupTestDB(t))

	p := &entity.Post{UserID: 1, Text: "hello"}
	require.NoError(t, repo.Create(ctx, p))

	p.Like(2)
	require.NoError(t, repo.SaveLikes(ctx, p))
	p.AddComment(entity.Comment{ID: "c1", UserID: 2, Text: "nice"})
	require.NoError(t, repo.SaveComments(ctx, p))

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []entity.Like{{UserID: 2}}, got.Likes)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "c1", got.Comments[0].ID)
	assert.Equal(t, "hello", got.Text, "partial updates must not touch other columns")

	err = repo.SaveLikes(ctx, &entity.Post{ID: 999})
	assert.ErrorIs(t, err, usecase.ErrPostNotFound)
}

func TestPostGorm_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(setupTestDB(t))

	p := &entity.Post{UserID: 1, Text: "bye"}
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err := repo.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, usecase.ErrPostNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, p.ID), usecase.ErrPostNotFound)
}

func TestAuthorGorm_FindAuthor(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&testUser{ID: 4, Name: "Jane", Email: "j@example.com", Avatar: "av"}).Error)
	lookup := NewAuthorLookup(db)

	a, err := lookup.FindAuthor(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, entity.Author{ID: 4, Name: "Jane", Avatar: "av"}, a)

	_, err = lookup.FindAuthor(context.Background(), 5)
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
}
