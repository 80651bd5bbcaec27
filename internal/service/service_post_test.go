package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Sanagocat/My-blog-back-end/internal/logger"
	"github.com/Sanagocat/My-blog-back-end/internal/store"
	"github.com/Sanagocat/My-blog-back-end/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockPostRepository implements store.PostRepository for unit tests.
type mockPostRepository struct {
	createPostFn func(ctx context.Context, post models.Post) (models.Post, error)
	listPostsFn  func(ctx context.Context, query models.PostListQuery) ([]models.Post, error)
	getPostFn    func(ctx context.Context, id int64) (models.Post, error)
	updatePostFn func(ctx context.Context, post models.Post) error
	deletePostFn func(ctx context.Context, id int64) error
}

func (m *mockPostRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	return m.createPostFn(ctx, post)
}

func (m *mockPostRepository) ListPosts(ctx context.Context, query models.PostListQuery) ([]models.Post, error) {
	return m.listPostsFn(ctx, query)
}

func (m *mockPostRepository) GetPost(ctx context.Context, id int64) (models.Post, error) {
	return m.getPostFn(ctx, id)
}

func (m *mockPostRepository) UpdatePost(ctx context.Context, post models.Post) error {
	return m.updatePostFn(ctx, post)
}

func (m *mockPostRepository) DeletePost(ctx context.Context, id int64) error {
	return m.deletePostFn(ctx, id)
}

func TestCreatePost_Success(t *testing.T) {
	repo := &mockPostRepository{
		createPostFn: func(_ context.Context, post models.Post) (models.Post, error) {
			post.ID = 7
			return post, nil
		},
	}

	svc := NewPostService(repo, logger.Nop())
	created, err := svc.CreatePost(context.Background(), models.Post{Name: "Mike", Title: "Mikes blog"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
}

func TestCreatePost_DefaultsDate(t *testing.T) {
	var gotPost models.Post
	repo := &mockPostRepository{
		createPostFn: func(_ context.Context, post models.Post) (models.Post, error) {
			gotPost = post
			return post, nil
		},
	}

	svc := NewPostService(repo, logger.Nop())
	_, err := svc.CreatePost(context.Background(), models.Post{Name: "Mike", Title: "Mikes blog"})
	require.NoError(t, err)
	assert.False(t, gotPost.Date.IsZero(), "missing date must be filled with the server clock")

	// a client-supplied date must survive untouched
	supplied := time.Date(2024, 10, 12, 0, 0, 0, 0, time.UTC)
	_, err = svc.CreatePost(context.Background(), models.Post{Name: "Mike", Date: supplied})
	require.NoError(t, err)
	assert.Equal(t, supplied, gotPost.Date)
}

func TestCreatePost_StorageError(t *testing.T) {
	repo := &mockPostRepository{
		createPostFn: func(_ context.Context, _ models.Post) (models.Post, error) {
			return models.Post{}, errors.New("connection refused")
		},
	}

	svc := NewPostService(repo, logger.Nop())
	_, err := svc.CreatePost(context.Background(), models.Post{Name: "Mike"})
	assert.Error(t, err)
}

func TestListPosts_PaginationNormalisation(t *testing.T) {
	tests := []struct {
		name      string
		limit     uint64
		page      uint64
		wantLimit uint64
		wantPage  uint64
	}{
		{name: "defaults", limit: 0, page: 0, wantLimit: 10, wantPage: 1},
		{name: "passthrough", limit: 25, page: 3, wantLimit: 25, wantPage: 3},
		{name: "capped limit", limit: 1000, page: 1, wantLimit: 100, wantPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery models.PostListQuery
			repo := &mockPostRepository{
				listPostsFn: func(_ context.Context, query models.PostListQuery) ([]models.Post, error) {
					gotQuery = query
					return nil, nil
				},
			}

			svc := NewPostService(repo, logger.Nop())
			_, err := svc.ListPosts(context.Background(), tt.limit, tt.page)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, gotQuery.Limit)
			assert.Equal(t, tt.wantPage, gotQuery.Page)
		})
	}
}

func TestListPosts_StorageError(t *testing.T) {
	repo := &mockPostRepository{
		listPostsFn: func(_ context.Context, _ models.PostListQuery) ([]models.Post, error) {
			return nil, errors.New("connection refused")
		},
	}

	svc := NewPostService(repo, logger.Nop())
	_, err := svc.ListPosts(context.Background(), 10, 1)
	assert.Error(t, err)
}

func TestGetPost_NotFoundPassthrough(t *testing.T) {
	repo := &mockPostRepository{
		getPostFn: func(_ context.Context, _ int64) (models.Post, error) {
			return models.Post{}, store.ErrPostNotFound
		},
	}

	svc := NewPostService(repo, logger.Nop())
	_, err := svc.GetPost(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestGetPost_Success(t *testing.T) {
	now := time.Now()
	repo := &mockPostRepository{
		getPostFn: func(_ context.Context, id int64) (models.Post, error) {
			return models.Post{ID: id, Name: "Danwoo", Title: "Danwoo blog", Contents: "Danwoo wrote blog", Date: now}, nil
		},
	}

	svc := NewPostService(repo, logger.Nop())
	post, err := svc.GetPost(context.Background(), 15)
	require.NoError(t, err)
	assert.Equal(t, int64(15), post.ID)
	assert.Equal(t, "Danwoo wrote blog", post.Contents)
}

func TestUpdatePost_NotFoundPassthrough(t *testing.T) {
	repo := &mockPostRepository{
		updatePostFn: func(_ context.Context, _ models.Post) error {
			return store.ErrPostNotFound
		},
	}

	svc := NewPostService(repo, logger.Nop())
	err := svc.UpdatePost(context.Background(), models.Post{ID: 404})
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestDeletePost_Success(t *testing.T) {
	var deletedID int64
	repo := &mockPostRepository{
		deletePostFn: func(_ context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}

	svc := NewPostService(repo, logger.Nop())
	require.NoError(t, svc.DeletePost(context.Background(), 15))
	assert.Equal(t, int64(15), deletedID)
}
