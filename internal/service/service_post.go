package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Sanagocat/My-blog-back-end/internal/logger"
	"github.com/Sanagocat/My-blog-back-end/internal/store"
	"github.com/Sanagocat/My-blog-back-end/models"
)

const (
	// defaultPostPageSize is used when the client omits the limit parameter.
	defaultPostPageSize = 10

	// maxPostPageSize caps the page size a single feed request may ask for.
	maxPostPageSize = 100
)

// postService is the concrete implementation of PostService. It is a thin
// orchestration layer over the post repository; posts carry no credentials
// and need no policy checks beyond pagination bounds.
type postService struct {
	postRepository store.PostRepository
	logger         *logger.Logger
}

// NewPostService constructs a PostService wired to the given repository.
func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		logger:         logger,
	}
}

// CreatePost persists a new blog entry and returns it with the
// server-assigned ID. Clients may supply their own publication date; when
// they omit it, the server clock is used.
func (p *postService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	if post.Date.IsZero() {
		post.Date = time.Now()
	}

	created, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("title", post.Title).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return created, nil
}

// ListPosts returns one page of the feed, newest first.
//
// Out-of-range pagination values are normalised instead of rejected: a zero
// limit falls back to the default page size, an oversized limit is capped,
// and a zero page means the first page.
func (p *postService) ListPosts(ctx context.Context, limit, page uint64) ([]models.Post, error) {
	if limit == 0 {
		limit = defaultPostPageSize
	}
	if limit > maxPostPageSize {
		limit = maxPostPageSize
	}
	if page == 0 {
		page = 1
	}

	posts, err := p.postRepository.ListPosts(ctx, models.PostListQuery{Limit: limit, Page: page})
	if err != nil {
		logger.FromContext(ctx).Err(err).Uint64("limit", limit).Uint64("page", page).Msg("post list query failed")
		return nil, fmt.Errorf("post list query failed: %w", err)
	}

	return posts, nil
}

// GetPost retrieves a single fully populated post.
//
// Passes [store.ErrPostNotFound] through unchanged so the transport layer
// can distinguish a missing post from a storage failure.
func (p *postService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	post, err := p.postRepository.GetPost(ctx, id)
	if err != nil {
		return models.Post{}, fmt.Errorf("post lookup failed: %w", err)
	}

	return post, nil
}

// UpdatePost overwrites all mutable fields of the identified post.
func (p *postService) UpdatePost(ctx context.Context, post models.Post) error {
	if err := p.postRepository.UpdatePost(ctx, post); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", post.ID).Msg("post update ended with error")
		return fmt.Errorf("post update ended with error: %w", err)
	}

	return nil
}

// DeletePost removes the identified post.
func (p *postService) DeletePost(ctx context.Context, id int64) error {
	if err := p.postRepository.DeletePost(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("post deletion ended with error")
		return fmt.Errorf("post deletion ended with error: %w", err)
	}

	return nil
}
