package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Sanagocat/My-blog-back-end/internal/logger"
	"github.com/Sanagocat/My-blog-back-end/models"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository]
// over the "danwooblog" table. Queries are built with squirrel; column values
// are bound as placeholders, pagination is rendered as validated numeric
// literals.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost inserts a new blog entry and returns it with the
// server-assigned ID.
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	query, args, err := createPostQuery(post.Name, post.Title, post.Contents, post.Date).ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Post
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&created.ID, &created.Name, &created.Title, &created.Contents, &created.Date); err != nil {
		r.db.logStorageError(ctx, "postRepository.CreatePost", err)
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// ListPosts returns one page of the post feed ordered by date descending.
// Contents are excluded; the feed carries summary columns only.
func (r *postRepository) ListPosts(ctx context.Context, q models.PostListQuery) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := listPostsQuery(q.Limit, q.Offset()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.db.logStorageError(ctx, "postRepository.ListPosts", err)
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, q.Limit)
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Name, &post.Title, &post.Date); err != nil {
			log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		r.db.logStorageError(ctx, "postRepository.ListPosts", err)
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// GetPost retrieves a single fully populated post by ID.
//
// Returns [ErrPostNotFound] when no row matches.
func (r *postRepository) GetPost(ctx context.Context, id int64) (models.Post, error) {
	query, args, err := getPostQuery(id).ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var post models.Post
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&post.ID, &post.Name, &post.Title, &post.Contents, &post.Date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		r.db.logStorageError(ctx, "postRepository.GetPost", err)
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return post, nil
}

// UpdatePost overwrites all mutable columns of the identified post.
//
// Returns [ErrPostNotFound] when the UPDATE affected no rows.
func (r *postRepository) UpdatePost(ctx context.Context, post models.Post) error {
	query, args, err := updatePostQuery(post.ID, post.Name, post.Title, post.Contents, post.Date).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.db.logStorageError(ctx, "postRepository.UpdatePost", err)
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// DeletePost removes the identified post.
//
// Returns [ErrPostNotFound] when the DELETE affected no rows.
func (r *postRepository) DeletePost(ctx context.Context, id int64) error {
	query, args, err := deletePostQuery(id).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.db.logStorageError(ctx, "postRepository.DeletePost", err)
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}
