package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Sanagocat/My-blog-back-end/internal/logger"
	"github.com/Sanagocat/My-blog-back-end/models"
)

func newTestPostRepo(t *testing.T) (*postRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &postRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestCreatePost_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()
	date := time.Date(2024, 10, 12, 0, 0, 0, 0, time.UTC)
	post := models.Post{Name: "Mike", Title: "Mikes blog", Contents: "Mike wrote blog", Date: date}

	rows := sqlmock.
		NewRows([]string{"id", "name", "title", "contents", "date"}).
		AddRow(1, post.Name, post.Title, post.Contents, date)

	mock.ExpectQuery("INSERT INTO danwooblog").
		WithArgs(post.Name, post.Title, post.Contents, post.Date).
		WillReturnRows(rows)

	created, err := repo.CreatePost(ctx, post)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
}

func TestCreatePost_DBError(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO danwooblog").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreatePost(ctx, models.Post{Name: "Mike"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestListPosts_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "name", "title", "date"}).
		AddRow(2, "Joe", "Joes blog", now).
		AddRow(1, "Mike", "Mikes blog", now.Add(-24*time.Hour))

	mock.ExpectQuery("SELECT id, name, title, date FROM danwooblog").
		WillReturnRows(rows)

	posts, err := repo.ListPosts(ctx, models.PostListQuery{Limit: 10, Page: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != 2 {
		t.Errorf("expected newest post first, got ID=%d", posts[0].ID)
	}
	if posts[0].Contents != "" {
		t.Errorf("list must not carry contents, got %q", posts[0].Contents)
	}
}

func TestListPosts_SecondPageOffset(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "title", "date"})

	mock.ExpectQuery("SELECT id, name, title, date FROM danwooblog ORDER BY date DESC LIMIT 10 OFFSET 10").
		WillReturnRows(rows)

	posts, err := repo.ListPosts(ctx, models.PostListQuery{Limit: 10, Page: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected empty page, got %d posts", len(posts))
	}
}

func TestListPosts_QueryError(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, name, title, date FROM danwooblog").
		WillReturnError(errors.New("db network error"))

	_, err := repo.ListPosts(ctx, models.PostListQuery{Limit: 10, Page: 1})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetPost_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "name", "title", "contents", "date"}).
		AddRow(15, "Danwoo", "Danwoo blog", "Danwoo wrote blog", now)

	mock.ExpectQuery("SELECT id, name, title, contents, date FROM danwooblog").
		WithArgs(int64(15)).
		WillReturnRows(rows)

	post, err := repo.GetPost(ctx, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.ID != 15 || post.Contents != "Danwoo wrote blog" {
		t.Errorf("unexpected post: %+v", post)
	}
}

func TestGetPost_NotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, name, title, contents, date FROM danwooblog").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetPost(ctx, 404)
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestUpdatePost_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()
	date := time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC)
	post := models.Post{ID: 1, Name: "Joe", Title: "Updated", Contents: "Updated body", Date: date}

	mock.ExpectExec("UPDATE danwooblog").
		WithArgs(post.Name, post.Title, post.Contents, post.Date, post.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdatePost(ctx, post); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdatePost_NotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE danwooblog").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePost(ctx, models.Post{ID: 404})
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestDeletePost_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM danwooblog").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeletePost(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeletePost_NotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM danwooblog").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeletePost(ctx, 404)
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
