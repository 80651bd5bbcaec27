package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Sanagocat/My-blog-back-end/internal/app"
	"github.com/Sanagocat/My-blog-back-end/internal/logger"
	"github.com/Sanagocat/My-blog-back-end/internal/store"
	"github.com/Sanagocat/My-blog-back-end/internal/utils"
	"github.com/Sanagocat/My-blog-back-end/models"
)

// createPost handles POST /postblog. The request body carries the author
// name, title, contents and optionally the publication date; a missing date
// defaults to the server clock at the service layer.
func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.PostService.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during post creation")
		utils.WriteJSON(w, models.ResultResponse{Result: app.ResultFail}, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", created.ID).Msg("post created")

	utils.WriteJSON(w, models.ResultResponse{Result: app.ResultSuccess}, http.StatusOK)
}

// listPosts handles GET /getpostlist?limit=N&page=M. Missing or malformed
// pagination parameters fall back to the service defaults rather than
// failing the request.
func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	limit, _ := strconv.ParseUint(r.URL.Query().Get("limit"), 10, 64)
	page, _ := strconv.ParseUint(r.URL.Query().Get("page"), 10, 64)

	posts, err := h.services.PostService.ListPosts(ctx, limit, page)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during post listing")
		utils.WriteJSON(w, models.ResultResponse{Result: app.ResultFail}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.PostListResponse{Posts: posts}, http.StatusOK)
}

// getPostDetail handles GET /getdetailblog/{id}.
func (h *Handler) getPostDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Warn().Err(err).Msg("non-numeric post id")
		http.Error(w, "invalid post id", http.StatusBadRequest)
		return
	}

	post, err := h.services.PostService.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			log.Warn().Int64("id", id).Msg("post not found")
			utils.WriteJSON(w, models.ResultResponse{Result: app.ResultFail}, http.StatusNotFound)
			return
		}
		log.Err(err).Msg("unexpected error occurred during post lookup")
		utils.WriteJSON(w, models.ResultResponse{Result: app.ResultFail}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.PostDetailResponse{Data: post}, http.StatusOK)
}

// updatePost handles PUT /updateblog. The post id travels in the request
// body alongside the new title and contents.
func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.PostService.UpdatePost(ctx, post); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			log.Warn().Int64("id", post.ID).Msg("post not found")
			utils.WriteJSON(w, models.ResultResponse{Result: app.ResultFail}, http.StatusNotFound)
			return
		}
		log.Err(err).Msg("unexpected error occurred during post update")
		utils.WriteJSON(w, models.ResultResponse{Result: app.ResultFail}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ResultResponse{Result: app.ResultSuccess}, http.StatusOK)
}

// deletePost handles DELETE /deleteblog/{id}.
func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Warn().Err(err).Msg("non-numeric post id")
		http.Error(w, "invalid post id", http.StatusBadRequest)
		return
	}

	if err := h.services.PostService.DeletePost(ctx, id); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			log.Warn().Int64("id", id).Msg("post not found")
			utils.WriteJSON(w, models.ResultResponse{Result: app.ResultFail}, http.StatusNotFound)
			return
		}
		log.Err(err).Msg("unexpected error occurred during post deletion")
		utils.WriteJSON(w, models.ResultResponse{Result: app.ResultFail}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ResultResponse{Result: app.ResultSuccess}, http.StatusOK)
}
