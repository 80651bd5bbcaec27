package http

import (
	"net/http"

	"github.com/Sanagocat/My-blog-back-end/internal/app"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the router. Paths and envelopes follow the published API,
// so existing clients keep working unchanged.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", h.welcome)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	// the only protected route; the auth middleware is the sole
	// authorization gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/me", h.me)
	})

	// blog post CRUD
	router.Post("/postblog", h.createPost)
	router.Get("/getpostlist", h.listPosts)
	router.Get("/getdetailblog/{id}", h.getPostDetail)
	router.Put("/updateblog", h.updatePost)
	router.Delete("/deleteblog/{id}", h.deletePost)

	return router
}

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(app.MsgWelcome))
}
