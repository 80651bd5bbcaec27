package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Sanagocat/My-blog-back-end/internal/app"
	"github.com/Sanagocat/My-blog-back-end/internal/logger"
	"github.com/Sanagocat/My-blog-back-end/internal/service"
	"github.com/Sanagocat/My-blog-back-end/internal/store"
	"github.com/Sanagocat/My-blog-back-end/internal/utils"
	"github.com/Sanagocat/My-blog-back-end/models"
)

// register handles POST /register.
//
// Every outcome produces exactly one well-formed JSON envelope with HTTP 200.
// Neither the plaintext password nor the stored hash ever appears in the
// response body.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserAlreadyExists):
			log.Warn().Str("userid", user.UserID).Msg("userid already exists")
			utils.WriteJSON(w, models.AuthResponse{Result: app.ResultFail, Message: app.MsgUserAlreadyRegistered}, http.StatusOK)
		case errors.Is(err, service.ErrPasswordTooShort):
			utils.WriteJSON(w, models.AuthResponse{Result: app.ResultFail, Message: app.MsgPasswordTooShort}, http.StatusOK)
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.AuthResponse{Result: app.ResultFail, Message: app.MsgRegisterDBFail}, http.StatusOK)
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, models.AuthResponse{Result: app.ResultFail, Message: app.MsgRegisterDBFail}, http.StatusOK)
		}
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Result:   app.ResultSuccess,
		Message:  app.MsgRegisterSuccess,
		Username: registeredUser.Username,
	}, http.StatusOK)
}

// login handles POST /login.
//
// On success the response carries the display name and a signed 12-hour
// session token. Unknown userid and wrong password stay distinguishable in
// the message field; the wording is part of the wire contract.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, token, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Warn().Str("userid", user.UserID).Msg("no user was found")
			utils.WriteJSON(w, models.AuthResponse{Result: app.ResultFail, Message: app.MsgUnknownID}, http.StatusOK)
		case errors.Is(err, service.ErrWrongPassword):
			log.Warn().Str("userid", user.UserID).Msg("wrong password")
			utils.WriteJSON(w, models.AuthResponse{Result: app.ResultFail, Message: app.MsgIncorrectPassword}, http.StatusOK)
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.AuthResponse{Result: app.ResultFail, Message: app.MsgDatabaseError}, http.StatusOK)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.AuthResponse{Result: app.ResultFail, Message: app.MsgDatabaseError}, http.StatusOK)
		}
		return
	}

	log.Debug().Str("userid", foundUser.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AuthResponse{
		Result:   app.ResultSuccess,
		Message:  app.MsgLoginSuccess,
		Username: foundUser.Username,
		Token:    token.SignedString,
	}, http.StatusOK)
}

// me handles POST /me, the token-verification endpoint. The auth middleware
// has already validated the bearer token and stored its claims in the
// request context; this handler just echoes the identity back.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	claims, ok := utils.GetSessionClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("no session claims in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInvalidOrExpiredToken}, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.MeResponse{
		UserID:   claims.UserID,
		Username: claims.Username,
	}, http.StatusOK)
}
