// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-micro-commerce/internal/logger"
	"github.com/MKhiriev/go-micro-commerce/internal/service"
	"github.com/MKhiriev/go-micro-commerce/internal/utils"
	"github.com/MKhiriev/go-micro-commerce/models"
)

// register handles POST /register with a JSON [models.RegisterRequest] and
// answers 201 with the public view of the created account.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrMalformedRequest, err))
		return
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.ID).Msg("user registered")
	if _, err = utils.WriteJSON(w, user.ToResponse(), http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

// login handles POST /login with form fields username and password.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrMalformedRequest, err))
		return
	}

	result, err := h.services.AuthService.Login(ctx, models.Credentials{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", result.User.ID).Msg("user successfully logged in")
	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

// me handles GET /me for the caller identified by the auth middleware.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, ok := utils.GetTokenFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthorized)
		return
	}

	user, err := h.services.AuthService.CurrentUser(ctx, token.SignedString)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, user.ToResponse(), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// updateMe handles PATCH /me with a JSON [models.ProfileUpdate].
func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, ok := utils.GetTokenFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthorized)
		return
	}

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrMalformedRequest, err))
		return
	}

	user, err := h.services.AuthService.UpdateProfile(ctx, token.Subject, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, user.ToResponse(), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
