/*
Package handler provides HTTP handler functions for user account management.
*/
package handler

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/soaresgus/community-backend/internal/app/user"
	"github.com/soaresgus/community-backend/internal/pkg/errs"
	"github.com/soaresgus/community-backend/internal/pkg/req"
	"github.com/soaresgus/community-backend/internal/pkg/resp"
	"github.com/soaresgus/community-backend/internal/pkg/valid"
)

// pathParam returns the chi URL parameter key, decoded exactly once.
// chi routes on RawPath when it is set, leaving its params escaped.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return raw
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// HandleListUsers returns one page of users.
//
//	@Summary	List users
//	@Tags		users
//	@Produce	json
//	@Param		limit	query		int	false	"Page size"		minimum(1)	maximum(100)	default(10)
//	@Param		page	query		int	false	"Page number"	minimum(1)	default(1)
//	@Success	200		{object}	resp.JSONResponse{data=[]user.User}
//	@Failure	400		{object}	resp.JSONResponse{data=valid.Error}
//	@Router		/users [get]
func HandleListUsers(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := valid.ParsePage(r.URL.Query())
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		users, err := deps.Users.List(r.Context(), page)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		resp.RespondSuccess(w, r, users)
	}
}

// HandleGetUser returns the user with the given id.
//
//	@Summary	Get a user by id
//	@Tags		users
//	@Produce	json
//	@Param		id	path		string	true	"User id"
//	@Success	200	{object}	resp.JSONResponse{data=user.User}
//	@Failure	400	{object}	resp.JSONResponse
//	@Failure	404	{object}	resp.JSONResponse
//	@Router		/users/{id} [get]
func HandleGetUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := deps.Users.GetByID(r.Context(), pathParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		resp.RespondSuccess(w, r, u)
	}
}

// HandleGetUserByIGN returns the user with the given in-game name, ignoring case.
//
//	@Summary	Get a user by in-game name
//	@Tags		users
//	@Produce	json
//	@Param		ign	path		string	true	"In-game name"
//	@Success	200	{object}	resp.JSONResponse{data=user.User}
//	@Failure	404	{object}	resp.JSONResponse
//	@Router		/users/ign/{ign} [get]
func HandleGetUserByIGN(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := deps.Users.GetByIGN(r.Context(), pathParam(r, "ign"))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		resp.RespondSuccess(w, r, u)
	}
}

// HandleGetUserByEmail returns the user with the given email, ignoring case.
//
//	@Summary	Get a user by email
//	@Tags		users
//	@Produce	json
//	@Param		email	path		string	true	"Email"
//	@Success	200		{object}	resp.JSONResponse{data=user.User}
//	@Failure	404		{object}	resp.JSONResponse
//	@Router		/users/email/{email} [get]
func HandleGetUserByEmail(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := deps.Users.GetByEmail(r.Context(), pathParam(r, "email"))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		resp.RespondSuccess(w, r, u)
	}
}

// HandleCreateUser registers a new user.
//
//	@Summary	Create a user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		body	body		user.CreateInput	true	"New user"
//	@Success	201		{object}	resp.JSONResponse{data=user.User}
//	@Failure	400		{object}	resp.JSONResponse{data=valid.Error}
//	@Failure	409		{object}	resp.JSONResponse
//	@Failure	429		{object}	resp.JSONResponse
//	@Router		/users [post]
func HandleCreateUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, customErr := req.ReadJSON(w, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		input, err := valid.Decode[user.CreateInput](body)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		u, err := deps.Users.Create(r.Context(), input)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		resp.RespondCreated(w, r, u)
	}
}

// HandleUpdateUser changes the supplied fields of a user and merges its permissions.
//
//	@Summary	Update a user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"User id"
//	@Param		body	body		user.UpdateInput	true	"Fields to change"
//	@Success	200		{object}	resp.JSONResponse{data=user.User}
//	@Failure	400		{object}	resp.JSONResponse{data=valid.Error}
//	@Failure	404		{object}	resp.JSONResponse
//	@Router		/users/{id} [put]
func HandleUpdateUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathParam(r, "id")
		if !deps.Users.ValidID(id) {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidUserID))
			return
		}

		body, customErr := req.ReadJSON(w, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		input, err := valid.Decode[user.UpdateInput](body)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		u, err := deps.Users.Update(r.Context(), id, input)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		resp.RespondSuccess(w, r, u)
	}
}

// HandleDeleteUser removes a user permanently.
//
//	@Summary	Delete a user
//	@Tags		users
//	@Param		id	path	string	true	"User id"
//	@Success	204
//	@Failure	400	{object}	resp.JSONResponse
//	@Failure	404	{object}	resp.JSONResponse
//	@Router		/users/{id} [delete]
func HandleDeleteUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Users.Delete(r.Context(), pathParam(r, "id")); err != nil {
			respondServiceError(w, r, err)
			return
		}

		resp.RespondNoContent(w, r)
	}
}
