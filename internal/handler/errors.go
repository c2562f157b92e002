package handler

import (
	"errors"
	"net/http"

	"github.com/soaresgus/community-backend/internal/app/user"
	"github.com/soaresgus/community-backend/internal/pkg/errs"
	"github.com/soaresgus/community-backend/internal/pkg/logx"
	"github.com/soaresgus/community-backend/internal/pkg/resp"
	"github.com/soaresgus/community-backend/internal/pkg/valid"
)

// respondServiceError maps account service errors onto application error codes.
// Unexpected errors are logged here and answered with a generic message.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *valid.Error

	switch {
	case errors.As(err, &verr):
		resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams).WithDetails(verr))
	case errors.Is(err, user.ErrInvalidID):
		resp.RespondError(w, r, errs.NewError(errs.ErrInvalidUserID))
	case errors.Is(err, user.ErrNotFound):
		resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
	case errors.Is(err, user.ErrConflict):
		logx.Ctx(r.Context()).Warn().Msg("user registration conflict")
		resp.RespondError(w, r, errs.NewError(errs.ErrUserAlreadyExists))
	default:
		logx.Ctx(r.Context()).Error().Err(err).Msg("user operation failed")
		resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
	}
}
