/*
Package req provides helper functions for HTTP request parsing.

It reads JSON request bodies under a size limit and checks their media type,
leaving the decoding and validation of the payload to the valid package.
*/
package req

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/soaresgus/community-backend/internal/pkg/errs"
)

// MaxJSONBodySize defines the maximum allowed size (1 MB) for a JSON request body.
// This limit is enforced via http.MaxBytesReader.
const MaxJSONBodySize int64 = 1 << 20

// ReadJSON returns the raw body of a JSON request.
func ReadJSON(w http.ResponseWriter, r *http.Request) ([]byte, *errs.CustomError) {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return nil, errs.NewError(errs.ErrUnsupportedMediaType)
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxJSONBodySize)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errs.NewError(errs.ErrRequestEntityTooLarge)
		}
		return nil, errs.NewError(errs.ErrInvalidParams)
	}

	return body, nil
}
