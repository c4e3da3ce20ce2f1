package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-budget-vault/internal/app"
	"github.com/MKhiriev/go-budget-vault/internal/service"
	"github.com/MKhiriev/go-budget-vault/internal/store"
	"github.com/MKhiriev/go-budget-vault/internal/validators"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is checked in order; the first match wins. Store errors
// carry both a kind and ErrTransient, so the transient entry comes first.
var errorStatuses = []errorStatus{
	{service.ErrNoOwnerID, http.StatusUnauthorized, app.MsgNoOwnerIDProvided},
	{store.ErrEmptyOwner, http.StatusUnauthorized, app.MsgNoOwnerIDProvided},
	{validators.ErrBatchTooLarge, http.StatusRequestEntityTooLarge, app.MsgBatchTooLarge},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{store.ErrTransient, http.StatusServiceUnavailable, app.MsgServiceUnavailable},
	{context.DeadlineExceeded, http.StatusServiceUnavailable, app.MsgServiceUnavailable},
}

// statusFromError returns the status code and the client-safe message for
// err. Unknown errors are reported as 500 without echoing their text.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
