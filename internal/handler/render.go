package handler

import (
	"errors"
	"net/http"

	"github.com/docbot/web/internal/client"
	"github.com/docbot/web/internal/model"
	"github.com/docbot/web/internal/service"
	"github.com/docbot/web/internal/session"
	"github.com/docbot/web/internal/view"
	"github.com/gin-gonic/gin"
)

const genericFailure = "Something went wrong. Please try again."

// renderPage draws a full page and drains the visitor's pending notices.
func renderPage(c *gin.Context, v *session.Visitor, page session.Page, tmpl, title string, data any) {
	p := view.NewPage(c.Request.URL.Path, title, v.TakeNotices(), data)
	if page != "" {
		p.Loading = v.Loading(page)
	}
	c.HTML(http.StatusOK, tmpl, p)
}

// noticeMessage picks the user-facing text for err.
func noticeMessage(err error) string {
	var inErr *service.InputError
	var valErr *client.ValidationError
	var svcErr *client.ServiceUnavailableError
	switch {
	case errors.As(err, &inErr):
		return inErr.Message
	case errors.As(err, &valErr):
		return valErr.Message
	case errors.As(err, &svcErr):
		return svcErr.Message
	case errors.Is(err, service.ErrBusy):
		return service.ErrBusy.Error()
	}
	return genericFailure
}

// writeAPIError maps gateway and input errors onto JSON error responses.
func writeAPIError(c *gin.Context, err error) {
	var inErr *service.InputError
	switch {
	case errors.As(err, &inErr), errors.Is(err, client.ErrValidation):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: noticeMessage(err), Kind: model.ErrorKindValidation})
	case errors.Is(err, client.ErrServiceUnavailable):
		c.JSON(http.StatusServiceUnavailable, model.ErrorResponse{Error: noticeMessage(err), Kind: model.ErrorKindUnavailable})
	default:
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: genericFailure})
	}
}
