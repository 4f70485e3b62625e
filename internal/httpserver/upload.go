package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/babyzion/market/internal/logging"
	"github.com/babyzion/market/internal/service"
	"github.com/babyzion/market/internal/transport"
)

type UploadHTTP struct {
	Svc *service.UploadService
}

func (h *UploadHTTP) ListUploads(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "upload.list_uploads")

	uploads, err := h.Svc.ListUploads(ctx)
	if err != nil {
		l.Error("list_uploads_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.Envelope{Success: false, Message: "cannot list uploads"})
	}

	return c.JSON(http.StatusOK, uploads)
}

func (h *UploadHTTP) CreateUpload(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "upload.create_upload")

	var req transport.CreateUploadRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_upload_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.Envelope{Success: false, Message: "invalid body"})
	}

	upload, err := h.Svc.CreateUpload(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			reason := service.Reason(err, service.ErrValidation)
			l.Warn("create_upload_error", "status", 400, "reason", reason)
			return c.JSON(http.StatusBadRequest, transport.Envelope{Success: false, Message: reason})
		}
		l.Error("create_upload_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.Envelope{Success: false, Message: "internal error"})
	}

	l.Info("create_upload_success", "upload_id", upload.ID)
	return c.JSON(http.StatusOK, transport.Envelope{Success: true, Message: "Product uploaded for review"})
}
