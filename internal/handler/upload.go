package handler

import (
	"github.com/deppfellow/people-api/internal/model"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/deppfellow/people-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

type UploadHandler struct {
	Handler
	uploadService *service.UploadService
}

func NewUploadHandler(s *server.Server, uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{
		Handler:       NewHandler(s),
		uploadService: uploadService,
	}
}

func (h *UploadHandler) PostImage(c echo.Context, req *model.ImageUploadRequest) (*model.ImageInfo, error) {
	info, err := h.uploadService.Describe(c.Request().Context(), req.Image)
	if err != nil {
		return nil, err
	}

	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.AddAttribute("file.name", info.Filename)
		txn.AddAttribute("file.content_type", info.Format)
		txn.AddAttribute("file.size_kb", info.SizeKB)
	}

	return info, nil
}
