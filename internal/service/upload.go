package service

import (
	"context"
	"fmt"
	"io"
	"math"
	"mime/multipart"

	"github.com/deppfellow/people-api/internal/model"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
)

type UploadService struct {
	server *server.Server
}

func NewUploadService(s *server.Server) *UploadService {
	return &UploadService{
		server: s,
	}
}

// Describe reads the uploaded file and reports its name, media type and
// size in kilobytes rounded to two decimals. The declared Content-Type is
// trusted when present; otherwise the type is sniffed from the content.
func (us *UploadService) Describe(_ context.Context, fh *multipart.FileHeader) (*model.ImageInfo, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	format := fh.Header.Get(echo.HeaderContentType)
	if format == "" {
		format = mimetype.Detect(data).String()
	}

	return &model.ImageInfo{
		Filename: fh.Filename,
		Format:   format,
		SizeKB:   SizeKB(len(data)),
	}, nil
}

// SizeKB converts a byte count into kilobytes rounded to two decimals.
func SizeKB(n int) float64 {
	return math.Round(float64(n)/1024*100) / 100
}
