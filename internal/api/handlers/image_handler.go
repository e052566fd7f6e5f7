package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/civictrack/pkg/response"
	"github.com/linskybing/civictrack/pkg/storage"
)

const MaxImageBytes = 5 << 20

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

type ImageHandler struct {
	store storage.ObjectStore
}

func NewImageHandler(store storage.ObjectStore) *ImageHandler {
	return &ImageHandler{store: store}
}

type ImageUploadResponse struct {
	ImageURL string `json:"image_url"`
}

// Upload godoc
// @Summary Upload a report photo
// @Tags reports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} ImageUploadResponse
// @Failure 400 {object} response.ErrorResponse "Missing file"
// @Failure 413 {object} response.ErrorResponse "File too large"
// @Failure 415 {object} response.ErrorResponse "Unsupported image type"
// @Failure 503 {object} response.ErrorResponse "Object storage not configured"
// @Router /api/reports/images [post]
func (h *ImageHandler) Upload(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "image uploads are not configured"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}
	if fh.Size > MaxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, response.ErrorResponse{Error: fmt.Sprintf("file exceeds %d bytes", MaxImageBytes)})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "could not read upload"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxImageBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "could not read upload"})
		return
	}
	if len(data) > MaxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, response.ErrorResponse{Error: fmt.Sprintf("file exceeds %d bytes", MaxImageBytes)})
		return
	}

	mt := mimetype.Detect(data)
	if !mimetype.EqualsAny(mt.String(), allowedImageTypes...) {
		c.JSON(http.StatusUnsupportedMediaType, response.ErrorResponse{Error: "unsupported image type " + mt.String()})
		return
	}

	key := "reports/" + uuid.NewString() + mt.Extension()
	url, err := h.store.Put(c.Request.Context(), key, bytes.NewReader(data), int64(len(data)), mt.String())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ImageUploadResponse{ImageURL: url})
}
