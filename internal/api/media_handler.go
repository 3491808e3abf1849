package api

import (
	"alcyxob/fitness-tracker/internal/storage"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// MediaHandler hands out presigned URLs for exercise videos. The video
// bytes never pass through the API.
type MediaHandler struct {
	storage storage.FileStorage
	expiry  time.Duration
}

func NewMediaHandler(fs storage.FileStorage, expiry time.Duration) *MediaHandler {
	if expiry <= 0 {
		expiry = storage.DefaultPresignedURLExpiry
	}
	return &MediaHandler{storage: fs, expiry: expiry}
}

type VideoUploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

type VideoUploadResponse struct {
	UploadURL   string `json:"uploadUrl"`
	DownloadURL string `json:"downloadUrl"`
	ObjectKey   string `json:"objectKey"`
	ExpiresIn   int    `json:"expiresIn"` // seconds
}

// CreateVideoUpload reserves a key under the caller's prefix and presigns
// a PUT for it plus a GET to put into an exercise's videoUrl.
func (h *MediaHandler) CreateVideoUpload(c *gin.Context) {
	var req VideoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "fileName and contentType are required")
		return
	}
	if !strings.HasPrefix(req.ContentType, "video/") {
		abortWithError(c, http.StatusBadRequest, "Only video uploads are supported")
		return
	}

	key, err := storage.VideoKey(c.GetString(ContextUserIDKey), req.FileName)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx := c.Request.Context()
	uploadURL, err := h.storage.GeneratePresignedUploadURL(ctx, key, req.ContentType, h.expiry)
	if err != nil {
		respondError(c, errors.New("Could not prepare video upload"))
		return
	}
	downloadURL, err := h.storage.GeneratePresignedDownloadURL(ctx, key, h.expiry)
	if err != nil {
		respondError(c, errors.New("Could not prepare video upload"))
		return
	}

	c.JSON(http.StatusCreated, VideoUploadResponse{
		UploadURL:   uploadURL,
		DownloadURL: downloadURL,
		ObjectKey:   key,
		ExpiresIn:   int(h.expiry / time.Second),
	})
}

// DeleteVideo removes one of the caller's own videos.
func (h *MediaHandler) DeleteVideo(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if !storage.OwnsVideoKey(c.GetString(ContextUserIDKey), key) {
		abortWithError(c, http.StatusNotFound, "Video not found")
		return
	}
	if err := h.storage.DeleteObject(c.Request.Context(), key); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video removed"})
}
