package http

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sparsha/skincare-ai/internal/domain/advisor"
	"github.com/sparsha/skincare-ai/internal/domain/skintype"
	"github.com/sparsha/skincare-ai/internal/domain/weather"
	apperrors "github.com/sparsha/skincare-ai/pkg/errors"
)

// uploads larger than this are rejected before any processing
const maxUploadBytes = 10 << 20

// Handler wires the HTTP transport to the domain services.
type Handler struct {
	advisorSvc advisor.Service
	skinSvc    skintype.Service
	weatherSvc weather.Service
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(advisorSvc advisor.Service, skinSvc skintype.Service, weatherSvc weather.Service, logger *slog.Logger) *Handler {
	return &Handler{
		advisorSvc: advisorSvc,
		skinSvc:    skinSvc,
		weatherSvc: weatherSvc,
		logger:     logger.With("component", "http.handler"),
	}
}

// Root identifies the API.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Sparsha API - Skin Care AI Assistant"})
}

// Health is the liveness probe. It always answers 200; the body reports which
// collaborators are configured.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":             "healthy",
		"model_loaded":       h.skinSvc.ModelLoaded(),
		"weather_configured": h.weatherSvc.Configured(),
		"ai_configured":      h.advisorSvc.AIConfigured(),
	})
}

// AnalyzeSkin handles the multipart analysis endpoint. Required fields are
// validated before any collaborator call.
func (h *Handler) AnalyzeSkin(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "image file is required", err))
		return
	}
	if file.Size > maxUploadBytes {
		abortWithError(c, NewHTTPError(http.StatusRequestEntityTooLarge, "invalid_request", "image file too large", nil))
		return
	}

	req := advisor.AnalysisRequest{
		Occupation: strings.TrimSpace(c.PostForm("occupation")),
		Location:   strings.TrimSpace(c.PostForm("location")),
	}
	if raw := strings.TrimSpace(c.PostForm("age")); raw != "" {
		age, parseErr := strconv.Atoi(raw)
		if parseErr != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "age must be an integer", parseErr))
			return
		}
		req.Age = &age
	}
	if req.Occupation == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "occupation is required", nil))
		return
	}
	if req.Location == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "location is required", nil))
		return
	}

	image, err := readUpload(file)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "failed to read image file", err))
		return
	}
	req.Image = image

	result, err := h.advisorSvc.Analyze(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "analysis_failed"
		if apperrors.IsCode(err, "invalid_input") {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, result)
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(io.LimitReader(src, maxUploadBytes))
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
