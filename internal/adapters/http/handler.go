package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jpp0ca/linkport/internal/domain"
	"github.com/jpp0ca/linkport/internal/ports"
)

// Handler holds the HTTP handlers for the conversion API.
type Handler struct {
	service ports.ConversionService
}

// NewHandler creates a new HTTP handler with the given conversion service.
func NewHandler(service ports.ConversionService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes sets up all API routes on the given Gin engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api/v1")
	{
		api.GET("/platforms", h.ListPlatforms)
		api.POST("/convert", h.ConvertPlaylist)
		api.POST("/match", h.MatchTracks)
	}
}

// Health returns a simple health check response.
//
//	@Summary		Health check
//	@Description	Returns the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// PlatformsResponse lists the platforms that can be converted from and to.
type PlatformsResponse struct {
	Platforms []domain.Platform `json:"platforms"`
}

// ListPlatforms returns the platforms with a registered provider.
//
//	@Summary		List platforms
//	@Description	Returns the streaming platforms this deployment can read from and match against.
//	@Tags			platforms
//	@Produce		json
//	@Success		200	{object}	PlatformsResponse
//	@Router			/api/v1/platforms [get]
func (h *Handler) ListPlatforms(c *gin.Context) {
	c.JSON(http.StatusOK, PlatformsResponse{Platforms: h.service.Platforms()})
}

// ConvertPlaylist mirrors a playlist from its source platform onto a target platform.
//
//	@Summary		Convert playlist
//	@Description	Reads the playlist behind source_url, fuzzy-matches every track on the target platform
//	@Description	and assembles a shareable mirror playlist. Each track gets a verdict (matched, partial,
//	@Description	not_found) with a confidence score, up to two alternatives and an explanation.
//	@Tags			conversion
//	@Accept			json
//	@Produce		json
//	@Param			request	body		domain.ConversionRequest	true	"Source playlist URL and target platform"
//	@Success		200		{object}	domain.ConversionResult
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		429		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/v1/convert [post]
func (h *Handler) ConvertPlaylist(c *gin.Context) {
	var req domain.ConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	result, err := h.service.Convert(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// MatchResponse carries the verdicts for an explicit track list.
type MatchResponse struct {
	Matches domain.MatchBatch `json:"matches"`
	Stats   domain.Stats      `json:"stats"`
}

// MatchTracks matches an explicit list of tracks on a target platform.
//
//	@Summary		Match tracks
//	@Description	Fuzzy-matches the given tracks on the target platform without assembling a playlist.
//	@Tags			conversion
//	@Accept			json
//	@Produce		json
//	@Param			request	body		domain.MatchRequest	true	"Target platform and tracks to match"
//	@Success		200		{object}	MatchResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/v1/match [post]
func (h *Handler) MatchTracks(c *gin.Context) {
	var req domain.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	batch, err := h.service.MatchTracks(c.Request.Context(), req.TargetPlatform, req.Tracks)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MatchResponse{Matches: batch, Stats: batch.Stats()})
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError maps domain errors onto HTTP status codes.
func writeError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "conversion_failed"

	switch {
	case errors.Is(err, domain.ErrInvalidPlaylistURL):
		status, code = http.StatusBadRequest, "invalid_url"
	case errors.Is(err, domain.ErrUnsupportedPlatform):
		status, code = http.StatusBadRequest, "unsupported_platform"
	case errors.Is(err, domain.ErrPlaylistNotFound):
		status, code = http.StatusNotFound, "playlist_not_found"
	case errors.Is(err, domain.ErrEmptyPlaylist):
		status, code = http.StatusUnprocessableEntity, "empty_playlist"
	case errors.Is(err, domain.ErrQuotaExceeded):
		status, code = http.StatusTooManyRequests, "quota_exceeded"
	case errors.Is(err, domain.ErrAuthFailed), errors.Is(err, domain.ErrMissingCreds):
		status, code = http.StatusBadGateway, "platform_unavailable"
	}

	c.JSON(status, ErrorResponse{Error: code, Message: err.Error()})
}
