package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-engagement/internal/domain"
	"blog-engagement/internal/events"
	"blog-engagement/internal/middleware"
	"blog-engagement/internal/service"
)

// EngagementHandler handles likes, shares and comments.
type EngagementHandler struct {
	engagementService service.EngagementServiceInterface
}

// NewEngagementHandler creates a new EngagementHandler.
func NewEngagementHandler(engagementService service.EngagementServiceInterface) *EngagementHandler {
	return &EngagementHandler{
		engagementService: engagementService,
	}
}

// CommentResponse represents a comment in the API response.
type CommentResponse struct {
	ID        string `json:"id"`
	ArticleID string `json:"article_id"`
	UserID    string `json:"user_id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

func toCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		UserID:    c.UserID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt.Format(TimeFormat),
	}
}

// PostCommentRequest is the body of POST /articles/:id/comments.
type PostCommentRequest struct {
	Text   string `json:"text"`
	UserID string `json:"user_id"`
}

// ToggleLike handles POST /articles/:id/like
func (h *EngagementHandler) ToggleLike(c *gin.Context) {
	ctx := events.WithRequestID(c.Request.Context(), middleware.GetRequestID(c))

	result, err := h.engagementService.ToggleLike(ctx, c.Param("id"), middleware.GetDeviceID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// LikeStatus handles GET /articles/:id/like
func (h *EngagementHandler) LikeStatus(c *gin.Context) {
	result, err := h.engagementService.LikeStatus(c.Request.Context(), c.Param("id"), middleware.GetDeviceID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RecordShare handles POST /articles/:id/share
func (h *EngagementHandler) RecordShare(c *gin.Context) {
	ctx := events.WithRequestID(c.Request.Context(), middleware.GetRequestID(c))

	result, err := h.engagementService.RecordShare(ctx, c.Param("id"), middleware.GetDeviceID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListComments handles GET /articles/:id/comments
func (h *EngagementHandler) ListComments(c *gin.Context) {
	comments, err := h.engagementService.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		response = append(response, toCommentResponse(&comments[i]))
	}
	c.JSON(http.StatusOK, response)
}

// PostComment handles POST /articles/:id/comments
func (h *EngagementHandler) PostComment(c *gin.Context) {
	var req PostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid JSON body")
		return
	}

	ctx := events.WithRequestID(c.Request.Context(), middleware.GetRequestID(c))
	comment, err := h.engagementService.PostComment(ctx, c.Param("id"), domain.NewComment{
		Text:   req.Text,
		UserID: req.UserID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// Stats handles GET /articles/:id/stats
func (h *EngagementHandler) Stats(c *gin.Context) {
	counters, err := h.engagementService.Counters(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, counters)
}
