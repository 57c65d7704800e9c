package v1

import (
	"net/http"
	"strconv"

	"alumni-connect-backend/internal/delivery/http/response"
	"alumni-connect-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	recUC        domain.RecommendationUsecase
	defaultLimit int
}

func NewRecommendationHandler(protected *gin.RouterGroup, recUC domain.RecommendationUsecase, defaultLimit int) {
	handler := &RecommendationHandler{recUC: recUC, defaultLimit: defaultLimit}

	recs := protected.Group("/recommendations")
	{
		recs.GET("", handler.Feed)
		recs.GET("/users", handler.Users)
		recs.GET("/jobs", handler.Jobs)
		recs.GET("/events", handler.Events)
	}
}

func (h *RecommendationHandler) limit(c *gin.Context) int {
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return h.defaultLimit
}

// Feed godoc
// @Summary      Combined recommendation feed
// @Description  Suggested connections, job postings and events for the current user
// @Tags         recommendations
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /recommendations [get]
// @Security     BearerAuth
func (h *RecommendationHandler) Feed(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	feed := h.recUC.RecommendedFeed(c.Request.Context(), userID)
	response.Success(c, http.StatusOK, "Recommendations retrieved", feed)
}

// Users godoc
// @Summary      Suggested connections
// @Tags         recommendations
// @Produce      json
// @Param        limit  query     int  false  "Maximum results"
// @Success      200    {object}  response.Response
// @Router       /recommendations/users [get]
// @Security     BearerAuth
func (h *RecommendationHandler) Users(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	recs := h.recUC.RecommendedUsers(c.Request.Context(), userID, h.limit(c))
	response.Success(c, http.StatusOK, "Recommendations retrieved", recs)
}

// Jobs godoc
// @Summary      Suggested job and internship postings
// @Tags         recommendations
// @Produce      json
// @Param        limit  query     int  false  "Maximum results"
// @Success      200    {object}  response.Response
// @Router       /recommendations/jobs [get]
// @Security     BearerAuth
func (h *RecommendationHandler) Jobs(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	recs := h.recUC.RecommendedJobs(c.Request.Context(), userID, h.limit(c))
	response.Success(c, http.StatusOK, "Recommendations retrieved", recs)
}

// Events godoc
// @Summary      Suggested upcoming events
// @Tags         recommendations
// @Produce      json
// @Param        limit  query     int  false  "Maximum results"
// @Success      200    {object}  response.Response
// @Router       /recommendations/events [get]
// @Security     BearerAuth
func (h *RecommendationHandler) Events(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	recs := h.recUC.RecommendedEvents(c.Request.Context(), userID, h.limit(c))
	response.Success(c, http.StatusOK, "Recommendations retrieved", recs)
}
