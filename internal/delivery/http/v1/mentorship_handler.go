package v1

import (
	"net/http"
	"strconv"

	"alumni-connect-backend/internal/delivery/http/response"
	"alumni-connect-backend/internal/domain"
	"alumni-connect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type MentorshipHandler struct {
	mentorshipUC domain.MentorshipUsecase
}

func NewMentorshipHandler(protected *gin.RouterGroup, mentorshipUC domain.MentorshipUsecase) {
	handler := &MentorshipHandler{mentorshipUC: mentorshipUC}

	mentorship := protected.Group("/mentorship/requests")
	{
		mentorship.POST("", handler.Request)
		mentorship.GET("", handler.ListIncoming)
		mentorship.PATCH("/:id", handler.Respond)
	}
}

type MentorshipRequestBody struct {
	MentorID string `json:"mentor_id" binding:"required"`
	Message  string `json:"message" binding:"max=1000"`
}

type MentorshipResponseBody struct {
	Status string `json:"status" binding:"required,oneof=accepted declined"`
}

// Request godoc
// @Summary      Ask a mentor for mentorship
// @Tags         mentorship
// @Accept       json
// @Produce      json
// @Param        request  body      MentorshipRequestBody  true  "Request JSON"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /mentorship/requests [post]
// @Security     BearerAuth
func (h *MentorshipHandler) Request(c *gin.Context) {
	var req MentorshipRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	created, err := h.mentorshipUC.RequestMentorship(c.Request.Context(), req.MentorID, req.Message)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Mentorship request sent", created)
}

// ListIncoming godoc
// @Summary      List mentorship requests addressed to the current user
// @Tags         mentorship
// @Produce      json
// @Param        page       query     int  false  "Page"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /mentorship/requests [get]
// @Security     BearerAuth
func (h *MentorshipHandler) ListIncoming(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	requests, total, err := h.mentorshipUC.ListIncomingRequests(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Mentorship requests retrieved", gin.H{
		"requests": requests,
		"total":    total,
	})
}

// Respond godoc
// @Summary      Accept or decline a mentorship request
// @Tags         mentorship
// @Accept       json
// @Produce      json
// @Param        id      path      int                     true  "Request ID"
// @Param        status  body      MentorshipResponseBody  true  "Status JSON"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /mentorship/requests/{id} [patch]
// @Security     BearerAuth
func (h *MentorshipHandler) Respond(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid request ID"))
		return
	}

	var req MentorshipResponseBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.mentorshipUC.RespondToRequest(c.Request.Context(), id, req.Status); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Mentorship request updated", nil)
}
