package v1

import (
	"net/http"
	"strconv"
	"time"

	"alumni-connect-backend/internal/delivery/http/response"
	"alumni-connect-backend/internal/domain"
	"alumni-connect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventUC domain.EventUsecase
}

func NewEventHandler(protected *gin.RouterGroup, eventUC domain.EventUsecase) {
	handler := &EventHandler{eventUC: eventUC}

	events := protected.Group("/events")
	{
		events.GET("", handler.ListUpcoming)
		events.GET("/:id", handler.GetDetails)
		events.POST("", handler.Create)
	}

	// Admin moderation routes; the usecase enforces the role
	admin := protected.Group("/admin/events")
	{
		admin.GET("", handler.ListByStatus)
		admin.PATCH("/:id/status", handler.Moderate)
	}
}

type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
}

type ModerateEventRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// Create godoc
// @Summary      Submit an event for moderation
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        event  body      CreateEventRequest  true  "Event JSON"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /events [post]
// @Security     BearerAuth
func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	event := &domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Category:    req.Category,
	}
	if err := h.eventUC.CreateEvent(c.Request.Context(), event); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Event submitted for approval", event)
}

// ListUpcoming godoc
// @Summary      List approved upcoming events
// @Tags         events
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /events [get]
// @Security     BearerAuth
func (h *EventHandler) ListUpcoming(c *gin.Context) {
	events, err := h.eventUC.ListUpcomingEvents(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Events retrieved", events)
}

// GetDetails godoc
// @Summary      Get event details
// @Tags         events
// @Produce      json
// @Param        id   path      int  true  "Event ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /events/{id} [get]
// @Security     BearerAuth
func (h *EventHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid event ID"))
		return
	}

	event, err := h.eventUC.GetEventDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Event retrieved", event)
}

// ListByStatus godoc
// @Summary      List events by moderation status (admin)
// @Tags         events
// @Produce      json
// @Param        status     query     string  false  "Status filter"
// @Param        page       query     int     false  "Page"
// @Param        page_size  query     int     false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /admin/events [get]
// @Security     BearerAuth
func (h *EventHandler) ListByStatus(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only admins can list all events"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	events, total, err := h.eventUC.ListEvents(c.Request.Context(), c.Query("status"), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Events retrieved", gin.H{
		"events": events,
		"total":  total,
	})
}

// Moderate godoc
// @Summary      Approve or reject an event (admin)
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id      path      int                   true  "Event ID"
// @Param        status  body      ModerateEventRequest  true  "Status JSON"
// @Success      200     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Router       /admin/events/{id}/status [patch]
// @Security     BearerAuth
func (h *EventHandler) Moderate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid event ID"))
		return
	}

	var req ModerateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.eventUC.ModerateEvent(c.Request.Context(), id, req.Status); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Event status updated", nil)
}
