package v1

import (
	"net/http"
	"strconv"

	"alumni-connect-backend/internal/delivery/http/response"
	"alumni-connect-backend/internal/domain"
	"alumni-connect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PostingHandler struct {
	postingUC domain.PostingUsecase
}

func NewPostingHandler(protected *gin.RouterGroup, postingUC domain.PostingUsecase) {
	handler := &PostingHandler{postingUC: postingUC}

	postings := protected.Group("/postings")
	{
		postings.GET("", handler.List)
		postings.GET("/:id", handler.GetDetails)
		postings.POST("", handler.Create)
		postings.PUT("/:id", handler.Update)
		postings.DELETE("/:id", handler.Delete)
	}
}

type CreatePostingRequest struct {
	Title       string   `json:"title" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	Kind        string   `json:"kind" binding:"omitempty,oneof=job internship"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	ContactLink string   `json:"contact_link"`
	Tags        []string `json:"tags"`
}

func (req *CreatePostingRequest) toDomain() *domain.Posting {
	toPtr := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}
	return &domain.Posting{
		Title:       req.Title,
		Content:     req.Content,
		Kind:        req.Kind,
		Company:     toPtr(req.Company),
		Location:    toPtr(req.Location),
		ContactLink: toPtr(req.ContactLink),
		Tags:        req.Tags,
	}
}

// Create godoc
// @Summary      Publish a job or internship posting
// @Tags         postings
// @Accept       json
// @Produce      json
// @Param        posting  body      CreatePostingRequest  true  "Posting JSON"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /postings [post]
// @Security     BearerAuth
func (h *PostingHandler) Create(c *gin.Context) {
	var req CreatePostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	posting := req.toDomain()
	if err := h.postingUC.CreatePosting(c.Request.Context(), posting); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Posting created", posting)
}

// List godoc
// @Summary      List postings, newest first
// @Tags         postings
// @Produce      json
// @Param        page       query     int  false  "Page"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /postings [get]
// @Security     BearerAuth
func (h *PostingHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	postings, total, err := h.postingUC.ListPostings(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Postings retrieved", gin.H{
		"postings": postings,
		"total":    total,
	})
}

// GetDetails godoc
// @Summary      Get posting details
// @Tags         postings
// @Produce      json
// @Param        id   path      int  true  "Posting ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /postings/{id} [get]
// @Security     BearerAuth
func (h *PostingHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid posting ID"))
		return
	}

	posting, err := h.postingUC.GetPostingDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Posting retrieved", posting)
}

// Update godoc
// @Summary      Update an owned posting
// @Tags         postings
// @Accept       json
// @Produce      json
// @Param        id       path      int                   true  "Posting ID"
// @Param        posting  body      CreatePostingRequest  true  "Posting JSON"
// @Success      200      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /postings/{id} [put]
// @Security     BearerAuth
func (h *PostingHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid posting ID"))
		return
	}

	var req CreatePostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	posting := req.toDomain()
	posting.ID = id
	if err := h.postingUC.UpdatePosting(c.Request.Context(), posting); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Posting updated", posting)
}

// Delete godoc
// @Summary      Delete an owned posting
// @Tags         postings
// @Produce      json
// @Param        id   path      int  true  "Posting ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /postings/{id} [delete]
// @Security     BearerAuth
func (h *PostingHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid posting ID"))
		return
	}

	if err := h.postingUC.DeletePosting(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Posting deleted", nil)
}
