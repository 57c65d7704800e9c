package v1

import (
	"net/http"
	"strconv"

	"alumni-connect-backend/internal/delivery/http/response"
	"alumni-connect-backend/internal/domain"
	"alumni-connect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profiles := protected.Group("/profiles")
	{
		profiles.GET("", handler.Directory)
		profiles.GET("/me", handler.GetOwn)
		profiles.PUT("/me", handler.UpdateOwn)
	}
}

type UpdateProfileRequest struct {
	FullName       string   `json:"full_name" binding:"required"`
	Role           string   `json:"role" binding:"required,oneof=student alumni admin"`
	Headline       string   `json:"headline"`
	Bio            string   `json:"bio"`
	GraduationYear *int     `json:"graduation_year"`
	Skills         []string `json:"skills"`
	Interests      []string `json:"interests"`
	Location       string   `json:"location"`
	Company        string   `json:"company"`
	IsMentor       bool     `json:"is_mentor"`
}

// GetOwn godoc
// @Summary      Get own profile
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profiles/me [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetOwn(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	profile, err := h.profileUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// UpdateOwn godoc
// @Summary      Update own profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateProfileRequest  true  "Profile JSON"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /profiles/me [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateOwn(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := &domain.Profile{
		FullName:       req.FullName,
		Role:           req.Role,
		Headline:       req.Headline,
		Bio:            req.Bio,
		GraduationYear: req.GraduationYear,
		Skills:         req.Skills,
		Interests:      req.Interests,
		Location:       req.Location,
		Company:        req.Company,
		IsMentor:       req.IsMentor,
	}

	if err := h.profileUC.UpdateProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// Directory godoc
// @Summary      Browse the member directory
// @Tags         profiles
// @Produce      json
// @Param        page       query     int  false  "Page"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /profiles [get]
// @Security     BearerAuth
func (h *ProfileHandler) Directory(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	profiles, total, err := h.profileUC.ListDirectory(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Directory retrieved", gin.H{
		"profiles": profiles,
		"total":    total,
	})
}
