// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifequest/backend/internal/application/usecase/progress"
	"github.com/lifequest/backend/internal/integration/entrypoint/dto"
)

// ProfileController handles profile endpoints.
type ProfileController struct {
	getProfileUseCase *progress.GetProfileUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(getProfileUseCase *progress.GetProfileUseCase) *ProfileController {
	return &ProfileController{
		getProfileUseCase: getProfileUseCase,
	}
}

// Get handles GET /profile requests.
func (c *ProfileController) Get(ctx *gin.Context) {
	output, err := c.getProfileUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve profile",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Progress))
}
