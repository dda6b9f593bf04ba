// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifequest/backend/internal/application/usecase/progress"
	"github.com/lifequest/backend/internal/integration/entrypoint/dto"
)

// SessionController handles session endpoints.
//
// Login is a stub: any submitted name is accepted and the current
// progression snapshot is returned. There is no credential check and no
// token issuance, the app tracks a single local profile.
type SessionController struct {
	getProfileUseCase *progress.GetProfileUseCase
}

// SessionRequest represents the request body for starting a session.
type SessionRequest struct {
	Name string `json:"name"`
}

// NewSessionController creates a new session controller instance.
func NewSessionController(getProfileUseCase *progress.GetProfileUseCase) *SessionController {
	return &SessionController{
		getProfileUseCase: getProfileUseCase,
	}
}

// Start handles POST /session requests.
func (c *SessionController) Start(ctx *gin.Context) {
	var req SessionRequest
	_ = ctx.ShouldBindJSON(&req)

	output, err := c.getProfileUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to start session",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Progress))
}
