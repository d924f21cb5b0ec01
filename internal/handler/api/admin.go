package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "tickettock/internal/handler/dto/request"
	resdto "tickettock/internal/handler/dto/response"
	"tickettock/internal/handler/httperr"
	"tickettock/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cmds commands.AdminCommands
}

func NewAdminHandler(cmds commands.AdminCommands) *AdminHandler {
	return &AdminHandler{cmds: cmds}
}

// @Summary Reset seats
// @Description Rebuild the seat inventory and rewind the sequence. Run only in a maintenance window.
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Admin-Token header string true "Admin secret"
// @Param request body reqdto.ResetSeatsRequest false "Seat count"
// @Success 200 {object} resdto.ResetResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/v1/seats/reset [post]
func (h *AdminHandler) Reset(c *gin.Context) {
	var req reqdto.ResetSeatsRequest
	// the body is optional
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Reset(c.Request.Context(), commands.ResetParams{
		Token:     c.GetHeader(reqdto.HeaderAdminToken),
		SeatCount: req.SeatCount,
	})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromResetResult(result))
}
