package api

import (
	"net/http"
	"strconv"

	reqdto "tickettock/internal/handler/dto/request"
	resdto "tickettock/internal/handler/dto/response"
	"tickettock/internal/handler/httperr"
	"tickettock/internal/usecase/commands"
	"tickettock/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SeatHandler struct {
	cmds commands.SeatCommands
	q    queries.SeatQueries
}

func NewSeatHandler(cmds commands.SeatCommands, q queries.SeatQueries) *SeatHandler {
	return &SeatHandler{cmds: cmds, q: q}
}

// @Summary List seats
// @Description List all seats ordered by id
// @Tags seats
// @Produce json
// @Success 200 {array} resdto.SeatResponse
// @Failure 503 {object} httperr.Response
// @Router /api/v1/seats [get]
func (h *SeatHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	resp, err := resdto.FromSeatViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get seat
// @Description Get a seat by id
// @Tags seats
// @Produce json
// @Param id path int true "Seat ID"
// @Success 200 {object} resdto.SeatResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/v1/seats/{id} [get]
func (h *SeatHandler) Get(c *gin.Context) {
	id, ok := seatIDParam(c)
	if !ok {
		return
	}

	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	resp, err := resdto.FromSeatView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Reserve a specific seat
// @Description Reserve the given seat directly, bypassing the FCFS queue
// @Tags seats
// @Accept json
// @Produce json
// @Param id path int true "Seat ID"
// @Param request body reqdto.ReserveSeatRequest true "Holder details"
// @Success 200 {object} resdto.SeatResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/v1/seats/{id}/reserve [post]
func (h *SeatHandler) Reserve(c *gin.Context) {
	id, ok := seatIDParam(c)
	if !ok {
		return
	}

	var req reqdto.ReserveSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	reserved, err := h.cmds.Reserve(c.Request.Context(), commands.DirectReserveParams{
		SeatID:     id,
		HolderName: req.UserName,
		Contact:    req.GetPhone(),
	})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	resp, err := resdto.FromSeat(reserved)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func seatIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return 0, false
	}
	return id, true
}
