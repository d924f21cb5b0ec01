package api

import (
	"net/http"
	"strconv"
	"strings"

	"tickettock/internal/domain/reservation"
	reqdto "tickettock/internal/handler/dto/request"
	resdto "tickettock/internal/handler/dto/response"
	"tickettock/internal/handler/httperr"
	"tickettock/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds   commands.ReservationCommands
	pinned bool
}

// The sequence header is parsed only when policy.Strategy is pinned.
func NewReservationHandler(cmds commands.ReservationCommands, policy commands.ReservationPolicy) *ReservationHandler {
	return &ReservationHandler{
		cmds:   cmds,
		pinned: policy.Strategy == reservation.StrategyPinned,
	}
}

// @Summary FCFS reservation
// @Description Reserve the next seat in arrival order. A repeated request from the same identity replays the earlier grant.
// @Tags seats
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Requester identity"
// @Param X-FCFS-Sequence header integer false "Pre-assigned sequence (pinned strategy only)"
// @Param request body reqdto.ReserveSeatRequest true "Holder details"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/v1/seats/reservation/fcfs [post]
func (h *ReservationHandler) ReserveFCFS(c *gin.Context) {
	var req reqdto.ReserveSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	params := commands.ReserveParams{
		Identity:   c.GetHeader(reqdto.HeaderUserID),
		HolderName: req.UserName,
		Contact:    req.GetPhone(),
	}

	if h.pinned {
		seq, err := parseSequenceHeader(c.GetHeader(reqdto.HeaderFCFSSequence))
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid X-FCFS-Sequence header", nil)
			return
		}
		params.PinnedSequence = seq
	}

	outcome, err := h.cmds.Reserve(c.Request.Context(), params)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOutcome(outcome))
}

// an absent header is not an error here; the coordinator decides whether it is required
func parseSequenceHeader(raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
