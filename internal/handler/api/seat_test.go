//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"tickettock/internal/handler/api"
	resdto "tickettock/internal/handler/dto/response"
	"tickettock/internal/pkg/errs"
	"tickettock/internal/usecase/commands"
	"tickettock/internal/usecase/queries"
	"tickettock/tests/common/builder"
	"tickettock/tests/common/httptest"
	commandsmock "tickettock/tests/mock/commands"
	queriesmock "tickettock/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SeatHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSeatCommands
	mockQueries  *queriesmock.MockSeatQueries
}

func (s *SeatHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSeatCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSeatQueries(s.mockCtrl)
	h := api.NewSeatHandler(s.mockCommands, s.mockQueries)

	s.router = gin.New()
	s.router.GET("/api/v1/seats", h.List)
	s.router.GET("/api/v1/seats/:id", h.Get)
	s.router.POST("/api/v1/seats/:id/reserve", h.Reserve)
}

func (s *SeatHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSeatHandlerSuite(t *testing.T) {
	suite.Run(t, new(SeatHandlerTestSuite))
}

func (s *SeatHandlerTestSuite) TestList() {
	s.Run("success: returns seats in order", func() {
		views := []*queries.SeatView{
			queries.ToSeatView(builder.NewReservationBuilder().BuildReservedSeat(1)),
			{ID: 2, Status: "available"},
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/seats", nil, nil)

		var resp []resdto.SeatResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Require().Len(resp, 2)
		s.Equal(int64(1), resp[0].ID)
		s.Equal("reserved", resp[0].Status)
		s.Require().NotNil(resp[0].ReservedBy)
		s.Equal("Alice", *resp[0].ReservedBy)
		s.Equal("available", resp[1].Status)
		s.Nil(resp[1].ReservedBy)
	})

	s.Run("error: 503 when the read store fails", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(nil, errs.Mark(errs.New("db down"), errs.ErrInfraUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/seats", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}

func (s *SeatHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), int64(4)).
			Return(&queries.SeatView{ID: 4, Status: "available"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/seats/4", nil, nil)

		var resp resdto.SeatResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(4), resp.ID)
	})

	s.Run("error: 400 for non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/seats/abc", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 for unknown seat", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), int64(99)).
			Return(nil, errs.Mark(errs.New("missing"), errs.ErrSeatNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/seats/99", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Seat not found")
	})
}

func (s *SeatHandlerTestSuite) TestReserve() {
	b := builder.NewReservationBuilder()
	reqBody := b.BuildRequestDTO()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), b.BuildDirectParams(2)).
			Return(b.BuildReservedSeat(2), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/v1/seats/2/reserve", reqBody, nil)

		var resp resdto.SeatResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(2), resp.ID)
		s.Equal("reserved", resp.Status)
		s.Require().NotNil(resp.Phone)
		s.Equal("010-1234-5678", *resp.Phone)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "unknown seat", commandsError: errs.Mark(errs.New("missing"), errs.ErrSeatNotFound), expectedStatus: http.StatusNotFound, expectedMsg: "Seat not found"},
			{name: "already reserved", commandsError: errs.Mark(errs.New("taken"), errs.ErrSeatAlreadyReserved), expectedStatus: http.StatusConflict, expectedMsg: "Seat already reserved"},
			{name: "store down", commandsError: errs.Mark(errs.New("db down"), errs.ErrInfraUnavailable), expectedStatus: http.StatusServiceUnavailable, expectedMsg: ""},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.AssignableToTypeOf(commands.DirectReserveParams{})).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/v1/seats/1/reserve", reqBody, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 on missing body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/v1/seats/1/reserve", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
