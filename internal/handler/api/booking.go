package api

import (
	"errors"
	"net/http"

	reqdto "booking-api/internal/handler/dto/request"
	resdto "booking-api/internal/handler/dto/response"
	"booking-api/internal/handler/httperr"
	"booking-api/internal/usecase/commands"
	"booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMalformedID = errors.New("malformed booking id")

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Public booking form. Sends an SMS confirmation when the phone number normalizes.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.BookingRequest true "Booking"
// @Success 201 {object} resdto.BookingIDResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortInvalidRequest(c, err)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req.ToCreateDraft())
	if err != nil {
		abortFromError(c, err, "Server error")
		return
	}

	c.JSON(http.StatusCreated, resdto.BookingIDResponse{OK: true, ID: result.BookingID.String()})
}

// @Summary List bookings
// @Description Every booking ordered by start time
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BookingListResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortFromError(c, err, "Failed to fetch bookings")
		return
	}

	res, err := resdto.FromBookingViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch bookings", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Look up own bookings
// @Description Upcoming bookings matching a last name and the last four phone digits
// @Tags bookings
// @Produce json
// @Param lastName query string true "Last name"
// @Param last4 query string true "Last four digits of the phone number"
// @Success 200 {object} resdto.PublicBookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/bookings/public [get]
func (h *BookingHandler) PublicLookup(c *gin.Context) {
	var query reqdto.PublicLookupQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortInvalidRequest(c, err)
		return
	}

	views, err := h.q.PublicLookup(c.Request.Context(), query.LastName, query.Last4)
	if err != nil {
		abortFromError(c, err, "Failed to fetch")
		return
	}

	res, err := resdto.FromPublicBookingViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update booking
// @Description Full overwrite of a booking. No notification is sent.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.BookingRequest true "Booking"
// @Success 200 {object} resdto.BookingIDResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/bookings/{id} [put]
func (h *BookingHandler) Update(c *gin.Context) {
	// an id that cannot exist is reported like any other unknown id
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, errMalformedID, "Not found", nil)
		return
	}

	var req reqdto.BookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortInvalidRequest(c, bindErr)
		return
	}

	if err = h.cmds.Update(c.Request.Context(), id, req.ToDraft()); err != nil {
		abortFromError(c, err, "Server error")
		return
	}

	c.JSON(http.StatusOK, resdto.BookingIDResponse{OK: true, ID: id.String()})
}
