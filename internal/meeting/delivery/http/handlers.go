package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartmeet/pkg/response"
)

// Preview godoc
// @Summary     Preview a meeting request
// @Description Parses the natural-language request and returns the extracted candidate, name resolutions, validation outcome, conflicts and alternative slots without storing anything.
// @Tags        Meetings
// @Accept      json
// @Produce     json
// @Param       body body previewReq true "Meeting request text with optional RFC3339 reference time"
// @Success     200 {object} previewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meetings/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPreviewReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Preview(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err), h.failurePayload(err))
		return
	}

	response.OK(c, h.newPreviewResp(output))
}

// Schedule godoc
// @Summary     Schedule a meeting from natural language
// @Description Parses the request, validates it against the contact directory and stores the meeting. Overlap conflicts are returned as warnings, never as errors.
// @Tags        Meetings
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "Meeting request text with optional RFC3339 reference time"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request - validation failure names the failing field"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meetings [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Schedule(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Schedule: %v", err)
		response.Error(c, h.mapError(err), h.failurePayload(err))
		return
	}

	response.OK(c, h.newScheduleResp(output))
}

// List godoc
// @Summary     List scheduled meetings
// @Description Returns stored meetings ordered by start time with optional time-range and status filters.
// @Tags        Meetings
// @Accept      json
// @Produce     json
// @Param       from   query string false "Keep meetings starting at or after this RFC3339 instant"
// @Param       to     query string false "Keep meetings starting before this RFC3339 instant"
// @Param       status query string false "Filter by status (scheduled/cancelled)"
// @Param       limit  query int    false "Max results (default: 50)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meetings [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get meeting detail
// @Description Returns a single stored meeting by its ID.
// @Tags        Meetings
// @Accept      json
// @Produce     json
// @Param       id path string true "Meeting ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meetings/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Cancel godoc
// @Summary     Cancel a meeting
// @Description Marks a stored meeting cancelled. Cancelled meetings stay listable but no longer count as conflicts.
// @Tags        Meetings
// @Accept      json
// @Produce     json
// @Param       id path string true "Meeting ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meetings/{id} [DELETE]
func (h *handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Cancel(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Cancel: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Slots godoc
// @Summary     Suggest free meeting slots
// @Description Scans one day's business hours for windows where every requested participant is free.
// @Tags        Meetings
// @Accept      json
// @Produce     json
// @Param       date             query string   true  "Day to scan (YYYY-MM-DD)"
// @Param       duration_minutes query int      false "Slot length in minutes (default: 30)"
// @Param       participants     query []string false "Participant names or emails" collectionFormat(multi)
// @Param       max_slots        query int      false "Max suggestions (default: 5)"
// @Success     200 {object} slotsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meetings/slots [GET]
func (h *handler) Slots(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSlotsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SuggestSlots(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.SuggestSlots: %v", err)
		response.Error(c, h.mapError(err), h.failurePayload(err))
		return
	}

	response.OK(c, h.newSlotsResp(output))
}
