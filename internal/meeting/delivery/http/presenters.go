package http

import (
	"fmt"
	"time"

	"smartmeet/internal/meeting"
	"smartmeet/internal/model"
)

// --- Request DTOs ---

type scheduleReq struct {
	Text          string `json:"text" binding:"required"`
	ReferenceTime string `json:"reference_time" binding:"omitempty"`

	refTime *time.Time // populated by validate
}

func (r *scheduleReq) validate() error {
	if r.ReferenceTime != "" {
		t, err := time.Parse(time.RFC3339, r.ReferenceTime)
		if err != nil {
			return fmt.Errorf("reference_time must be RFC3339: %w", err)
		}
		r.refTime = &t
	}
	return nil
}

func (r scheduleReq) toInput() meeting.ScheduleInput {
	return meeting.ScheduleInput{
		Text:          r.Text,
		ReferenceTime: r.refTime,
	}
}

// ---

type previewReq struct {
	Text          string `json:"text" binding:"required"`
	ReferenceTime string `json:"reference_time" binding:"omitempty"`

	refTime *time.Time
}

func (r *previewReq) validate() error {
	if r.ReferenceTime != "" {
		t, err := time.Parse(time.RFC3339, r.ReferenceTime)
		if err != nil {
			return fmt.Errorf("reference_time must be RFC3339: %w", err)
		}
		r.refTime = &t
	}
	return nil
}

func (r previewReq) toInput() meeting.PreviewInput {
	return meeting.PreviewInput{
		Text:          r.Text,
		ReferenceTime: r.refTime,
	}
}

// ---

type listReq struct {
	From   string `form:"from"`
	To     string `form:"to"`
	Status string `form:"status" binding:"omitempty,oneof=scheduled cancelled"`
	Limit  int    `form:"limit"`

	fromTime *time.Time
	toTime   *time.Time
}

func (r *listReq) validate() error {
	if r.From != "" {
		t, err := time.Parse(time.RFC3339, r.From)
		if err != nil {
			return fmt.Errorf("from must be RFC3339: %w", err)
		}
		r.fromTime = &t
	}
	if r.To != "" {
		t, err := time.Parse(time.RFC3339, r.To)
		if err != nil {
			return fmt.Errorf("to must be RFC3339: %w", err)
		}
		r.toTime = &t
	}
	return nil
}

func (r listReq) toInput() meeting.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return meeting.ListInput{
		From:   r.fromTime,
		To:     r.toTime,
		Status: model.MeetingStatus(r.Status),
		Limit:  limit,
	}
}

// ---

type slotsReq struct {
	Date            string   `form:"date" binding:"required"`
	DurationMinutes int      `form:"duration_minutes"`
	Participants    []string `form:"participants"`
	MaxSlots        int      `form:"max_slots"`

	day time.Time
}

func (r *slotsReq) validate() error {
	day, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	r.day = day
	return nil
}

func (r slotsReq) toInput() meeting.SlotsInput {
	return meeting.SlotsInput{
		Day:             r.day,
		DurationMinutes: r.DurationMinutes,
		Participants:    r.Participants,
		MaxSlots:        r.MaxSlots,
	}
}

// --- Response DTOs ---

type participantResp struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Department string `json:"department,omitempty"`
	Title      string `json:"title,omitempty"`
}

func newParticipantResp(p model.Participant) participantResp {
	return participantResp{
		Email:      p.Email,
		Name:       p.Name,
		Department: p.Department,
		Title:      p.Title,
	}
}

func newParticipantResps(ps []model.Participant) []participantResp {
	out := make([]participantResp, len(ps))
	for i, p := range ps {
		out[i] = newParticipantResp(p)
	}
	return out
}

type candidateResp struct {
	Participants    []string   `json:"participants"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Topic           string     `json:"topic,omitempty"`
	Priority        string     `json:"priority,omitempty"`
	Confidence      string     `json:"confidence"`
	DateMention     string     `json:"date_mention,omitempty"`
	TimeMention     string     `json:"time_mention,omitempty"`
}

func newCandidateResp(c model.CandidateMeeting) candidateResp {
	return candidateResp{
		Participants:    c.Participants,
		StartTime:       c.StartTime,
		DurationMinutes: c.DurationMinutes,
		Topic:           c.Topic,
		Priority:        string(c.Priority),
		Confidence:      string(c.Confidence),
		DateMention:     c.DateMention,
		TimeMention:     c.TimeMention,
	}
}

type meetingResp struct {
	ID              string            `json:"id"`
	Topic           string            `json:"topic"`
	Participants    []participantResp `json:"participants"`
	StartTime       time.Time         `json:"start_time"`
	EndTime         time.Time         `json:"end_time"`
	DurationMinutes int               `json:"duration_minutes"`
	Priority        string            `json:"priority"`
	Status          string            `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func newMeetingResp(m model.Meeting) meetingResp {
	return meetingResp{
		ID:              m.ID,
		Topic:           m.Topic,
		Participants:    newParticipantResps(m.Participants),
		StartTime:       m.StartTime,
		EndTime:         m.EndTime(),
		DurationMinutes: m.DurationMinutes,
		Priority:        string(m.Priority),
		Status:          string(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

type finalizedResp struct {
	Topic           string            `json:"topic"`
	Participants    []participantResp `json:"participants"`
	StartTime       time.Time         `json:"start_time"`
	DurationMinutes int               `json:"duration_minutes"`
	Priority        string            `json:"priority"`
}

func newFinalizedResp(m model.FinalizedMeeting) finalizedResp {
	return finalizedResp{
		Topic:           m.Topic,
		Participants:    newParticipantResps(m.Participants),
		StartTime:       m.StartTime,
		DurationMinutes: m.DurationMinutes,
		Priority:        string(m.Priority),
	}
}

type failureResp struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
	Code   string `json:"code"`
}

func newFailureResp(f *meeting.ValidationFailure) failureResp {
	return failureResp{
		Field:  f.Field,
		Reason: f.Reason,
		Code:   failureCode(f),
	}
}

type resolutionResp struct {
	Name        string            `json:"name"`
	Resolved    *participantResp  `json:"resolved,omitempty"`
	Suggestions []participantResp `json:"suggestions,omitempty"`
}

func newResolutionResps(resolutions []meeting.NameResolution) []resolutionResp {
	out := make([]resolutionResp, len(resolutions))
	for i, res := range resolutions {
		rr := resolutionResp{Name: res.Name}
		if res.Resolved != nil {
			p := newParticipantResp(*res.Resolved)
			rr.Resolved = &p
		}
		if len(res.Suggestions) > 0 {
			rr.Suggestions = newParticipantResps(res.Suggestions)
		}
		out[i] = rr
	}
	return out
}

type previewResp struct {
	Candidate        candidateResp      `json:"candidate"`
	Meeting          *finalizedResp     `json:"meeting,omitempty"`
	Failure          *failureResp       `json:"failure,omitempty"`
	Resolutions      []resolutionResp   `json:"resolutions"`
	Conflicts        []meeting.Conflict `json:"conflicts,omitempty"`
	AlternativeSlots []meeting.Slot     `json:"alternative_slots,omitempty"`
}

func (h *handler) newPreviewResp(out meeting.PreviewOutput) previewResp {
	resp := previewResp{
		Candidate:        newCandidateResp(out.Candidate),
		Resolutions:      newResolutionResps(out.Resolutions),
		Conflicts:        out.Conflicts,
		AlternativeSlots: out.AlternativeSlots,
	}
	if out.Meeting != nil {
		fr := newFinalizedResp(*out.Meeting)
		resp.Meeting = &fr
	}
	if out.Failure != nil {
		fr := newFailureResp(out.Failure)
		resp.Failure = &fr
	}
	return resp
}

type scheduleResp struct {
	Meeting   meetingResp        `json:"meeting"`
	Conflicts []meeting.Conflict `json:"conflicts,omitempty"`
}

func (h *handler) newScheduleResp(out meeting.ScheduleOutput) scheduleResp {
	return scheduleResp{
		Meeting:   newMeetingResp(out.Meeting),
		Conflicts: out.Conflicts,
	}
}

type listResp struct {
	Meetings []meetingResp `json:"meetings"`
	Count    int           `json:"count"`
}

func (h *handler) newListResp(out meeting.ListOutput) listResp {
	meetings := make([]meetingResp, len(out.Meetings))
	for i, m := range out.Meetings {
		meetings[i] = newMeetingResp(m)
	}
	return listResp{
		Meetings: meetings,
		Count:    out.Count,
	}
}

type detailResp struct {
	Meeting meetingResp `json:"meeting"`
}

func (h *handler) newDetailResp(m model.Meeting) detailResp {
	return detailResp{Meeting: newMeetingResp(m)}
}

type slotsResp struct {
	Slots []meeting.Slot `json:"slots"`
	Count int            `json:"count"`
}

func (h *handler) newSlotsResp(out meeting.SlotsOutput) slotsResp {
	return slotsResp{
		Slots: out.Slots,
		Count: len(out.Slots),
	}
}
