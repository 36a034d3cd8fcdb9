package http

import (
	"smartmeet/internal/directory"
	"smartmeet/internal/model"
)

type participantResp struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Department string `json:"department,omitempty"`
	Title      string `json:"title,omitempty"`
}

func newParticipantResps(ps []model.Participant) []participantResp {
	out := make([]participantResp, len(ps))
	for i, p := range ps {
		out[i] = participantResp{
			Email:      p.Email,
			Name:       p.Name,
			Department: p.Department,
			Title:      p.Title,
		}
	}
	return out
}

type listResp struct {
	Participants []participantResp `json:"participants"`
	Count        int               `json:"count"`

	// Search fields, present only when q was given
	Query      string   `json:"query,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
	Exact      *bool    `json:"exact,omitempty"`
}

func (h *handler) newListResp(ps []model.Participant) listResp {
	return listResp{
		Participants: newParticipantResps(ps),
		Count:        len(ps),
	}
}

func (h *handler) newSearchResp(m directory.Match) listResp {
	confidence := m.Confidence
	exact := m.Exact
	return listResp{
		Participants: newParticipantResps(m.Matches),
		Count:        len(m.Matches),
		Query:        m.Query,
		Confidence:   &confidence,
		Exact:        &exact,
	}
}
