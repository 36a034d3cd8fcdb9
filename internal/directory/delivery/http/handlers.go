package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"smartmeet/pkg/response"
)

// List godoc
// @Summary     List or search directory contacts
// @Description Without q, returns the full contact roster. With q, performs a fuzzy search (exact > first name > last name > substring > word overlap) and returns scored matches for UI correction flows.
// @Tags        Participants
// @Accept      json
// @Produce     json
// @Param       q query string false "Fuzzy search query (name or email)"
// @Success     200 {object} listResp
// @Router      /api/v1/participants [GET]
func (h *handler) List(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		response.OK(c, h.newListResp(h.dir.List()))
		return
	}

	response.OK(c, h.newSearchResp(h.dir.Search(q)))
}
