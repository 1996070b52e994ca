package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/person-api/internal/http/response"
	"github.com/yungbote/person-api/internal/platform/dbctx"
	"github.com/yungbote/person-api/internal/services"
)

type ReportHandler struct {
	people services.PersonService
}

func NewReportHandler(people services.PersonService) *ReportHandler {
	return &ReportHandler{people: people}
}

// GET /api/report/person/count
// Body is a bare JSON integer.
func (h *ReportHandler) CountPeople(c *gin.Context) {
	n, err := h.people.CountPeople(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.RespondOK(c, n)
}
