package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/person-api/internal/domain/person"
	"github.com/yungbote/person-api/internal/http/response"
	"github.com/yungbote/person-api/internal/platform/dbctx"
	"github.com/yungbote/person-api/internal/services"
)

type PersonHandler struct {
	people services.PersonService
}

func NewPersonHandler(people services.PersonService) *PersonHandler {
	return &PersonHandler{people: people}
}

// GET /api/person
func (h *PersonHandler) ListPeople(c *gin.Context) {
	people, err := h.people.ListPeople(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.RespondOK(c, people)
}

// GET /api/person/:id
func (h *PersonHandler) GetPerson(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.BadRequest(c, codeInvalidPersonID, err)
		return
	}
	p, err := h.people.GetPerson(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.RespondOK(c, p)
}

// POST /api/person
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var req person.Person
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, codeInvalidRequest, err)
		return
	}
	created, err := h.people.CreatePerson(dbctx.Context{Ctx: c.Request.Context()}, &req)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.RespondCreated(c, created)
}

// PUT /api/person/:id
func (h *PersonHandler) UpdatePerson(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.BadRequest(c, codeInvalidPersonID, err)
		return
	}
	var req person.Person
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, codeInvalidRequest, err)
		return
	}
	updated, err := h.people.UpdatePerson(dbctx.Context{Ctx: c.Request.Context()}, id, &req)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.RespondOK(c, updated)
}

// DELETE /api/person/:id
func (h *PersonHandler) DeletePerson(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.BadRequest(c, codeInvalidPersonID, err)
		return
	}
	if err := h.people.DeletePerson(dbctx.Context{Ctx: c.Request.Context()}, id); err != nil {
		response.Failure(c, err)
		return
	}
	response.RespondNoContent(c)
}
