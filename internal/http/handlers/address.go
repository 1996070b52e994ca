package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/person-api/internal/domain/person"
	"github.com/yungbote/person-api/internal/http/response"
	"github.com/yungbote/person-api/internal/platform/dbctx"
	"github.com/yungbote/person-api/internal/services"
)

type AddressHandler struct {
	addresses services.AddressService
}

func NewAddressHandler(addresses services.AddressService) *AddressHandler {
	return &AddressHandler{addresses: addresses}
}

// GET /api/person/:id/address
func (h *AddressHandler) ListAddresses(c *gin.Context) {
	personID, err := pathID(c, "id")
	if err != nil {
		response.BadRequest(c, codeInvalidPersonID, err)
		return
	}
	addrs, err := h.addresses.ListAddresses(dbctx.Context{Ctx: c.Request.Context()}, personID)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.RespondOK(c, addrs)
}

// POST /api/person/:id/address
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	personID, err := pathID(c, "id")
	if err != nil {
		response.BadRequest(c, codeInvalidPersonID, err)
		return
	}
	var req person.Address
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, codeInvalidRequest, err)
		return
	}
	created, err := h.addresses.CreateAddress(dbctx.Context{Ctx: c.Request.Context()}, personID, &req)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.RespondCreated(c, created)
}

// PUT /api/person/:id/address/:aid
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	personID, err := pathID(c, "id")
	if err != nil {
		response.BadRequest(c, codeInvalidPersonID, err)
		return
	}
	addressID, err := pathID(c, "aid")
	if err != nil {
		response.BadRequest(c, codeInvalidAddressID, err)
		return
	}
	var req person.Address
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, codeInvalidRequest, err)
		return
	}
	updated, err := h.addresses.UpdateAddress(dbctx.Context{Ctx: c.Request.Context()}, personID, addressID, &req)
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.RespondOK(c, updated)
}

// DELETE /api/person/:id/address/:aid
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	personID, err := pathID(c, "id")
	if err != nil {
		response.BadRequest(c, codeInvalidPersonID, err)
		return
	}
	addressID, err := pathID(c, "aid")
	if err != nil {
		response.BadRequest(c, codeInvalidAddressID, err)
		return
	}
	if err := h.addresses.DeleteAddress(dbctx.Context{Ctx: c.Request.Context()}, addressID, personID); err != nil {
		response.Failure(c, err)
		return
	}
	response.RespondNoContent(c)
}
