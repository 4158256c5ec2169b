package handlers

import (
	"newsroom-cms/helper"
	"newsroom-cms/models"
	"newsroom-cms/services"

	"github.com/gin-gonic/gin"
)

type SectionHandler struct {
	sectionService services.SectionService
	personService  services.PersonService
	Helper         *helper.HTTPHelper
}

func NewSectionHandler(sectionService services.SectionService, personService services.PersonService, httpHelper *helper.HTTPHelper) *SectionHandler {
	return &SectionHandler{sectionService: sectionService, personService: personService, Helper: httpHelper}
}

func (h *SectionHandler) CreateSection(c *gin.Context) {
	var req models.CreateSectionRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	section, err := h.sectionService.CreateSection(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendErrorFor(c, err)
		return
	}

	h.Helper.SendCreated(c, "Section created successfully", section)
}

func (h *SectionHandler) GetSections(c *gin.Context) {
	sections, err := h.sectionService.GetSections(c.Request.Context())
	if err != nil {
		h.Helper.SendErrorFor(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", sections)
}

func (h *SectionHandler) CreatePerson(c *gin.Context) {
	var req models.CreatePersonRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	person, err := h.personService.CreatePerson(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendErrorFor(c, err)
		return
	}

	h.Helper.SendCreated(c, "Person created successfully", person)
}

func (h *SectionHandler) GetPeople(c *gin.Context) {
	people, err := h.personService.GetPeople(c.Request.Context())
	if err != nil {
		h.Helper.SendErrorFor(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", people)
}
