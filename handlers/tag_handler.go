package handlers

import (
	"newsroom-cms/helper"
	"newsroom-cms/models"
	"newsroom-cms/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService services.TagService
	Helper     *helper.HTTPHelper
}

func NewTagHandler(tagService services.TagService, httpHelper *helper.HTTPHelper) *TagHandler {
	return &TagHandler{tagService: tagService, Helper: httpHelper}
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var req models.CreateTagRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	tag, err := h.tagService.CreateTag(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendErrorFor(c, err)
		return
	}

	h.Helper.SendCreated(c, "Tag created successfully", tag)
}

func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tagService.GetTags(c.Request.Context())
	if err != nil {
		h.Helper.SendErrorFor(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", tags)
}

func (h *TagHandler) GetTag(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id")
	if !ok {
		return
	}

	tag, err := h.tagService.GetTag(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendErrorFor(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", tag)
}

func (h *TagHandler) CreateTopic(c *gin.Context) {
	var req models.CreateTagRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	topic, err := h.tagService.CreateTopic(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendErrorFor(c, err)
		return
	}

	h.Helper.SendCreated(c, "Topic saved successfully", topic)
}

func (h *TagHandler) GetTopics(c *gin.Context) {
	topics, err := h.tagService.GetTopics(c.Request.Context())
	if err != nil {
		h.Helper.SendErrorFor(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", topics)
}
