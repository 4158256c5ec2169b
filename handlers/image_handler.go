package handlers

import (
	"newsroom-cms/helper"
	"newsroom-cms/models"
	"newsroom-cms/services"

	"github.com/gin-gonic/gin"
)

type ImageHandler struct {
	imageService services.ImageService
	Helper       *helper.HTTPHelper
}

func NewImageHandler(imageService services.ImageService, httpHelper *helper.HTTPHelper) *ImageHandler {
	return &ImageHandler{imageService: imageService, Helper: httpHelper}
}

// CreateImage registers an already uploaded file.
func (h *ImageHandler) CreateImage(c *gin.Context) {
	var req models.CreateImageRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	image, err := h.imageService.CreateImage(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendErrorFor(c, err)
		return
	}

	h.Helper.SendCreated(c, "Image created successfully", image)
}

func (h *ImageHandler) DeleteImage(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id")
	if !ok {
		return
	}

	if err := h.imageService.DeleteImage(c.Request.Context(), id); err != nil {
		h.Helper.SendErrorFor(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Image deleted successfully", h.Helper.EmptyJsonMap())
}
