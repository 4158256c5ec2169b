package handlers

import (
	"newsroom-cms/helper"
	"newsroom-cms/models"
	"newsroom-cms/services"

	"github.com/gin-gonic/gin"
)

type FrontpageHandler struct {
	frontpageService services.FrontpageService
	sectionLimit     int
	Helper           *helper.HTTPHelper
}

func NewFrontpageHandler(frontpageService services.FrontpageService, sectionLimit int, httpHelper *helper.HTTPHelper) *FrontpageHandler {
	return &FrontpageHandler{frontpageService: frontpageService, sectionLimit: sectionLimit, Helper: httpHelper}
}

func (h *FrontpageHandler) GetFrontpage(c *gin.Context) {
	articles, err := h.frontpageService.Frontpage(c.Request.Context())
	if err != nil {
		h.Helper.SendErrorFor(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", models.NewArticleSummaries(articles))
}

// GetSectionFrontpages returns the top ranked heads of every section,
// keyed by section slug.
func (h *FrontpageHandler) GetSectionFrontpages(c *gin.Context) {
	bySection, err := h.frontpageService.SectionFrontpages(c.Request.Context(), h.sectionLimit)
	if err != nil {
		h.Helper.SendErrorFor(c, err)
		return
	}

	data := make(map[string][]models.ArticleSummary, len(bySection))
	for slug, articles := range bySection {
		data[slug] = models.NewArticleSummaries(articles)
	}
	h.Helper.SendSuccess(c, "Success", data)
}

func (h *FrontpageHandler) GetSectionFrontpage(c *gin.Context) {
	section, articles, err := h.frontpageService.SectionFrontpage(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.Helper.SendErrorFor(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", map[string]interface{}{
		"section":  section,
		"articles": models.NewArticleSummaries(articles),
	})
}

func (h *FrontpageHandler) GetTopicArticles(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id")
	if !ok {
		return
	}

	articles, err := h.frontpageService.TopicArticles(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendErrorFor(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", models.NewArticleSummaries(articles))
}
