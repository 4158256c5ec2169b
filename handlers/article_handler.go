package handlers

import (
	"strconv"

	"newsroom-cms/helper"
	"newsroom-cms/models"
	"newsroom-cms/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, httpHelper *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: httpHelper}
}

// parseID reads a positive numeric path parameter, answering 400 otherwise.
func parseID(c *gin.Context, h *helper.HTTPHelper, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		h.SendBadRequest(c, "Invalid "+name, h.EmptyJsonMap())
		return 0, false
	}
	return uint(id), true
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.SaveArticleRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	article, err := h.articleService.SaveArticle(c.Request.Context(), 0, req, true)
	if err != nil {
		h.Helper.SendErrorFor(c, err)
		return
	}

	h.Helper.SendCreated(c, "Article created successfully", article)
}

// SaveArticle saves over revision :id. It forks a new head unless the
// request asks for ?revision=false.
func (h *ArticleHandler) SaveArticle(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id")
	if !ok {
		return
	}

	createRevision := true
	if raw := c.Query("revision"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.Helper.SendBadRequest(c, "Invalid revision flag", h.Helper.EmptyJsonMap())
			return
		}
		createRevision = parsed
	}

	var req models.SaveArticleRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	article, err := h.articleService.SaveArticle(c.Request.Context(), id, req, createRevision)
	if err != nil {
		h.Helper.SendErrorFor(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article saved successfully", article)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id")
	if !ok {
		return
	}

	article, err := h.articleService.GetArticle(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendErrorFor(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", article)
}

func (h *ArticleHandler) GetRevisions(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id")
	if !ok {
		return
	}

	revisions, err := h.articleService.GetRevisions(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendErrorFor(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", models.NewArticleSummaries(revisions))
}

func (h *ArticleHandler) GetPreviousRevision(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id")
	if !ok {
		return
	}

	previous, err := h.articleService.GetPreviousRevision(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendErrorFor(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", previous)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id")
	if !ok {
		return
	}

	if err := h.articleService.DeleteArticle(c.Request.Context(), id); err != nil {
		h.Helper.SendErrorFor(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article deleted successfully", h.Helper.EmptyJsonMap())
}
