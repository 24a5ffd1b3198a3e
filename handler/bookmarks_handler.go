package handler

import (
	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	service *usecase.BookmarkService
}

func NewBookmarkHandler(service *usecase.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

func (h *BookmarkHandler) List(c *gin.Context) {
	userID := c.GetString("user_id")

	result, err := h.service.List(c.Request.Context(), usecase.ListOptions{
		UserID:   userID,
		Query:    c.Query("q"),
		Tags:     c.Query("tags"),
		Favorite: c.Query("favorite"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessList(c, result.TotalCount, result.FavoriteCount, result.Tags, result.Bookmarks)
}

func (h *BookmarkHandler) GetByID(c *gin.Context) {
	bookmarkID := c.Param("id")
	userID := c.GetString("user_id")

	bookmark, err := h.service.Get(c.Request.Context(), bookmarkID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, bookmark)
}

func (h *BookmarkHandler) Create(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.BookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	bookmark, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Created(c, "Bookmark created successfully", bookmark)
}

func (h *BookmarkHandler) Update(c *gin.Context) {
	bookmarkID := c.Param("id")
	userID := c.GetString("user_id")

	var req dto.BookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	bookmark, err := h.service.Update(c.Request.Context(), bookmarkID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, bookmark)
}

func (h *BookmarkHandler) Delete(c *gin.Context) {
	bookmarkID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.service.Delete(c.Request.Context(), bookmarkID, userID); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessMessage(c, "Bookmark deleted successfully")
}
