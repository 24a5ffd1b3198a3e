package handler

import (
	"main/dto"
	"main/middleware"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	service *usecase.NoteService
}

func NewNoteHandler(service *usecase.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// respondError writes the error per the taxonomy and records it.
func respondError(c *gin.Context, err error) {
	middleware.TrackError(utils.ErrorKind(err))
	utils.Error(c, err)
}

func (h *NoteHandler) List(c *gin.Context) {
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

	utils.SuccessList(c, result.TotalCount, result.FavoriteCount, result.Tags, result.Notes)
}

func (h *NoteHandler) GetByID(c *gin.Context) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	note, err := h.service.Get(c.Request.Context(), noteID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, note)
}

func (h *NoteHandler) Create(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Created(c, "Note created successfully", note)
}

func (h *NoteHandler) Update(c *gin.Context) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := h.service.Update(c.Request.Context(), noteID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, note)
}

func (h *NoteHandler) Delete(c *gin.Context) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.service.Delete(c.Request.Context(), noteID, userID); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessMessage(c, "Note deleted successfully")
}
