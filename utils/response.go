package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Success       bool        `json:"success"`
	Count         *int        `json:"count,omitempty"`
	FavoriteCount *int        `json:"favorite_count,omitempty"`
	Tags          []string    `json:"tags,omitempty"`
	Message       string      `json:"message,omitempty"`
	Errors        []string    `json:"errors,omitempty"`
	Data          interface{} `json:"data,omitempty"`
}

// Success responses

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, &Response{
		Success: true,
		Data:    data,
	})
}

// SuccessList writes the record array as data, with the result count and
// the filter aggregates (favorite count, distinct tags) as sibling fields,
// matching the list endpoint contract.
func SuccessList(c *gin.Context, count, favoriteCount int, tags []string, data interface{}) {
	c.JSON(http.StatusOK, &Response{
		Success:       true,
		Count:         &count,
		FavoriteCount: &favoriteCount,
		Tags:          tags,
		Data:          data,
	})
}

func SuccessMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, &Response{
		Success: true,
		Message: message,
	})
}

func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, &Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error responses

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, &Response{
		Success: false,
		Message: message,
	})
}

func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, &Response{
		Success: false,
		Message: message,
	})
}

// Error maps a domain error onto the response taxonomy: validation and
// duplicate errors are client-fixable (400), missing or foreign-owned
// records are 404, anything else is a 500.
func Error(c *gin.Context, err error) {
	var validationErr *ValidationError
	var duplicateErr *DuplicateResourceError
	var notFoundErr *NotFoundError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, &Response{
			Success: false,
			Message: "Validation error",
			Errors:  validationErr.Messages,
		})
	case errors.As(err, &duplicateErr):
		c.JSON(http.StatusBadRequest, &Response{
			Success: false,
			Message: duplicateErr.Message,
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, &Response{
			Success: false,
			Message: notFoundErr.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, &Response{
			Success: false,
			Message: err.Error(),
		})
	}
}
