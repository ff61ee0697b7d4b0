package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"jarin-io/api/pkg/apperror"
)

type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
	Message string      `json:"message"`
	Status  int         `json:"status"`
}

func HandleSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, SuccessResponse{
		Status:  statusCode,
		Message: message,
		Data:    data,
		Meta:    nil,
	})
}

func HandleSuccessMeta(c *gin.Context, statusCode int, message string, data, meta interface{}) {
	c.JSON(statusCode, SuccessResponse{
		Status:  statusCode,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

type ErrorResponse struct {
	Error  string `json:"error,omitempty"`
	Field  string `json:"field,omitempty"`
	Status int    `json:"status"`
}

func HandleError(c *gin.Context, statusCode int, err error) {
	Log.WithError(err).Error("request failed")
	c.JSON(statusCode, ErrorResponse{
		Error:  err.Error(),
		Status: statusCode,
	})
}

// HandleFailure maps the error taxonomy to HTTP statuses so controllers do
// not hand-pick codes per call site.
func HandleFailure(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	field := ""

	var (
		validationErr *apperror.ValidationError
		categoryErr   *apperror.UnknownCategoryError
		conflictErr   *apperror.ConflictError
		unauthErr     *apperror.UnauthorizedError
		notFoundErr   *apperror.NotFoundError
		networkErr    *apperror.NetworkError
	)
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusUnprocessableEntity
		field = validationErr.Field
	case errors.As(err, &categoryErr):
		status = http.StatusUnprocessableEntity
	case errors.As(err, &conflictErr):
		status = http.StatusConflict
	case errors.As(err, &unauthErr):
		status = http.StatusUnauthorized
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
	case errors.As(err, &networkErr):
		status = http.StatusBadGateway
	}

	Log.WithError(err).Error("request failed")
	c.JSON(status, ErrorResponse{
		Error:  err.Error(),
		Field:  field,
		Status: status,
	})
}

type PaginationArgs struct {
	Sort  string
	Limit int
	Skip  int
}

type Pagination struct {
	Limit int   `json:"limit"`
	Skip  int   `json:"skip"`
	Count int64 `json:"count"`
}
