package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jarin-io/api/internal/common"
	"jarin-io/api/pkg/util"
)

// WithTimeout creates a context with the standard request timeout.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
}

// ParseObjectIDParam parses an ObjectID from a URL parameter and handles
// errors.
func ParseObjectIDParam(c *gin.Context, paramName string) (primitive.ObjectID, bool) {
	objectID, err := primitive.ObjectIDFromHex(c.Param(paramName))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return primitive.NilObjectID, false
	}

	return objectID, true
}

// BindJSONAndValidate binds the request body and runs struct validation.
func BindJSONAndValidate(c *gin.Context, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return false
	}

	if err := common.Validate.Struct(obj); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return false
	}

	return true
}

// HandlePaginationAndResponse is a utility for common pagination responses.
func HandlePaginationAndResponse(c *gin.Context, data any, count int64, paginationArgs util.PaginationArgs, message string) {
	util.HandleSuccessMeta(c, http.StatusOK, message, data, gin.H{
		"pagination": util.Pagination{
			Limit: paginationArgs.Limit,
			Skip:  paginationArgs.Skip,
			Count: count,
		},
	})
}
