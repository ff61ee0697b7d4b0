package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jarin-io/api/pkg/apperror"
	"jarin-io/api/pkg/models"
)

func TestChangePasswordRejectsShortPassword(t *testing.T) {
	s := &userService{}

	err := s.ChangePassword(context.Background(), primitive.NewObjectID(), models.PasswordChangeRequest{
		CurrentPassword: "correct horse",
		NewPassword:     "short",
	})

	var validationErr *apperror.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "newPassword", validationErr.Field)
}
