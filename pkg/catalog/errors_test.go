package catalog_test

import (
	"testing"

	"github.com/campusly/course-services/walletgateway/pkg/catalog"
	"github.com/stretchr/testify/assert"
)

func TestMapStatusToError(t *testing.T) {
	testCases := []struct {
		name          string
		statusCode    int
		expectedError error
	}{
		{
			name:          "NotFound",
			statusCode:    404,
			expectedError: catalog.ErrCourseNotFound,
		},
		{
			name:          "InternalServerError",
			statusCode:    500,
			expectedError: catalog.ErrServerError,
		},
		{
			name:          "BadGateway",
			statusCode:    502,
			expectedError: catalog.ErrServerError,
		},
		{
			name:          "BadRequest",
			statusCode:    400,
			expectedError: catalog.ErrServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := catalog.MapStatusToError(tc.statusCode)

			assert.Error(t, err, "Expected an error for status code %d", tc.statusCode)
			assert.Equal(t, tc.expectedError, err)
		})
	}
}
