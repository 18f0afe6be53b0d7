package testutil

import (
	"testing"

	"github.com/arthur-debert/redate/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// AssertErrorCode checks that err carries the given error code
func AssertErrorCode(t *testing.T, err error, code errors.ErrorCode, msgAndArgs ...interface{}) bool {
	t.Helper()
	if !assert.Error(t, err, msgAndArgs...) {
		return false
	}
	return assert.Equal(t, code, errors.GetErrorCode(err), msgAndArgs...)
}
