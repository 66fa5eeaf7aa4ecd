package basehdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chat_commerce/internal/common"
)

func TestSafeHandlerWrapper_RecoversPanic(t *testing.T) {
	err := SafeHandlerWrapper(nil, func() error {
		panic("boom")
	})

	require.Error(t, err)
	var customErr *common.Error
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, common.ErrCodeInternalServer.Code, customErr.Code.Code)
	assert.Equal(t, common.StatusInternalServerError, customErr.StatusCode)
	assert.Contains(t, customErr.Message, "boom")
}

func TestSafeHandlerWrapper_PassesThroughError(t *testing.T) {
	err := SafeHandlerWrapper(nil, func() error {
		return common.ErrNotFound
	})

	assert.Equal(t, common.ErrNotFound, err)
}

func TestSafeHandlerWrapper_NilOnSuccess(t *testing.T) {
	err := SafeHandlerWrapper(nil, func() error {
		return nil
	})

	assert.NoError(t, err)
}
