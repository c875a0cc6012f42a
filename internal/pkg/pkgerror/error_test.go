package pkgerror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeString(t *testing.T) {
	tests := map[Type]string{
		TypeValidation: "ERROR_TYPE_VALIDATION",
		TypeBusiness:   "ERROR_TYPE_BUSINESS",
		TypeServer:     "ERROR_TYPE_SERVER",
		Type(99):       "ERROR_TYPE_UNKNOWN",
	}
	for typ, want := range tests {
		assert.Equal(t, want, typ.String())
	}
}

func TestCodeString(t *testing.T) {
	tests := map[Code]string{
		CodeInvalidFormat: "ERROR_CODE_INVALID_FORMAT",
		CodeConflict:      "ERROR_CODE_CONFLICT",
		CodeTooLarge:      "ERROR_CODE_TOO_LARGE",
		CodeInternal:      "ERROR_CODE_INTERNAL",
		Code(99):          "ERROR_CODE_INTERNAL",
	}
	for code, want := range tests {
		assert.Equal(t, want, code.String())
	}
}

func TestNewServerWrapsCause(t *testing.T) {
	root := errors.New("boom")
	err := NewServer(root)

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.ErrorIs(t, err, root)
	assert.Equal(t, "Internal server error", gerr.Msg())
	assert.Equal(t, TypeServer, gerr.Type())
	assert.Equal(t, CodeInternal, gerr.Code())
	assert.Equal(t, "boom", gerr.Error())
	assert.Equal(t, http.StatusInternalServerError, gerr.StatusCode())
}

func TestBusinessAndValidationErrors(t *testing.T) {
	var biz *Error
	require.ErrorAs(t, NewBusiness("summary is still running", CodeConflict), &biz)
	assert.Equal(t, "summary is still running", biz.Error())
	assert.Equal(t, http.StatusConflict, biz.StatusCode())

	root := errors.New("label is too long")
	var invalid *Error
	require.ErrorAs(t, NewInvalidInput(root), &invalid)
	assert.Equal(t, "label is too long", invalid.Msg())
	assert.ErrorIs(t, invalid, root)
	assert.Equal(t, http.StatusUnprocessableEntity, invalid.StatusCode())

	var format *Error
	require.ErrorAs(t, NewInvalidFormat(), &format)
	assert.Equal(t, "invalid request body", format.Error())
	assert.Equal(t, http.StatusBadRequest, format.StatusCode())

	var large *Error
	require.ErrorAs(t, NewTooLarge(1024), &large)
	assert.Equal(t, "payload exceeds 1024 bytes", large.Msg())
	assert.Equal(t, http.StatusRequestEntityTooLarge, large.StatusCode())
}

func TestErrorFallbackMessages(t *testing.T) {
	assert.Equal(t, "Validation violation", newError(nil, "", TypeValidation, CodeInternal).Error())
	assert.Equal(t, "Logical business not meet with requirement", newError(nil, "", TypeBusiness, CodeInternal).Error())
	assert.Equal(t, "Internal error", newError(nil, "", TypeServer, CodeInternal).Error())
	assert.Equal(t, "Unknown error", newError(nil, "", Type(42), CodeInternal).Error())
}

func TestErrorStringIncludesDetails(t *testing.T) {
	var gerr *Error
	require.ErrorAs(t, NewBusiness("message", CodeNotFound), &gerr)

	str := gerr.String()
	assert.Contains(t, str, "ERROR_TYPE_BUSINESS")
	assert.Contains(t, str, "ERROR_CODE_NOT_FOUND")
	assert.Contains(t, str, "message")
}
