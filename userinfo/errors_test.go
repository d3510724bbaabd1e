package userinfo_test

import (
	"testing"

	"github.com/jrsteele09/go-userinfo-client/userinfo"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	err := &userinfo.Error{
		Code:        userinfo.ErrorCodeInvalidResponse,
		Description: "something went wrong",
		Kind:        userinfo.KindProviderError,
	}
	require.Equal(t, "[invalid_user_info_response] something went wrong", err.Error())
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "transport", userinfo.KindTransport.String())
	require.Equal(t, "malformed_success_body", userinfo.KindMalformedSuccessBody.String())
	require.Equal(t, "malformed_error_body", userinfo.KindMalformedErrorBody.String())
	require.Equal(t, "provider_error", userinfo.KindProviderError.String())
	require.Equal(t, "unknown", userinfo.Kind(0).String())
}
