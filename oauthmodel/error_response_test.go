package oauthmodel_test

import (
	"testing"

	"github.com/jrsteele09/go-userinfo-client/oauthmodel"
	"github.com/stretchr/testify/require"
)

func TestParseErrorResponse(t *testing.T) {
	t.Run("full error object", func(t *testing.T) {
		resp, err := oauthmodel.ParseErrorResponse([]byte(`{"error":"invalid_token","error_description":"expired","error_uri":"https://example.com/errors"}`))
		require.NoError(t, err)
		require.Equal(t, "invalid_token", resp.Error)
		require.Equal(t, "expired", resp.ErrorDescription)
		require.Equal(t, "https://example.com/errors", resp.ErrorURI)
	})

	t.Run("unknown fields ignored", func(t *testing.T) {
		resp, err := oauthmodel.ParseErrorResponse([]byte(`{"error":"server_error","state":"abc","custom":42}`))
		require.NoError(t, err)
		require.Equal(t, "server_error", resp.Error)
	})

	t.Run("empty object allowed", func(t *testing.T) {
		resp, err := oauthmodel.ParseErrorResponse([]byte(`{}`))
		require.NoError(t, err)
		require.Empty(t, resp.Error)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, err := oauthmodel.ParseErrorResponse([]byte(`<html>forbidden</html>`))
		require.Error(t, err)
	})

	t.Run("empty body", func(t *testing.T) {
		_, err := oauthmodel.ParseErrorResponse(nil)
		require.Error(t, err)
	})

	t.Run("non-object body", func(t *testing.T) {
		for _, body := range []string{`null`, `"invalid_token"`, `["invalid_token"]`, `42`} {
			_, err := oauthmodel.ParseErrorResponse([]byte(body))
			require.Error(t, err, "body %s", body)
		}
	})

	t.Run("wrongly typed fields", func(t *testing.T) {
		_, err := oauthmodel.ParseErrorResponse([]byte(`{"error":123}`))
		require.Error(t, err)
	})
}
