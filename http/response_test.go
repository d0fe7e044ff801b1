package http

import (
	"testing"

	"github.com/indigo-web/minihttp/http/headers"
	"github.com/indigo-web/minihttp/http/mime"
	"github.com/indigo-web/minihttp/http/status"
	"github.com/stretchr/testify/require"
)

func TestResponse(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		fields := NewResponse().Reveal()
		require.Equal(t, status.OK, fields.Code)
		require.Empty(t, fields.Headers)
		require.Nil(t, fields.Body)
	})

	t.Run("headers order", func(t *testing.T) {
		fields := NewResponse().
			Code(status.Created).
			ContentType(mime.Plain).
			Header("Content-Encoding", "gzip").
			String("hello").
			ContentLength().
			Reveal()

		require.Equal(t, status.Created, fields.Code)
		require.Equal(t, []headers.Header{
			{Key: "Content-Type", Value: "text/plain"},
			{Key: "Content-Encoding", Value: "gzip"},
			{Key: "Content-Length", Value: "5"},
		}, fields.Headers)
		require.Equal(t, "hello", string(fields.Body))
	})

	t.Run("empty body", func(t *testing.T) {
		fields := NewResponse().Bytes(nil).ContentLength().Reveal()
		require.NotNil(t, fields.Body)
		require.Empty(t, fields.Body)
		require.Equal(t, "0", fields.Headers[0].Value)
	})
}
