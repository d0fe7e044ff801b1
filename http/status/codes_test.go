package status

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	for _, code := range []Code{OK, Created, NotFound} {
		text := Text(code)
		require.NotEmpty(t, text)
		require.Equal(t, strconv.Itoa(int(code))+" "+string(text), Line(code))
	}

	require.Empty(t, Text(500))
	require.Empty(t, Line(500))
}

func TestErrors(t *testing.T) {
	wrapped := fmt.Errorf("framer: %w", ErrMalformedRequest)
	require.True(t, errors.Is(wrapped, ErrMalformedRequest))
	require.False(t, errors.Is(wrapped, ErrNotFound))

	var httpErr HTTPError
	require.True(t, errors.As(fmt.Errorf("files: %w", ErrNotFound), &httpErr))
	require.Equal(t, NotFound, httpErr.Code)
}
