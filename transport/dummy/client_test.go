package dummy

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCircularClient(t *testing.T) {
	t.Run("no looping", func(t *testing.T) {
		slices := [][]byte{
			[]byte("Hello"), []byte("world!"),
		}
		client := NewCircularClient(slices...).OneTime()

		for _, slice := range slices {
			got, err := client.Read()
			require.NoError(t, err)
			require.Equal(t, string(slice), string(got))
		}

		_, err := client.Read()
		require.EqualError(t, err, io.EOF.Error())
	})

	t.Run("looped slices", func(t *testing.T) {
		slices := [][]byte{
			[]byte("Hello"), []byte("world"), []byte("!"),
		}
		client := NewCircularClient(slices...)
		for i := 0; i < len(slices)*2; i++ {
			data, err := client.Read()
			require.NoError(t, err)
			require.Equal(t, string(slices[i%len(slices)]), string(data))
		}
	})

	t.Run("pushback", func(t *testing.T) {
		client := NewCircularClient([]byte("Hello"), []byte("world")).OneTime()
		data, err := client.Read()
		require.NoError(t, err)
		client.Pushback(data[3:])

		data, err = client.Read()
		require.NoError(t, err)
		require.Equal(t, "lo", string(data))

		data, err = client.Read()
		require.NoError(t, err)
		require.Equal(t, "world", string(data))
	})

	t.Run("custom error", func(t *testing.T) {
		boom := errors.New("connection reset by peer")
		client := NewCircularClient([]byte("GET")).FailWith(boom)
		_, err := client.Read()
		require.NoError(t, err)
		_, err = client.Read()
		require.ErrorIs(t, err, boom)
	})
}

func TestNewRequestClient(t *testing.T) {
	const raw = "GET / HTTP/1.1\r\n\r\n"

	for _, n := range []int{0, 1, 5, len(raw), len(raw) * 2} {
		client := NewRequestClient(raw, n)
		var got []byte

		for {
			data, err := client.Read()
			if err != nil {
				require.ErrorIs(t, err, io.EOF)
				break
			}

			got = append(got, data...)
		}

		require.Equal(t, raw, string(got))
	}
}
