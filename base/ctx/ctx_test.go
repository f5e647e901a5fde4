package ctx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithValue(t *testing.T) {
	req := require.New(t)

	c := Background()
	c = WithValue(c, "requestID", "abc-123")
	req.Equal("abc-123", c.Value("requestID"))
}

func TestWithValues(t *testing.T) {
	req := require.New(t)

	c := WithValues(Background(), map[string]interface{}{
		"a": 1,
		"b": "two",
	})
	req.Equal(1, c.Value("a"))
	req.Equal("two", c.Value("b"))
}

func TestWithCancel(t *testing.T) {
	req := require.New(t)

	c, cancel := WithCancel(Background())
	req.NoError(c.Err())
	cancel()
	req.Error(c.Err())
}
