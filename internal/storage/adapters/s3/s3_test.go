package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsURI(t *testing.T) {
	assert.True(t, IsURI("s3://bucket/key"))
	assert.False(t, IsURI("/tmp/a.txt"))
	assert.False(t, IsURI("http://example.com/a.txt"))
}

func TestParseURI(t *testing.T) {
	t.Run("bucket and key", func(t *testing.T) {
		bucket, key, err := ParseURI("s3://downloads/releases/a.txt")
		require.NoError(t, err)
		assert.Equal(t, "downloads", bucket)
		assert.Equal(t, "releases/a.txt", key)
	})

	t.Run("missing key", func(t *testing.T) {
		_, _, err := ParseURI("s3://downloads")
		assert.Error(t, err)
	})

	t.Run("missing bucket", func(t *testing.T) {
		_, _, err := ParseURI("s3:///key")
		assert.Error(t, err)
	})

	t.Run("empty key after slash", func(t *testing.T) {
		_, _, err := ParseURI("s3://downloads/")
		assert.Error(t, err)
	})
}
