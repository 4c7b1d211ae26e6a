package tumblr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockTaggedPaginatesToExhaustion(t *testing.T) {
	m := NewMockClient()
	ctx := context.Background()

	var total int
	var before int64
	for {
		page, err := m.Tagged(ctx, "art", before, 20)
		require.NoError(t, err)
		if len(page) == 0 {
			break
		}
		total += len(page)
		before = page[len(page)-1].Int64("timestamp")
		require.NotZero(t, before)
	}
	assert.Equal(t, 59, total) // timeline floor is exclusive
}

func TestMockPostsRespectsOffset(t *testing.T) {
	m := NewMockClient()
	ctx := context.Background()

	page, err := m.Posts(ctx, "a.tumblr.com", 50, 20)
	require.NoError(t, err)
	assert.Len(t, page, 10)

	empty, err := m.Posts(ctx, "a.tumblr.com", 60, 20)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFactoryMockMode(t *testing.T) {
	t.Setenv("TUMBLR_MODE", "mock")

	client, err := NewFromConfig(nil)
	require.NoError(t, err)
	assert.IsType(t, &MockClient{}, client)
}
