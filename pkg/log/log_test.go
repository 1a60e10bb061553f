package log

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background(), " req-123 ")
	assert.Equal(t, "req-123", id)
	assert.Equal(t, "req-123", GetCorrelationID(ctx))

	_, generated := WithCorrelationID(context.Background(), "")
	_, err := uuid.Parse(generated)
	require.NoError(t, err)

	_, generated = WithCorrelationID(context.Background(), strings.Repeat("x", 65))
	assert.NotEqual(t, strings.Repeat("x", 65), generated)
}

func TestGetCorrelationID_Missing(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestKeep(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	assert.True(t, keep("period"))
	assert.True(t, keep("user_role"))
	assert.False(t, keep("referer"))

	t.Setenv("APP_ENV", "production")
	assert.True(t, keep("referer"))
}
