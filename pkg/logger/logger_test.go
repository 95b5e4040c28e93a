package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextValues(t *testing.T) {
	ctx := WithTraceID(context.Background(), "trace-1")
	ctx = WithUserID(ctx, "user-1")
	ctx = WithImportID(ctx, "import-1")

	assert.Equal(t, "trace-1", GetTraceID(ctx))
	assert.Equal(t, "user-1", GetUserID(ctx))
	assert.Equal(t, "import-1", GetImportID(ctx))
	assert.Empty(t, GetTraceID(context.Background()))
}

func TestBuildFields_SkipsNonStringKeysAndDanglingValues(t *testing.T) {
	log := NewNop()
	ctx := WithTraceID(context.Background(), "trace-1")

	fields := log.buildFields(ctx, "rows", 3, 42, "ignored", "dangling")

	assert.Len(t, fields, 2)
	assert.Equal(t, "trace_id", fields[0].Key)
	assert.Equal(t, "rows", fields[1].Key)
}
