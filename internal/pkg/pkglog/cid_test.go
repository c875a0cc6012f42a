package pkglog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "[invalid_chain_id]", GetCorrelationID(ctx))

	ctx = SetCorrelationID(ctx, "cid-123")
	assert.Equal(t, "cid-123", GetCorrelationID(ctx))
}

func TestDetachCorrelationID(t *testing.T) {
	req := SetCorrelationID(context.Background(), "cid-req")
	root := context.Background()

	detached := DetachCorrelationID(root, req)
	assert.Equal(t, "cid-req", GetCorrelationID(detached))

	untouched := DetachCorrelationID(root, context.Background())
	assert.Equal(t, root, untouched)
}
