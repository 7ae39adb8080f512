package cancellation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

func newPendingRequest(t *testing.T) *Request {
	t.Helper()
	req, err := NewRequest(kernel.NewUUID(), kernel.NewUUID(), "changed my mind", order.Processing)
	require.NoError(t, err)
	return req
}

func Test_NewRequest_StartsPending(t *testing.T) {
	req := newPendingRequest(t)

	assert.True(t, req.IsPending())
	assert.Equal(t, Pending, req.Status())
	assert.Equal(t, order.Processing, req.PriorStatus())
	assert.Nil(t, req.ResolvedAt())
	assert.Nil(t, req.ResolverID())
}

func Test_NewRequest_RequiresReason(t *testing.T) {
	_, err := NewRequest(kernel.NewUUID(), kernel.NewUUID(), "", order.Processing)

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func Test_Resolve_Approve(t *testing.T) {
	req := newPendingRequest(t)
	resolver := kernel.NewUUID()

	applied, err := req.Resolve(true, resolver, "stock released")

	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, Approved, req.Status())
	assert.False(t, req.IsPending())
	require.NotNil(t, req.ResolvedAt())
	require.NotNil(t, req.ResolverID())
	assert.True(t, resolver.IsEqual(*req.ResolverID()))
	assert.Equal(t, "stock released", req.ResolverNotes())
}

func Test_Resolve_Deny(t *testing.T) {
	req := newPendingRequest(t)

	applied, err := req.Resolve(false, kernel.NewUUID(), "order already in production")

	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, Denied, req.Status())
}

func Test_Resolve_SameDecisionIsIdempotent(t *testing.T) {
	req := newPendingRequest(t)
	_, err := req.Resolve(true, kernel.NewUUID(), "")
	require.NoError(t, err)

	applied, err := req.Resolve(true, kernel.NewUUID(), "retry")

	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, "", req.ResolverNotes())
}

func Test_Resolve_ConflictingDecisionFails(t *testing.T) {
	req := newPendingRequest(t)
	_, err := req.Resolve(false, kernel.NewUUID(), "")
	require.NoError(t, err)

	_, err = req.Resolve(true, kernel.NewUUID(), "")

	assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	assert.Equal(t, Denied, req.Status())
}

func Test_StatusFromString(t *testing.T) {
	tests := []struct {
		give string
		want Status
	}{
		{"pending", Pending},
		{"approved", Approved},
		{"denied", Denied},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			got, err := StatusFromString(tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := StatusFromString("bogus")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
