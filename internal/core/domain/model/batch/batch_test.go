package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcelhub/internal/core/domain/model/batch"
	"parcelhub/internal/core/domain/model/kernel"
)

func TestNewBatch(t *testing.T) {
	t.Run("valid batch", func(t *testing.T) {
		id := kernel.NewUUID()
		b, err := batch.NewBatch(id, "QUITO")
		require.NoError(t, err)

		assert.NoError(t, b.Validate())
		assert.True(t, b.ID().IsEqual(id))
		assert.Equal(t, "QUITO", b.Destiny())
		assert.Nil(t, b.TransportAgencyID())
		assert.Empty(t, b.GuideNumber())
	})

	t.Run("empty destiny", func(t *testing.T) {
		b, err := batch.NewBatch(kernel.NewUUID(), "")
		assert.Error(t, err)
		assert.Nil(t, b)
	})
}

func TestBatch_TransportAgency(t *testing.T) {
	b, err := batch.NewBatch(kernel.NewUUID(), "QUITO")
	require.NoError(t, err)

	agencyID := kernel.NewUUID()
	require.NoError(t, b.AssignTransportAgency(agencyID))
	require.NotNil(t, b.TransportAgencyID())
	assert.True(t, b.TransportAgencyID().IsEqual(agencyID))

	b.UnassignTransportAgency()
	assert.Nil(t, b.TransportAgencyID())
}

func TestRestoreBatch(t *testing.T) {
	id := kernel.NewUUID()
	agencyID := kernel.NewUUID()

	b, err := batch.RestoreBatch(id, "QUITO", &agencyID, "G100")
	require.NoError(t, err)

	assert.Equal(t, "G100", b.GuideNumber())
	require.NotNil(t, b.TransportAgencyID())
	assert.True(t, b.TransportAgencyID().IsEqual(agencyID))
}

func TestBatch_Validate(t *testing.T) {
	var nilBatch *batch.Batch
	assert.Equal(t, batch.ErrBatchIsNotConstructed, nilBatch.Validate())

	zero := &batch.Batch{}
	assert.Equal(t, batch.ErrBatchIsNotConstructed, zero.Validate())
}
