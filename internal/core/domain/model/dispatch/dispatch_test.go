package dispatch_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcelhub/internal/core/domain/model/dispatch"
	"parcelhub/internal/core/domain/model/kernel"
)

func TestNewDispatch(t *testing.T) {
	t.Run("valid dispatch", func(t *testing.T) {
		id := kernel.NewUUID()
		d, err := dispatch.NewDispatch(id, time.Date(2025, 3, 14, 17, 30, 0, 0, time.UTC))
		require.NoError(t, err)

		assert.NoError(t, d.Validate())
		assert.Equal(t, dispatch.StatusPlanned, d.Status())
		// Date is truncated to midnight.
		assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), d.Date())
		assert.Empty(t, d.PullIDs())
		assert.Empty(t, d.PackageIDs())
	})

	t.Run("zero date", func(t *testing.T) {
		d, err := dispatch.NewDispatch(kernel.NewUUID(), time.Time{})
		assert.Error(t, err)
		assert.Nil(t, d)
	})
}

func TestDispatch_Membership(t *testing.T) {
	d, err := dispatch.NewDispatch(kernel.NewUUID(), time.Now())
	require.NoError(t, err)

	pullID := kernel.NewUUID()
	packageID := kernel.NewUUID()

	require.NoError(t, d.AddPull(pullID))
	require.NoError(t, d.AddPull(pullID)) // idempotent
	require.NoError(t, d.AddPackage(packageID))
	require.NoError(t, d.AddPackage(packageID))

	assert.Len(t, d.PullIDs(), 1)
	assert.Len(t, d.PackageIDs(), 1)
}

func TestDispatch_Lifecycle(t *testing.T) {
	t.Run("planned to completed", func(t *testing.T) {
		d, err := dispatch.NewDispatch(kernel.NewUUID(), time.Now())
		require.NoError(t, err)

		require.NoError(t, d.Start())
		assert.Equal(t, dispatch.StatusInProgress, d.Status())

		require.NoError(t, d.Complete())
		assert.Equal(t, dispatch.StatusCompleted, d.Status())
	})

	t.Run("cannot complete planned", func(t *testing.T) {
		d, err := dispatch.NewDispatch(kernel.NewUUID(), time.Now())
		require.NoError(t, err)

		assert.Error(t, d.Complete())
	})

	t.Run("cannot cancel completed", func(t *testing.T) {
		d, err := dispatch.NewDispatch(kernel.NewUUID(), time.Now())
		require.NoError(t, err)
		require.NoError(t, d.Start())
		require.NoError(t, d.Complete())

		assert.Error(t, d.Cancel())
	})

	t.Run("cancel planned", func(t *testing.T) {
		d, err := dispatch.NewDispatch(kernel.NewUUID(), time.Now())
		require.NoError(t, err)

		require.NoError(t, d.Cancel())
		assert.Equal(t, dispatch.StatusCancelled, d.Status())
	})
}

func TestStatus_Strings(t *testing.T) {
	assert.Equal(t, "PLANIFICADO", dispatch.StatusPlanned.String())
	assert.Equal(t, "EN_CURSO", dispatch.StatusInProgress.String())
	assert.Equal(t, "COMPLETADO", dispatch.StatusCompleted.String())
	assert.Equal(t, "CANCELADO", dispatch.StatusCancelled.String())

	status, err := dispatch.StatusFromString("EN_CURSO")
	require.NoError(t, err)
	assert.Equal(t, dispatch.StatusInProgress, status)

	_, err = dispatch.StatusFromString("PAUSADO")
	assert.Error(t, err)
}
