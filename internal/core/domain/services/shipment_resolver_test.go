package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcelhub/internal/core/domain/model/batch"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/pull"
	"parcelhub/internal/core/domain/services"
)

func newTestPull(t *testing.T, destiny string) *pull.Pull {
	t.Helper()
	p, err := pull.NewPull(kernel.NewUUID(), destiny, pull.SizeMedium)
	require.NoError(t, err)
	return p
}

func newTestBatch(t *testing.T, destiny string) *batch.Batch {
	t.Helper()
	b, err := batch.NewBatch(kernel.NewUUID(), destiny)
	require.NoError(t, err)
	return b
}

func newTestPackage(t *testing.T, guide string) *parcel.Package {
	t.Helper()
	pkg, err := parcel.NewPackage(
		kernel.NewUUID(), guide,
		"Ana Torres", "Av. Amazonas 100", "Quito", "Pichincha", "0991234567",
	)
	require.NoError(t, err)
	return pkg
}

func attachToBatch(t *testing.T, p *pull.Pull, b *batch.Batch) {
	t.Helper()
	require.NoError(t, p.AttachToBatch(b))
}

func TestNewPullShipment(t *testing.T) {
	t.Run("loose pull", func(t *testing.T) {
		p := newTestPull(t, "QUITO")
		s, err := services.NewPullShipment(p, nil)
		require.NoError(t, err)
		assert.Nil(t, s.Batch)
	})

	t.Run("pull in batch requires the batch", func(t *testing.T) {
		p := newTestPull(t, "QUITO")
		attachToBatch(t, p, newTestBatch(t, "QUITO"))

		_, err := services.NewPullShipment(p, nil)
		assert.Error(t, err)
	})

	t.Run("batch must match the pull's reference", func(t *testing.T) {
		p := newTestPull(t, "QUITO")
		attachToBatch(t, p, newTestBatch(t, "QUITO"))
		other := newTestBatch(t, "QUITO")

		_, err := services.NewPullShipment(p, other)
		assert.Error(t, err)
	})

	t.Run("loose pull rejects a stray batch", func(t *testing.T) {
		p := newTestPull(t, "QUITO")
		_, err := services.NewPullShipment(p, newTestBatch(t, "QUITO"))
		assert.Error(t, err)
	})
}

func TestShipmentResolver_EffectiveAgency(t *testing.T) {
	resolver := services.NewShipmentResolver()

	t.Run("batch agency wins over pull agency", func(t *testing.T) {
		pullAgency := kernel.NewUUID()
		batchAgency := kernel.NewUUID()

		p := newTestPull(t, "QUITO")
		require.NoError(t, p.AssignTransportAgency(pullAgency))

		b := newTestBatch(t, "QUITO")
		require.NoError(t, b.AssignTransportAgency(batchAgency))
		attachToBatch(t, p, b)

		s, err := services.NewPullShipment(p, b)
		require.NoError(t, err)

		got := resolver.EffectiveAgency(s)
		require.NotNil(t, got)
		assert.True(t, got.IsEqual(batchAgency))
	})

	t.Run("falls back to pull agency when batch has none", func(t *testing.T) {
		pullAgency := kernel.NewUUID()

		p := newTestPull(t, "QUITO")
		require.NoError(t, p.AssignTransportAgency(pullAgency))
		b := newTestBatch(t, "QUITO")
		attachToBatch(t, p, b)

		s, err := services.NewPullShipment(p, b)
		require.NoError(t, err)

		got := resolver.EffectiveAgency(s)
		require.NotNil(t, got)
		assert.True(t, got.IsEqual(pullAgency))
	})

	t.Run("nil when neither level has an agency", func(t *testing.T) {
		p := newTestPull(t, "QUITO")
		s, err := services.NewPullShipment(p, nil)
		require.NoError(t, err)

		assert.Nil(t, resolver.EffectiveAgency(s))
	})
}

func TestShipmentResolver_EffectiveGuideNumber(t *testing.T) {
	resolver := services.NewShipmentResolver()

	t.Run("non-empty batch guide wins", func(t *testing.T) {
		p := newTestPull(t, "QUITO")
		p.SetGuideNumber("P-1")
		b := newTestBatch(t, "QUITO")
		b.SetGuideNumber("G100")
		attachToBatch(t, p, b)

		s, err := services.NewPullShipment(p, b)
		require.NoError(t, err)

		assert.Equal(t, "G100", resolver.EffectiveGuideNumber(s))
	})

	t.Run("empty batch guide falls through to pull", func(t *testing.T) {
		p := newTestPull(t, "QUITO")
		p.SetGuideNumber("P-1")
		b := newTestBatch(t, "QUITO")
		attachToBatch(t, p, b)

		s, err := services.NewPullShipment(p, b)
		require.NoError(t, err)

		assert.Equal(t, "P-1", resolver.EffectiveGuideNumber(s))
	})
}

func TestShipmentResolver_EffectiveDestiny(t *testing.T) {
	resolver := services.NewShipmentResolver()

	p := newTestPull(t, "QUITO")
	s, err := services.NewPullShipment(p, nil)
	require.NoError(t, err)
	assert.Equal(t, "QUITO", resolver.EffectiveDestiny(s))

	b := newTestBatch(t, "QUITO")
	attachToBatch(t, p, b)
	s, err = services.NewPullShipment(p, b)
	require.NoError(t, err)
	assert.Equal(t, "QUITO", resolver.EffectiveDestiny(s))
	assert.Equal(t, services.SourceBatch, resolver.PullDataSource(s).Destiny)
}

func TestShipmentResolver_PullDataSource_IndependentPerAttribute(t *testing.T) {
	resolver := services.NewShipmentResolver()

	// Batch has an agency but no guide: agency comes from the batch while
	// the guide comes from the pull.
	p := newTestPull(t, "QUITO")
	p.SetGuideNumber("P-1")
	b := newTestBatch(t, "QUITO")
	require.NoError(t, b.AssignTransportAgency(kernel.NewUUID()))
	attachToBatch(t, p, b)

	s, err := services.NewPullShipment(p, b)
	require.NoError(t, err)

	ds := resolver.PullDataSource(s)
	assert.Equal(t, services.SourceBatch, ds.Destiny)
	assert.Equal(t, services.SourceBatch, ds.Agency)
	assert.Equal(t, services.SourcePull, ds.Guide)
}

func TestShipmentResolver_PackageDelegation(t *testing.T) {
	resolver := services.NewShipmentResolver()

	t.Run("loose package supplies its own fields", func(t *testing.T) {
		pkg := newTestPackage(t, "ECA100")
		agencyID := kernel.NewUUID()
		require.NoError(t, pkg.AssignTransportAgency(agencyID))
		pkg.SetAgencyGuideNumber("AG-1")

		s, err := services.NewPackageShipment(pkg, nil, nil)
		require.NoError(t, err)

		got := resolver.ShippingAgency(s)
		require.NotNil(t, got)
		assert.True(t, got.IsEqual(agencyID))
		assert.Equal(t, "AG-1", resolver.ShippingGuideNumber(s))
		assert.Equal(t, "Quito, Pichincha", resolver.ShippingDestiny(s))

		ds := resolver.PackageDataSource(s)
		assert.Equal(t, services.SourcePackage, ds.Destiny)
		assert.Equal(t, services.SourcePackage, ds.Agency)
		assert.Equal(t, services.SourcePackage, ds.Guide)
	})

	t.Run("package in pull delegates to the pull resolution", func(t *testing.T) {
		p := newTestPull(t, "CUENCA")
		pullAgency := kernel.NewUUID()
		require.NoError(t, p.AssignTransportAgency(pullAgency))
		p.SetGuideNumber("P-1")

		pkg := newTestPackage(t, "ECA100")
		require.NoError(t, pkg.AssignToPull(p.ID()))

		s, err := services.NewPackageShipment(pkg, p, nil)
		require.NoError(t, err)

		got := resolver.ShippingAgency(s)
		require.NotNil(t, got)
		assert.True(t, got.IsEqual(pullAgency))
		assert.Equal(t, "P-1", resolver.ShippingGuideNumber(s))
		assert.Equal(t, "CUENCA", resolver.ShippingDestiny(s))
	})

	t.Run("empty chain resolution tags the package level", func(t *testing.T) {
		p := newTestPull(t, "CUENCA")
		pkg := newTestPackage(t, "ECA100")
		require.NoError(t, pkg.AssignToPull(p.ID()))

		s, err := services.NewPackageShipment(pkg, p, nil)
		require.NoError(t, err)

		ds := resolver.PackageDataSource(s)
		assert.Equal(t, services.SourcePull, ds.Destiny)
		assert.Equal(t, services.SourcePackage, ds.Agency)
		assert.Equal(t, services.SourcePackage, ds.Guide)
	})
}

func TestShipmentResolver_ShipmentType(t *testing.T) {
	resolver := services.NewShipmentResolver()

	newShipment := func(t *testing.T, pkg *parcel.Package, p *pull.Pull, b *batch.Batch) services.PackageShipment {
		t.Helper()
		s, err := services.NewPackageShipment(pkg, p, b)
		require.NoError(t, err)
		return s
	}

	t.Run("pull and batch classify as lot", func(t *testing.T) {
		p := newTestPull(t, "QUITO")
		b := newTestBatch(t, "QUITO")
		attachToBatch(t, p, b)

		pkg := newTestPackage(t, "ECA100")
		// Containment outranks the package's own agency.
		require.NoError(t, pkg.AssignTransportAgency(kernel.NewUUID()))
		require.NoError(t, pkg.AssignToPull(p.ID()))

		got := resolver.ShipmentType(newShipment(t, pkg, p, b))
		assert.Equal(t, services.TypeLot, got)
		assert.Equal(t, "lote", got.String())
	})

	t.Run("pull without batch classifies as sack", func(t *testing.T) {
		p := newTestPull(t, "QUITO")
		pkg := newTestPackage(t, "ECA100")
		require.NoError(t, pkg.AssignToPull(p.ID()))

		got := resolver.ShipmentType(newShipment(t, pkg, p, nil))
		assert.Equal(t, services.TypeSack, got)
		assert.Equal(t, "saca", got.String())
	})

	t.Run("nothing assigned classifies as unassigned", func(t *testing.T) {
		pkg := newTestPackage(t, "ECA100")

		got := resolver.ShipmentType(newShipment(t, pkg, nil, nil))
		assert.Equal(t, services.TypeUnassigned, got)
		assert.Equal(t, "sin_asignar", got.String())
	})

	t.Run("own agency classifies as individual", func(t *testing.T) {
		pkg := newTestPackage(t, "ECA100")
		require.NoError(t, pkg.AssignTransportAgency(kernel.NewUUID()))

		got := resolver.ShipmentType(newShipment(t, pkg, nil, nil))
		assert.Equal(t, services.TypeIndividual, got)
		assert.Equal(t, "individual", got.String())
	})

	t.Run("guide without agency falls to the unclassified catch-all", func(t *testing.T) {
		pkg := newTestPackage(t, "ECA100")
		pkg.SetAgencyGuideNumber("AG-1")

		got := resolver.ShipmentType(newShipment(t, pkg, nil, nil))
		assert.Equal(t, services.TypeUnclassified, got)
		// The catch-all renders with the unassigned tag.
		assert.Equal(t, "sin_asignar", got.String())
	})

	t.Run("blank guide counts as empty", func(t *testing.T) {
		pkg := newTestPackage(t, "ECA100")
		pkg.SetAgencyGuideNumber("   ")

		got := resolver.ShipmentType(newShipment(t, pkg, nil, nil))
		assert.Equal(t, services.TypeUnassigned, got)
	})
}

// Full chain: batch B {destiny QUITO, guide G100, agency AgencyX}, pull P1
// in B with no agency and no guide, package pkg1 in P1.
func TestShipmentResolver_FullChainScenario(t *testing.T) {
	resolver := services.NewShipmentResolver()
	agencyX := kernel.NewUUID()

	b := newTestBatch(t, "QUITO")
	b.SetGuideNumber("G100")
	require.NoError(t, b.AssignTransportAgency(agencyX))

	p1 := newTestPull(t, "QUITO")
	attachToBatch(t, p1, b)

	pkg1 := newTestPackage(t, "ECA100")
	require.NoError(t, pkg1.AssignToPull(p1.ID()))

	s, err := services.NewPackageShipment(pkg1, p1, b)
	require.NoError(t, err)

	agency := resolver.ShippingAgency(s)
	require.NotNil(t, agency)
	assert.True(t, agency.IsEqual(agencyX))
	assert.Equal(t, "G100", resolver.ShippingGuideNumber(s))
	assert.Equal(t, services.TypeLot, resolver.ShipmentType(s))

	ds := resolver.PackageDataSource(s)
	assert.Equal(t, services.SourceBatch, ds.Agency)
	assert.Equal(t, services.SourceBatch, ds.Guide)
	assert.Equal(t, services.SourceBatch, ds.Destiny)
}
