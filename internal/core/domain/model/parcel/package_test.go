package parcel_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
)

func mustNewPackage(t *testing.T, guideNumber string) *parcel.Package {
	t.Helper()
	pkg, err := parcel.NewPackage(
		kernel.NewUUID(), guideNumber,
		"Ana Torres", "Av. Amazonas 100", "Quito", "Pichincha", "0991234567",
	)
	require.NoError(t, err)
	return pkg
}

func TestNewPackage(t *testing.T) {
	tests := []struct {
		name        string
		guideNumber string
		recipient   string
		address     string
		city        string
		province    string
		phone       string
		wantErr     bool
	}{
		{
			name:        "valid package",
			guideNumber: "ECA100",
			recipient:   "Ana Torres",
			address:     "Av. Amazonas 100",
			city:        "Quito",
			province:    "Pichincha",
			phone:       "0991234567",
			wantErr:     false,
		},
		{
			name:      "empty guide number",
			recipient: "Ana Torres",
			address:   "Av. Amazonas 100",
			city:      "Quito",
			province:  "Pichincha",
			phone:     "0991234567",
			wantErr:   true,
		},
		{
			name:        "empty recipient name",
			guideNumber: "ECA100",
			address:     "Av. Amazonas 100",
			city:        "Quito",
			province:    "Pichincha",
			phone:       "0991234567",
			wantErr:     true,
		},
		{
			name:        "empty city",
			guideNumber: "ECA100",
			recipient:   "Ana Torres",
			address:     "Av. Amazonas 100",
			province:    "Pichincha",
			phone:       "0991234567",
			wantErr:     true,
		},
		{
			name:        "empty phone",
			guideNumber: "ECA100",
			recipient:   "Ana Torres",
			address:     "Av. Amazonas 100",
			city:        "Quito",
			province:    "Pichincha",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := kernel.NewUUID()
			pkg, err := parcel.NewPackage(
				id, tt.guideNumber, tt.recipient, tt.address, tt.city, tt.province, tt.phone,
			)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, pkg)
			} else {
				require.NoError(t, err)
				assert.NoError(t, pkg.Validate())
				assert.True(t, pkg.ID().IsEqual(id))
				assert.Equal(t, tt.guideNumber, pkg.GuideNumber())
				assert.Equal(t, parcel.StatusNotReceived, pkg.Status())
				assert.Nil(t, pkg.PullID())
				assert.Nil(t, pkg.ParentID())
			}
		})
	}
}

func TestNewPackage_RecordsInitialStatusHistory(t *testing.T) {
	pkg := mustNewPackage(t, "ECA100")

	assert.Contains(t, pkg.StatusHistory(), "NO_RECEPTADO")
	assert.True(t, strings.HasPrefix(pkg.StatusHistory(), "["))
}

func TestPackage_ChangeStatus(t *testing.T) {
	t.Run("records transition in history", func(t *testing.T) {
		pkg := mustNewPackage(t, "ECA100")

		require.NoError(t, pkg.ChangeStatus(parcel.StatusWarehoused))

		assert.Equal(t, parcel.StatusWarehoused, pkg.Status())
		assert.Contains(t, pkg.StatusHistory(), "NO_RECEPTADO → EN_BODEGA")
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		pkg := mustNewPackage(t, "ECA100")
		before := pkg.StatusHistory()

		require.NoError(t, pkg.ChangeStatus(parcel.StatusNotReceived))

		assert.Equal(t, before, pkg.StatusHistory())
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		pkg := mustNewPackage(t, "ECA100")

		err := pkg.ChangeStatus(parcel.StatusUnknown)

		assert.Error(t, err)
		assert.Equal(t, parcel.StatusNotReceived, pkg.Status())
	})
}

func TestPackage_ChangeGuideNumber(t *testing.T) {
	pkg := mustNewPackage(t, "ECA100")

	require.NoError(t, pkg.ChangeGuideNumber("ECA200"))

	assert.Equal(t, "ECA200", pkg.GuideNumber())
	assert.Contains(t, pkg.GuideHistory(), "migrated from ECA100 to ECA200")

	assert.Error(t, pkg.ChangeGuideNumber(""))
}

func TestPackage_AddNote(t *testing.T) {
	pkg := mustNewPackage(t, "ECA100")

	require.NoError(t, pkg.AddNote("entregar en porteria"))
	require.NoError(t, pkg.AddNote("urgente"))

	// Newest entry first.
	urgIdx := strings.Index(pkg.Notes(), "urgente")
	porIdx := strings.Index(pkg.Notes(), "porteria")
	assert.Less(t, urgIdx, porIdx)
	assert.Contains(t, pkg.NotesHistory(), "notes updated: urgente")

	assert.Error(t, pkg.AddNote(""))
}

func TestPackage_Hashtags(t *testing.T) {
	pkg := mustNewPackage(t, "ECA100")

	pkg.AddHashtag("fragil")
	pkg.AddHashtag("#navidad")
	pkg.AddHashtag("fragil") // idempotent

	assert.Equal(t, []string{"#fragil", "#navidad"}, pkg.HashtagList())

	pkg.RemoveHashtag("navidad")
	assert.Equal(t, []string{"#fragil"}, pkg.HashtagList())

	pkg.RemoveHashtag("#fragil")
	assert.Empty(t, pkg.HashtagList())
}

func TestPackage_SetParent(t *testing.T) {
	pkg := mustNewPackage(t, "ECA100")

	t.Run("rejects self", func(t *testing.T) {
		assert.Error(t, pkg.SetParent(pkg.ID()))
		assert.Nil(t, pkg.ParentID())
	})

	t.Run("sets and clears", func(t *testing.T) {
		parentID := kernel.NewUUID()
		require.NoError(t, pkg.SetParent(parentID))
		require.NotNil(t, pkg.ParentID())
		assert.True(t, pkg.ParentID().IsEqual(parentID))

		pkg.ClearParent()
		assert.Nil(t, pkg.ParentID())
	})
}

func TestPackage_PullAssignment(t *testing.T) {
	pkg := mustNewPackage(t, "ECA100")
	pullID := kernel.NewUUID()

	require.NoError(t, pkg.AssignToPull(pullID))
	require.NotNil(t, pkg.PullID())
	assert.True(t, pkg.PullID().IsEqual(pullID))

	pkg.RemoveFromPull()
	assert.Nil(t, pkg.PullID())
}

func TestRestorePackage(t *testing.T) {
	id := kernel.NewUUID()
	pullID := kernel.NewUUID()

	pkg, err := parcel.RestorePackage(
		id, "ECA100", "M-1", "AG-9",
		"Ana Torres", "Av. Amazonas 100", "Quito", "Pichincha", "0991234567",
		parcel.StatusInTransit, "notas", "#fragil",
		&pullID, nil, nil, nil,
		"guide history", "status history", "notes history",
	)
	require.NoError(t, err)

	assert.NoError(t, pkg.Validate())
	assert.Equal(t, parcel.StatusInTransit, pkg.Status())
	assert.Equal(t, "M-1", pkg.NroMaster())
	assert.Equal(t, "AG-9", pkg.AgencyGuideNumber())
	// Restore does not add new history entries.
	assert.Equal(t, "status history", pkg.StatusHistory())
}

func TestPackage_Validate(t *testing.T) {
	var nilPkg *parcel.Package
	assert.Equal(t, parcel.ErrPackageIsNotConstructed, nilPkg.Validate())

	zero := &parcel.Package{}
	assert.Equal(t, parcel.ErrPackageIsNotConstructed, zero.Validate())
}
