package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcelhub/internal/core/domain/model/catalog"
	"parcelhub/internal/core/domain/model/kernel"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name     string
		city     string
		province string
		wantErr  bool
	}{
		{
			name:     "valid location",
			city:     "Quito",
			province: "Pichincha",
			wantErr:  false,
		},
		{
			name:     "empty city",
			city:     "",
			province: "Pichincha",
			wantErr:  true,
		},
		{
			name:     "empty province",
			city:     "Quito",
			province: "",
			wantErr:  true,
		},
		{
			name:     "both empty",
			city:     "",
			province: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := kernel.NewUUID()
			loc, err := catalog.NewLocation(id, tt.city, tt.province)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Zero(t, loc)
			} else {
				require.NoError(t, err)
				assert.NoError(t, loc.Validate())
				assert.True(t, loc.ID().IsEqual(id))
				assert.Equal(t, tt.city, loc.City())
				assert.Equal(t, tt.province, loc.Province())
			}
		})
	}
}

func TestNewLocation_RequiresID(t *testing.T) {
	var zeroID kernel.UUID
	_, err := catalog.NewLocation(zeroID, "Quito", "Pichincha")
	assert.Error(t, err)
}

func TestLocation_String(t *testing.T) {
	loc, err := catalog.NewLocation(kernel.NewUUID(), "Cuenca", "Azuay")
	require.NoError(t, err)
	assert.Equal(t, "Cuenca, Azuay", loc.String())
}

func TestLocation_Validate(t *testing.T) {
	t.Run("valid location", func(t *testing.T) {
		loc, err := catalog.NewLocation(kernel.NewUUID(), "Quito", "Pichincha")
		require.NoError(t, err)
		assert.NoError(t, loc.Validate())
	})

	t.Run("zero value location", func(t *testing.T) {
		var loc catalog.Location
		err := loc.Validate()
		assert.Error(t, err)
		assert.Equal(t, catalog.ErrLocationIsNotConstructed, err)
	})
}
