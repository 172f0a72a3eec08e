package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleCities() []City {
	return []City{
		{
			ID:   "pune",
			Name: "Pune",
			Stores: []Store{
				{ID: "pune-1", Name: "Koregaon Park", Address: "Lane 5, Koregaon Park", Capacity: 40},
				{ID: "pune-2", Name: "Hinjewadi", Address: "Phase 1, Hinjewadi", Capacity: 25},
			},
		},
		{ID: "goa", Name: "Goa"},
	}
}

func TestFindCityAndStore(t *testing.T) {
	city, ok := FindCity(sampleCities(), "pune")
	require.True(t, ok)
	assert.Equal(t, "Pune", city.Name)

	store, ok := city.FindStore("pune-2")
	require.True(t, ok)
	assert.Equal(t, 25, store.Capacity)

	_, ok = city.FindStore("goa-1")
	assert.False(t, ok)

	_, ok = FindCity(sampleCities(), "mumbai")
	assert.False(t, ok)
}

func TestMockStoreDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)

	dir := NewMockStoreDirectory(ctrl)
	dir.EXPECT().Name().Return("mock").AnyTimes()
	dir.EXPECT().Cities(gomock.Any()).Return(sampleCities(), nil).Times(1)

	var sd StoreDirectory = dir
	cities, err := sd.Cities(context.Background())

	require.NoError(t, err)
	assert.Len(t, cities, 2)
	assert.Equal(t, "mock", sd.Name())
}
