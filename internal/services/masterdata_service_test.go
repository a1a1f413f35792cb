package services

import (
	"testing"
	"time"

	"order_entry/internal/orderform"
	"order_entry/internal/repository"

	"github.com/stretchr/testify/assert"
)

func newMasterDataService(t *testing.T) MasterDataService {
	t.Helper()
	db := setupTestDB(t)
	// nil cache: every call goes straight to the repository
	return NewMasterDataService(repository.NewMasterDataRepository(db), nil, time.Minute)
}

func TestGetCustomers(t *testing.T) {
	svc := newMasterDataService(t)

	customers, err := svc.GetCustomers()

	assert.NoError(t, err)
	assert.Len(t, customers, 4)
	assert.Equal(t, "CUST001", customers[0].CustomerID)
	assert.Equal(t, "ABC Corporation", customers[0].CustomerName)
}

func TestGetDefaultIncoterms(t *testing.T) {
	svc := newMasterDataService(t)

	incoterms, err := svc.GetDefaultIncoterms("CUST002")
	assert.NoError(t, err)
	assert.Equal(t, "CIF", incoterms)

	// Unknown customers fall back to FOB
	incoterms, err = svc.GetDefaultIncoterms("CUST999")
	assert.NoError(t, err)
	assert.Equal(t, FallbackIncoterms, incoterms)
}

func TestGetIncotermsAndUnits(t *testing.T) {
	svc := newMasterDataService(t)

	incoterms, err := svc.GetIncoterms()
	assert.NoError(t, err)
	assert.Len(t, incoterms, 5)

	uoms, err := svc.GetUnitsOfMeasure()
	assert.NoError(t, err)
	assert.Len(t, uoms, 5)
	assert.Equal(t, "EA", uoms[0].Code)
}

func TestGetStorageLocationsByPlant(t *testing.T) {
	svc := newMasterDataService(t)

	plants, err := svc.GetPlants()
	assert.NoError(t, err)
	assert.Len(t, plants, 4)

	locations, err := svc.GetStorageLocations("1000")
	assert.NoError(t, err)
	assert.Len(t, locations, 2)

	// Plants without configured locations yield an empty list
	locations, err = svc.GetStorageLocations("1400")
	assert.NoError(t, err)
	assert.Empty(t, locations)
}

func TestLookupMaterial(t *testing.T) {
	svc := newMasterDataService(t)

	lookup, err := svc.LookupMaterial("MAT001")

	assert.NoError(t, err)
	assert.True(t, lookup.Found)
	assert.Equal(t, "Laptop Computer Dell XPS 13", lookup.MaterialDescription)
	assert.Equal(t, 1299.99, lookup.UnitPrice)
	assert.Equal(t, "Available", lookup.Availability)
	assert.Equal(t, orderform.StateSuccess, lookup.AvailabilityState)
	assert.Equal(t, "Available (150 units)", lookup.AvailabilityText)
}

func TestLookupMaterialAvailability(t *testing.T) {
	svc := newMasterDataService(t)

	// 25 units on hand
	limited, err := svc.LookupMaterial("MAT003")
	assert.NoError(t, err)
	assert.Equal(t, "Limited", limited.Availability)
	assert.Equal(t, orderform.StateWarning, limited.AvailabilityState)

	// 0 units on hand
	outOfStock, err := svc.LookupMaterial("MAT004")
	assert.NoError(t, err)
	assert.Equal(t, "Out of Stock", outOfStock.Availability)
	assert.Equal(t, orderform.StateError, outOfStock.AvailabilityState)
}

func TestLookupMaterialNotFound(t *testing.T) {
	svc := newMasterDataService(t)

	lookup, err := svc.LookupMaterial("MAT999")

	assert.NoError(t, err)
	assert.False(t, lookup.Found)
	assert.Equal(t, "Material not found", lookup.MaterialDescription)
	assert.Zero(t, lookup.UnitPrice)
}

func TestSearchMaterials(t *testing.T) {
	svc := newMasterDataService(t)

	materials, err := svc.SearchMaterials("laptop")
	assert.NoError(t, err)
	assert.Len(t, materials, 1)
	assert.Equal(t, "MAT001", materials[0].MaterialID)

	materials, err = svc.SearchMaterials("MAT")
	assert.NoError(t, err)
	assert.Len(t, materials, 4)
}

func TestClassifyAvailability(t *testing.T) {
	tests := []struct {
		quantity  int
		want      string
		wantState orderform.ValueState
	}{
		{0, "Out of Stock", orderform.StateError},
		{-1, "Out of Stock", orderform.StateError},
		{1, "Limited", orderform.StateWarning},
		{49, "Limited", orderform.StateWarning},
		{50, "Available", orderform.StateSuccess},
		{150, "Available", orderform.StateSuccess},
	}

	for _, tt := range tests {
		availability, state := classifyAvailability(tt.quantity)
		assert.Equal(t, tt.want, availability, "quantity %d", tt.quantity)
		assert.Equal(t, tt.wantState, state, "quantity %d", tt.quantity)
	}
}
