package product

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"oudora_back_end/internal/models"
)

func sampleProducts() []models.Product {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.Product{
		{Name: "Royal Oud", Description: "Deep oud attar", Category: "Woody", FragranceType: "Oriental", Price: 4500, Rating: 4.8, CreatedAt: base},
		{Name: "Rose Mukhallat", Description: "Taif rose blend", Category: "Floral", FragranceType: "Floral", Price: 3200, Rating: 4.2, CreatedAt: base.Add(24 * time.Hour)},
		{Name: "Citrus Breeze", Description: "Fresh citrus oil", Category: "Fresh", FragranceType: "Fresh", Price: 1800, Rating: 3.9, CreatedAt: base.Add(48 * time.Hour)},
		{Name: "Amber Oud", Description: "Warm amber and oud", Category: "Woody", FragranceType: "Oriental", Price: 5200, Rating: 4.9, CreatedAt: base.Add(72 * time.Hour)},
	}
}

func TestMatchSearch(t *testing.T) {
	products := sampleProducts()

	assert.Len(t, MatchSearch(products, "oud"), 2)
	assert.Len(t, MatchSearch(products, "OUD"), 2)
	assert.Len(t, MatchSearch(products, "taif"), 1)
	assert.Len(t, MatchSearch(products, "woody"), 2)
	assert.Empty(t, MatchSearch(products, "vetiver"))
	assert.Len(t, MatchSearch(products, ""), 4)
}

func TestFilter(t *testing.T) {
	products := sampleProducts()

	woody := Filter(products, "Woody", "")
	assert.Len(t, woody, 2)

	oriental := Filter(products, "", "Oriental")
	assert.Len(t, oriental, 2)

	both := Filter(products, "Woody", "Oriental")
	assert.Len(t, both, 2)

	assert.Empty(t, Filter(products, "Floral", "Oriental"))
	assert.Len(t, Filter(products, "", ""), 4)
}

func TestSort(t *testing.T) {
	products := sampleProducts()
	Sort(products, "price", "asc")
	assert.Equal(t, "Citrus Breeze", products[0].Name)
	assert.Equal(t, "Amber Oud", products[3].Name)

	Sort(products, "price", "")
	assert.Equal(t, "Amber Oud", products[0].Name)

	Sort(products, "name", "asc")
	assert.Equal(t, "Amber Oud", products[0].Name)
	assert.Equal(t, "Royal Oud", products[3].Name)

	// Default field sorts newest first.
	Sort(products, "createdAt", "")
	assert.Equal(t, "Amber Oud", products[0].Name)
	assert.Equal(t, "Royal Oud", products[3].Name)
}

func TestPaginate(t *testing.T) {
	products := sampleProducts()

	page, p := Paginate(products, 1, 3)
	assert.Len(t, page, 3)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 2, p.TotalPages)
	assert.Equal(t, 4, p.TotalItems)
	assert.Equal(t, 3, p.ItemsPerPage)
	assert.True(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)

	page, p = Paginate(products, 2, 3)
	assert.Len(t, page, 1)
	assert.False(t, p.HasNextPage)
	assert.True(t, p.HasPrevPage)

	// A page past the end is empty, not an error.
	page, p = Paginate(products, 5, 3)
	assert.Empty(t, page)
	assert.Equal(t, 5, p.CurrentPage)
	assert.False(t, p.HasNextPage)
}
