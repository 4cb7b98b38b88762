package product

import (
	"sort"
	"strings"

	"oudora_back_end/internal/models"
)

// Pagination mirrors the envelope the admin panel paginates with.
type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

// MatchSearch keeps products whose name, description or category
// contains the query, case-insensitively. Used when Elasticsearch is
// unavailable.
func MatchSearch(products []models.Product, query string) []models.Product {
	if query == "" {
		return products
	}
	q := strings.ToLower(query)
	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Filter applies the category and fragranceType filters. Empty values
// match everything.
func Filter(products []models.Product, category, fragranceType string) []models.Product {
	if category == "" && fragranceType == "" {
		return products
	}
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if fragranceType != "" && p.FragranceType != fragranceType {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// Sort orders products by the requested field. Unknown fields and the
// default both sort by createdAt; sortOrder defaults to descending.
func Sort(products []models.Product, sortBy, sortOrder string) {
	asc := sortOrder == "asc"

	less := func(i, j int) bool {
		var before bool
		switch sortBy {
		case "name":
			before = products[i].Name < products[j].Name
		case "price":
			before = products[i].Price < products[j].Price
		case "rating":
			before = products[i].Rating < products[j].Rating
		default:
			before = products[i].CreatedAt.Before(products[j].CreatedAt)
		}
		if asc {
			return before
		}
		return !before
	}

	sort.SliceStable(products, less)
}

// Paginate slices one page out of the full result set.
func Paginate(products []models.Product, page, limit int) ([]models.Product, Pagination) {
	total := len(products)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return products[start:end], Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}
