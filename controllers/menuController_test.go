package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/kusina-app/kusina-api/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedMenu(t *testing.T, db *gorm.DB) {
	t.Helper()
	items := []models.MenuItem{
		{Name: "Chicken Adobo", Description: "Slow-braised chicken in soy and vinegar", Price: 100, Category: "Mains"},
		{Name: "Pork Sisig", Description: "Sizzling chopped pork", Price: 150, Category: "Mains"},
		{Name: "Halo-Halo", Description: "Shaved ice with sweet toppings", Price: 50, Category: "Desserts"},
		{Name: "Calamansi Juice", Description: "Fresh citrus drink", Price: 40, Category: "Drinks"},
	}
	for i := range items {
		require.NoError(t, db.Create(&items[i]).Error)
	}
}

func listMenu(t *testing.T, rawQuery string) []models.MenuItem {
	t.Helper()
	rec, ctx := newJSONContext(t, http.MethodGet, "/menu?"+rawQuery, nil)
	GetMenuItems(ctx)
	requireStatus(t, rec, http.StatusOK)

	var resp struct {
		MenuItems []models.MenuItem `json:"menuItems"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.MenuItems
}

func TestGetMenuItemsSearch(t *testing.T) {
	db := setupTestDB(t)
	seedMenu(t, db)

	// Case-insensitive substring against the name
	items := listMenu(t, "search=ADOBO")
	require.Len(t, items, 1)
	require.Equal(t, "Chicken Adobo", items[0].Name)

	// Matches the description too
	items = listMenu(t, "search=sizzling")
	require.Len(t, items, 1)
	require.Equal(t, "Pork Sisig", items[0].Name)

	// And the category
	items = listMenu(t, "search=dess")
	require.Len(t, items, 1)
	require.Equal(t, "Halo-Halo", items[0].Name)

	// No match
	items = listMenu(t, "search=pizza")
	require.Empty(t, items)

	// Empty search returns everything, ordered by category
	items = listMenu(t, "")
	require.Len(t, items, 4)
	require.Equal(t, "Desserts", items[0].Category)
}

func TestGetMenuItemsCategoryFilter(t *testing.T) {
	db := setupTestDB(t)
	seedMenu(t, db)

	items := listMenu(t, "category=Mains")
	require.Len(t, items, 2)
	for _, item := range items {
		require.Equal(t, "Mains", item.Category)
	}
}

func TestGetMenuItemNotFound(t *testing.T) {
	setupTestDB(t)

	rec, ctx := newJSONContext(t, http.MethodGet, "/menu/99", nil)
	setParam(ctx, "id", "99")
	GetMenuItem(ctx)
	requireStatus(t, rec, http.StatusNotFound)
}

func TestGetMenuItemsAdminPagination(t *testing.T) {
	db := setupTestDB(t)
	for i := 0; i < 23; i++ {
		item := models.MenuItem{
			Name:        string(rune('a'+i)) + "-dish",
			Description: "d",
			Price:       10,
			Category:    "Mains",
		}
		require.NoError(t, db.Create(&item).Error)
	}

	rec, ctx := newJSONContext(t, http.MethodGet, "/admin/menu?page=1&limit=10", nil)
	GetMenuItemsAdmin(ctx)
	requireStatus(t, rec, http.StatusOK)

	resp := decodeBody(t, rec)
	metadata := resp["metadata"].(map[string]any)
	require.Equal(t, float64(23), metadata["total"])
	require.Equal(t, float64(1), metadata["currentPage"])
	require.False(t, metadata["hasPrevPage"].(bool))
	require.True(t, metadata["hasNextPage"].(bool))
	require.Len(t, resp["menuItems"].([]any), 10)

	// Last page: window is the remaining 3 rows, next disabled
	rec, ctx = newJSONContext(t, http.MethodGet, "/admin/menu?page=3&limit=10", nil)
	GetMenuItemsAdmin(ctx)
	requireStatus(t, rec, http.StatusOK)

	resp = decodeBody(t, rec)
	metadata = resp["metadata"].(map[string]any)
	require.True(t, metadata["hasPrevPage"].(bool))
	require.False(t, metadata["hasNextPage"].(bool))
	require.Len(t, resp["menuItems"].([]any), 3)
}

func TestPaginationMetadataBoundary(t *testing.T) {
	// page*limit == total means there is no next page
	metadata := paginationMetadata(2, 10, 20)
	require.False(t, metadata["hasNextPage"].(bool))
	require.True(t, metadata["hasPrevPage"].(bool))

	metadata = paginationMetadata(1, 10, 0)
	require.False(t, metadata["hasNextPage"].(bool))
	require.False(t, metadata["hasPrevPage"].(bool))
}
