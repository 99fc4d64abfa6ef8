package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/kusina-app/kusina-api/models"
	"github.com/stretchr/testify/require"
)

func createGroup(t *testing.T, userId uint, lines []models.OrderLine) {
	t.Helper()
	rec, ctx := newJSONContext(t, http.MethodPost, "/cart", map[string]any{"orders": lines})
	asUser(ctx, userId, "user")
	CreateOrderGroup(ctx)
	requireStatus(t, rec, http.StatusCreated)
}

func TestCreateOrderGroupNeverMerges(t *testing.T) {
	db := setupTestDB(t)

	createGroup(t, 1, []models.OrderLine{{Name: "Chicken Adobo", Quantity: 2, Price: 100}})
	createGroup(t, 1, []models.OrderLine{{Name: "Chicken Adobo", Quantity: 1, Price: 100}})

	// Two submissions of the same dish stay two separate rows
	var count int64
	db.Model(&models.OrderGroup{}).Where("user_id = ?", 1).Count(&count)
	require.Equal(t, int64(2), count)
}

func TestCreateOrderGroupRejectsEmptyCart(t *testing.T) {
	setupTestDB(t)

	rec, ctx := newJSONContext(t, http.MethodPost, "/cart", map[string]any{
		"orders": []models.OrderLine{{Name: "Halo-Halo", Quantity: 0, Price: 50}},
	})
	asUser(ctx, 1, "user")
	CreateOrderGroup(ctx)
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestUpdateOrderGroupDropsDeadLines(t *testing.T) {
	db := setupTestDB(t)
	createGroup(t, 1, []models.OrderLine{
		{Name: "Chicken Adobo", Quantity: 2, Price: 100},
		{Name: "Halo-Halo", Quantity: 1, Price: 50},
	})

	var group models.OrderGroup
	require.NoError(t, db.First(&group).Error)

	// Decrementing Halo-Halo below 1 removes the line
	rec, ctx := newJSONContext(t, http.MethodPatch, "/cart/1", map[string]any{
		"orders": []models.OrderLine{
			{Name: "Chicken Adobo", Quantity: 2, Price: 100},
			{Name: "Halo-Halo", Quantity: 0, Price: 50},
		},
	})
	asUser(ctx, 1, "user")
	setParam(ctx, "id", "1")
	UpdateOrderGroup(ctx)
	requireStatus(t, rec, http.StatusOK)

	require.NoError(t, db.First(&group, group.ID).Error)
	require.Len(t, group.Orders, 1)
	require.Equal(t, "Chicken Adobo", group.Orders[0].Name)
}

func TestUpdateOrderGroupRejectsEmptying(t *testing.T) {
	setupTestDB(t)
	createGroup(t, 1, []models.OrderLine{{Name: "Chicken Adobo", Quantity: 1, Price: 100}})

	rec, ctx := newJSONContext(t, http.MethodPatch, "/cart/1", map[string]any{
		"orders": []models.OrderLine{{Name: "Chicken Adobo", Quantity: 0, Price: 100}},
	})
	asUser(ctx, 1, "user")
	setParam(ctx, "id", "1")
	UpdateOrderGroup(ctx)
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCartGroupOwnership(t *testing.T) {
	db := setupTestDB(t)
	createGroup(t, 1, []models.OrderLine{{Name: "Chicken Adobo", Quantity: 1, Price: 100}})

	// Another user cannot touch the group
	rec, ctx := newJSONContext(t, http.MethodDelete, "/cart/1", nil)
	asUser(ctx, 2, "user")
	setParam(ctx, "id", "1")
	DeleteOrderGroup(ctx)
	requireStatus(t, rec, http.StatusNotFound)

	var count int64
	db.Model(&models.OrderGroup{}).Count(&count)
	require.Equal(t, int64(1), count)

	// The owner can
	rec, ctx = newJSONContext(t, http.MethodDelete, "/cart/1", nil)
	asUser(ctx, 1, "user")
	setParam(ctx, "id", "1")
	DeleteOrderGroup(ctx)
	requireStatus(t, rec, http.StatusOK)

	db.Model(&models.OrderGroup{}).Count(&count)
	require.Equal(t, int64(0), count)
}

func TestGetOrderGroupsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	first := models.OrderGroup{UserID: 1, Orders: []models.OrderLine{{Name: "A", Quantity: 1, Price: 10}}}
	require.NoError(t, db.Create(&first).Error)
	second := models.OrderGroup{UserID: 1, Orders: []models.OrderLine{{Name: "B", Quantity: 1, Price: 20}}}
	second.CreatedAt = first.CreatedAt.Add(time.Minute)
	require.NoError(t, db.Create(&second).Error)

	rec, ctx := newJSONContext(t, http.MethodGet, "/cart", nil)
	asUser(ctx, 1, "user")
	GetOrderGroups(ctx)
	requireStatus(t, rec, http.StatusOK)

	resp := decodeBody(t, rec)
	groups := resp["orderGroups"].([]any)
	require.Len(t, groups, 2)
	newest := groups[0].(map[string]any)
	require.Equal(t, float64(second.ID), newest["ID"])
}
