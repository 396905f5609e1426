package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeisme/immovault/pkg/internal/model"
	"github.com/yeisme/immovault/pkg/internal/types"
)

func TestListFiltersAndPagination(t *testing.T) {
	ctx, _, _ := newTestEnv(t)
	svc := NewPropertyService(ctx)

	for range 3 {
		seedApartment(t, ctx, svc)
	}

	_, err := svc.Create(ctx, adminActor, &types.CreatePropertyRequest{
		Owner: types.OwnerPayload{IsNewOwner: true, Name: "L"},
		Title: "Land plot",
		Type:  model.TypeLand,
		Kind:  model.KindRental,
	}, nil)
	require.NoError(t, err)

	all, err := svc.List(ctx, adminActor, &types.PropertyListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 4, all.Total)

	apartments, err := svc.List(ctx, adminActor, &types.PropertyListQuery{Type: model.TypeApartment})
	require.NoError(t, err)
	assert.Equal(t, 3, apartments.Total)

	rentals, err := svc.List(ctx, adminActor, &types.PropertyListQuery{Kind: "RENTAL"})
	require.NoError(t, err)
	assert.Equal(t, 1, rentals.Total)

	paged, err := svc.List(ctx, adminActor, &types.PropertyListQuery{Page: 2, Size: 3})
	require.NoError(t, err)
	assert.Equal(t, 4, paged.Total)
	assert.Len(t, paged.Items, 1)

	_, err = svc.List(ctx, adminActor, &types.PropertyListQuery{Type: model.PropertyType("CASTLE")})
	require.Error(t, err)
	assert.Equal(t, 400, StatusOf(err))
}

func TestListHidesArchivedFromCollaborators(t *testing.T) {
	ctx, _, _ := newTestEnv(t)
	svc := NewPropertyService(ctx)

	visible := seedApartment(t, ctx, svc)
	archived := seedApartment(t, ctx, svc)

	_, err := svc.Update(ctx, adminActor, archived.ID, &types.UpdatePropertyRequest{
		Archived: boolPtr(true),
	}, nil)
	require.NoError(t, err)

	asCollab, err := svc.List(ctx, collabActor, &types.PropertyListQuery{})
	require.NoError(t, err)
	require.Equal(t, 1, asCollab.Total)
	assert.Equal(t, visible.ID, asCollab.Items[0].ID)

	asAdmin, err := svc.List(ctx, adminActor, &types.PropertyListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, asAdmin.Total)
}

func TestClampPage(t *testing.T) {
	page, size := clampPage(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, defaultPageSize, size)

	_, size = clampPage(1, 500)
	assert.Equal(t, maxPageSize, size)
}
