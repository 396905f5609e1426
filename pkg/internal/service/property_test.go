package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeisme/immovault/pkg/internal/model"
	"github.com/yeisme/immovault/pkg/internal/storage/object"
	"github.com/yeisme/immovault/pkg/internal/types"
)

func floatPtr(v float64) *types.Float {
	f := types.Float(v)
	return &f
}

func intPtr(v int) *types.Int {
	i := types.Int(v)
	return &i
}

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }

func TestCreateWithNewOwner(t *testing.T) {
	ctx, gdb, _ := newTestEnv(t)
	svc := NewPropertyService(ctx)

	req := &types.CreatePropertyRequest{
		Owner: types.OwnerPayload{
			IsNewOwner: true,
			Name:       "Karim B.",
			Phone:      "0550000000",
		},
		Title: "F3 downtown",
		Type:  model.TypeApartment,
		Kind:  model.KindSale,
		City:  "Algiers",
		DetailApartment: &types.ApartmentDetailPayload{
			Surface: floatPtr(92.5),
			Rooms:   intPtr(3),
		},
		Papers: []types.PaperPayload{
			{Label: "Acte de propriété", Category: "ownership"},
			{Label: "Livret foncier", Category: "ownership", Status: model.PaperAvailable},
		},
		Tracking: &types.TrackingPayload{Priority: model.PriorityHigh, Mandate: true},
	}

	property, err := svc.Create(ctx, collabActor, req, nil)
	require.NoError(t, err)

	assert.Equal(t, "F3 downtown", property.Title)
	assert.Equal(t, collabActor.UserID, property.CreatedByID)

	require.NotNil(t, property.Owner)
	assert.Equal(t, "Karim B.", property.Owner.Name)

	require.NotNil(t, property.ApartmentDetail)
	require.NotNil(t, property.ApartmentDetail.Surface)
	assert.InDelta(t, 92.5, *property.ApartmentDetail.Surface, 0.001)

	require.Len(t, property.Papers, 2)
	// 未指定状态的清单条目默认 MISSING
	assert.Equal(t, model.PaperMissing, property.Papers[0].Status)
	assert.Equal(t, model.PaperAvailable, property.Papers[1].Status)

	require.NotNil(t, property.Tracking)
	assert.True(t, property.Tracking.Mandate)

	var ownerCount int64
	require.NoError(t, gdb.Model(&model.Owner{}).Count(&ownerCount).Error)
	assert.EqualValues(t, 1, ownerCount)
}

func TestCreateWithExistingOwner(t *testing.T) {
	ctx, gdb, _ := newTestEnv(t)
	svc := NewPropertyService(ctx)

	owner := model.Owner{Name: "Mme Saidi"}
	require.NoError(t, gdb.Create(&owner).Error)

	req := &types.CreatePropertyRequest{
		Owner: types.OwnerPayload{OwnerID: owner.ID},
		Title: "Villa with garden",
		Type:  model.TypeVilla,
	}

	property, err := svc.Create(ctx, adminActor, req, nil)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, property.OwnerID)

	var ownerCount int64
	require.NoError(t, gdb.Model(&model.Owner{}).Count(&ownerCount).Error)
	assert.EqualValues(t, 1, ownerCount)
}

func TestCreateOwnerNotFoundRollsBack(t *testing.T) {
	ctx, gdb, _ := newTestEnv(t)
	svc := NewPropertyService(ctx)

	req := &types.CreatePropertyRequest{
		Owner: types.OwnerPayload{OwnerID: 999},
		Title: "Orphan listing",
		Type:  model.TypeLand,
		DetailLand: &types.LandDetailPayload{
			Surface: floatPtr(400),
		},
	}

	_, err := svc.Create(ctx, adminActor, req, nil)
	require.Error(t, err)
	assert.Equal(t, 404, StatusOf(err))
	assert.Contains(t, err.Error(), "owner with id 999 not found")

	// 整个事务回滚，任何行都不应落库
	var count int64
	require.NoError(t, gdb.Unscoped().Model(&model.Property{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	require.NoError(t, gdb.Model(&model.LandDetail{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreateInvalidTypeRejected(t *testing.T) {
	ctx, _, _ := newTestEnv(t)
	svc := NewPropertyService(ctx)

	req := &types.CreatePropertyRequest{
		Owner: types.OwnerPayload{IsNewOwner: true, Name: "X"},
		Title: "Bad type",
		Type:  model.PropertyType("CASTLE"),
	}

	_, err := svc.Create(ctx, adminActor, req, nil)
	require.Error(t, err)
	assert.Equal(t, 400, StatusOf(err))
}

func TestCreateVillaIgnoresMismatchedDetails(t *testing.T) {
	ctx, gdb, _ := newTestEnv(t)
	svc := NewPropertyService(ctx)

	req := &types.CreatePropertyRequest{
		Owner: types.OwnerPayload{IsNewOwner: true, Name: "Y"},
		Title: "Villa only",
		Type:  model.TypeVilla,
		DetailVilla: &types.VillaDetailPayload{
			Surface: floatPtr(250),
			Pool:    boolPtr(true),
		},
		// 与类型不符的明细载荷必须被忽略
		DetailApartment: &types.ApartmentDetailPayload{
			Surface: floatPtr(80),
		},
	}

	property, err := svc.Create(ctx, adminActor, req, nil)
	require.NoError(t, err)

	require.NotNil(t, property.VillaDetail)
	assert.Nil(t, property.ApartmentDetail)

	var count int64
	require.NoError(t, gdb.Model(&model.ApartmentDetail{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreatePromotesStagedAttachments(t *testing.T) {
	ctx, _, store := newTestEnv(t)
	svc := NewPropertyService(ctx)

	st, err := store.Stage(ctx, "PHOTO", "front.jpg", strings.NewReader("jpegdata"), 8)
	require.NoError(t, err)

	unused, err := store.Stage(ctx, "PHOTO", "back.jpg", strings.NewReader("jpegdata"), 8)
	require.NoError(t, err)

	req := &types.CreatePropertyRequest{
		Owner: types.OwnerPayload{IsNewOwner: true, Name: "Z"},
		Title: "With photo",
		Type:  model.TypeApartment,
		Attachments: []types.AttachmentPayload{
			{Kind: model.AttachmentPhoto, Visibility: model.VisibilityPublishable, Name: "front.jpg"},
			{Kind: model.AttachmentLocation, Visibility: model.VisibilityInternal, Name: "pin", URL: "https://maps.example.com/p/1"},
			{Kind: model.AttachmentPhoto, Name: "no-source.jpg"}, // 无文件无链接，丢弃
		},
	}

	property, err := svc.Create(ctx, adminActor, req, []*object.Staged{st, unused})
	require.NoError(t, err)

	require.Len(t, property.Attachments, 2)

	var local, external *model.Attachment

	for i := range property.Attachments {
		if store.Owns(property.Attachments[i].URL) {
			local = &property.Attachments[i]
		} else {
			external = &property.Attachments[i]
		}
	}

	require.NotNil(t, local)
	assert.True(t, strings.HasPrefix(local.URL, "/uploads/PHOTO/"))

	// 晋升后的文件真实存在
	promoted := filepath.Join(store.Dir(), strings.TrimPrefix(local.URL, "/uploads/"))
	_, statErr := os.Stat(promoted)
	assert.NoError(t, statErr)

	// 未引用的暂存文件被丢弃
	_, statErr = os.Stat(unused.Ref)
	assert.True(t, os.IsNotExist(statErr))

	require.NotNil(t, external)
	assert.Equal(t, "https://maps.example.com/p/1", external.URL)
}
