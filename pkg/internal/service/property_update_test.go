package service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeisme/immovault/pkg/internal/model"
	"github.com/yeisme/immovault/pkg/internal/storage/object"
	"github.com/yeisme/immovault/pkg/internal/types"
)

// seedApartment 入库一个带明细与清单的公寓聚合，返回聚合.
func seedApartment(t *testing.T, ctx context.Context, svc *PropertyService) *model.Property {
	t.Helper()

	req := &types.CreatePropertyRequest{
		Owner: types.OwnerPayload{IsNewOwner: true, Name: "Seed Owner", Phone: "0550"},
		Title: "Seed F4",
		Type:  model.TypeApartment,
		Kind:  model.KindSale,
		DetailApartment: &types.ApartmentDetailPayload{
			Surface:  floatPtr(110),
			Rooms:    intPtr(4),
			Elevator: boolPtr(true),
		},
		Papers: []types.PaperPayload{
			{Label: "Acte", Category: "ownership", Status: model.PaperAvailable},
			{Label: "Permis", Category: "permits"},
		},
	}

	property, err := svc.Create(ctx, adminActor, req, nil)
	require.NoError(t, err)

	return property
}

func TestUpdateCoreFields(t *testing.T) {
	ctx, _, _ := newTestEnv(t)
	svc := NewPropertyService(ctx)
	seeded := seedApartment(t, ctx, svc)

	updated, err := svc.Update(ctx, adminActor, seeded.ID, &types.UpdatePropertyRequest{
		Title:     strPtr("Renamed F4"),
		SalePrice: floatPtr(18500000),
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Renamed F4", updated.Title)
	require.NotNil(t, updated.SalePrice)
	assert.InDelta(t, 18500000, *updated.SalePrice, 0.001)
	// 未出现在载荷中的字段保持原值
	assert.Equal(t, model.KindSale, updated.Kind)
}

func TestUpdatePartialDetailPreservesOtherColumns(t *testing.T) {
	ctx, _, _ := newTestEnv(t)
	svc := NewPropertyService(ctx)
	seeded := seedApartment(t, ctx, svc)

	updated, err := svc.Update(ctx, adminActor, seeded.ID, &types.UpdatePropertyRequest{
		DetailApartment: &types.ApartmentDetailPayload{Rooms: intPtr(5)},
	}, nil)
	require.NoError(t, err)

	require.NotNil(t, updated.ApartmentDetail)
	require.NotNil(t, updated.ApartmentDetail.Rooms)
	assert.Equal(t, 5, *updated.ApartmentDetail.Rooms)

	// 只更新了 rooms，surface 与 elevator 保持原值
	require.NotNil(t, updated.ApartmentDetail.Surface)
	assert.InDelta(t, 110, *updated.ApartmentDetail.Surface, 0.001)
	require.NotNil(t, updated.ApartmentDetail.Elevator)
	assert.True(t, *updated.ApartmentDetail.Elevator)
}

func TestUpdateCollaboratorCannotChangeArchived(t *testing.T) {
	ctx, gdb, _ := newTestEnv(t)
	svc := NewPropertyService(ctx)
	seeded := seedApartment(t, ctx, svc)

	_, err := svc.Update(ctx, collabActor, seeded.ID, &types.UpdatePropertyRequest{
		Title:    strPtr("Should not land"),
		Archived: boolPtr(true),
	}, nil)
	require.Error(t, err)
	assert.Equal(t, 403, StatusOf(err))

	// 403 在任何写入发生前返回
	var fresh model.Property
	require.NoError(t, gdb.First(&fresh, seeded.ID).Error)
	assert.Equal(t, "Seed F4", fresh.Title)
	assert.False(t, fresh.Archived)
}

func TestUpdateAdminArchivesAndHidesFromCollaborator(t *testing.T) {
	ctx, _, _ := newTestEnv(t)
	svc := NewPropertyService(ctx)
	seeded := seedApartment(t, ctx, svc)

	_, err := svc.Update(ctx, adminActor, seeded.ID, &types.UpdatePropertyRequest{
		Archived: boolPtr(true),
	}, nil)
	require.NoError(t, err)

	// 归档后协作者读取与更新都视同不存在
	_, err = svc.Get(ctx, collabActor, seeded.ID)
	require.Error(t, err)
	assert.Equal(t, 404, StatusOf(err))

	_, err = svc.Update(ctx, collabActor, seeded.ID, &types.UpdatePropertyRequest{
		Title: strPtr("nope"),
	}, nil)
	require.Error(t, err)
	assert.Equal(t, 404, StatusOf(err))

	// 管理员仍可见
	got, err := svc.Get(ctx, adminActor, seeded.ID)
	require.NoError(t, err)
	assert.True(t, got.Archived)
}

func TestUpdateReconcilesPapers(t *testing.T) {
	ctx, _, _ := newTestEnv(t)
	svc := NewPropertyService(ctx)
	seeded := seedApartment(t, ctx, svc)
	require.Len(t, seeded.Papers, 2)

	kept := seeded.Papers[0]

	updated, err := svc.Update(ctx, adminActor, seeded.ID, &types.UpdatePropertyRequest{
		Papers: []types.PaperPayload{
			// 保留并改状态
			{ID: fmt.Sprintf("%d", kept.ID), Label: kept.Label, Category: kept.Category, Status: model.PaperInProgress},
			// 占位 id 视为新建
			{ID: "tmp-1", Label: "Certificat", Category: "permits"},
		},
	}, nil)
	require.NoError(t, err)

	require.Len(t, updated.Papers, 2)

	byLabel := map[string]model.Paper{}
	for _, p := range updated.Papers {
		byLabel[p.Label] = p
	}

	assert.Equal(t, model.PaperInProgress, byLabel[kept.Label].Status)
	assert.Equal(t, kept.ID, byLabel[kept.Label].ID)
	// 新条目默认 MISSING
	assert.Equal(t, model.PaperMissing, byLabel["Certificat"].Status)
	// 未出现在期望清单中的条目被删除
	_, exists := byLabel["Permis"]
	assert.False(t, exists)
}

func TestUpdateNilPapersSkipsReconciliation(t *testing.T) {
	ctx, _, _ := newTestEnv(t)
	svc := NewPropertyService(ctx)
	seeded := seedApartment(t, ctx, svc)

	updated, err := svc.Update(ctx, adminActor, seeded.ID, &types.UpdatePropertyRequest{
		Title: strPtr("No paper change"),
	}, nil)
	require.NoError(t, err)
	assert.Len(t, updated.Papers, 2)
}

func TestUpdateDeletesAttachmentsAndObjects(t *testing.T) {
	ctx, gdb, store := newTestEnv(t)
	svc := NewPropertyService(ctx)
	seeded := seedApartment(t, ctx, svc)

	st, err := store.Stage(ctx, "PHOTO", "kitchen.jpg", strings.NewReader("img"), 3)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, adminActor, seeded.ID, &types.UpdatePropertyRequest{
		Attachments: []types.AttachmentPayload{
			{Kind: model.AttachmentPhoto, Visibility: model.VisibilityInternal, Name: "kitchen.jpg"},
		},
	}, []*object.Staged{st})
	require.NoError(t, err)
	require.Len(t, updated.Attachments, 1)

	att := updated.Attachments[0]
	promotedURL := att.URL

	// 删除附件：行与存储对象都要消失
	updated, err = svc.Update(ctx, adminActor, seeded.ID, &types.UpdatePropertyRequest{
		DeleteAttachmentIDs: []uint{att.ID, 424242}, // 不存在的 id 跳过
	}, nil)
	require.NoError(t, err)
	assert.Empty(t, updated.Attachments)

	var count int64
	require.NoError(t, gdb.Model(&model.Attachment{}).Where("property_id = ?", seeded.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	promoted := strings.TrimPrefix(promotedURL, "/uploads/")
	_, statErr := os.Stat(store.Dir() + "/" + promoted)
	assert.True(t, os.IsNotExist(statErr))
}

func TestUpdateAttachmentVisibilityOnly(t *testing.T) {
	ctx, _, store := newTestEnv(t)
	svc := NewPropertyService(ctx)
	seeded := seedApartment(t, ctx, svc)

	st, err := store.Stage(ctx, "DOCUMENT", "acte.pdf", strings.NewReader("pdf"), 3)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, adminActor, seeded.ID, &types.UpdatePropertyRequest{
		Attachments: []types.AttachmentPayload{
			{Kind: model.AttachmentDocument, Visibility: model.VisibilityInternal, Name: "acte.pdf"},
		},
	}, []*object.Staged{st})
	require.NoError(t, err)
	require.Len(t, updated.Attachments, 1)

	att := updated.Attachments[0]

	updated, err = svc.Update(ctx, adminActor, seeded.ID, &types.UpdatePropertyRequest{
		Attachments: []types.AttachmentPayload{
			{ID: att.ID, Visibility: model.VisibilityPublishable, Category: "ownership"},
		},
	}, nil)
	require.NoError(t, err)
	require.Len(t, updated.Attachments, 1)

	assert.Equal(t, model.VisibilityPublishable, updated.Attachments[0].Visibility)
	assert.Equal(t, "ownership", updated.Attachments[0].Category)
	// URL 不因描述符更新而变化
	assert.Equal(t, att.URL, updated.Attachments[0].URL)
}

func TestUpdateOwnerFields(t *testing.T) {
	ctx, _, _ := newTestEnv(t)
	svc := NewPropertyService(ctx)
	seeded := seedApartment(t, ctx, svc)

	updated, err := svc.Update(ctx, adminActor, seeded.ID, &types.UpdatePropertyRequest{
		Owner: &types.OwnerUpdatePayload{
			ID:    seeded.OwnerID,
			Phone: strPtr("0661"),
		},
	}, nil)
	require.NoError(t, err)

	require.NotNil(t, updated.Owner)
	assert.Equal(t, "0661", updated.Owner.Phone)
	// 其余业主字段不变
	assert.Equal(t, "Seed Owner", updated.Owner.Name)
}

func TestUpdateNotFound(t *testing.T) {
	ctx, _, _ := newTestEnv(t)
	svc := NewPropertyService(ctx)

	_, err := svc.Update(ctx, adminActor, 12345, &types.UpdatePropertyRequest{Title: strPtr("x")}, nil)
	require.Error(t, err)
	assert.Equal(t, 404, StatusOf(err))
}
