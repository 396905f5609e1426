package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeisme/immovault/pkg/internal/model"
	"github.com/yeisme/immovault/pkg/internal/types"
)

func TestReconcilePapersDiff(t *testing.T) {
	existing := []model.Paper{
		{ID: 10, PropertyID: 1, Label: "Acte", Status: model.PaperAvailable},
		{ID: 11, PropertyID: 1, Label: "Permis", Status: model.PaperMissing},
	}

	desired := []types.PaperPayload{
		{ID: "10", Label: "Acte notarié", Status: model.PaperInProgress}, // 更新
		{ID: "tmp-3", Label: "Certificat"},                              // 占位 id -> 新建
		{Label: "Plan cadastral"},                                       // 无 id -> 新建
	}

	changes := ReconcilePapers(1, existing, desired)

	require.Len(t, changes.Update, 1)
	assert.EqualValues(t, 10, changes.Update[0].ID)
	assert.Equal(t, "Acte notarié", changes.Update[0].Label)
	assert.Equal(t, model.PaperInProgress, changes.Update[0].Status)

	require.Len(t, changes.Create, 2)
	// 新建条目默认 MISSING
	for _, p := range changes.Create {
		assert.Zero(t, p.ID)
		assert.EqualValues(t, 1, p.PropertyID)
		assert.Equal(t, model.PaperMissing, p.Status)
	}

	require.Len(t, changes.DeleteIDs, 1)
	assert.EqualValues(t, 11, changes.DeleteIDs[0])
}

func TestReconcilePapersEmptyDesiredDeletesAll(t *testing.T) {
	existing := []model.Paper{{ID: 1}, {ID: 2}}

	changes := ReconcilePapers(7, existing, []types.PaperPayload{})

	assert.Empty(t, changes.Create)
	assert.Empty(t, changes.Update)
	assert.ElementsMatch(t, []uint{1, 2}, changes.DeleteIDs)
}

func TestReconcilePapersUnknownIDCreates(t *testing.T) {
	// 带 id 但库中不存在 -> 当作新建而不是报错
	changes := ReconcilePapers(7, nil, []types.PaperPayload{{ID: "42", Label: "Ghost"}})

	require.Len(t, changes.Create, 1)
	assert.Zero(t, changes.Create[0].ID)
	assert.Empty(t, changes.DeleteIDs)
}

func TestParsePaperID(t *testing.T) {
	cases := []struct {
		in string
		id uint
		ok bool
	}{
		{"10", 10, true},
		{" 10 ", 10, true},
		{"", 0, false},
		{"tmp-5", 0, false},
		{"abc", 0, false},
		{"0", 0, false},
	}

	for _, c := range cases {
		id, ok := parsePaperID(c.in)
		assert.Equal(t, c.ok, ok, c.in)
		assert.Equal(t, c.id, id, c.in)
	}
}
