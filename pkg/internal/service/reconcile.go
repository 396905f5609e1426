package service

import (
	"strconv"
	"strings"

	"github.com/yeisme/immovault/pkg/internal/model"
	"github.com/yeisme/immovault/pkg/internal/types"
)

// PlaceholderIDPrefix 前端为尚未入库的清单条目生成的占位 id 前缀.
const PlaceholderIDPrefix = "tmp-"

// PaperChanges 清单对账结果：期望状态与持久化状态的增/改/删差集.
type PaperChanges struct {
	Create    []model.Paper
	Update    []model.Paper
	DeleteIDs []uint
}

// ReconcilePapers 以期望清单为准对账持久化清单：
//   - 期望中带已知 id 的条目 → 更新
//   - id 缺失或为占位 id 的条目 → 新建
//   - 持久化中未出现在期望里的条目 → 删除
//
// 占位 id 的识别只在这里发生，工作流其余部分不感知前端细节.
func ReconcilePapers(propertyID uint, existing []model.Paper, desired []types.PaperPayload) PaperChanges {
	known := make(map[uint]bool, len(existing))
	for _, p := range existing {
		known[p.ID] = true
	}

	var changes PaperChanges

	seen := make(map[uint]bool, len(desired))

	for _, d := range desired {
		id, ok := parsePaperID(d.ID)

		paper := model.Paper{
			PropertyID: propertyID,
			Label:      d.Label,
			Category:   d.Category,
			Status:     paperStatusOrDefault(d.Status),
		}

		if ok && known[id] {
			paper.ID = id
			seen[id] = true
			changes.Update = append(changes.Update, paper)
		} else {
			changes.Create = append(changes.Create, paper)
		}
	}

	for _, p := range existing {
		if !seen[p.ID] {
			changes.DeleteIDs = append(changes.DeleteIDs, p.ID)
		}
	}

	return changes
}

// parsePaperID 解析载荷中的条目 id. 占位 id 与非数字 id 视为缺失.
func parsePaperID(s string) (uint, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, PlaceholderIDPrefix) {
		return 0, false
	}

	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}

	return uint(id), true
}
