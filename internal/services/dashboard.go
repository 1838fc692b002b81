package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/omnical-dev/omnical/internal/models"
	"github.com/omnical-dev/omnical/internal/types"
)

// Rank labels, ordered by the experience required to reach them.
const (
	RankJunior       = "Junior"
	RankBeginner     = "Beginner"
	RankIntermediate = "Intermediate"
	RankAdvanced     = "Advanced"
	RankMaster       = "Master"
	RankLegend       = "Legend"
)

type DashboardSummary struct {
	Rank             string `json:"rank"`
	ExperiencePoints int    `json:"experience_points"`
	TodayDone        int64  `json:"today_done"`
	TodayLeft        int64  `json:"today_left"`
	TotalDone        int64  `json:"total_done"`
	TotalLeft        int64  `json:"total_left"`
}

// DashboardService computes per-user task statistics. Read-only; every
// query is scoped to the resolved user's id.
type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Summary partitions the user's tasks by completion, both for tasks due on
// the current UTC date and overall.
func (s *DashboardService) Summary(ctx context.Context, user *models.User) (DashboardSummary, error) {
	today := types.Today()

	summary := DashboardSummary{
		Rank:             RankForExperience(user.ExperiencePoints),
		ExperiencePoints: user.ExperiencePoints,
	}

	counts := []struct {
		dest  *int64
		query string
		args  []interface{}
	}{
		{&summary.TodayDone, "user_id = ? AND due_date = ? AND is_completed = ?", []interface{}{user.ID, today, true}},
		{&summary.TodayLeft, "user_id = ? AND due_date = ? AND is_completed = ?", []interface{}{user.ID, today, false}},
		{&summary.TotalDone, "user_id = ? AND is_completed = ?", []interface{}{user.ID, true}},
		{&summary.TotalLeft, "user_id = ? AND is_completed = ?", []interface{}{user.ID, false}},
	}

	for _, c := range counts {
		if err := s.db.WithContext(ctx).
			Model(&models.TaskItem{}).
			Where(c.query, c.args...).
			Count(c.dest).Error; err != nil {
			return DashboardSummary{}, fmt.Errorf("count tasks: %w", err)
		}
	}

	return summary, nil
}

// RankForExperience maps accumulated experience points to a rank label.
// Thresholds are left-inclusive powers of ten.
func RankForExperience(xp int) string {
	switch {
	case xp < 1:
		return RankJunior
	case xp < 10:
		return RankBeginner
	case xp < 100:
		return RankIntermediate
	case xp < 1000:
		return RankAdvanced
	case xp < 10000:
		return RankMaster
	default:
		return RankLegend
	}
}
