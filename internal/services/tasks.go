package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/omnical-dev/omnical/internal/models"
	"github.com/omnical-dev/omnical/internal/types"
)

type TaskCreateRequest struct {
	Title          string      `json:"title" binding:"required"`
	Description    *string     `json:"description"`
	StartTime      *time.Time  `json:"start_time"`
	EndTime        *time.Time  `json:"end_time"`
	DueDate        *types.Date `json:"due_date"`
	Priority       *int        `json:"priority"`
	RecurrenceRule *string     `json:"recurrence_rule"`
	CategoryID     *uint       `json:"category_id"`
	TagIDs         []uint      `json:"tag_ids"`
	IsAllDay       bool        `json:"is_all_day"`
}

type TaskResponse struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	DueDate     *types.Date `json:"due_date"`
	Priority    int         `json:"priority"`
	IsCompleted bool        `json:"is_completed"`
	CompletedAt *time.Time  `json:"completed_at"`
}

// TaskService creates and queries tasks. Every operation is scoped to the
// owning user; there is no cross-user path.
type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// Create persists a new pending task and its tag associations as a single
// transaction. Tag ids must belong to the creating user; a foreign tag id
// fails the whole write with ErrTagNotOwned.
func (s *TaskService) Create(ctx context.Context, user *models.User, req TaskCreateRequest) (TaskResponse, error) {
	priority := types.DefaultPriority
	if req.Priority != nil {
		priority = *req.Priority
	}

	now := time.Now().UTC()
	task := models.TaskItem{
		ID:             uuid.New(),
		UserID:         user.ID,
		CategoryID:     req.CategoryID,
		Title:          req.Title,
		Description:    req.Description,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		DueDate:        req.DueDate,
		IsAllDay:       req.IsAllDay,
		Priority:       priority,
		Status:         types.StatusPending,
		RecurrenceRule: req.RecurrenceRule,
		IsCompleted:    false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	tagIDs := dedupe(req.TagIDs)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(tagIDs) > 0 {
			var owned int64
			if err := tx.Model(&models.Tag{}).
				Where("user_id = ? AND id IN ?", user.ID, tagIDs).
				Count(&owned).Error; err != nil {
				return fmt.Errorf("check tag ownership: %w", err)
			}
			if owned != int64(len(tagIDs)) {
				return ErrTagNotOwned
			}
		}

		if err := tx.Create(&task).Error; err != nil {
			return fmt.Errorf("create task: %w", err)
		}

		for _, tagID := range tagIDs {
			link := models.TaskTag{TaskID: task.ID, TagID: tagID}
			if err := tx.Create(&link).Error; err != nil {
				return fmt.Errorf("create task tag: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return TaskResponse{}, err
	}

	return toTaskResponse(task), nil
}

// ListByDueRange returns the user's tasks whose due date falls within
// [from, to] inclusive. Tasks without a due date are excluded. Ordering is
// due date, then priority, then title.
func (s *TaskService) ListByDueRange(ctx context.Context, user *models.User, from, to types.Date) ([]TaskResponse, error) {
	var tasks []models.TaskItem

	err := s.db.WithContext(ctx).
		Where("user_id = ? AND due_date IS NOT NULL AND due_date >= ? AND due_date <= ?", user.ID, from, to).
		Order("due_date ASC, priority ASC, title ASC").
		Find(&tasks).Error

	if err != nil {
		return nil, fmt.Errorf("list tasks by due range: %w", err)
	}

	return toTaskResponses(tasks), nil
}

// ListToday returns the user's tasks due on the current UTC date, ordered
// by priority then title.
func (s *TaskService) ListToday(ctx context.Context, user *models.User) ([]TaskResponse, error) {
	var tasks []models.TaskItem

	err := s.db.WithContext(ctx).
		Where("user_id = ? AND due_date = ?", user.ID, types.Today()).
		Order("priority ASC, title ASC").
		Find(&tasks).Error

	if err != nil {
		return nil, fmt.Errorf("list today's tasks: %w", err)
	}

	return toTaskResponses(tasks), nil
}

func toTaskResponse(task models.TaskItem) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Priority:    task.Priority,
		IsCompleted: task.IsCompleted,
		CompletedAt: task.CompletedAt,
	}
}

func toTaskResponses(tasks []models.TaskItem) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, toTaskResponse(task))
	}
	return responses
}

func dedupe(ids []uint) []uint {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[uint]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
