package services

import (
	"context"
	"errors"
	"testing"

	"github.com/omnical-dev/omnical/internal/models"
	"github.com/omnical-dev/omnical/internal/types"
)

func TestCreateTaskDefaults(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "user_create", 0)
	svc := NewTaskService(db)

	resp, err := svc.Create(context.Background(), user, TaskCreateRequest{Title: "buy milk"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if resp.Priority != types.DefaultPriority {
		t.Errorf("priority = %d, want default %d", resp.Priority, types.DefaultPriority)
	}
	if resp.IsCompleted {
		t.Error("new task should not be completed")
	}

	var stored models.TaskItem
	if err := db.First(&stored, "id = ?", resp.ID).Error; err != nil {
		t.Fatalf("load stored task: %v", err)
	}
	if stored.Status != types.StatusPending {
		t.Errorf("status = %q, want %q", stored.Status, types.StatusPending)
	}
	if stored.UserID != user.ID {
		t.Errorf("task owned by %s, want %s", stored.UserID, user.ID)
	}
}

func TestCreateTaskWithTags(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "user_tags", 0)
	svc := NewTaskService(db)

	tagA := models.Tag{UserID: user.ID, Name: "home"}
	tagB := models.Tag{UserID: user.ID, Name: "urgent"}
	if err := db.Create(&tagA).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&tagB).Error; err != nil {
		t.Fatal(err)
	}

	resp, err := svc.Create(context.Background(), user, TaskCreateRequest{
		Title:  "tagged",
		TagIDs: []uint{tagA.ID, tagB.ID, tagA.ID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	var links int64
	if err := db.Model(&models.TaskTag{}).Where("task_id = ?", resp.ID).Count(&links).Error; err != nil {
		t.Fatal(err)
	}
	if links != 2 {
		t.Errorf("task_tag rows = %d, want 2 (duplicates collapsed)", links)
	}
}

func TestCreateTaskRejectsForeignTagAtomically(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "user_owner", 0)
	other := newTestUser(t, db, "user_other", 0)
	svc := NewTaskService(db)

	mine := models.Tag{UserID: user.ID, Name: "mine"}
	theirs := models.Tag{UserID: other.ID, Name: "theirs"}
	if err := db.Create(&mine).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&theirs).Error; err != nil {
		t.Fatal(err)
	}

	_, err := svc.Create(context.Background(), user, TaskCreateRequest{
		Title:  "should fail",
		TagIDs: []uint{mine.ID, theirs.ID},
	})
	if !errors.Is(err, ErrTagNotOwned) {
		t.Fatalf("err = %v, want ErrTagNotOwned", err)
	}

	var tasks, links int64
	db.Model(&models.TaskItem{}).Where("user_id = ?", user.ID).Count(&tasks)
	db.Model(&models.TaskTag{}).Count(&links)
	if tasks != 0 || links != 0 {
		t.Errorf("failed create left %d tasks and %d links behind", tasks, links)
	}
}

func TestListByDueRangeInclusiveAndOrdered(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "user_range", 0)
	svc := NewTaskService(db)

	today := types.Today()
	newTestTask(t, db, user, "b today", datePtr(today), 2, false)
	newTestTask(t, db, user, "a today", datePtr(today), 2, false)
	newTestTask(t, db, user, "urgent today", datePtr(today), 1, false)
	newTestTask(t, db, user, "tomorrow", datePtr(today.AddDays(1)), 3, false)
	newTestTask(t, db, user, "week out", datePtr(today.AddDays(7)), 3, false)
	newTestTask(t, db, user, "month out", datePtr(today.AddDays(30)), 3, false)
	newTestTask(t, db, user, "no due date", nil, 1, false)

	got, err := svc.ListByDueRange(context.Background(), user, today, today.AddDays(7))
	if err != nil {
		t.Fatalf("ListByDueRange: %v", err)
	}

	want := []string{"urgent today", "a today", "b today", "tomorrow", "week out"}
	if len(got) != len(want) {
		t.Fatalf("got %d tasks, want %d", len(got), len(want))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("position %d: got %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestListByDueRangeExcludesOtherUsers(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "user_iso_a", 0)
	other := newTestUser(t, db, "user_iso_b", 0)
	svc := NewTaskService(db)

	today := types.Today()
	newTestTask(t, db, user, "mine", datePtr(today), 2, false)
	newTestTask(t, db, other, "theirs", datePtr(today), 2, false)

	got, err := svc.ListByDueRange(context.Background(), user, today, today)
	if err != nil {
		t.Fatalf("ListByDueRange: %v", err)
	}

	if len(got) != 1 || got[0].Title != "mine" {
		t.Errorf("expected only own task, got %+v", got)
	}
}

func TestListTodayOrderedByPriorityThenTitle(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "user_today", 0)
	svc := NewTaskService(db)

	today := types.Today()
	newTestTask(t, db, user, "zebra", datePtr(today), 1, false)
	newTestTask(t, db, user, "apple", datePtr(today), 1, false)
	newTestTask(t, db, user, "low priority", datePtr(today), 4, false)
	newTestTask(t, db, user, "yesterday", datePtr(today.AddDays(-1)), 1, false)
	newTestTask(t, db, user, "tomorrow", datePtr(today.AddDays(1)), 1, false)
	newTestTask(t, db, user, "dateless", nil, 1, false)

	got, err := svc.ListToday(context.Background(), user)
	if err != nil {
		t.Fatalf("ListToday: %v", err)
	}

	want := []string{"apple", "zebra", "low priority"}
	if len(got) != len(want) {
		t.Fatalf("got %d tasks, want %d", len(got), len(want))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("position %d: got %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestListTodayEmptyIsNotError(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "user_none", 0)
	svc := NewTaskService(db)

	got, err := svc.ListToday(context.Background(), user)
	if err != nil {
		t.Fatalf("ListToday: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d tasks", len(got))
	}
}
