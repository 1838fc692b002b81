package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omnical-dev/omnical/internal/models"
	"github.com/omnical-dev/omnical/internal/services"
	"github.com/omnical-dev/omnical/internal/types"
	"github.com/omnical-dev/omnical/internal/utils"
)

type TaskHandler struct {
	identity *services.IdentityResolver
	tasks    *services.TaskService
}

func NewTaskHandler(identity *services.IdentityResolver, tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{identity: identity, tasks: tasks}
}

// CreateTask creates a task for the caller. The Location header points at
// the range query covering the task's due date.
func (h *TaskHandler) CreateTask(ctx *gin.Context) {
	var req services.TaskCreateRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.resolveUser(ctx)

	if err != nil {
		return
	}

	task, err := h.tasks.Create(ctx.Request.Context(), user, req)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	if task.DueDate != nil {
		due := task.DueDate.String()
		ctx.Header("Location", fmt.Sprintf("/api/tasks?from=%s&to=%s", due, due))
	}

	ctx.JSON(http.StatusCreated, task)
}

// GetTasksByRange lists tasks due within [from, to]. Both bounds are
// required "YYYY-MM-DD" dates.
func (h *TaskHandler) GetTasksByRange(ctx *gin.Context) {
	fromParam := ctx.Query("from")
	toParam := ctx.Query("to")

	if fromParam == "" || toParam == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Both from and to query parameters are required"})
		return
	}

	from, err := types.ParseDate(fromParam)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "from must be a YYYY-MM-DD date"})
		return
	}

	to, err := types.ParseDate(toParam)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "to must be a YYYY-MM-DD date"})
		return
	}

	user, err := h.resolveUser(ctx)

	if err != nil {
		return
	}

	tasks, err := h.tasks.ListByDueRange(ctx.Request.Context(), user, from, to)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}

// GetTodayTasks lists the caller's tasks due on the current UTC date.
func (h *TaskHandler) GetTodayTasks(ctx *gin.Context) {
	user, err := h.resolveUser(ctx)

	if err != nil {
		return
	}

	tasks, err := h.tasks.ListToday(ctx.Request.Context(), user)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}

// resolveUser loads or creates the caller's user row. On failure it writes
// the error response and returns a non-nil error so callers just return.
func (h *TaskHandler) resolveUser(ctx *gin.Context) (*models.User, error) {
	principal, err := utils.CurrentPrincipal(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return nil, err
	}

	user, err := h.identity.Resolve(ctx.Request.Context(), principal)

	if err != nil {
		respondServiceError(ctx, err)
		return nil, err
	}

	return user, nil
}
