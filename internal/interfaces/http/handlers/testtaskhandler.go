package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"deskflow/internal/application/task/usecases"
	"deskflow/internal/infrastructure/storage"
	"deskflow/internal/shared/logger"
	"deskflow/internal/shared/services/markdown"
	"deskflow/internal/shared/utils"
)

// TestTaskHandler handles test task operations.
type TestTaskHandler struct {
	createUC         *usecases.CreateTestTaskUseCase
	getUC            *usecases.GetTestTaskUseCase
	listUC           *usecases.ListTestTasksUseCase
	changeStatusUC   *usecases.ChangeTestTaskStatusUseCase
	assignUC         *usecases.AssignTestTaskUseCase
	addCommentUC     *usecases.AddTestTaskCommentUseCase
	reportBlockerUC  *usecases.ReportTestTaskBlockerUseCase
	resolveBlockerUC *usecases.ResolveTestTaskBlockerUseCase
	attachFilesUC    *usecases.AttachTestTaskFilesUseCase
	store            *storage.LocalStore
	markdown         markdown.Service
	logger           logger.Interface
}

type TestTaskHandlerDeps struct {
	CreateUC         *usecases.CreateTestTaskUseCase
	GetUC            *usecases.GetTestTaskUseCase
	ListUC           *usecases.ListTestTasksUseCase
	ChangeStatusUC   *usecases.ChangeTestTaskStatusUseCase
	AssignUC         *usecases.AssignTestTaskUseCase
	AddCommentUC     *usecases.AddTestTaskCommentUseCase
	ReportBlockerUC  *usecases.ReportTestTaskBlockerUseCase
	ResolveBlockerUC *usecases.ResolveTestTaskBlockerUseCase
	AttachFilesUC    *usecases.AttachTestTaskFilesUseCase
	Store            *storage.LocalStore
	Markdown         markdown.Service
	Logger           logger.Interface
}

func NewTestTaskHandler(deps TestTaskHandlerDeps) *TestTaskHandler {
	return &TestTaskHandler{
		createUC:         deps.CreateUC,
		getUC:            deps.GetUC,
		listUC:           deps.ListUC,
		changeStatusUC:   deps.ChangeStatusUC,
		assignUC:         deps.AssignUC,
		addCommentUC:     deps.AddCommentUC,
		reportBlockerUC:  deps.ReportBlockerUC,
		resolveBlockerUC: deps.ResolveBlockerUC,
		attachFilesUC:    deps.AttachFilesUC,
		store:            deps.Store,
		markdown:         deps.Markdown,
		logger:           deps.Logger,
	}
}

type createTestTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Urgency     string     `json:"urgency" binding:"required"`
	Priority    int        `json:"priority" binding:"required"`
	AssigneeIDs []uint     `json:"assignee_ids"`
	DueDate     *time.Time `json:"due_date"`
}

// CreateTestTask handles POST /test-tasks
func (h *TestTaskHandler) CreateTestTask(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req createTestTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTestTaskCommand{
		Title:       req.Title,
		Description: req.Description,
		Urgency:     req.Urgency,
		Priority:    req.Priority,
		CreatorID:   who.ID,
		CallerRole:  who.Role,
		AssigneeIDs: req.AssigneeIDs,
		DueDate:     req.DueDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Test task created successfully")
}

// GetTestTask handles GET /test-tasks/:id
func (h *TestTaskHandler) GetTestTask(c *gin.Context) {
	taskID, err := utils.ParseUintParam(c, "id", "test task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetTestTaskQuery{TestTaskID: taskID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	renderTaskComments(h.markdown, result.Comments, h.logger)

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTestTasks handles GET /test-tasks
func (h *TestTaskHandler) ListTestTasks(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	query := usecases.ListTestTasksQuery{
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	}
	if raw := c.Query("assignee_id"); raw != "" {
		if id, err := utils.ParseUintQuery(raw); err == nil {
			query.AssigneeID = id
		}
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.TestTasks, result.Total, page, pageSize)
}

// ChangeStatus handles PATCH /test-tasks/:id/status
func (h *TestTaskHandler) ChangeStatus(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	taskID, err := utils.ParseUintParam(c, "id", "test task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err = h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeTestTaskStatusCommand{
		TestTaskID: taskID,
		NewStatus:  req.Status,
		ChangedBy:  who.ID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Test task status updated", nil)
}

// AssignTestTask handles POST /test-tasks/:id/assign
func (h *TestTaskHandler) AssignTestTask(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	taskID, err := utils.ParseUintParam(c, "id", "test task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req assignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err = h.assignUC.Execute(c.Request.Context(), usecases.AssignTestTaskCommand{
		TestTaskID:  taskID,
		AssigneeIDs: req.AssigneeIDs,
		AssignedBy:  who.ID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Test task assigned", nil)
}

// AddComment handles POST /test-tasks/:id/comments
func (h *TestTaskHandler) AddComment(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	taskID, err := utils.ParseUintParam(c, "id", "test task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req taskCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err = h.addCommentUC.Execute(c.Request.Context(), usecases.AddTestTaskCommentCommand{
		TestTaskID: taskID,
		AuthorID:   who.ID,
		AuthorName: who.Name,
		Text:       req.Text,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, nil, "Comment added successfully")
}

// ReportBlocker handles POST /test-tasks/:id/blockers
func (h *TestTaskHandler) ReportBlocker(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	taskID, err := utils.ParseUintParam(c, "id", "test task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req reportBlockerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err = h.reportBlockerUC.Execute(c.Request.Context(), usecases.ReportTestTaskBlockerCommand{
		TestTaskID: taskID,
		Reason:     req.Reason,
		CreatedBy:  who.ID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, nil, "Blocker reported successfully")
}

// ResolveBlocker handles POST /test-tasks/:id/blockers/resolve
func (h *TestTaskHandler) ResolveBlocker(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	taskID, err := utils.ParseUintParam(c, "id", "test task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req resolveTaskBlockerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err = h.resolveBlockerUC.Execute(c.Request.Context(), usecases.ResolveTestTaskBlockerCommand{
		TestTaskID:   taskID,
		BlockerIndex: *req.BlockerIndex,
		Resolution:   req.Resolution,
		ResolvedBy:   who.ID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Blocker resolved", nil)
}

// UploadAttachments handles POST /test-tasks/:id/attachments
func (h *TestTaskHandler) UploadAttachments(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	taskID, err := utils.ParseUintParam(c, "id", "test task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "multipart form data is required")
		return
	}
	uploads := form.File["files"]
	if len(uploads) == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "at least one file is required")
		return
	}

	dto, err := h.getUC.Execute(c.Request.Context(), usecases.GetTestTaskQuery{TestTaskID: taskID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	files, err := storeUploads(h.store, uploads, h.store.TestTaskDir(dto.Number), who.ID)
	if err != nil {
		h.logger.Errorw("failed to store uploaded files", "error", err, "test_task_id", taskID)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to store uploaded files")
		return
	}

	err = h.attachFilesUC.Execute(c.Request.Context(), usecases.AttachTestTaskFilesCommand{
		TestTaskID: taskID,
		Files:      files,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"uploaded": len(files)}, "Attachments uploaded successfully")
}
