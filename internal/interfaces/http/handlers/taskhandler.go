package handlers

import (
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	taskdto "deskflow/internal/application/task/dto"
	"deskflow/internal/application/task/usecases"
	"deskflow/internal/domain/task"
	"deskflow/internal/infrastructure/realtime"
	"deskflow/internal/infrastructure/storage"
	"deskflow/internal/shared/logger"
	"deskflow/internal/shared/services/markdown"
	"deskflow/internal/shared/utils"
)

// TaskHandler handles development task operations.
type TaskHandler struct {
	createUC         *usecases.CreateTaskUseCase
	getUC            *usecases.GetTaskUseCase
	listUC           *usecases.ListTasksUseCase
	changeStatusUC   *usecases.ChangeTaskStatusUseCase
	assignUC         *usecases.AssignTaskUseCase
	addCommentUC     *usecases.AddTaskCommentUseCase
	reportBlockerUC  *usecases.ReportTaskBlockerUseCase
	resolveBlockerUC *usecases.ResolveTaskBlockerUseCase
	linkSubtaskUC    *usecases.LinkSubtaskUseCase
	attachFilesUC    *usecases.AttachTaskFilesUseCase
	store            *storage.LocalStore
	hub              *realtime.Hub
	markdown         markdown.Service
	logger           logger.Interface
}

type TaskHandlerDeps struct {
	CreateUC         *usecases.CreateTaskUseCase
	GetUC            *usecases.GetTaskUseCase
	ListUC           *usecases.ListTasksUseCase
	ChangeStatusUC   *usecases.ChangeTaskStatusUseCase
	AssignUC         *usecases.AssignTaskUseCase
	AddCommentUC     *usecases.AddTaskCommentUseCase
	ReportBlockerUC  *usecases.ReportTaskBlockerUseCase
	ResolveBlockerUC *usecases.ResolveTaskBlockerUseCase
	LinkSubtaskUC    *usecases.LinkSubtaskUseCase
	AttachFilesUC    *usecases.AttachTaskFilesUseCase
	Store            *storage.LocalStore
	Hub              *realtime.Hub
	Markdown         markdown.Service
	Logger           logger.Interface
}

func NewTaskHandler(deps TaskHandlerDeps) *TaskHandler {
	return &TaskHandler{
		createUC:         deps.CreateUC,
		getUC:            deps.GetUC,
		listUC:           deps.ListUC,
		changeStatusUC:   deps.ChangeStatusUC,
		assignUC:         deps.AssignUC,
		addCommentUC:     deps.AddCommentUC,
		reportBlockerUC:  deps.ReportBlockerUC,
		resolveBlockerUC: deps.ResolveBlockerUC,
		linkSubtaskUC:    deps.LinkSubtaskUC,
		attachFilesUC:    deps.AttachFilesUC,
		store:            deps.Store,
		hub:              deps.Hub,
		markdown:         deps.Markdown,
		logger:           deps.Logger,
	}
}

type createTaskRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	Urgency     string     `json:"urgency" binding:"required"`
	Priority    int        `json:"priority" binding:"required"`
	ParentID    *uint      `json:"parent_id"`
	AssigneeIDs []uint     `json:"assignee_ids"`
	DueDate     *time.Time `json:"due_date"`
}

// CreateTask handles POST /tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTaskCommand{
		Name:        req.Name,
		Description: req.Description,
		Urgency:     req.Urgency,
		Priority:    req.Priority,
		CreatorID:   who.ID,
		CallerRole:  who.Role,
		ParentID:    req.ParentID,
		AssigneeIDs: req.AssigneeIDs,
		DueDate:     req.DueDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Task created successfully")
}

// GetTask handles GET /tasks/:id
func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, err := utils.ParseUintParam(c, "id", "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetTaskQuery{TaskID: taskID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	renderTaskComments(h.markdown, result.Comments, h.logger)

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTasks handles GET /tasks
func (h *TaskHandler) ListTasks(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	query := usecases.ListTasksQuery{
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	}
	if raw := c.Query("assignee_id"); raw != "" {
		if id, err := utils.ParseUintQuery(raw); err == nil {
			query.AssigneeID = id
		}
	}
	if raw := c.Query("creator_id"); raw != "" {
		if id, err := utils.ParseUintQuery(raw); err == nil {
			query.CreatorID = id
		}
	}
	if raw := c.Query("parent_id"); raw != "" {
		if id, err := utils.ParseUintQuery(raw); err == nil {
			query.ParentID = &id
		}
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tasks, result.Total, page, pageSize)
}

// ChangeStatus handles PATCH /tasks/:id/status
func (h *TaskHandler) ChangeStatus(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	taskID, err := utils.ParseUintParam(c, "id", "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err = h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeTaskStatusCommand{
		TaskID:     taskID,
		NewStatus:  req.Status,
		ChangedBy:  who.ID,
		CallerRole: who.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.hub.Publish(&realtime.Event{
		Type:      realtime.EventTaskStatusChanged,
		Entity:    "task",
		EntityID:  taskID,
		Timestamp: time.Now().UnixMilli(),
		Data:      gin.H{"status": req.Status},
	})

	utils.SuccessResponse(c, http.StatusOK, "Task status updated", nil)
}

type assignTaskRequest struct {
	AssigneeIDs []uint `json:"assignee_ids" binding:"required"`
}

// AssignTask handles POST /tasks/:id/assign
func (h *TaskHandler) AssignTask(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	taskID, err := utils.ParseUintParam(c, "id", "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req assignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err = h.assignUC.Execute(c.Request.Context(), usecases.AssignTaskCommand{
		TaskID:      taskID,
		AssigneeIDs: req.AssigneeIDs,
		AssignedBy:  who.ID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task assigned", nil)
}

type taskCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// AddComment handles POST /tasks/:id/comments
func (h *TaskHandler) AddComment(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	taskID, err := utils.ParseUintParam(c, "id", "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req taskCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err = h.addCommentUC.Execute(c.Request.Context(), usecases.AddTaskCommentCommand{
		TaskID:     taskID,
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

type reportBlockerRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ReportBlocker handles POST /tasks/:id/blockers
func (h *TaskHandler) ReportBlocker(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	taskID, err := utils.ParseUintParam(c, "id", "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req reportBlockerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err = h.reportBlockerUC.Execute(c.Request.Context(), usecases.ReportTaskBlockerCommand{
		TaskID:    taskID,
		Reason:    req.Reason,
		CreatedBy: who.ID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.hub.Publish(&realtime.Event{
		Type:      realtime.EventTaskBlocked,
		Entity:    "task",
		EntityID:  taskID,
		Timestamp: time.Now().UnixMilli(),
		Data:      gin.H{"reason": req.Reason},
	})

	utils.CreatedResponse(c, nil, "Blocker reported successfully")
}

type resolveTaskBlockerRequest struct {
	BlockerIndex *int   `json:"blocker_index" binding:"required"`
	Resolution   string `json:"resolution" binding:"required"`
}

// ResolveBlocker handles POST /tasks/:id/blockers/resolve
func (h *TaskHandler) ResolveBlocker(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	taskID, err := utils.ParseUintParam(c, "id", "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req resolveTaskBlockerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err = h.resolveBlockerUC.Execute(c.Request.Context(), usecases.ResolveTaskBlockerCommand{
		TaskID:       taskID,
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

type linkSubtaskRequest struct {
	SubtaskID uint `json:"subtask_id" binding:"required"`
}

// LinkSubtask handles POST /tasks/:id/subtasks
func (h *TaskHandler) LinkSubtask(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	taskID, err := utils.ParseUintParam(c, "id", "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req linkSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err = h.linkSubtaskUC.Execute(c.Request.Context(), usecases.LinkSubtaskCommand{
		TaskID:    taskID,
		SubtaskID: req.SubtaskID,
		LinkedBy:  who.ID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subtask linked", nil)
}

// UploadAttachments handles POST /tasks/:id/attachments
func (h *TaskHandler) UploadAttachments(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	taskID, err := utils.ParseUintParam(c, "id", "task")
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

	dto, err := h.getUC.Execute(c.Request.Context(), usecases.GetTaskQuery{TaskID: taskID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	refs, err := storeUploads(h.store, uploads, h.store.TaskDir(dto.Number), who.ID)
	if err != nil {
		h.logger.Errorw("failed to store uploaded files", "error", err, "task_id", taskID)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to store uploaded files")
		return
	}

	err = h.attachFilesUC.Execute(c.Request.Context(), usecases.AttachTaskFilesCommand{
		TaskID: taskID,
		Files:  refs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"uploaded": len(refs)}, "Attachments uploaded successfully")
}

// storeUploads writes multipart uploads under relDir and returns the refs
// to record on the aggregate. Shared by the task and test task handlers.
func storeUploads(store *storage.LocalStore, uploads []*multipart.FileHeader, relDir string, uploadedBy uint) ([]task.FileRef, error) {
	var refs []task.FileRef
	for _, fh := range uploads {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		relPath, size, err := store.SaveFile(relDir, fh.Filename, f)
		f.Close()
		if err != nil {
			return nil, err
		}
		refs = append(refs, task.FileRef{
			Name:       fh.Filename,
			Path:       relPath,
			Size:       size,
			UploadedBy: uploadedBy,
			UploadedAt: time.Now(),
		})
	}
	return refs, nil
}

// renderTaskComments fills TextHTML on each comment in place. Shared with
// the test task handler.
func renderTaskComments(md markdown.Service, comments []taskdto.CommentDTO, log logger.Interface) {
	if md == nil {
		return
	}
	for i := range comments {
		rendered, err := md.ToHTMLSanitized(comments[i].Text)
		if err != nil {
			log.Warnw("failed to render comment markdown", "error", err, "comment_id", comments[i].ID)
			continue
		}
		comments[i].TextHTML = rendered
	}
}
