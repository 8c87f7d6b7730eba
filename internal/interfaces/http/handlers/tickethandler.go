package handlers

import (
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	ticketdto "deskflow/internal/application/ticket/dto"
	"deskflow/internal/application/ticket/usecases"
	"deskflow/internal/domain/ticket"
	"deskflow/internal/infrastructure/realtime"
	"deskflow/internal/infrastructure/storage"
	"deskflow/internal/shared/logger"
	"deskflow/internal/shared/services/markdown"
	"deskflow/internal/shared/utils"
)

// TicketHandler handles the full ticket lifecycle over HTTP.
type TicketHandler struct {
	createUC            *usecases.CreateTicketUseCase
	getUC               *usecases.GetTicketUseCase
	listUC              *usecases.ListTicketsUseCase
	changeStatusUC      *usecases.ChangeStatusUseCase
	updateFinancialUC   *usecases.UpdateFinancialUseCase
	addCommentUC        *usecases.AddCommentUseCase
	addMeetingUC        *usecases.AddMeetingUseCase
	addInterventionUC   *usecases.AddInterventionUseCase
	requestValidationUC *usecases.RequestValidationUseCase
	validateUC          *usecases.ValidateInterventionUseCase
	addBlockerUC        *usecases.AddBlockerUseCase
	resolveBlockerUC    *usecases.ResolveBlockerUseCase
	assignRolesUC       *usecases.AssignRolesUseCase
	sendUC              *usecases.SendTicketUseCase
	transferUC          *usecases.TransferTicketUseCase
	uploadUC            *usecases.UploadAttachmentUseCase
	downloadUC          *usecases.DownloadAttachmentUseCase
	store               *storage.LocalStore
	hub                 *realtime.Hub
	markdown            markdown.Service
	logger              logger.Interface
}

type TicketHandlerDeps struct {
	CreateUC            *usecases.CreateTicketUseCase
	GetUC               *usecases.GetTicketUseCase
	ListUC              *usecases.ListTicketsUseCase
	ChangeStatusUC      *usecases.ChangeStatusUseCase
	UpdateFinancialUC   *usecases.UpdateFinancialUseCase
	AddCommentUC        *usecases.AddCommentUseCase
	AddMeetingUC        *usecases.AddMeetingUseCase
	AddInterventionUC   *usecases.AddInterventionUseCase
	RequestValidationUC *usecases.RequestValidationUseCase
	ValidateUC          *usecases.ValidateInterventionUseCase
	AddBlockerUC        *usecases.AddBlockerUseCase
	ResolveBlockerUC    *usecases.ResolveBlockerUseCase
	AssignRolesUC       *usecases.AssignRolesUseCase
	SendUC              *usecases.SendTicketUseCase
	TransferUC          *usecases.TransferTicketUseCase
	UploadUC            *usecases.UploadAttachmentUseCase
	DownloadUC          *usecases.DownloadAttachmentUseCase
	Store               *storage.LocalStore
	Hub                 *realtime.Hub
	Markdown            markdown.Service
	Logger              logger.Interface
}

func NewTicketHandler(deps TicketHandlerDeps) *TicketHandler {
	return &TicketHandler{
		createUC:            deps.CreateUC,
		getUC:               deps.GetUC,
		listUC:              deps.ListUC,
		changeStatusUC:      deps.ChangeStatusUC,
		updateFinancialUC:   deps.UpdateFinancialUC,
		addCommentUC:        deps.AddCommentUC,
		addMeetingUC:        deps.AddMeetingUC,
		addInterventionUC:   deps.AddInterventionUC,
		requestValidationUC: deps.RequestValidationUC,
		validateUC:          deps.ValidateUC,
		addBlockerUC:        deps.AddBlockerUC,
		resolveBlockerUC:    deps.ResolveBlockerUC,
		assignRolesUC:       deps.AssignRolesUC,
		sendUC:              deps.SendUC,
		transferUC:          deps.TransferUC,
		uploadUC:            deps.UploadUC,
		downloadUC:          deps.DownloadUC,
		store:               deps.Store,
		hub:                 deps.Hub,
		markdown:            deps.Markdown,
		logger:              deps.Logger,
	}
}

type contactRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Availability string `json:"availability"`
}

type createTicketRequest struct {
	Title       string           `json:"title" binding:"required"`
	Application string           `json:"application" binding:"required"`
	Environment string           `json:"environment"`
	RequestType string           `json:"request_type" binding:"required"`
	Description string           `json:"description" binding:"required"`
	Urgency     string           `json:"urgency" binding:"required"`
	Draft       bool             `json:"draft"`
	ClientID    uint             `json:"client_id"`
	Links       []string         `json:"links"`
	Contacts    []contactRequest `json:"contacts"`
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req createTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	contacts := make([]ticket.Contact, len(req.Contacts))
	for i, ct := range req.Contacts {
		contacts[i] = ticket.Contact{
			Name:         ct.Name,
			Email:        ct.Email,
			Phone:        ct.Phone,
			Availability: ct.Availability,
		}
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Title:       req.Title,
		Application: req.Application,
		Environment: req.Environment,
		RequestType: req.RequestType,
		Description: req.Description,
		Urgency:     req.Urgency,
		Draft:       req.Draft,
		ClientID:    req.ClientID,
		CallerID:    who.ID,
		CallerRole:  who.Role,
		Links:       req.Links,
		Contacts:    contacts,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID:   ticketID,
		CallerID:   who.ID,
		CallerRole: who.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.renderComments(result)

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// renderComments fills TextHTML on each comment. Comment bodies are stored
// as markdown; rendering and sanitizing happen at the presentation edge.
func (h *TicketHandler) renderComments(dto *ticketdto.TicketDTO) {
	if h.markdown == nil {
		return
	}
	for i := range dto.Comments {
		rendered, err := h.markdown.ToHTMLSanitized(dto.Comments[i].Text)
		if err != nil {
			h.logger.Warnw("failed to render comment markdown", "error", err, "comment_id", dto.Comments[i].ID)
			continue
		}
		dto.Comments[i].TextHTML = rendered
	}
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	page, pageSize := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Status:     c.Query("status"),
		Urgency:    c.Query("urgency"),
		CallerID:   who.ID,
		CallerRole: who.Role,
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, page, pageSize)
}

type changeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ChangeStatus handles PATCH /tickets/:id/status
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketID:  ticketID,
		NewStatus: req.Status,
		ChangedBy: who.ID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Changed {
		h.hub.Publish(&realtime.Event{
			Type:      realtime.EventTicketStatusChanged,
			Entity:    "ticket",
			EntityID:  ticketID,
			Timestamp: time.Now().UnixMilli(),
			Data:      gin.H{"from": result.OldStatus, "to": result.NewStatus},
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type updateFinancialRequest struct {
	FinancialStatus *string  `json:"financial_status"`
	EstimatedHours  *float64 `json:"estimated_hours"`
	ActualHours     *float64 `json:"actual_hours"`
}

// UpdateFinancial handles PATCH /tickets/:id/financial
func (h *TicketHandler) UpdateFinancial(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateFinancialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err = h.updateFinancialUC.Execute(c.Request.Context(), usecases.UpdateFinancialCommand{
		TicketID:        ticketID,
		FinancialStatus: req.FinancialStatus,
		EstimatedHours:  req.EstimatedHours,
		ActualHours:     req.ActualHours,
		UpdatedBy:       who.ID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Financial fields updated", nil)
}

// AddComment handles POST /tickets/:id/comments. Accepts multipart form
// data so a comment can carry files next to its text.
func (h *TicketHandler) AddComment(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	text := c.PostForm("text")

	files, err := h.saveCommentFiles(c, ticketID, who)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID:   ticketID,
		AuthorID:   who.ID,
		AuthorName: who.Name,
		CallerRole: who.Role,
		Text:       text,
		Files:      files,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.hub.Publish(&realtime.Event{
		Type:      realtime.EventTicketCommented,
		Entity:    "ticket",
		EntityID:  ticketID,
		Timestamp: time.Now().UnixMilli(),
		Data:      gin.H{"comment_id": result.CommentID, "author": who.Name},
	})

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// saveCommentFiles stores the uploaded comment files under the ticket's
// comment directory.
func (h *TicketHandler) saveCommentFiles(c *gin.Context, ticketID uint, who caller) ([]ticket.FileRef, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// No multipart body means a text-only comment.
		return nil, nil
	}

	uploads := form.File["files"]
	if len(uploads) == 0 {
		return nil, nil
	}

	// The ticket number keys the storage layout; the get use case also
	// enforces the caller's relationship to the ticket.
	dto, err := h.getUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID:   ticketID,
		CallerID:   who.ID,
		CallerRole: who.Role,
	})
	if err != nil {
		return nil, err
	}

	return h.storeFiles(uploads, h.store.TicketCommentDir(dto.Number), who.ID)
}

func (h *TicketHandler) storeFiles(uploads []*multipart.FileHeader, relDir string, uploadedBy uint) ([]ticket.FileRef, error) {
	var refs []ticket.FileRef
	for _, fh := range uploads {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		relPath, size, err := h.store.SaveFile(relDir, fh.Filename, f)
		f.Close()
		if err != nil {
			return nil, err
		}
		refs = append(refs, ticket.FileRef{
			Name:       fh.Filename,
			Path:       relPath,
			Size:       size,
			UploadedBy: uploadedBy,
			UploadedAt: time.Now(),
		})
	}
	return refs, nil
}

// UploadAttachments handles POST /tickets/:id/attachments
func (h *TicketHandler) UploadAttachments(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
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

	dto, err := h.getUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID:   ticketID,
		CallerID:   who.ID,
		CallerRole: who.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	refs, err := h.storeFiles(uploads, h.store.TicketDir(dto.Number), who.ID)
	if err != nil {
		h.logger.Errorw("failed to store uploaded files", "error", err, "ticket_id", ticketID)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to store uploaded files")
		return
	}

	err = h.uploadUC.Execute(c.Request.Context(), usecases.UploadAttachmentCommand{
		TicketID:   ticketID,
		Files:      refs,
		UploadedBy: who.ID,
		CallerRole: who.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"uploaded": len(refs)}, "Attachments uploaded successfully")
}

// DownloadAttachment handles GET /tickets/:id/attachments?path=...
func (h *TicketHandler) DownloadAttachment(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.downloadUC.Execute(c.Request.Context(), usecases.DownloadAttachmentQuery{
		TicketID:   ticketID,
		Path:       c.Query("path"),
		CallerID:   who.ID,
		CallerRole: who.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.FileAttachment(result.AbsolutePath, result.Name)
}

type addMeetingRequest struct {
	Subject     string    `json:"subject" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	DurationMin int       `json:"duration_min"`
	Location    string    `json:"location"`
}

// AddMeeting handles POST /tickets/:id/meetings
func (h *TicketHandler) AddMeeting(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req addMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err = h.addMeetingUC.Execute(c.Request.Context(), usecases.AddMeetingCommand{
		TicketID:    ticketID,
		Subject:     req.Subject,
		ScheduledAt: req.ScheduledAt,
		DurationMin: req.DurationMin,
		Location:    req.Location,
		CreatedBy:   who.ID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, nil, "Meeting scheduled successfully")
}

type addInterventionRequest struct {
	Description string     `json:"description" binding:"required"`
	StartedAt   *time.Time `json:"started_at"`
	Hours       float64    `json:"hours"`
}

// AddIntervention handles POST /tickets/:id/interventions
func (h *TicketHandler) AddIntervention(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req addInterventionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cmd := usecases.AddInterventionCommand{
		TicketID:    ticketID,
		Description: req.Description,
		PerformedBy: who.ID,
		Hours:       req.Hours,
	}
	if req.StartedAt != nil {
		cmd.StartedAt = *req.StartedAt
	}

	result, err := h.addInterventionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Intervention recorded successfully")
}

// RequestValidation handles POST /tickets/:id/interventions/:interventionId/request-validation
func (h *TicketHandler) RequestValidation(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	interventionID, err := utils.ParseUintParam(c, "interventionId", "intervention")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.requestValidationUC.Execute(c.Request.Context(), usecases.RequestValidationCommand{
		TicketID:       ticketID,
		InterventionID: interventionID,
		RequestedBy:    who.ID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Validation requested", nil)
}

type validateInterventionRequest struct {
	Accepted *bool  `json:"accepted" binding:"required"`
	Note     string `json:"note"`
}

// ValidateIntervention handles POST /tickets/:id/interventions/:interventionId/validate
func (h *TicketHandler) ValidateIntervention(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	interventionID, err := utils.ParseUintParam(c, "interventionId", "intervention")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req validateInterventionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err = h.validateUC.Execute(c.Request.Context(), usecases.ValidateInterventionCommand{
		TicketID:       ticketID,
		InterventionID: interventionID,
		Accepted:       *req.Accepted,
		Note:           req.Note,
		ValidatedBy:    who.ID,
		CallerRole:     who.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Intervention validated", nil)
}

type addBlockerRequest struct {
	InterventionID uint   `json:"intervention_id"`
	Reason         string `json:"reason" binding:"required"`
}

// AddBlocker handles POST /tickets/:id/blockers
func (h *TicketHandler) AddBlocker(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req addBlockerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err = h.addBlockerUC.Execute(c.Request.Context(), usecases.AddBlockerCommand{
		TicketID:       ticketID,
		InterventionID: req.InterventionID,
		Reason:         req.Reason,
		CreatedBy:      who.ID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, nil, "Blocker recorded successfully")
}

type resolveBlockerRequest struct {
	InterventionID uint   `json:"intervention_id"`
	BlockerIndex   *int   `json:"blocker_index" binding:"required"`
	Resolution     string `json:"resolution" binding:"required"`
}

// ResolveBlocker handles POST /tickets/:id/blockers/resolve
func (h *TicketHandler) ResolveBlocker(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req resolveBlockerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err = h.resolveBlockerUC.Execute(c.Request.Context(), usecases.ResolveBlockerCommand{
		TicketID:       ticketID,
		InterventionID: req.InterventionID,
		BlockerIndex:   *req.BlockerIndex,
		Resolution:     req.Resolution,
		ResolvedBy:     who.ID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Blocker resolved", nil)
}

type assignRolesRequest struct {
	Assignments []struct {
		Slot   string `json:"slot" binding:"required"`
		UserID uint   `json:"user_id" binding:"required"`
	} `json:"assignments" binding:"required"`
}

// AssignRoles handles POST /tickets/:id/assign
func (h *TicketHandler) AssignRoles(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req assignRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	requests := make([]usecases.SlotRequest, len(req.Assignments))
	for i, a := range req.Assignments {
		requests[i] = usecases.SlotRequest{Slot: a.Slot, UserID: a.UserID}
	}

	result, err := h.assignRolesUC.Execute(c.Request.Context(), usecases.AssignRolesCommand{
		TicketID:   ticketID,
		Requests:   requests,
		AssignedBy: who.ID,
		CallerRole: who.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if len(result.AssignedUserIDs) > 0 {
		h.hub.Publish(&realtime.Event{
			Type:      realtime.EventTicketAssigned,
			Entity:    "ticket",
			EntityID:  ticketID,
			Timestamp: time.Now().UnixMilli(),
			Data:      gin.H{"assigned": result.AssignedUserIDs},
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SendTicket handles POST /tickets/:id/send
func (h *TicketHandler) SendTicket(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.sendUC.Execute(c.Request.Context(), usecases.SendTicketCommand{
		TicketID:   ticketID,
		SentBy:     who.ID,
		CallerRole: who.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket sent", nil)
}

type transferRequest struct {
	Target string `json:"target" binding:"required"`
	Reason string `json:"reason"`
}

// TransferTicket handles POST /tickets/:id/transfer
func (h *TicketHandler) TransferTicket(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err = h.transferUC.Execute(c.Request.Context(), usecases.TransferTicketCommand{
		TicketID:      ticketID,
		Target:        req.Target,
		Reason:        req.Reason,
		TransferredBy: who.ID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket transferred", nil)
}
