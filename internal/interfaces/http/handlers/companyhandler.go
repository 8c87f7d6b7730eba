package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deskflow/internal/application/company/usecases"
	"deskflow/internal/infrastructure/storage"
	"deskflow/internal/shared/logger"
	"deskflow/internal/shared/utils"
)

// CompanyHandler handles client company management.
type CompanyHandler struct {
	createUC    *usecases.CreateCompanyUseCase
	getUC       *usecases.GetCompanyUseCase
	listUC      *usecases.ListCompaniesUseCase
	updateUC    *usecases.UpdateCompanyUseCase
	uploadDocUC *usecases.UploadDocumentUseCase
	removeDocUC *usecases.RemoveDocumentUseCase
	deleteUC    *usecases.DeleteCompanyUseCase
	store       *storage.LocalStore
	logger      logger.Interface
}

type CompanyHandlerDeps struct {
	CreateUC    *usecases.CreateCompanyUseCase
	GetUC       *usecases.GetCompanyUseCase
	ListUC      *usecases.ListCompaniesUseCase
	UpdateUC    *usecases.UpdateCompanyUseCase
	UploadDocUC *usecases.UploadDocumentUseCase
	RemoveDocUC *usecases.RemoveDocumentUseCase
	DeleteUC    *usecases.DeleteCompanyUseCase
	Store       *storage.LocalStore
	Logger      logger.Interface
}

func NewCompanyHandler(deps CompanyHandlerDeps) *CompanyHandler {
	return &CompanyHandler{
		createUC:    deps.CreateUC,
		getUC:       deps.GetUC,
		listUC:      deps.ListUC,
		updateUC:    deps.UpdateUC,
		uploadDocUC: deps.UploadDocUC,
		removeDocUC: deps.RemoveDocUC,
		deleteUC:    deps.DeleteUC,
		store:       deps.Store,
		logger:      deps.Logger,
	}
}

type companyContactRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

type availabilityRequest struct {
	Day   string `json:"day" binding:"required"`
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type createCompanyRequest struct {
	Name             string                 `json:"name" binding:"required"`
	Address          string                 `json:"address"`
	PrimaryContact   companyContactRequest  `json:"primary_contact" binding:"required"`
	SecondaryContact *companyContactRequest `json:"secondary_contact"`
	Availability     []availabilityRequest  `json:"availability"`
	BillingMethod    string                 `json:"billing_method" binding:"required"`
	AgentID          uint                   `json:"agent_id" binding:"required"`
}

// CreateCompany handles POST /companies
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req createCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cmd := usecases.CreateCompanyCommand{
		Name:    req.Name,
		Address: req.Address,
		PrimaryContact: usecases.ContactInput{
			Name:  req.PrimaryContact.Name,
			Email: req.PrimaryContact.Email,
			Phone: req.PrimaryContact.Phone,
		},
		BillingMethod: req.BillingMethod,
		AgentID:       req.AgentID,
		CallerRole:    who.Role,
	}
	if req.SecondaryContact != nil {
		cmd.SecondaryContact = &usecases.ContactInput{
			Name:  req.SecondaryContact.Name,
			Email: req.SecondaryContact.Email,
			Phone: req.SecondaryContact.Phone,
		}
	}
	for _, a := range req.Availability {
		cmd.Availability = append(cmd.Availability, usecases.AvailabilityInput{Day: a.Day, Start: a.Start, End: a.End})
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Company created successfully")
}

// GetCompany handles GET /companies/:id
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	companyID, err := utils.ParseUintParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetCompanyQuery{CompanyID: companyID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListCompanies handles GET /companies
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	query := usecases.ListCompaniesQuery{Page: page, PageSize: pageSize}
	if raw := c.Query("agent_id"); raw != "" {
		if id, err := utils.ParseUintQuery(raw); err == nil {
			query.AgentID = id
		}
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Companies, result.Total, page, pageSize)
}

type updateCompanyRequest struct {
	BillingMethod    *string                `json:"billing_method"`
	SecondaryContact *companyContactRequest `json:"secondary_contact"`
	Availability     []availabilityRequest  `json:"availability"`
}

// UpdateCompany handles PATCH /companies/:id
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	companyID, err := utils.ParseUintParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cmd := usecases.UpdateCompanyCommand{
		CompanyID:     companyID,
		BillingMethod: req.BillingMethod,
		CallerRole:    who.Role,
	}
	if req.SecondaryContact != nil {
		cmd.SecondaryContact = &usecases.ContactInput{
			Name:  req.SecondaryContact.Name,
			Email: req.SecondaryContact.Email,
			Phone: req.SecondaryContact.Phone,
		}
	}
	if req.Availability != nil {
		cmd.Availability = make([]usecases.AvailabilityInput, len(req.Availability))
		for i, a := range req.Availability {
			cmd.Availability[i] = usecases.AvailabilityInput{Day: a.Day, Start: a.Start, End: a.End}
		}
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Company updated successfully", result)
}

// UploadDocument handles POST /companies/:id/documents
func (h *CompanyHandler) UploadDocument(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	companyID, err := utils.ParseUintParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "a file is required")
		return
	}

	company, err := h.getUC.Execute(c.Request.Context(), usecases.GetCompanyQuery{CompanyID: companyID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	f, err := fh.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	defer f.Close()

	relPath, _, err := h.store.SaveFile(h.store.CompanyDir(company.Name), fh.Filename, f)
	if err != nil {
		h.logger.Errorw("failed to store company document", "error", err, "company_id", companyID)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to store uploaded file")
		return
	}

	err = h.uploadDocUC.Execute(c.Request.Context(), usecases.UploadDocumentCommand{
		CompanyID:  companyID,
		Name:       fh.Filename,
		Type:       c.PostForm("type"),
		Path:       relPath,
		UploadedBy: who.ID,
		CallerRole: who.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"path": relPath}, "Document uploaded successfully")
}

// RemoveDocument handles DELETE /companies/:id/documents?path=...
func (h *CompanyHandler) RemoveDocument(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	companyID, err := utils.ParseUintParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	path := c.Query("path")
	err = h.removeDocUC.Execute(c.Request.Context(), usecases.RemoveDocumentCommand{
		CompanyID:  companyID,
		Path:       path,
		CallerRole: who.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Metadata first, then disk. A failed disk removal leaves an orphan
	// file, not a dangling reference.
	if err := h.store.Remove(path); err != nil {
		h.logger.Warnw("failed to remove document file", "error", err, "path", path)
	}

	utils.NoContentResponse(c)
}

// DeleteCompany handles DELETE /companies/:id
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	companyID, err := utils.ParseUintParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteUC.Execute(c.Request.Context(), usecases.DeleteCompanyCommand{
		CompanyID:  companyID,
		CallerRole: who.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
