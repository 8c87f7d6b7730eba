package http

import (
	"deskflow/internal/interfaces/http/handlers"
)

type allHandlers struct {
	auth         *handlers.AuthHandler
	user         *handlers.UserHandler
	ticket       *handlers.TicketHandler
	task         *handlers.TaskHandler
	testTask     *handlers.TestTaskHandler
	company      *handlers.CompanyHandler
	notification *handlers.NotificationHandler
}

func (c *Container) buildHandlers() {
	log := c.log
	ucs := c.ucs

	c.hdlrs = &allHandlers{
		auth: handlers.NewAuthHandler(ucs.registerUser, ucs.login, ucs.refreshToken, ucs.logout, log),
		user: handlers.NewUserHandler(
			ucs.getProfile, ucs.updateProfile, ucs.changePassword,
			ucs.listUsers, ucs.suspendUser, ucs.deleteUser, log,
		),
		ticket: handlers.NewTicketHandler(handlers.TicketHandlerDeps{
			CreateUC:            ucs.createTicket,
			GetUC:               ucs.getTicket,
			ListUC:              ucs.listTickets,
			ChangeStatusUC:      ucs.changeStatus,
			UpdateFinancialUC:   ucs.updateFinancial,
			AddCommentUC:        ucs.addComment,
			AddMeetingUC:        ucs.addMeeting,
			AddInterventionUC:   ucs.addIntervention,
			RequestValidationUC: ucs.requestValidation,
			ValidateUC:          ucs.validate,
			AddBlockerUC:        ucs.addBlocker,
			ResolveBlockerUC:    ucs.resolveBlocker,
			AssignRolesUC:       ucs.assignRoles,
			SendUC:              ucs.sendTicket,
			TransferUC:          ucs.transferTicket,
			UploadUC:            ucs.uploadAttachment,
			DownloadUC:          ucs.downloadAttachment,
			Store:               c.store,
			Hub:                 c.hub,
			Markdown:            c.markdown,
			Logger:              log,
		}),
		task: handlers.NewTaskHandler(handlers.TaskHandlerDeps{
			CreateUC:         ucs.createTask,
			GetUC:            ucs.getTask,
			ListUC:           ucs.listTasks,
			ChangeStatusUC:   ucs.changeTaskStatus,
			AssignUC:         ucs.assignTask,
			AddCommentUC:     ucs.addTaskComment,
			ReportBlockerUC:  ucs.reportTaskBlocker,
			ResolveBlockerUC: ucs.resolveTaskBlocker,
			LinkSubtaskUC:    ucs.linkSubtask,
			AttachFilesUC:    ucs.attachTaskFiles,
			Store:            c.store,
			Hub:              c.hub,
			Markdown:         c.markdown,
			Logger:           log,
		}),
		testTask: handlers.NewTestTaskHandler(handlers.TestTaskHandlerDeps{
			CreateUC:         ucs.createTestTask,
			GetUC:            ucs.getTestTask,
			ListUC:           ucs.listTestTasks,
			ChangeStatusUC:   ucs.changeTestTaskStatus,
			AssignUC:         ucs.assignTestTask,
			AddCommentUC:     ucs.addTestTaskComment,
			ReportBlockerUC:  ucs.reportTestTaskBlocker,
			ResolveBlockerUC: ucs.resolveTestTaskBlocker,
			AttachFilesUC:    ucs.attachTestTaskFiles,
			Store:            c.store,
			Markdown:         c.markdown,
			Logger:           log,
		}),
		company: handlers.NewCompanyHandler(handlers.CompanyHandlerDeps{
			CreateUC:    ucs.createCompany,
			GetUC:       ucs.getCompany,
			ListUC:      ucs.listCompanies,
			UpdateUC:    ucs.updateCompany,
			UploadDocUC: ucs.uploadDocument,
			RemoveDocUC: ucs.removeDocument,
			DeleteUC:    ucs.deleteCompany,
			Store:       c.store,
			Logger:      log,
		}),
		notification: handlers.NewNotificationHandler(
			ucs.listNotifications, ucs.markRead, ucs.markAllRead, ucs.unreadCount, log,
		),
	}
}
