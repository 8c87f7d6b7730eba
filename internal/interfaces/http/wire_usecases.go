package http

import (
	companyUsecases "deskflow/internal/application/company/usecases"
	notificationApp "deskflow/internal/application/notification"
	notificationUsecases "deskflow/internal/application/notification/usecases"
	taskUsecases "deskflow/internal/application/task/usecases"
	ticketUsecases "deskflow/internal/application/ticket/usecases"
	userUsecases "deskflow/internal/application/user/usecases"
	taskDomain "deskflow/internal/domain/task"
	ticketDomain "deskflow/internal/domain/ticket"
	"deskflow/internal/infrastructure/cache"
)

type allUseCases struct {
	// user
	registerUser   *userUsecases.RegisterUserUseCase
	login          *userUsecases.LoginUseCase
	refreshToken   *userUsecases.RefreshTokenUseCase
	logout         *userUsecases.LogoutUseCase
	getProfile     *userUsecases.GetProfileUseCase
	updateProfile  *userUsecases.UpdateProfileUseCase
	changePassword *userUsecases.ChangePasswordUseCase
	listUsers      *userUsecases.ListUsersUseCase
	suspendUser    *userUsecases.SuspendUserUseCase
	deleteUser     *userUsecases.DeleteUserUseCase

	// ticket
	createTicket       *ticketUsecases.CreateTicketUseCase
	getTicket          *ticketUsecases.GetTicketUseCase
	listTickets        *ticketUsecases.ListTicketsUseCase
	changeStatus       *ticketUsecases.ChangeStatusUseCase
	updateFinancial    *ticketUsecases.UpdateFinancialUseCase
	addComment         *ticketUsecases.AddCommentUseCase
	addMeeting         *ticketUsecases.AddMeetingUseCase
	addIntervention    *ticketUsecases.AddInterventionUseCase
	requestValidation  *ticketUsecases.RequestValidationUseCase
	validate           *ticketUsecases.ValidateInterventionUseCase
	addBlocker         *ticketUsecases.AddBlockerUseCase
	resolveBlocker     *ticketUsecases.ResolveBlockerUseCase
	assignRoles        *ticketUsecases.AssignRolesUseCase
	sendTicket         *ticketUsecases.SendTicketUseCase
	transferTicket     *ticketUsecases.TransferTicketUseCase
	uploadAttachment   *ticketUsecases.UploadAttachmentUseCase
	downloadAttachment *ticketUsecases.DownloadAttachmentUseCase

	// task
	createTask         *taskUsecases.CreateTaskUseCase
	getTask            *taskUsecases.GetTaskUseCase
	listTasks          *taskUsecases.ListTasksUseCase
	changeTaskStatus   *taskUsecases.ChangeTaskStatusUseCase
	assignTask         *taskUsecases.AssignTaskUseCase
	addTaskComment     *taskUsecases.AddTaskCommentUseCase
	reportTaskBlocker  *taskUsecases.ReportTaskBlockerUseCase
	resolveTaskBlocker *taskUsecases.ResolveTaskBlockerUseCase
	linkSubtask        *taskUsecases.LinkSubtaskUseCase
	attachTaskFiles    *taskUsecases.AttachTaskFilesUseCase

	// test task
	createTestTask         *taskUsecases.CreateTestTaskUseCase
	getTestTask            *taskUsecases.GetTestTaskUseCase
	listTestTasks          *taskUsecases.ListTestTasksUseCase
	changeTestTaskStatus   *taskUsecases.ChangeTestTaskStatusUseCase
	assignTestTask         *taskUsecases.AssignTestTaskUseCase
	addTestTaskComment     *taskUsecases.AddTestTaskCommentUseCase
	reportTestTaskBlocker  *taskUsecases.ReportTestTaskBlockerUseCase
	resolveTestTaskBlocker *taskUsecases.ResolveTestTaskBlockerUseCase
	attachTestTaskFiles    *taskUsecases.AttachTestTaskFilesUseCase

	// company
	createCompany  *companyUsecases.CreateCompanyUseCase
	getCompany     *companyUsecases.GetCompanyUseCase
	listCompanies  *companyUsecases.ListCompaniesUseCase
	updateCompany  *companyUsecases.UpdateCompanyUseCase
	uploadDocument *companyUsecases.UploadDocumentUseCase
	removeDocument *companyUsecases.RemoveDocumentUseCase
	deleteCompany  *companyUsecases.DeleteCompanyUseCase

	// notification
	listNotifications *notificationUsecases.ListNotificationsUseCase
	markRead          *notificationUsecases.MarkReadUseCase
	markAllRead       *notificationUsecases.MarkAllReadUseCase
	unreadCount       *notificationUsecases.UnreadCountUseCase
}

func (c *Container) buildUseCases() {
	log := c.log
	repos := c.repos

	createNotifications := notificationUsecases.NewCreateNotificationsUseCase(repos.notifications, log)
	processMentions := notificationUsecases.NewProcessMentionsUseCase(repos.users, createNotifications, log)
	c.notifier = notificationApp.NewNotifier(createNotifications, processMentions, log)

	denylist := cache.NewTokenDenylist(c.redis)

	ticketNumbers := ticketDomain.NewDefaultNumberGenerator()
	taskNumbers := taskDomain.NewTaskNumberGenerator()
	testTaskNumbers := taskDomain.NewTestTaskNumberGenerator()

	c.ucs = &allUseCases{
		registerUser:   userUsecases.NewRegisterUserUseCase(repos.users, c.hasher, log),
		login:          userUsecases.NewLoginUseCase(repos.users, c.hasher, c.jwtSvc, log),
		refreshToken:   userUsecases.NewRefreshTokenUseCase(repos.users, c.jwtSvc, denylist, log),
		logout:         userUsecases.NewLogoutUseCase(c.jwtSvc, denylist, log),
		getProfile:     userUsecases.NewGetProfileUseCase(repos.users, log),
		updateProfile:  userUsecases.NewUpdateProfileUseCase(repos.users, log),
		changePassword: userUsecases.NewChangePasswordUseCase(repos.users, c.hasher, log),
		listUsers:      userUsecases.NewListUsersUseCase(repos.users, log),
		suspendUser:    userUsecases.NewSuspendUserUseCase(repos.users, log),
		deleteUser:     userUsecases.NewDeleteUserUseCase(repos.users, log),

		createTicket:       ticketUsecases.NewCreateTicketUseCase(repos.tickets, repos.users, ticketNumbers, c.notifier, log),
		getTicket:          ticketUsecases.NewGetTicketUseCase(repos.tickets, log),
		listTickets:        ticketUsecases.NewListTicketsUseCase(repos.tickets, log),
		changeStatus:       ticketUsecases.NewChangeStatusUseCase(repos.tickets, repos.users, c.notifier, log),
		updateFinancial:    ticketUsecases.NewUpdateFinancialUseCase(repos.tickets, log),
		addComment:         ticketUsecases.NewAddCommentUseCase(repos.tickets, c.notifier, log),
		addMeeting:         ticketUsecases.NewAddMeetingUseCase(repos.tickets, c.notifier, log),
		addIntervention:    ticketUsecases.NewAddInterventionUseCase(repos.tickets, log),
		requestValidation:  ticketUsecases.NewRequestValidationUseCase(repos.tickets, c.notifier, log),
		validate:           ticketUsecases.NewValidateInterventionUseCase(repos.tickets, c.notifier, log),
		addBlocker:         ticketUsecases.NewAddBlockerUseCase(repos.tickets, c.notifier, log),
		resolveBlocker:     ticketUsecases.NewResolveBlockerUseCase(repos.tickets, c.notifier, log),
		assignRoles:        ticketUsecases.NewAssignRolesUseCase(repos.tickets, repos.users, c.notifier, c.emailSvc, log),
		sendTicket:         ticketUsecases.NewSendTicketUseCase(repos.tickets, repos.users, c.notifier, log),
		transferTicket:     ticketUsecases.NewTransferTicketUseCase(repos.tickets, c.notifier, log),
		uploadAttachment:   ticketUsecases.NewUploadAttachmentUseCase(repos.tickets, log),
		downloadAttachment: ticketUsecases.NewDownloadAttachmentUseCase(repos.tickets, c.store, log),

		createTask:         taskUsecases.NewCreateTaskUseCase(repos.tasks, taskNumbers, c.notifier, log),
		getTask:            taskUsecases.NewGetTaskUseCase(repos.tasks, log),
		listTasks:          taskUsecases.NewListTasksUseCase(repos.tasks, log),
		changeTaskStatus:   taskUsecases.NewChangeTaskStatusUseCase(repos.tasks, c.notifier, log),
		assignTask:         taskUsecases.NewAssignTaskUseCase(repos.tasks, repos.users, c.notifier, log),
		addTaskComment:     taskUsecases.NewAddTaskCommentUseCase(repos.tasks, c.notifier, log),
		reportTaskBlocker:  taskUsecases.NewReportTaskBlockerUseCase(repos.tasks, repos.users, c.notifier, log),
		resolveTaskBlocker: taskUsecases.NewResolveTaskBlockerUseCase(repos.tasks, log),
		linkSubtask:        taskUsecases.NewLinkSubtaskUseCase(repos.tasks, log),
		attachTaskFiles:    taskUsecases.NewAttachTaskFilesUseCase(repos.tasks, log),

		createTestTask:         taskUsecases.NewCreateTestTaskUseCase(repos.testTasks, repos.users, testTaskNumbers, c.notifier, log),
		getTestTask:            taskUsecases.NewGetTestTaskUseCase(repos.testTasks, log),
		listTestTasks:          taskUsecases.NewListTestTasksUseCase(repos.testTasks, log),
		changeTestTaskStatus:   taskUsecases.NewChangeTestTaskStatusUseCase(repos.testTasks, repos.users, c.notifier, log),
		assignTestTask:         taskUsecases.NewAssignTestTaskUseCase(repos.testTasks, repos.users, c.notifier, log),
		addTestTaskComment:     taskUsecases.NewAddTestTaskCommentUseCase(repos.testTasks, c.notifier, log),
		reportTestTaskBlocker:  taskUsecases.NewReportTestTaskBlockerUseCase(repos.testTasks, repos.users, c.notifier, log),
		resolveTestTaskBlocker: taskUsecases.NewResolveTestTaskBlockerUseCase(repos.testTasks, log),
		attachTestTaskFiles:    taskUsecases.NewAttachTestTaskFilesUseCase(repos.testTasks, log),

		createCompany:  companyUsecases.NewCreateCompanyUseCase(repos.companies, repos.users, log),
		getCompany:     companyUsecases.NewGetCompanyUseCase(repos.companies, log),
		listCompanies:  companyUsecases.NewListCompaniesUseCase(repos.companies, log),
		updateCompany:  companyUsecases.NewUpdateCompanyUseCase(repos.companies, log),
		uploadDocument: companyUsecases.NewUploadDocumentUseCase(repos.companies, log),
		removeDocument: companyUsecases.NewRemoveDocumentUseCase(repos.companies, log),
		deleteCompany:  companyUsecases.NewDeleteCompanyUseCase(repos.companies, log),

		listNotifications: notificationUsecases.NewListNotificationsUseCase(repos.notifications, log),
		markRead:          notificationUsecases.NewMarkReadUseCase(repos.notifications, log),
		markAllRead:       notificationUsecases.NewMarkAllReadUseCase(repos.notifications, log),
		unreadCount:       notificationUsecases.NewUnreadCountUseCase(repos.notifications, log),
	}
}
