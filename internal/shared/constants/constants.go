package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
	ContextKeyUserName = "user_name"

	// Upload directory layout
	UploadDirTickets    = "ticket"
	UploadDirCompanies  = "companies"
	UploadDirTasks      = "tasks"
	UploadDirTestTasks  = "test-tasks"
	UploadSubdirComment = "comments"
)
