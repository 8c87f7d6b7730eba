package permission

import (
	"fmt"

	"deskflow/internal/shared/logger"
)

// SeedPolicies installs the baseline role policies. AddPolicy is idempotent
// in casbin so re-running at startup is safe.
func SeedPolicies(e *Enforcer, log logger.Interface) error {
	policies := [][]string{
		// Tickets
		{"client", "ticket", "create"},
		{"client", "ticket", "read"},
		{"client", "ticket", "comment"},
		{"client", "ticket", "validate"},
		{"responsibleClient", "ticket", "create"},
		{"responsibleClient", "ticket", "read"},
		{"responsibleClient", "ticket", "comment"},
		{"responsibleClient", "ticket", "validate"},
		{"agentCommercial", "ticket", "create"},
		{"agentCommercial", "ticket", "read"},
		{"agentCommercial", "ticket", "comment"},
		{"agentCommercial", "ticket", "assign"},
		{"agentCommercial", "ticket", "update_financial"},
		{"projectManager", "ticket", "read"},
		{"projectManager", "ticket", "comment"},
		{"projectManager", "ticket", "update_status"},
		{"projectManager", "ticket", "schedule_meeting"},
		{"groupLeader", "ticket", "read"},
		{"groupLeader", "ticket", "comment"},
		{"groupLeader", "ticket", "update_status"},
		{"groupLeader", "ticket", "intervene"},
		{"developer", "ticket", "read"},
		{"developer", "ticket", "comment"},

		// Tasks
		{"projectManager", "task", "create"},
		{"projectManager", "task", "read"},
		{"projectManager", "task", "assign"},
		{"groupLeader", "task", "create"},
		{"groupLeader", "task", "read"},
		{"groupLeader", "task", "assign"},
		{"agentCommercial", "task", "create"},
		{"agentCommercial", "task", "read"},
		{"developer", "task", "read"},
		{"developer", "task", "update_status"},
		{"developer", "task", "comment"},
		{"developer", "task", "report_blocker"},

		// Test tasks
		{"responsibleTester", "test_task", "create"},
		{"responsibleTester", "test_task", "read"},
		{"responsibleTester", "test_task", "assign"},
		{"tester", "test_task", "read"},
		{"tester", "test_task", "update_status"},
		{"tester", "test_task", "comment"},
		{"tester", "test_task", "report_blocker"},

		// Companies
		{"agentCommercial", "company", "create"},
		{"agentCommercial", "company", "read"},
		{"agentCommercial", "company", "update"},
		{"agentCommercial", "company", "delete"},

		// Notifications
		{"client", "notification", "read"},
		{"responsibleClient", "notification", "read"},
		{"agentCommercial", "notification", "read"},
		{"projectManager", "notification", "read"},
		{"groupLeader", "notification", "read"},
		{"developer", "notification", "read"},
		{"tester", "notification", "read"},
		{"responsibleTester", "notification", "read"},
	}

	for _, p := range policies {
		if err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to seed policy [%s %s %s]: %w", p[0], p[1], p[2], err)
		}
	}

	// Admin inherits every role's permissions plus user management.
	grouping := [][]string{
		{"admin", "agentCommercial"},
		{"admin", "projectManager"},
		{"admin", "groupLeader"},
		{"admin", "responsibleTester"},
		{"admin", "responsibleClient"},
	}
	for _, g := range grouping {
		if err := e.AddGrouping(g[0], g[1]); err != nil {
			return fmt.Errorf("failed to seed role inheritance [%s %s]: %w", g[0], g[1], err)
		}
	}

	adminOnly := [][]string{
		{"admin", "user", "create"},
		{"admin", "user", "read"},
		{"admin", "user", "update"},
		{"admin", "user", "suspend"},
		{"admin", "user", "delete"},
		{"admin", "ticket", "transfer"},
		{"admin", "ticket", "update_status"},
		{"admin", "task", "update_status"},
		{"admin", "test_task", "update_status"},
		{"admin", "notification", "read"},
	}
	for _, p := range adminOnly {
		if err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to seed policy [%s %s %s]: %w", p[0], p[1], p[2], err)
		}
	}

	log.Info("permission policies seeded")
	return nil
}
