// Package authorization defines the closed role set and the per-role
// permission predicates used by the HTTP layer and the use cases.
package authorization

type UserRole string

const (
	RoleClient            UserRole = "client"
	RoleResponsibleClient UserRole = "responsibleClient"
	RoleAgentCommercial   UserRole = "agentCommercial"
	RoleProjectManager    UserRole = "projectManager"
	RoleGroupLeader       UserRole = "groupLeader"
	RoleDeveloper         UserRole = "developer"
	RoleTester            UserRole = "tester"
	RoleResponsibleTester UserRole = "responsibleTester"
	RoleAdmin             UserRole = "admin"
)

var validRoles = map[UserRole]bool{
	RoleClient:            true,
	RoleResponsibleClient: true,
	RoleAgentCommercial:   true,
	RoleProjectManager:    true,
	RoleGroupLeader:       true,
	RoleDeveloper:         true,
	RoleTester:            true,
	RoleResponsibleTester: true,
	RoleAdmin:             true,
}

// reportingParent maps a role to the role its hierarchical parent must hold.
// Roles absent from the map carry no parent reference.
var reportingParent = map[UserRole]UserRole{
	RoleGroupLeader: RoleProjectManager,
	RoleDeveloper:   RoleGroupLeader,
	RoleTester:      RoleResponsibleTester,
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	return validRoles[r]
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsClientSide() bool {
	return r == RoleClient || r == RoleResponsibleClient
}

// RequiredParentRole returns the role the hierarchical parent of r must hold.
// ok is false when r carries no parent reference.
func (r UserRole) RequiredParentRole() (parent UserRole, ok bool) {
	parent, ok = reportingParent[r]
	return parent, ok
}

// ParseUserRole validates a role string against the closed set.
// Unknown strings never fall through to a default role.
func ParseUserRole(s string) (UserRole, bool) {
	role := UserRole(s)
	return role, role.IsValid()
}

// TicketCreators may open tickets (clients for themselves, the rest on
// behalf of a client).
var TicketCreators = []UserRole{
	RoleClient, RoleResponsibleClient, RoleAgentCommercial, RoleAdmin,
}

// TaskCreators may create development tasks.
var TaskCreators = []UserRole{
	RoleAdmin, RoleProjectManager, RoleAgentCommercial, RoleGroupLeader,
}

// TestTaskCreators may create test tasks.
var TestTaskCreators = []UserRole{
	RoleAdmin, RoleResponsibleTester,
}

// CompanyManagers may create and delete companies.
var CompanyManagers = []UserRole{
	RoleAdmin, RoleAgentCommercial,
}

// TicketRoleSlot names an assignable relationship field on a ticket.
type TicketRoleSlot string

const (
	SlotClient            TicketRoleSlot = "client"
	SlotResponsibleClient TicketRoleSlot = "responsibleClient"
	SlotAgentCommercial   TicketRoleSlot = "agentCommercial"
	SlotProjectManager    TicketRoleSlot = "projectManager"
	SlotGroupLeader       TicketRoleSlot = "groupLeader"
	SlotResponsibleTester TicketRoleSlot = "responsibleTester"
)

// assignableSlots is the dispatch table for AssignRoles: which ticket role
// slots each caller role may mutate. Roles absent from the table may not
// assign anything.
var assignableSlots = map[UserRole][]TicketRoleSlot{
	RoleAdmin: {
		SlotResponsibleClient, SlotAgentCommercial,
		SlotProjectManager, SlotGroupLeader, SlotResponsibleTester,
	},
	RoleAgentCommercial: {
		SlotGroupLeader, SlotProjectManager,
	},
}

// CanAssignSlot reports whether the caller role may set the given ticket
// role slot.
func CanAssignSlot(caller UserRole, slot TicketRoleSlot) bool {
	for _, s := range assignableSlots[caller] {
		if s == slot {
			return true
		}
	}
	return false
}

func contains(roles []UserRole, role UserRole) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func CanCreateTicket(role UserRole) bool   { return contains(TicketCreators, role) }
func CanCreateTask(role UserRole) bool     { return contains(TaskCreators, role) }
func CanCreateTestTask(role UserRole) bool { return contains(TestTaskCreators, role) }
func CanManageCompanies(role UserRole) bool {
	return contains(CompanyManagers, role)
}

// ParseTicketRoleSlot validates a slot string against the closed set.
func ParseTicketRoleSlot(s string) (TicketRoleSlot, bool) {
	slot := TicketRoleSlot(s)
	_, ok := SlotRole(slot)
	return slot, ok
}

// SlotRole maps a ticket role slot to the user role expected to fill it.
func SlotRole(slot TicketRoleSlot) (UserRole, bool) {
	switch slot {
	case SlotClient:
		return RoleClient, true
	case SlotResponsibleClient:
		return RoleResponsibleClient, true
	case SlotAgentCommercial:
		return RoleAgentCommercial, true
	case SlotProjectManager:
		return RoleProjectManager, true
	case SlotGroupLeader:
		return RoleGroupLeader, true
	case SlotResponsibleTester:
		return RoleResponsibleTester, true
	default:
		return "", false
	}
}
