package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserRole(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  UserRole
		ok    bool
	}{
		{"client", "client", RoleClient, true},
		{"admin", "admin", RoleAdmin, true},
		{"responsible tester", "responsibleTester", RoleResponsibleTester, true},
		{"unknown role", "superuser", UserRole("superuser"), false},
		{"wrong case", "Client", UserRole("Client"), false},
		{"empty", "", UserRole(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, ok := ParseUserRole(tt.input)
			assert.Equal(t, tt.want, role)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestUserRole_Predicates(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleProjectManager.IsAdmin())

	assert.True(t, RoleClient.IsClientSide())
	assert.True(t, RoleResponsibleClient.IsClientSide())
	assert.False(t, RoleDeveloper.IsClientSide())
}

func TestUserRole_RequiredParentRole(t *testing.T) {
	tests := []struct {
		role       UserRole
		wantParent UserRole
		wantOK     bool
	}{
		{RoleGroupLeader, RoleProjectManager, true},
		{RoleDeveloper, RoleGroupLeader, true},
		{RoleTester, RoleResponsibleTester, true},
		{RoleClient, "", false},
		{RoleAdmin, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			parent, ok := tt.role.RequiredParentRole()
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantParent, parent)
			}
		})
	}
}

func TestCreationPredicates(t *testing.T) {
	assert.True(t, CanCreateTicket(RoleClient))
	assert.True(t, CanCreateTicket(RoleAgentCommercial))
	assert.False(t, CanCreateTicket(RoleDeveloper))

	assert.True(t, CanCreateTask(RoleProjectManager))
	assert.True(t, CanCreateTask(RoleGroupLeader))
	assert.False(t, CanCreateTask(RoleClient))

	assert.True(t, CanCreateTestTask(RoleResponsibleTester))
	assert.False(t, CanCreateTestTask(RoleTester))

	assert.True(t, CanManageCompanies(RoleAgentCommercial))
	assert.False(t, CanManageCompanies(RoleResponsibleClient))
}

func TestCanAssignSlot(t *testing.T) {
	tests := []struct {
		name   string
		caller UserRole
		slot   TicketRoleSlot
		want   bool
	}{
		{"admin sets project manager", RoleAdmin, SlotProjectManager, true},
		{"admin sets responsible tester", RoleAdmin, SlotResponsibleTester, true},
		{"agent sets group leader", RoleAgentCommercial, SlotGroupLeader, true},
		{"agent sets project manager", RoleAgentCommercial, SlotProjectManager, true},
		{"agent cannot set responsible tester", RoleAgentCommercial, SlotResponsibleTester, false},
		{"developer assigns nothing", RoleDeveloper, SlotGroupLeader, false},
		{"client assigns nothing", RoleClient, SlotResponsibleClient, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAssignSlot(tt.caller, tt.slot))
		})
	}
}

func TestParseTicketRoleSlot(t *testing.T) {
	slot, ok := ParseTicketRoleSlot("groupLeader")
	assert.True(t, ok)
	assert.Equal(t, SlotGroupLeader, slot)

	_, ok = ParseTicketRoleSlot("janitor")
	assert.False(t, ok)
}

func TestSlotRole(t *testing.T) {
	role, ok := SlotRole(SlotResponsibleTester)
	assert.True(t, ok)
	assert.Equal(t, RoleResponsibleTester, role)

	_, ok = SlotRole(TicketRoleSlot("unknown"))
	assert.False(t, ok)
}
