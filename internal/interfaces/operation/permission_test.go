// Package operation
package operation

import "testing"

func TestPermission(t *testing.T) {
	var permission Permission
	permission.Grant(PersonnelEdit)
	permission.Grant(AuditLogShow)
	if !permission.HasPermission(PersonnelEdit) || !permission.HasPermission(AuditLogShow) {
		t.Errorf("granted permissions are missing: %b", permission)
	}
	permission.Revoke(PersonnelEdit)
	if permission.HasPermission(PersonnelEdit) {
		t.Errorf("revoked permission is still present: %b", permission)
	}
	if !permission.IsValid() {
		t.Errorf("permission %b should be valid", permission)
	}
	invalid := AllPermissions + 1
	if invalid.IsValid() {
		t.Errorf("permission %b should be invalid", invalid)
	}
	if len(PermissionMap) != 22 {
		t.Errorf("PermissionMap has %d nodes; expected 22", len(PermissionMap))
	}
}

func TestRolePermissions(t *testing.T) {
	tests := []struct {
		role     Role
		perm     Permission
		expected bool
	}{
		{RoleAdmin, AuditLogShow, true},
		{RoleAdmin, UserEditRole, true},
		{RoleUser, AssignmentEdit, true},
		{RoleUser, PersonnelDelete, false},
		{RoleUser, UserShowList, false},
		{RoleViewer, StatisticsShow, true},
		{RoleViewer, PersonnelEdit, false},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		permission := test.role.Permission()
		if result := permission.HasPermission(test.perm); result != test.expected {
			fail++
			t.Errorf("%s.HasPermission(%b) = %v; expected %v", test.role, test.perm, result, test.expected)
			continue
		}
		pass++
	}
	if Role("root").IsValid() {
		t.Errorf("unknown role should be invalid")
	}
	t.Logf("TestRolePermissions: %d pass, %d fail", pass, fail)
}
