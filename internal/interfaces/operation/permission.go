// Package operation
package operation

type Permission int64

// Permission nodes are bit flags, at most 64 of them fit into a Permission
const (
	AdminEntry Permission = 1 << iota
	UserShowList
	UserGetProfile
	UserAdd
	UserEditBaseInfo
	UserEditPermission
	UserEditRole
	UserDisable
	PersonnelShowList
	PersonnelAdd
	PersonnelEdit
	PersonnelDelete
	MandatarioShowList
	MandatarioAdd
	MandatarioEdit
	MandatarioDelete
	AssignmentEdit
	CatalogEdit
	ReminderShowList
	ReminderEdit
	StatisticsShow
	AuditLogShow
)

var PermissionMap = map[string]Permission{
	"AdminEntry":         AdminEntry,
	"UserShowList":       UserShowList,
	"UserGetProfile":     UserGetProfile,
	"UserAdd":            UserAdd,
	"UserEditBaseInfo":   UserEditBaseInfo,
	"UserEditPermission": UserEditPermission,
	"UserEditRole":       UserEditRole,
	"UserDisable":        UserDisable,
	"PersonnelShowList":  PersonnelShowList,
	"PersonnelAdd":       PersonnelAdd,
	"PersonnelEdit":      PersonnelEdit,
	"PersonnelDelete":    PersonnelDelete,
	"MandatarioShowList": MandatarioShowList,
	"MandatarioAdd":      MandatarioAdd,
	"MandatarioEdit":     MandatarioEdit,
	"MandatarioDelete":   MandatarioDelete,
	"AssignmentEdit":     AssignmentEdit,
	"CatalogEdit":        CatalogEdit,
	"ReminderShowList":   ReminderShowList,
	"ReminderEdit":       ReminderEdit,
	"StatisticsShow":     StatisticsShow,
	"AuditLogShow":       AuditLogShow,
}

const AllPermissions = AuditLogShow<<1 - 1

func (p *Permission) IsValid() bool {
	return *p >= 0 && *p <= AllPermissions
}

func (p *Permission) HasPermission(perm Permission) bool {
	return *p&perm != 0
}

func (p *Permission) Grant(perm Permission) {
	*p |= perm
}

func (p *Permission) Revoke(perm Permission) {
	*p &^= perm
}

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleUser   Role = "user"
	RoleViewer Role = "viewer"
)

var Roles = []Role{RoleAdmin, RoleUser, RoleViewer}

var readOnlyPermissions = PersonnelShowList | MandatarioShowList | ReminderShowList | StatisticsShow

// RolePermissions are the presets applied when a role is assigned,
// individual nodes can still be granted or revoked afterwards
var RolePermissions = map[Role]Permission{
	RoleAdmin: AllPermissions,
	RoleUser: readOnlyPermissions | PersonnelAdd | PersonnelEdit | MandatarioAdd | MandatarioEdit |
		AssignmentEdit | CatalogEdit | ReminderEdit,
	RoleViewer: readOnlyPermissions,
}

func (r Role) IsValid() bool {
	_, ok := RolePermissions[r]
	return ok
}

func (r Role) Permission() Permission {
	return RolePermissions[r]
}
