package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func (s *testServices) addUser(t *testing.T, username string, role operation.Role) *operation.User {
	t.Helper()
	res := s.user.AddUser(&RequestUserAdd{
		JwtHeader: adminHeader,
		Username:  username,
		Email:     username + "@example.com",
		Password:  "contraseña",
		Role:      string(role),
	})
	require.Equal(t, SuccessAddUser.StatusName, res.Code, res.Message)
	return (*operation.User)(res.Data)
}

func TestUserLogin(t *testing.T) {
	s := newTestServices(t)
	require.NoError(t, s.user.EnsureDefaultAdmin())
	require.NoError(t, s.user.EnsureDefaultAdmin())
	total, err := s.operations.UserOperation().GetTotalUsers()
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	wrong := s.user.UserLogin(&RequestUserLogin{Username: "admin", Password: "incorrecta"})
	assert.Equal(t, ErrUsernameOrPassword.StatusName, wrong.Code)
	unknown := s.user.UserLogin(&RequestUserLogin{Username: "nadie", Password: "administrador"})
	assert.Equal(t, ErrUsernameOrPassword.StatusName, unknown.Code)

	login := s.user.UserLogin(&RequestUserLogin{Username: "admin@example.com", Password: "administrador"})
	require.Equal(t, SuccessLogin.StatusName, login.Code, login.Message)
	assert.NotEmpty(t, login.Data.Token)
	assert.NotEmpty(t, login.Data.FlushToken)
	assert.Equal(t, string(operation.RoleAdmin), login.Data.User.Role)

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(login.Data.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, int64(operation.AllPermissions), claims.Permission)
	assert.False(t, claims.FlushToken)
}

func TestUserManagement(t *testing.T) {
	s := newTestServices(t)
	require.NoError(t, s.user.EnsureDefaultAdmin())
	operator := s.addUser(t, "operador", operation.RoleUser)
	assert.Equal(t, int64(operation.RoleUser.Permission()), operator.Permission)

	duplicate := s.user.AddUser(&RequestUserAdd{JwtHeader: adminHeader, Username: "operador", Email: "otro@example.com", Password: "contraseña", Role: "viewer"})
	assert.Equal(t, ErrIdentifierTaken.StatusName, duplicate.Code)
	badRole := s.user.AddUser(&RequestUserAdd{JwtHeader: adminHeader, Username: "tercero", Email: "tercero@example.com", Password: "contraseña", Role: "root"})
	assert.Equal(t, ErrIllegalParam.StatusName, badRole.Code)
	escalate := s.user.AddUser(&RequestUserAdd{
		JwtHeader: JwtHeader{Uid: operator.ID, Permission: int64(operation.RoleUser.Permission() | operation.UserAdd)},
		Username:  "tercero", Email: "tercero@example.com", Password: "contraseña", Role: "admin",
	})
	assert.Equal(t, ErrNoPermission.StatusName, escalate.Code)

	self := s.user.EditUserRole(&RequestUserEditRole{JwtHeader: adminHeader, TargetUid: adminHeader.Uid, Role: "viewer"})
	assert.Equal(t, ErrEditSelf.StatusName, self.Code)
	same := s.user.EditUserRole(&RequestUserEditRole{JwtHeader: adminHeader, TargetUid: operator.ID, Role: "user"})
	assert.Equal(t, ErrSameRole.StatusName, same.Code)
	role := s.user.EditUserRole(&RequestUserEditRole{JwtHeader: adminHeader, TargetUid: operator.ID, Role: "viewer"})
	require.Equal(t, SuccessEditUserRole.StatusName, role.Code, role.Message)
	assert.Equal(t, int64(operation.RoleViewer.Permission()), role.Data.Permission)
	assert.Equal(t, []string{"operador"}, s.email.permissionChanges)

	grant := s.user.EditUserPermission(&RequestUserEditPermission{
		JwtHeader:   adminHeader,
		TargetUid:   operator.ID,
		Permissions: echo.Map{"ReminderEdit": true, "StatisticsShow": false},
	})
	require.Equal(t, SuccessEditUserPermission.StatusName, grant.Code, grant.Message)
	permission := operation.Permission(grant.Data.Permission)
	assert.True(t, permission.HasPermission(operation.ReminderEdit))
	assert.False(t, permission.HasPermission(operation.StatisticsShow))

	unknownNode := s.user.EditUserPermission(&RequestUserEditPermission{
		JwtHeader:   adminHeader,
		TargetUid:   operator.ID,
		Permissions: echo.Map{"FlyPlanes": true},
	})
	assert.Equal(t, ErrPermissionNodeNotExists.StatusName, unknownNode.Code)

	disable := s.user.EditUserActive(&RequestUserEditActive{JwtHeader: adminHeader, TargetUid: operator.ID, Active: false})
	require.Equal(t, SuccessEditUserActive.StatusName, disable.Code, disable.Message)
	login := s.user.UserLogin(&RequestUserLogin{Username: "operador", Password: "contraseña"})
	assert.Equal(t, ErrUserDisabled.StatusName, login.Code)

	roles := s.user.GetRoles(&RequestGetRoles{JwtHeader: adminHeader})
	require.NotNil(t, roles.Data)
	require.Len(t, *roles.Data, 3)
	assert.Contains(t, (*roles.Data)[2].Nodes, "PersonnelShowList")
	assert.NotContains(t, (*roles.Data)[2].Nodes, "PersonnelAdd")

	users := s.user.GetUserList(&RequestUserList{JwtHeader: adminHeader, PageRequest: PageRequest{Page: 1, PageSize: 10}})
	require.NotNil(t, users.Data)
	assert.Equal(t, int64(2), users.Data.Total)

	users = s.user.GetUserList(&RequestUserList{JwtHeader: adminHeader})
	require.NotNil(t, users.Data, users.Message)
	assert.Len(t, users.Data.Items, 2)
	assert.Equal(t, 50, users.Data.PageSize)

	audits := s.audit.GetAuditLogPage(&RequestGetAuditLog{JwtHeader: adminHeader, PageRequest: PageRequest{Page: 1, PageSize: 10}})
	require.NotNil(t, audits.Data)
	assert.Equal(t, int64(4), audits.Data.Total)
	assert.Equal(t, string(operation.UserActiveChange), audits.Data.Items[0].EventType)
	audits = s.audit.GetAuditLogPage(&RequestGetAuditLog{JwtHeader: adminHeader, PageRequest: PageRequest{Page: 1 << 62, PageSize: 4}})
	require.NotNil(t, audits.Data, audits.Message)
	assert.Empty(t, audits.Data.Items)
	assert.Equal(t, int64(4), audits.Data.Total)
	assert.Equal(t, ErrNoPermission.StatusName,
		s.audit.GetAuditLogPage(&RequestGetAuditLog{JwtHeader: viewerHeader, PageRequest: PageRequest{Page: 1, PageSize: 10}}).Code)
}

func TestEditCurrentProfile(t *testing.T) {
	s := newTestServices(t)
	require.NoError(t, s.user.EnsureDefaultAdmin())
	operator := s.addUser(t, "operador", operation.RoleUser)
	header := JwtHeader{Uid: operator.ID, Permission: operator.Permission}

	missing := s.user.EditCurrentProfile(&RequestUserEditCurrentProfile{JwtHeader: header, NewPassword: "nueva-clave"})
	assert.Equal(t, ErrOriginPasswordRequired.StatusName, missing.Code)
	wrong := s.user.EditCurrentProfile(&RequestUserEditCurrentProfile{JwtHeader: header, OriginPassword: "otra-clave", NewPassword: "nueva-clave"})
	assert.Equal(t, ErrOriginPassword.StatusName, wrong.Code)
	taken := s.user.EditCurrentProfile(&RequestUserEditCurrentProfile{JwtHeader: header, Email: "admin@example.com"})
	assert.Equal(t, ErrIdentifierTaken.StatusName, taken.Code)

	changed := s.user.EditCurrentProfile(&RequestUserEditCurrentProfile{
		JwtHeader:      header,
		FullName:       "Operador de Turno",
		OriginPassword: "contraseña",
		NewPassword:    "nueva-clave",
	})
	require.Equal(t, SuccessEditCurrentProfile.StatusName, changed.Code, changed.Message)
	assert.Equal(t, "Operador de Turno", changed.Data.FullName)

	login := s.user.UserLogin(&RequestUserLogin{Username: "operador", Password: "nueva-clave"})
	assert.Equal(t, SuccessLogin.StatusName, login.Code)
}
