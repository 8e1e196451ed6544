// Package service
package service

import (
	"errors"
	"fmt"
	"github.com/half-nothing/simple-hrm/internal/interfaces/config"
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	"github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/service"
	"github.com/samber/lo"
	"github.com/thanhpk/randstr"
	"slices"
	"time"
)

type UserService struct {
	logger            log.LoggerInterface
	emailService      EmailServiceInterface
	config            *config.HttpServerConfig
	generalConfig     *config.GeneralConfig
	userOperation     operation.UserOperationInterface
	auditLogOperation operation.AuditLogOperationInterface
}

func NewUserService(
	logger log.LoggerInterface,
	emailService EmailServiceInterface,
	config *config.HttpServerConfig,
	generalConfig *config.GeneralConfig,
	userOperation operation.UserOperationInterface,
	auditLogOperation operation.AuditLogOperationInterface,
) *UserService {
	return &UserService{
		logger:            logger,
		emailService:      emailService,
		config:            config,
		generalConfig:     generalConfig,
		userOperation:     userOperation,
		auditLogOperation: auditLogOperation,
	}
}

func (userService *UserService) EnsureDefaultAdmin() error {
	total, err := userService.userOperation.GetTotalUsers()
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}
	admin := userService.generalConfig.DefaultAdmin
	password := admin.Password
	if password == "" {
		password = randstr.String(16)
	}
	user, err := userService.userOperation.NewUser(admin.Username, admin.Email, "Administrador", password, operation.RoleAdmin)
	if err != nil {
		return err
	}
	if err := userService.userOperation.AddUser(user); err != nil {
		return err
	}
	if admin.Password == "" {
		userService.logger.WarnF("Default administrator %s created with password %s, change it after the first login", admin.Username, password)
	} else {
		userService.logger.InfoF("Default administrator %s created", admin.Username)
	}
	return nil
}

var (
	ErrUsernameOrPassword = ApiStatus{StatusName: "WRONG_USERNAME_OR_PASSWORD", Description: "Usuario o contraseña incorrectos", HttpCode: BadRequest}
	SuccessLogin          = ApiStatus{StatusName: "LOGIN_SUCCESS", Description: "Inicio de sesión correcto", HttpCode: Ok}
)

func (userService *UserService) generateTokens(user *operation.User) (string, string) {
	token := NewClaims(userService.config.JWT, user, false)
	flushToken := NewClaims(userService.config.JWT, user, true)
	return token.GenerateKey(), flushToken.GenerateKey()
}

func (userService *UserService) UserLogin(req *RequestUserLogin) *ApiResponse[ResponseUserLogin] {
	if req.Username == "" || req.Password == "" {
		return NewApiResponse[ResponseUserLogin](&ErrIllegalParam, Unsatisfied, nil)
	}

	user, err := userService.userOperation.GetUserByUsernameOrEmail(req.Username)
	if errors.Is(err, operation.ErrUserNotFound) {
		return NewApiResponse[ResponseUserLogin](&ErrUsernameOrPassword, Unsatisfied, nil)
	} else if err != nil {
		return NewApiResponse[ResponseUserLogin](StatusOfError(err), Unsatisfied, nil)
	}

	if !userService.userOperation.VerifyUserPassword(user, req.Password) {
		return NewApiResponse[ResponseUserLogin](&ErrUsernameOrPassword, Unsatisfied, nil)
	}

	if !user.Active {
		return NewApiResponse[ResponseUserLogin](&ErrUserDisabled, Unsatisfied, nil)
	}

	if err := userService.userOperation.UpdateUserLastLogin(user); err != nil {
		userService.logger.WarnF("Fail to update last login time of %s: %v", user.Username, err)
	}

	token, flushToken := userService.generateTokens(user)
	return NewApiResponse(&SuccessLogin, Unsatisfied, &ResponseUserLogin{
		User:       user,
		Token:      token,
		FlushToken: flushToken,
	})
}

var SuccessGetToken = ApiStatus{StatusName: "GET_TOKEN", Description: "Token renovado", HttpCode: Ok}

func (userService *UserService) GetTokenWithFlushToken(req *RequestGetToken) *ApiResponse[ResponseGetToken] {
	if req.Claims == nil || !req.FlushToken {
		return NewApiResponse[ResponseGetToken](&ErrIllegalParam, Unsatisfied, nil)
	}

	user, res := CallDBFuncAndCheckError[operation.User, ResponseGetToken](func() (*operation.User, error) {
		return userService.userOperation.GetUserByUid(req.Uid)
	})
	if res != nil {
		return res
	}

	if !user.Active {
		return NewApiResponse[ResponseGetToken](&ErrUserDisabled, Unsatisfied, nil)
	}

	// the refresh token is only rotated when it is close to expiring
	var flushToken string
	if req.ExpiresAt != nil && req.ExpiresAt.Add(-2*userService.config.JWT.ExpiresDuration).After(time.Now()) {
		flushToken = ""
	} else {
		flushToken = NewClaims(userService.config.JWT, user, true).GenerateKey()
	}

	token := NewClaims(userService.config.JWT, user, false)
	return NewApiResponse(&SuccessGetToken, Unsatisfied, &ResponseGetToken{
		User:       user,
		Token:      token.GenerateKey(),
		FlushToken: flushToken,
	})
}

var SuccessGetCurrentProfile = ApiStatus{StatusName: "GET_CURRENT_PROFILE_SUCCESS", Description: "Perfil obtenido", HttpCode: Ok}

func (userService *UserService) GetCurrentProfile(req *RequestUserCurrentProfile) *ApiResponse[ResponseUserCurrentProfile] {
	user, res := CallDBFuncAndCheckError[operation.User, ResponseUserCurrentProfile](func() (*operation.User, error) {
		return userService.userOperation.GetUserByUid(req.Uid)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetCurrentProfile, Unsatisfied, (*ResponseUserCurrentProfile)(user))
}

var (
	ErrOriginPasswordRequired = ApiStatus{StatusName: "ORIGIN_PASSWORD_REQUIRED", Description: "Introduzca la contraseña actual", HttpCode: BadRequest}
	ErrNewPasswordRequired    = ApiStatus{StatusName: "NEW_PASSWORD_REQUIRED", Description: "Introduzca la nueva contraseña", HttpCode: BadRequest}
	ErrOriginPassword         = ApiStatus{StatusName: "ORIGIN_PASSWORD_ERROR", Description: "La contraseña actual no es correcta", HttpCode: BadRequest}
	SuccessEditCurrentProfile = ApiStatus{StatusName: "SUCCESS_EDIT_CURRENT_PROFILE", Description: "Perfil actualizado", HttpCode: Ok}
)

type profileEdit struct {
	uid            uint
	username       string
	email          string
	fullName       string
	originPassword string
	newPassword    string
	skipVerify     bool
}

func (userService *UserService) editUserProfile(edit *profileEdit) (*ApiStatus, *operation.User) {
	if edit.username == "" && edit.email == "" && edit.fullName == "" && edit.originPassword == "" && edit.newPassword == "" {
		return &ErrIllegalParam, nil
	}
	if !edit.skipVerify {
		if edit.originPassword != "" && edit.newPassword == "" {
			return &ErrNewPasswordRequired, nil
		} else if edit.originPassword == "" && edit.newPassword != "" {
			return &ErrOriginPasswordRequired, nil
		}
	}
	if edit.newPassword != "" {
		if err := passwordValidator.CheckString(edit.newPassword); err != nil {
			return err, nil
		}
	}
	if edit.username != "" {
		if err := usernameValidator.CheckString(edit.username); err != nil {
			return err, nil
		}
	}
	if edit.email != "" {
		if err := emailValidator.CheckString(edit.email); err != nil {
			return err, nil
		}
	}

	user, err := userService.userOperation.GetUserByUid(edit.uid)
	if err != nil {
		return StatusOfError(err), nil
	}

	updateInfo := make(map[string]interface{})
	if edit.username != "" && edit.username != user.Username {
		updateInfo["username"] = edit.username
	}
	if edit.email != "" && edit.email != user.Email {
		updateInfo["email"] = edit.email
	}
	if edit.fullName != "" && edit.fullName != user.FullName {
		updateInfo["full_name"] = edit.fullName
	}

	if edit.newPassword != "" {
		password, err := userService.userOperation.UpdateUserPassword(user, edit.originPassword, edit.newPassword, edit.skipVerify)
		if errors.Is(err, operation.ErrOldPassword) {
			return &ErrOriginPassword, nil
		} else if err != nil {
			return StatusOfError(err), nil
		}
		updateInfo["password"] = string(password)
	}

	if len(updateInfo) == 0 {
		return nil, user
	}

	if err := userService.userOperation.UpdateUserInfo(user, updateInfo); err != nil {
		return StatusOfError(err), nil
	}

	return nil, user
}

func (userService *UserService) EditCurrentProfile(req *RequestUserEditCurrentProfile) *ApiResponse[ResponseUserEditCurrentProfile] {
	status, user := userService.editUserProfile(&profileEdit{
		uid:            req.Uid,
		username:       req.Username,
		email:          req.Email,
		fullName:       req.FullName,
		originPassword: req.OriginPassword,
		newPassword:    req.NewPassword,
	})
	if status != nil {
		return NewApiResponse[ResponseUserEditCurrentProfile](status, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessEditCurrentProfile, Unsatisfied, (*ResponseUserEditCurrentProfile)(user))
}

var SuccessGetUsers = ApiStatus{StatusName: "GET_USER_PAGE", Description: "Usuarios obtenidos", HttpCode: Ok}

func (userService *UserService) GetUserList(req *RequestUserList) *ApiResponse[ResponseUserList] {
	if !req.Normalize(userService.config.Limits.MaxPageSize) {
		return NewApiResponse[ResponseUserList](&ErrIllegalParam, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseUserList](req.Permission, operation.UserShowList); res != nil {
		return res
	}
	users, total, err := userService.userOperation.GetUsers(req.Page, req.PageSize)
	if err != nil {
		return NewApiResponse[ResponseUserList](StatusOfError(err), Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetUsers, Unsatisfied, &ResponseUserList{
		Items:    users,
		Page:     req.Page,
		PageSize: req.PageSize,
		Total:    total,
	})
}

var SuccessAddUser = ApiStatus{StatusName: "ADD_USER", Description: "Usuario creado", HttpCode: Ok}

func (userService *UserService) AddUser(req *RequestUserAdd) *ApiResponse[ResponseUserAdd] {
	if status := checkStruct(req); status != nil {
		return NewApiResponse[ResponseUserAdd](status, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseUserAdd](req.Permission, operation.UserAdd); res != nil {
		return res
	}
	if err := usernameValidator.CheckString(req.Username); err != nil {
		return NewApiResponse[ResponseUserAdd](err, Unsatisfied, nil)
	}
	if err := emailValidator.CheckString(req.Email); err != nil {
		return NewApiResponse[ResponseUserAdd](err, Unsatisfied, nil)
	}
	if err := passwordValidator.CheckString(req.Password); err != nil {
		return NewApiResponse[ResponseUserAdd](err, Unsatisfied, nil)
	}
	role := operation.Role(req.Role)
	// nobody can hand out permissions they do not hold
	operatorPermission := operation.Permission(req.Permission)
	if role.Permission()&^operatorPermission != 0 {
		return NewApiResponse[ResponseUserAdd](&ErrNoPermission, Unsatisfied, nil)
	}
	user, err := userService.userOperation.NewUser(req.Username, req.Email, req.FullName, req.Password, role)
	if err != nil {
		return NewApiResponse[ResponseUserAdd](&ErrRegisterFail, Unsatisfied, nil)
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseUserAdd](func() (*interface{}, error) {
		return nil, userService.userOperation.AddUser(user)
	}); res != nil {
		return res
	}
	saveAuditLog(userService.logger, userService.auditLogOperation, operation.UserCreated, req.Uid, user.Username,
		&req.EchoContentHeader, &operation.ChangeDetail{NewValue: string(role)})
	return NewApiResponse(&SuccessAddUser, Unsatisfied, (*ResponseUserAdd)(user))
}

var SuccessGetRoles = ApiStatus{StatusName: "GET_ROLES", Description: "Roles obtenidos", HttpCode: Ok}

func (userService *UserService) GetRoles(req *RequestGetRoles) *ApiResponse[ResponseGetRoles] {
	if res := CheckPermission[ResponseGetRoles](req.Permission, operation.UserShowList); res != nil {
		return res
	}
	data := ResponseGetRoles(lo.Map(operation.Roles, func(role operation.Role, _ int) *RoleInfo {
		permission := role.Permission()
		nodes := make([]string, 0, len(operation.PermissionMap))
		for name, node := range operation.PermissionMap {
			if permission.HasPermission(node) {
				nodes = append(nodes, name)
			}
		}
		slices.Sort(nodes)
		return &RoleInfo{Role: string(role), Permission: int64(permission), Nodes: nodes}
	}))
	return NewApiResponse(&SuccessGetRoles, Unsatisfied, &data)
}

var SuccessGetProfile = ApiStatus{StatusName: "GET_PROFILE_SUCCESS", Description: "Perfil obtenido", HttpCode: Ok}

func (userService *UserService) GetUserProfile(req *RequestUserProfile) *ApiResponse[ResponseUserProfile] {
	if req.TargetUid <= 0 {
		return NewApiResponse[ResponseUserProfile](&ErrIllegalParam, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseUserProfile](req.Permission, operation.UserGetProfile); res != nil {
		return res
	}
	user, res := CallDBFuncAndCheckError[operation.User, ResponseUserProfile](func() (*operation.User, error) {
		return userService.userOperation.GetUserByUid(req.TargetUid)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetProfile, Unsatisfied, (*ResponseUserProfile)(user))
}

var SuccessEditUserProfile = ApiStatus{StatusName: "EDIT_USER_PROFILE", Description: "Usuario actualizado", HttpCode: Ok}

func (userService *UserService) EditUserProfile(req *RequestUserEditProfile) *ApiResponse[ResponseUserEditProfile] {
	if req.TargetUid <= 0 {
		return NewApiResponse[ResponseUserEditProfile](&ErrIllegalParam, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseUserEditProfile](req.Permission, operation.UserEditBaseInfo); res != nil {
		return res
	}
	status, user := userService.editUserProfile(&profileEdit{
		uid:         req.TargetUid,
		username:    req.Username,
		email:       req.Email,
		fullName:    req.FullName,
		newPassword: req.NewPassword,
		skipVerify:  true,
	})
	if status != nil {
		return NewApiResponse[ResponseUserEditProfile](status, Unsatisfied, nil)
	}
	saveAuditLog(userService.logger, userService.auditLogOperation, operation.UserInformationEdit, req.Uid, user.Username,
		&req.EchoContentHeader, nil)
	return NewApiResponse(&SuccessEditUserProfile, Unsatisfied, (*ResponseUserEditProfile)(user))
}

var (
	ErrRoleNotExists    = ApiStatus{StatusName: "ROLE_NOT_EXISTS", Description: "Rol no válido", HttpCode: BadRequest}
	ErrSameRole         = ApiStatus{StatusName: "SAME_ROLE", Description: "El usuario ya tiene este rol", HttpCode: BadRequest}
	ErrEditSelf         = ApiStatus{StatusName: "EDIT_SELF", Description: "No puede modificar su propio acceso", HttpCode: BadRequest}
	SuccessEditUserRole = ApiStatus{StatusName: "EDIT_USER_ROLE", Description: "Rol actualizado", HttpCode: Ok}
)

func (userService *UserService) notifyPermissionChange(targetUser, user *operation.User) {
	if !userService.config.Email.Template.EnablePermissionChangeEmail {
		return
	}
	if err := userService.emailService.SendPermissionChangeEmail(targetUser, user); err != nil {
		userService.logger.ErrorF("SendPermissionChangeEmail Failed: %v", err)
	}
}

func (userService *UserService) EditUserRole(req *RequestUserEditRole) *ApiResponse[ResponseUserEditRole] {
	role := operation.Role(req.Role)
	if req.Uid <= 0 || req.TargetUid <= 0 || !role.IsValid() {
		return NewApiResponse[ResponseUserEditRole](&ErrRoleNotExists, Unsatisfied, nil)
	}
	if req.Uid == req.TargetUid {
		return NewApiResponse[ResponseUserEditRole](&ErrEditSelf, Unsatisfied, nil)
	}
	user, targetUser, res := GetUsersAndCheckPermission[ResponseUserEditRole](userService.userOperation, req.Uid, req.TargetUid, operation.UserEditRole)
	if res != nil {
		return res
	}
	if role.Permission()&^operation.Permission(user.Permission) != 0 {
		return NewApiResponse[ResponseUserEditRole](&ErrNoPermission, Unsatisfied, nil)
	}
	oldRole := targetUser.Role
	if oldRole == string(role) {
		return NewApiResponse[ResponseUserEditRole](&ErrSameRole, Unsatisfied, nil)
	}

	if _, res := CallDBFuncAndCheckError[interface{}, ResponseUserEditRole](func() (*interface{}, error) {
		return nil, userService.userOperation.UpdateUserRole(targetUser, role)
	}); res != nil {
		return res
	}

	saveAuditLog(userService.logger, userService.auditLogOperation, operation.UserRoleChange, req.Uid, targetUser.Username,
		&req.EchoContentHeader, &operation.ChangeDetail{OldValue: oldRole, NewValue: string(role)})
	userService.notifyPermissionChange(targetUser, user)

	return NewApiResponse(&SuccessEditUserRole, Unsatisfied, (*ResponseUserEditRole)(targetUser))
}

var (
	ErrPermissionNodeNotExists = ApiStatus{StatusName: "PERMISSION_NODE_NOT_EXISTS", Description: "Nodo de permiso no válido", HttpCode: BadRequest}
	SuccessEditUserPermission  = ApiStatus{StatusName: "EDIT_USER_PERMISSION", Description: "Permisos actualizados", HttpCode: Ok}
)

func (userService *UserService) EditUserPermission(req *RequestUserEditPermission) *ApiResponse[ResponseUserEditPermission] {
	if req.Uid <= 0 || req.TargetUid <= 0 || len(req.Permissions) == 0 {
		return NewApiResponse[ResponseUserEditPermission](&ErrIllegalParam, Unsatisfied, nil)
	}
	user, targetUser, res := GetUsersAndCheckPermission[ResponseUserEditPermission](userService.userOperation, req.Uid, req.TargetUid, operation.UserEditPermission)
	if res != nil {
		return res
	}
	permission := operation.Permission(user.Permission)
	targetPermission := operation.Permission(targetUser.Permission)
	oldPermission := targetPermission
	for key, value := range req.Permissions {
		if per, ok := operation.PermissionMap[key]; ok {
			if !permission.HasPermission(per) {
				return NewApiResponse[ResponseUserEditPermission](&ErrNoPermission, Unsatisfied, nil)
			}
			if value, ok := value.(bool); ok {
				if value {
					targetPermission.Grant(per)
				} else {
					targetPermission.Revoke(per)
				}
			} else {
				return NewApiResponse[ResponseUserEditPermission](&ErrIllegalParam, Unsatisfied, nil)
			}
		} else {
			return NewApiResponse[ResponseUserEditPermission](&ErrPermissionNodeNotExists, Unsatisfied, nil)
		}
	}

	if _, res := CallDBFuncAndCheckError[interface{}, ResponseUserEditPermission](func() (*interface{}, error) {
		return nil, userService.userOperation.UpdateUserPermission(targetUser, targetPermission)
	}); res != nil {
		return res
	}

	eventType := operation.UserPermissionGrant
	if targetPermission < oldPermission {
		eventType = operation.UserPermissionRevoke
	}
	saveAuditLog(userService.logger, userService.auditLogOperation, eventType, req.Uid, targetUser.Username, &req.EchoContentHeader,
		&operation.ChangeDetail{OldValue: fmt.Sprintf("%d", oldPermission), NewValue: fmt.Sprintf("%d", targetPermission)})
	userService.notifyPermissionChange(targetUser, user)

	return NewApiResponse(&SuccessEditUserPermission, Unsatisfied, (*ResponseUserEditPermission)(targetUser))
}

var SuccessEditUserActive = ApiStatus{StatusName: "EDIT_USER_ACTIVE", Description: "Estado del usuario actualizado", HttpCode: Ok}

func (userService *UserService) EditUserActive(req *RequestUserEditActive) *ApiResponse[ResponseUserEditActive] {
	if req.Uid <= 0 || req.TargetUid <= 0 {
		return NewApiResponse[ResponseUserEditActive](&ErrIllegalParam, Unsatisfied, nil)
	}
	if req.Uid == req.TargetUid {
		return NewApiResponse[ResponseUserEditActive](&ErrEditSelf, Unsatisfied, nil)
	}
	_, targetUser, res := GetUsersAndCheckPermission[ResponseUserEditActive](userService.userOperation, req.Uid, req.TargetUid, operation.UserDisable)
	if res != nil {
		return res
	}
	oldActive := targetUser.Active
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseUserEditActive](func() (*interface{}, error) {
		return nil, userService.userOperation.UpdateUserActive(targetUser, req.Active)
	}); res != nil {
		return res
	}
	targetUser.Active = req.Active
	saveAuditLog(userService.logger, userService.auditLogOperation, operation.UserActiveChange, req.Uid, targetUser.Username, &req.EchoContentHeader,
		&operation.ChangeDetail{OldValue: fmt.Sprintf("%t", oldActive), NewValue: fmt.Sprintf("%t", req.Active)})
	return NewApiResponse(&SuccessEditUserActive, Unsatisfied, (*ResponseUserEditActive)(targetUser))
}
