// Package operation
package operation

import "errors"

var (
	ErrGroupNotFound    = errors.New("group does not exist")
	ErrFunctionNotFound = errors.New("function does not exist")
	ErrNameTaken        = errors.New("name has been used")
	ErrCatalogInUse     = errors.New("catalog entry is still referenced")
)

// CatalogOperationInterface groups (grupos) and team functions (funciones)
type CatalogOperationInterface interface {
	GetGroups() (groups []*Group, err error)
	GetGroupById(id uint) (group *Group, err error)
	AddGroup(group *Group) (err error)
	// DeleteGroup detaches the personnel of the group before removing it
	DeleteGroup(group *Group) (err error)
	GetTotalGroups() (total int64, err error)
	GetFunctions() (functions []*Function, err error)
	GetFunctionById(id uint) (function *Function, err error)
	AddFunction(function *Function) (err error)
	// DeleteFunction fails with ErrCatalogInUse while a mandatario requires it or someone is assigned to it
	DeleteFunction(function *Function) (err error)
	GetTotalFunctions() (total int64, err error)
}
