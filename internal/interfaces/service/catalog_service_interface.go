// Package service
package service

import "github.com/half-nothing/simple-hrm/internal/interfaces/operation"

type CatalogServiceInterface interface {
	GetGroups(req *RequestGetGroups) *ApiResponse[ResponseGetGroups]
	AddGroup(req *RequestAddCatalog) *ApiResponse[ResponseAddGroup]
	DeleteGroup(req *RequestDeleteCatalog) *ApiResponse[ResponseDeleteCatalog]
	GetFunctions(req *RequestGetFunctions) *ApiResponse[ResponseGetFunctions]
	AddFunction(req *RequestAddCatalog) *ApiResponse[ResponseAddFunction]
	DeleteFunction(req *RequestDeleteCatalog) *ApiResponse[ResponseDeleteCatalog]
}

type RequestGetGroups struct {
	JwtHeader
}

type ResponseGetGroups []*operation.Group

type RequestGetFunctions struct {
	JwtHeader
}

type ResponseGetFunctions []*operation.Function

type RequestAddCatalog struct {
	JwtHeader
	EchoContentHeader
	Name string `json:"nombre" validate:"required,max=128"`
}

type ResponseAddGroup operation.Group

type ResponseAddFunction operation.Function

type RequestDeleteCatalog struct {
	JwtHeader
	EchoContentHeader
	Id uint `param:"id"`
}

type ResponseDeleteCatalog struct {
	Id uint `json:"id"`
}
