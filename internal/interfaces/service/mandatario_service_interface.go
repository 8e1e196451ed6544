// Package service
package service

import (
	"github.com/half-nothing/simple-hrm/internal/interfaces/hrm"
	"github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	"time"
)

type MandatarioServiceInterface interface {
	GetMandatarioList(req *RequestMandatarioList) *ApiResponse[ResponseMandatarioList]
	GetMandatario(req *RequestGetMandatario) *ApiResponse[ResponseGetMandatario]
	AddMandatario(req *RequestAddMandatario) *ApiResponse[ResponseAddMandatario]
	EditMandatario(req *RequestEditMandatario) *ApiResponse[ResponseEditMandatario]
	DeleteMandatario(req *RequestDeleteMandatario) *ApiResponse[ResponseDeleteMandatario]
	SetRequiredFunctions(req *RequestSetRequiredFunctions) *ApiResponse[ResponseGetMandatario]
	AddAssignment(req *RequestAddAssignment) *ApiResponse[ResponseAddAssignment]
	EditAssignmentStatus(req *RequestEditAssignmentStatus) *ApiResponse[ResponseEditAssignmentStatus]
	DeleteAssignment(req *RequestDeleteAssignment) *ApiResponse[ResponseDeleteAssignment]
}

type TeamStatus = hrm.TeamStatus[uint, *operation.RequiredFunction]

// MandatarioItem is one row of the mandatario listing
type MandatarioItem struct {
	Id            uint   `json:"id"`
	Name          string `json:"nombre"`
	Country       string `json:"pais"`
	Company       string `json:"empresa"`
	MainContact   string `json:"contacto_principal"`
	RequiredCount int    `json:"funciones_requeridas"`
	AssignedCount int    `json:"personal_asignado"`
	IsComplete    bool   `json:"completo"`
	Status        string `json:"estado_equipo"`
}

type RequestMandatarioList struct {
	JwtHeader
	Search string `query:"search"`
}

type ResponseMandatarioList []*MandatarioItem

type RequestGetMandatario struct {
	JwtHeader
	Id uint `param:"id"`
}

type ResponseGetMandatario struct {
	Mandatario *operation.Mandatario `json:"mandatario"`
	Team       *TeamStatus           `json:"equipo"`
	Status     string                `json:"estado_equipo"`
}

type MandatarioFields struct {
	Name        string `json:"nombre" validate:"required,max=128"`
	Country     string `json:"pais" validate:"max=64"`
	Company     string `json:"empresa" validate:"max=128"`
	MainContact string `json:"contacto_principal" validate:"max=128"`
}

type RequestAddMandatario struct {
	JwtHeader
	EchoContentHeader
	MandatarioFields
}

type ResponseAddMandatario operation.Mandatario

type RequestEditMandatario struct {
	JwtHeader
	EchoContentHeader
	Id uint `param:"id"`
	MandatarioFields
}

type ResponseEditMandatario operation.Mandatario

type RequestDeleteMandatario struct {
	JwtHeader
	EchoContentHeader
	Id uint `param:"id"`
}

type ResponseDeleteMandatario struct {
	Id uint `json:"id"`
}

type RequestSetRequiredFunctions struct {
	JwtHeader
	EchoContentHeader
	Id          uint   `param:"id"`
	FunctionIds []uint `json:"funciones"`
}

type RequestAddAssignment struct {
	JwtHeader
	EchoContentHeader
	MandatarioId uint       `param:"id"`
	PersonnelId  string     `json:"personal_id" validate:"required"`
	FunctionId   uint       `json:"funcion_id" validate:"required"`
	StartDate    *time.Time `json:"fecha_inicio"`
	EndDate      *time.Time `json:"fecha_fin"`
}

type ResponseAddAssignment operation.Assignment

type RequestEditAssignmentStatus struct {
	JwtHeader
	EchoContentHeader
	MandatarioId uint   `param:"id"`
	AssignmentId uint   `param:"assignment_id"`
	Status       string `json:"estado" validate:"required,oneof=activa finalizada"`
}

type ResponseEditAssignmentStatus operation.Assignment

type RequestDeleteAssignment struct {
	JwtHeader
	EchoContentHeader
	MandatarioId uint `param:"id"`
	AssignmentId uint `param:"assignment_id"`
}

type ResponseDeleteAssignment struct {
	Id uint `json:"id"`
}
