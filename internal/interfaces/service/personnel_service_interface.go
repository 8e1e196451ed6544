// Package service
package service

import (
	"github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	"time"
)

type PersonnelServiceInterface interface {
	GetPersonnelPage(req *RequestPersonnelList) *ApiResponse[ResponsePersonnelList]
	GetRanks(req *RequestGetRanks) *ApiResponse[ResponseGetRanks]
	GetPersonnel(req *RequestGetPersonnel) *ApiResponse[ResponseGetPersonnel]
	AddPersonnel(req *RequestAddPersonnel) *ApiResponse[ResponseAddPersonnel]
	EditPersonnel(req *RequestEditPersonnel) *ApiResponse[ResponseEditPersonnel]
	DeletePersonnel(req *RequestDeletePersonnel) *ApiResponse[ResponseDeletePersonnel]
}

type RequestPersonnelList struct {
	JwtHeader
	PageRequest
	Search      string `query:"search"`
	Institution string `query:"institution"`
	Category    string `query:"category"`
	Gender      string `query:"gender"`
	GroupId     uint   `query:"group_id"`
}

// PersonnelItem is a personnel record together with the category its rank belongs to
type PersonnelItem struct {
	*operation.Personnel
	Category string `json:"categoria"`
}

type ResponsePersonnelList PageResponse[*PersonnelItem]

type RequestGetRanks struct {
	JwtHeader
}

type RankGroup struct {
	Key      string   `json:"key"`
	Category string   `json:"category"`
	Ranks    []string `json:"ranks"`
}

type ResponseGetRanks struct {
	Categories   []*RankGroup `json:"categories"`
	Institutions []string     `json:"institutions"`
}

type RequestGetPersonnel struct {
	JwtHeader
	Id string `param:"id"`
}

type ResponseGetPersonnel PersonnelItem

// PersonnelFields are the editable columns of a personnel record
type PersonnelFields struct {
	FirstNames  string `json:"nombres" validate:"required,max=128"`
	LastNames   string `json:"apellidos" validate:"required,max=128"`
	IdCard      string `json:"cedula" validate:"required,max=32"`
	Rank        string `json:"rango" validate:"max=64"`
	Gender      string `json:"genero" validate:"max=16"`
	Nationality string `json:"nacionalidad" validate:"max=64"`
	Phone       string `json:"telefono" validate:"max=32"`
	Institution string `json:"institucion" validate:"max=16"`
	GroupId     *uint  `json:"grupo_id"`
	PhotoUrl    string `json:"foto_url" validate:"omitempty,url,max=512"`
}

type RequestAddPersonnel struct {
	JwtHeader
	EchoContentHeader
	PersonnelFields
}

type ResponseAddPersonnel PersonnelItem

type RequestEditPersonnel struct {
	JwtHeader
	EchoContentHeader
	Id string `param:"id"`
	PersonnelFields
}

type ResponseEditPersonnel PersonnelItem

type RequestDeletePersonnel struct {
	JwtHeader
	EchoContentHeader
	Id string `param:"id"`
}

type ResponseDeletePersonnel struct {
	Id        string    `json:"id"`
	DeletedAt time.Time `json:"deleted_at"`
}
