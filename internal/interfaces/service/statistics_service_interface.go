// Package service
package service

import (
	"github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	"time"
)

type StatisticsServiceInterface interface {
	GetDashboard(req *RequestDashboard) *ApiResponse[ResponseDashboard]
	GetAnalytics(req *RequestAnalytics) *ApiResponse[ResponseAnalytics]
	GetAssignmentReport(req *RequestAssignmentReport) *ApiResponse[ResponseAssignmentReport]
	// Invalidate drops the cached dashboard after a write
	Invalidate()
}

type RequestDashboard struct {
	JwtHeader
}

type ResponseDashboard struct {
	TotalPersonnel    int64            `json:"total_personal"`
	AssignedPersonnel int              `json:"personal_asignado"`
	TotalMandatarios  int              `json:"total_mandatarios"`
	CompleteTeams     int              `json:"equipos_completos"`
	IncompleteTeams   int              `json:"equipos_incompletos"`
	TotalGroups       int64            `json:"total_grupos"`
	TotalFunctions    int64            `json:"total_funciones"`
	TotalAssignments  int64            `json:"total_asignaciones"`
	Efficiency        int              `json:"eficiencia"`
	ByInstitution     map[string]int64 `json:"por_institucion"`
	GeneratedAt       time.Time        `json:"generated_at"`
}

type RequestAnalytics struct {
	JwtHeader
	Institution string `query:"institution"`
	Category    string `query:"category"`
	Gender      string `query:"gender"`
}

type ResponseAnalytics struct {
	Total         int                    `json:"total"`
	Personnel     []*operation.Personnel `json:"personal"`
	ByInstitution map[string]int         `json:"por_institucion"`
	ByGender      map[string]int         `json:"por_genero"`
	ByCategory    map[string]int         `json:"por_categoria"`
}

type RequestAssignmentReport struct {
	JwtHeader
	MandatarioId uint `query:"mandatario_id"`
}

type AssignmentReportRow struct {
	PersonnelName string     `json:"personal"`
	IdCard        string     `json:"cedula"`
	Rank          string     `json:"rango"`
	Institution   string     `json:"institucion"`
	Mandatario    string     `json:"mandatario"`
	Function      string     `json:"funcion"`
	StartDate     *time.Time `json:"fecha_inicio"`
	EndDate       *time.Time `json:"fecha_fin"`
	Status        string     `json:"estado"`
}

func (row *AssignmentReportRow) GetRank() string { return row.Rank }

func (row *AssignmentReportRow) GetInstitution() string { return row.Institution }

type ResponseAssignmentReport []*AssignmentReportRow
