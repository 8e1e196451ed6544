// Package service
package service

import (
	"github.com/half-nothing/simple-hrm/internal/interfaces/config"
	"github.com/half-nothing/simple-hrm/internal/interfaces/hrm"
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	"github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/service"
	"github.com/half-nothing/simple-hrm/internal/utils"
	"github.com/samber/lo"
	"math"
	"time"
)

type StatisticsService struct {
	logger              log.LoggerInterface
	personnelOperation  operation.PersonnelOperationInterface
	mandatarioOperation operation.MandatarioOperationInterface
	assignmentOperation operation.AssignmentOperationInterface
	catalogOperation    operation.CatalogOperationInterface
	dashboard           *utils.CachedValue[ResponseDashboard]
}

func NewStatisticsService(
	logger log.LoggerInterface,
	config *config.HttpServerConfig,
	personnelOperation operation.PersonnelOperationInterface,
	mandatarioOperation operation.MandatarioOperationInterface,
	assignmentOperation operation.AssignmentOperationInterface,
	catalogOperation operation.CatalogOperationInterface,
) *StatisticsService {
	service := &StatisticsService{
		logger:              logger,
		personnelOperation:  personnelOperation,
		mandatarioOperation: mandatarioOperation,
		assignmentOperation: assignmentOperation,
		catalogOperation:    catalogOperation,
	}
	service.dashboard = utils.NewCachedValue(config.CacheDuration, service.generateDashboard)
	return service
}

// Efficiency is the rounded share of complete teams, 0 when there are no mandatarios
func Efficiency(complete, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(complete) / float64(total) * 100))
}

// generateDashboard returns nil when any query fails, the cache then retries on the next request
func (statisticsService *StatisticsService) generateDashboard() *ResponseDashboard {
	totalPersonnel, err := statisticsService.personnelOperation.GetTotalPersonnel()
	if err != nil {
		statisticsService.logger.ErrorF("Fail to count personnel: %v", err)
		return nil
	}
	byInstitution, err := statisticsService.personnelOperation.CountPersonnelByInstitution()
	if err != nil {
		statisticsService.logger.ErrorF("Fail to count personnel by institution: %v", err)
		return nil
	}
	mandatarios, err := statisticsService.mandatarioOperation.GetMandatarios()
	if err != nil {
		statisticsService.logger.ErrorF("Fail to load mandatarios: %v", err)
		return nil
	}
	assignments, err := statisticsService.assignmentOperation.GetAssignments()
	if err != nil {
		statisticsService.logger.ErrorF("Fail to load assignments: %v", err)
		return nil
	}
	totalGroups, err := statisticsService.catalogOperation.GetTotalGroups()
	if err != nil {
		statisticsService.logger.ErrorF("Fail to count groups: %v", err)
		return nil
	}
	totalFunctions, err := statisticsService.catalogOperation.GetTotalFunctions()
	if err != nil {
		statisticsService.logger.ErrorF("Fail to count functions: %v", err)
		return nil
	}

	completeTeams := lo.CountBy(mandatarios, func(m *operation.Mandatario) bool {
		return teamStatusOf(m).IsComplete
	})
	assignedPersonnel := len(lo.UniqBy(assignments, func(a *operation.Assignment) string { return a.PersonnelId }))

	return &ResponseDashboard{
		TotalPersonnel:    totalPersonnel,
		AssignedPersonnel: assignedPersonnel,
		TotalMandatarios:  len(mandatarios),
		CompleteTeams:     completeTeams,
		IncompleteTeams:   len(mandatarios) - completeTeams,
		TotalGroups:       totalGroups,
		TotalFunctions:    totalFunctions,
		TotalAssignments:  int64(len(assignments)),
		Efficiency:        Efficiency(completeTeams, len(mandatarios)),
		ByInstitution:     byInstitution,
		GeneratedAt:       time.Now(),
	}
}

func (statisticsService *StatisticsService) Invalidate() {
	statisticsService.dashboard.Invalidate()
}

var SuccessGetDashboard = ApiStatus{StatusName: "GET_DASHBOARD", Description: "Estadísticas obtenidas", HttpCode: Ok}

func (statisticsService *StatisticsService) GetDashboard(req *RequestDashboard) *ApiResponse[ResponseDashboard] {
	if res := CheckPermission[ResponseDashboard](req.Permission, operation.StatisticsShow); res != nil {
		return res
	}
	dashboard := statisticsService.dashboard.GetValue()
	if dashboard == nil {
		return NewApiResponse[ResponseDashboard](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetDashboard, Unsatisfied, dashboard)
}

var SuccessGetAnalytics = ApiStatus{StatusName: "GET_ANALYTICS", Description: "Análisis obtenido", HttpCode: Ok}

func (statisticsService *StatisticsService) GetAnalytics(req *RequestAnalytics) *ApiResponse[ResponseAnalytics] {
	if res := CheckPermission[ResponseAnalytics](req.Permission, operation.StatisticsShow); res != nil {
		return res
	}
	category, status := parseCategory(req.Category)
	if status != nil {
		return NewApiResponse[ResponseAnalytics](status, Unsatisfied, nil)
	}
	personnel, err := statisticsService.personnelOperation.GetFilteredPersonnel(&operation.PersonnelFilter{
		Institution: req.Institution,
		Category:    category,
		Gender:      req.Gender,
	})
	if err != nil {
		return NewApiResponse[ResponseAnalytics](StatusOfError(err), Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetAnalytics, Unsatisfied, &ResponseAnalytics{
		Total:         len(personnel),
		Personnel:     personnel,
		ByInstitution: lo.CountValuesBy(personnel, func(p *operation.Personnel) string { return p.Institution }),
		ByGender:      lo.CountValuesBy(personnel, func(p *operation.Personnel) string { return p.Gender }),
		ByCategory: lo.CountValuesBy(personnel, func(p *operation.Personnel) string {
			return hrm.ClassifyRank(p.Rank).String()
		}),
	})
}

var SuccessGetAssignmentReport = ApiStatus{StatusName: "GET_ASSIGNMENT_REPORT", Description: "Reporte de asignaciones obtenido", HttpCode: Ok}

func newAssignmentReportRow(assignment *operation.Assignment) *AssignmentReportRow {
	row := &AssignmentReportRow{
		StartDate: assignment.StartDate,
		EndDate:   assignment.EndDate,
		Status:    assignment.Status,
	}
	if assignment.Personnel != nil {
		row.PersonnelName = assignment.Personnel.FullName()
		row.IdCard = assignment.Personnel.IdCard
		row.Rank = assignment.Personnel.Rank
		row.Institution = assignment.Personnel.Institution
	}
	if assignment.Mandatario != nil {
		row.Mandatario = assignment.Mandatario.Name
	}
	if assignment.Function != nil {
		row.Function = assignment.Function.Name
	}
	return row
}

func (statisticsService *StatisticsService) GetAssignmentReport(req *RequestAssignmentReport) *ApiResponse[ResponseAssignmentReport] {
	if res := CheckPermission[ResponseAssignmentReport](req.Permission, operation.StatisticsShow); res != nil {
		return res
	}
	var assignments []*operation.Assignment
	var err error
	if req.MandatarioId > 0 {
		assignments, err = statisticsService.assignmentOperation.GetAssignmentsByMandatario(req.MandatarioId)
	} else {
		assignments, err = statisticsService.assignmentOperation.GetAssignments()
	}
	if err != nil {
		return NewApiResponse[ResponseAssignmentReport](StatusOfError(err), Unsatisfied, nil)
	}
	rows := lo.Map(assignments, func(a *operation.Assignment, _ int) *AssignmentReportRow { return newAssignmentReportRow(a) })
	hrm.SortByRankAndInstitution(rows)
	data := ResponseAssignmentReport(rows)
	return NewApiResponse(&SuccessGetAssignmentReport, Unsatisfied, &data)
}
