// Package service
package service

import (
	"github.com/half-nothing/simple-hrm/internal/interfaces/config"
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	"github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/service"
	"strings"
	"time"
)

type ReminderService struct {
	logger            log.LoggerInterface
	config            *config.ReminderConfig
	emailService      EmailServiceInterface
	reminderOperation operation.ReminderOperationInterface
}

func NewReminderService(
	logger log.LoggerInterface,
	config *config.ReminderConfig,
	emailService EmailServiceInterface,
	reminderOperation operation.ReminderOperationInterface,
) *ReminderService {
	return &ReminderService{
		logger:            logger,
		config:            config,
		emailService:      emailService,
		reminderOperation: reminderOperation,
	}
}

var ErrNotReminderOwner = ApiStatus{StatusName: "NOT_REMINDER_OWNER", Description: "El recordatorio pertenece a otro usuario", HttpCode: PermissionDenied}

// getOwnReminder loads a reminder and rejects reminders created by someone else
func getOwnReminder[T any](reminderOperation operation.ReminderOperationInterface, uid, id uint) (*operation.Reminder, *ApiResponse[T]) {
	reminder, res := CallDBFuncAndCheckError[operation.Reminder, T](func() (*operation.Reminder, error) {
		return reminderOperation.GetReminderById(id)
	})
	if res != nil {
		return nil, res
	}
	if reminder.CreatorId != uid {
		return nil, NewApiResponse[T](&ErrNotReminderOwner, Unsatisfied, nil)
	}
	return reminder, nil
}

func checkReminderFields(fields *ReminderFields) *ApiStatus {
	fields.Title = strings.TrimSpace(fields.Title)
	if fields.Priority == "" {
		fields.Priority = string(operation.PriorityMedium)
	}
	return checkStruct(fields)
}

var SuccessGetReminders = ApiStatus{StatusName: "GET_REMINDERS", Description: "Recordatorios obtenidos", HttpCode: Ok}

func (reminderService *ReminderService) GetPendingReminders(req *RequestReminderList) *ApiResponse[ResponseReminderList] {
	if req.Limit < 0 {
		return NewApiResponse[ResponseReminderList](&ErrIllegalParam, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseReminderList](req.Permission, operation.ReminderShowList); res != nil {
		return res
	}
	limit := req.Limit
	if limit == 0 || limit > reminderService.config.PendingListLimit {
		limit = reminderService.config.PendingListLimit
	}
	reminders, err := reminderService.reminderOperation.GetPendingReminders(req.Uid, limit)
	if err != nil {
		return NewApiResponse[ResponseReminderList](StatusOfError(err), Unsatisfied, nil)
	}
	data := ResponseReminderList(reminders)
	return NewApiResponse(&SuccessGetReminders, Unsatisfied, &data)
}

var SuccessAddReminder = ApiStatus{StatusName: "ADD_REMINDER", Description: "Recordatorio creado", HttpCode: Ok}

func (reminderService *ReminderService) AddReminder(req *RequestAddReminder) *ApiResponse[ResponseAddReminder] {
	if status := checkReminderFields(&req.ReminderFields); status != nil {
		return NewApiResponse[ResponseAddReminder](status, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseAddReminder](req.Permission, operation.ReminderEdit); res != nil {
		return res
	}
	reminder := &operation.Reminder{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		RemindAt:    req.RemindAt,
		CreatorId:   req.Uid,
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseAddReminder](func() (*interface{}, error) {
		return nil, reminderService.reminderOperation.AddReminder(reminder)
	}); res != nil {
		return res
	}
	return NewApiResponse(&SuccessAddReminder, Unsatisfied, (*ResponseAddReminder)(reminder))
}

var SuccessEditReminder = ApiStatus{StatusName: "EDIT_REMINDER", Description: "Recordatorio actualizado", HttpCode: Ok}

func (reminderService *ReminderService) EditReminder(req *RequestEditReminder) *ApiResponse[ResponseEditReminder] {
	if req.Id <= 0 {
		return NewApiResponse[ResponseEditReminder](&ErrIllegalParam, Unsatisfied, nil)
	}
	if status := checkReminderFields(&req.ReminderFields); status != nil {
		return NewApiResponse[ResponseEditReminder](status, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseEditReminder](req.Permission, operation.ReminderEdit); res != nil {
		return res
	}
	reminder, res := getOwnReminder[ResponseEditReminder](reminderService.reminderOperation, req.Uid, req.Id)
	if res != nil {
		return res
	}
	updateInfo := map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"priority":    req.Priority,
	}
	if !reminder.RemindAt.Equal(req.RemindAt) {
		updateInfo["remind_at"] = req.RemindAt
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseEditReminder](func() (*interface{}, error) {
		return nil, reminderService.reminderOperation.UpdateReminder(reminder, updateInfo)
	}); res != nil {
		return res
	}
	reminder.Title = req.Title
	reminder.Description = req.Description
	reminder.Priority = req.Priority
	reminder.RemindAt = req.RemindAt
	return NewApiResponse(&SuccessEditReminder, Unsatisfied, (*ResponseEditReminder)(reminder))
}

var SuccessCompleteReminder = ApiStatus{StatusName: "COMPLETE_REMINDER", Description: "Recordatorio actualizado", HttpCode: Ok}

func (reminderService *ReminderService) CompleteReminder(req *RequestCompleteReminder) *ApiResponse[ResponseCompleteReminder] {
	if req.Id <= 0 {
		return NewApiResponse[ResponseCompleteReminder](&ErrIllegalParam, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseCompleteReminder](req.Permission, operation.ReminderEdit); res != nil {
		return res
	}
	reminder, res := getOwnReminder[ResponseCompleteReminder](reminderService.reminderOperation, req.Uid, req.Id)
	if res != nil {
		return res
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseCompleteReminder](func() (*interface{}, error) {
		return nil, reminderService.reminderOperation.SetReminderCompleted(reminder, req.Completed)
	}); res != nil {
		return res
	}
	reminder.Completed = req.Completed
	return NewApiResponse(&SuccessCompleteReminder, Unsatisfied, (*ResponseCompleteReminder)(reminder))
}

var SuccessDeleteReminder = ApiStatus{StatusName: "DELETE_REMINDER", Description: "Recordatorio eliminado", HttpCode: Ok}

func (reminderService *ReminderService) DeleteReminder(req *RequestDeleteReminder) *ApiResponse[ResponseDeleteReminder] {
	if req.Id <= 0 {
		return NewApiResponse[ResponseDeleteReminder](&ErrIllegalParam, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseDeleteReminder](req.Permission, operation.ReminderEdit); res != nil {
		return res
	}
	reminder, res := getOwnReminder[ResponseDeleteReminder](reminderService.reminderOperation, req.Uid, req.Id)
	if res != nil {
		return res
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseDeleteReminder](func() (*interface{}, error) {
		return nil, reminderService.reminderOperation.DeleteReminder(reminder)
	}); res != nil {
		return res
	}
	return NewApiResponse(&SuccessDeleteReminder, Unsatisfied, &ResponseDeleteReminder{Id: reminder.ID})
}

// NotifyDueReminders marks a reminder notified only once its email went out, failed sends are retried on the next run
func (reminderService *ReminderService) NotifyDueReminders(now time.Time) (int, error) {
	reminders, err := reminderService.reminderOperation.GetDueReminders(now.Add(reminderService.config.LeadDuration), reminderService.config.MaxBatchSize)
	if err != nil {
		return 0, err
	}
	notified := make([]uint, 0, len(reminders))
	sent := 0
	for _, reminder := range reminders {
		if reminder.Creator == nil || !reminder.Creator.Active {
			notified = append(notified, reminder.ID)
			continue
		}
		if err := reminderService.emailService.SendReminderEmail(reminder.Creator, reminder); err != nil {
			reminderService.logger.ErrorF("Fail to send reminder %d to %s: %v", reminder.ID, reminder.Creator.Email, err)
			continue
		}
		notified = append(notified, reminder.ID)
		sent++
	}
	if err := reminderService.reminderOperation.MarkRemindersNotified(notified); err != nil {
		return 0, err
	}
	return sent, nil
}
