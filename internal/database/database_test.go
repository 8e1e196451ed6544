package database

import (
	"fmt"
	"github.com/half-nothing/simple-hrm/internal/interfaces/config"
	"github.com/half-nothing/simple-hrm/internal/interfaces/hrm"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"strings"
	"testing"
	"time"
)

func newTestDatabase(t *testing.T) *DatabaseOperations {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a shared memory database lives as long as one connection stays open
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return NewOperations(db, 5*time.Second, &config.GeneralConfig{BcryptCost: bcrypt.MinCost})
}

func addPersonnel(t *testing.T, db *DatabaseOperations, idCard, rank, institution string) *Personnel {
	t.Helper()
	personnel := &Personnel{
		FirstNames:  "Nombre " + idCard,
		LastNames:   "Apellido",
		IdCard:      idCard,
		Rank:        rank,
		Institution: institution,
	}
	require.NoError(t, db.PersonnelOperation().AddPersonnel(personnel))
	require.NotEmpty(t, personnel.ID)
	return personnel
}

func TestUserOperation(t *testing.T) {
	db := newTestDatabase(t)
	userOperation := db.UserOperation()

	user, err := userOperation.NewUser("operador", "operador@example.com", "Operador", "contraseña1", RoleUser)
	require.NoError(t, err)
	require.NoError(t, userOperation.AddUser(user))
	assert.Equal(t, int64(RoleUser.Permission()), user.Permission)

	duplicate, err := userOperation.NewUser("otro", "operador@example.com", "", "contraseña2", RoleViewer)
	require.NoError(t, err)
	assert.ErrorIs(t, userOperation.AddUser(duplicate), ErrIdentifierTaken)

	found, err := userOperation.GetUserByUsernameOrEmail("operador@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.True(t, userOperation.VerifyUserPassword(found, "contraseña1"))
	assert.False(t, userOperation.VerifyUserPassword(found, "contraseña2"))

	_, err = userOperation.GetUserByUsernameOrEmail("nadie")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = userOperation.GetUserByUid(999)
	assert.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, userOperation.UpdateUserRole(found, RoleAdmin))
	reloaded, err := userOperation.GetUserByUid(user.ID)
	require.NoError(t, err)
	assert.Equal(t, string(RoleAdmin), reloaded.Role)
	assert.Equal(t, int64(AllPermissions), reloaded.Permission)

	_, err = userOperation.UpdateUserPassword(reloaded, "incorrecta", "nueva-clave", false)
	assert.ErrorIs(t, err, ErrOldPassword)
	_, err = userOperation.UpdateUserPassword(reloaded, "", "nueva-clave", true)
	require.NoError(t, err)
	assert.True(t, userOperation.VerifyUserPassword(reloaded, "nueva-clave"))

	// keeping your own username is not a conflict
	require.NoError(t, userOperation.UpdateUserInfo(reloaded, map[string]interface{}{"username": "operador", "full_name": "Op"}))

	users, total, err := userOperation.GetUsers(1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, users, 1)

	users, total, err = userOperation.GetUsers(1<<62, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Empty(t, users)
}

func TestPersonnelFilterSortsByRankAndInstitution(t *testing.T) {
	db := newTestDatabase(t)
	addPersonnel(t, db, "001", "Sargento", "PN")
	addPersonnel(t, db, "002", "Capitán de Navio", "ARD")
	addPersonnel(t, db, "003", "Coronel", "ARD")
	addPersonnel(t, db, "004", "Coronel", "ERD")
	addPersonnel(t, db, "005", "Desconocido", "ERD")

	personnel, err := db.PersonnelOperation().GetFilteredPersonnel(&PersonnelFilter{})
	require.NoError(t, err)
	idCards := make([]string, 0, len(personnel))
	for _, p := range personnel {
		idCards = append(idCards, p.IdCard)
	}
	assert.Equal(t, []string{"004", "003", "002", "001", "005"}, idCards)

	category := hrm.OficialesSuperiores
	personnel, err = db.PersonnelOperation().GetFilteredPersonnel(&PersonnelFilter{Category: &category, Institution: "ARD"})
	require.NoError(t, err)
	require.Len(t, personnel, 2)
	assert.Equal(t, "003", personnel[0].IdCard)

	personnel, err = db.PersonnelOperation().GetFilteredPersonnel(&PersonnelFilter{Search: "capitan"})
	require.NoError(t, err)
	require.Len(t, personnel, 1)
	assert.Equal(t, "002", personnel[0].IdCard)

	counts, err := db.PersonnelOperation().CountPersonnelByInstitution()
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts["ARD"])
	assert.Equal(t, int64(1), counts["PN"])
}

func TestPersonnelIdCardUnique(t *testing.T) {
	db := newTestDatabase(t)
	first := addPersonnel(t, db, "001", "Cabo", "ERD")
	second := addPersonnel(t, db, "002", "Cabo", "ERD")

	assert.ErrorIs(t, db.PersonnelOperation().AddPersonnel(&Personnel{FirstNames: "x", LastNames: "y", IdCard: "001"}), ErrIdCardTaken)
	assert.ErrorIs(t, db.PersonnelOperation().UpdatePersonnel(second, map[string]interface{}{"id_card": "001"}), ErrIdCardTaken)
	require.NoError(t, db.PersonnelOperation().UpdatePersonnel(first, map[string]interface{}{"id_card": "001", "rank": "Sargento"}))

	reloaded, err := db.PersonnelOperation().GetPersonnelById(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sargento", reloaded.Rank)
}

func TestMandatarioTeam(t *testing.T) {
	db := newTestDatabase(t)
	driver := &Function{Name: "Chofer"}
	escort := &Function{Name: "Escolta"}
	require.NoError(t, db.CatalogOperation().AddFunction(driver))
	require.NoError(t, db.CatalogOperation().AddFunction(escort))
	assert.ErrorIs(t, db.CatalogOperation().AddFunction(&Function{Name: "Chofer"}), ErrNameTaken)

	mandatario := &Mandatario{Name: "Embajador", Country: "España"}
	require.NoError(t, db.MandatarioOperation().AddMandatario(mandatario))

	_, err := db.MandatarioOperation().SetRequiredFunctions(mandatario, []uint{driver.ID, 999})
	assert.ErrorIs(t, err, ErrFunctionNotFound)

	required, err := db.MandatarioOperation().SetRequiredFunctions(mandatario, []uint{driver.ID, escort.ID, driver.ID})
	require.NoError(t, err)
	assert.Len(t, required, 2)

	person := addPersonnel(t, db, "001", "Cabo", "ERD")
	assignment := &Assignment{PersonnelId: person.ID, FunctionId: driver.ID, MandatarioId: mandatario.ID}
	require.NoError(t, db.AssignmentOperation().AddAssignment(assignment))
	assert.Equal(t, string(AssignmentActive), assignment.Status)
	assert.ErrorIs(t, db.AssignmentOperation().AddAssignment(
		&Assignment{PersonnelId: person.ID, FunctionId: driver.ID, MandatarioId: mandatario.ID}), ErrAlreadyAssigned)
	assert.ErrorIs(t, db.AssignmentOperation().AddAssignment(
		&Assignment{PersonnelId: "missing", FunctionId: driver.ID, MandatarioId: mandatario.ID}), ErrPersonnelNotFound)

	loaded, err := db.MandatarioOperation().GetMandatarioById(mandatario.ID)
	require.NoError(t, err)
	require.Len(t, loaded.RequiredFunctions, 2)
	require.Len(t, loaded.Assignments, 1)
	assert.Equal(t, "001", loaded.Assignments[0].Personnel.IdCard)

	status := hrm.ComputeTeamStatus[uint](loaded.RequiredFunctions, loaded.Assignments)
	assert.False(t, status.IsComplete)
	assert.Equal(t, []uint{escort.ID}, status.MissingFunctionIds)

	assert.ErrorIs(t, db.CatalogOperation().DeleteFunction(driver), ErrCatalogInUse)

	require.NoError(t, db.PersonnelOperation().DeletePersonnel(person))
	total, err := db.AssignmentOperation().GetTotalAssignments()
	require.NoError(t, err)
	assert.Zero(t, total)

	require.NoError(t, db.MandatarioOperation().DeleteMandatario(loaded))
	_, err = db.MandatarioOperation().GetMandatarioById(mandatario.ID)
	assert.ErrorIs(t, err, ErrMandatarioNotFound)
	require.NoError(t, db.CatalogOperation().DeleteFunction(driver))
}

func TestDeleteGroupDetachesPersonnel(t *testing.T) {
	db := newTestDatabase(t)
	group := &Group{Name: "Grupo A"}
	require.NoError(t, db.CatalogOperation().AddGroup(group))
	person := addPersonnel(t, db, "001", "Raso", "ARD")
	require.NoError(t, db.PersonnelOperation().UpdatePersonnel(person, map[string]interface{}{"group_id": group.ID}))

	require.NoError(t, db.CatalogOperation().DeleteGroup(group))
	reloaded, err := db.PersonnelOperation().GetPersonnelById(person.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.GroupId)
	assert.ErrorIs(t, db.CatalogOperation().DeleteGroup(group), ErrGroupNotFound)
}

func TestReminderOperation(t *testing.T) {
	db := newTestDatabase(t)
	user, err := db.UserOperation().NewUser("operador", "operador@example.com", "", "contraseña1", RoleUser)
	require.NoError(t, err)
	require.NoError(t, db.UserOperation().AddUser(user))

	now := time.Now()
	due := &Reminder{Title: "Relevo", Priority: string(PriorityHigh), RemindAt: now.Add(-time.Minute), CreatorId: user.ID}
	later := &Reminder{Title: "Informe", Priority: string(PriorityLow), RemindAt: now.Add(time.Hour), CreatorId: user.ID}
	require.NoError(t, db.ReminderOperation().AddReminder(due))
	require.NoError(t, db.ReminderOperation().AddReminder(later))

	pending, err := db.ReminderOperation().GetPendingReminders(user.ID, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, due.ID, pending[0].ID)

	reminders, err := db.ReminderOperation().GetDueReminders(now, 10)
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	require.NotNil(t, reminders[0].Creator)
	assert.Equal(t, "operador@example.com", reminders[0].Creator.Email)

	require.NoError(t, db.ReminderOperation().MarkRemindersNotified([]uint{due.ID}))
	reminders, err = db.ReminderOperation().GetDueReminders(now, 10)
	require.NoError(t, err)
	assert.Empty(t, reminders)

	require.NoError(t, db.ReminderOperation().SetReminderCompleted(later, true))
	pending, err = db.ReminderOperation().GetPendingReminders(user.ID, 10)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	require.NoError(t, db.ReminderOperation().DeleteReminder(due))
	_, err = db.ReminderOperation().GetReminderById(due.ID)
	assert.ErrorIs(t, err, ErrReminderNotFound)
}

func TestAuditLogOperation(t *testing.T) {
	db := newTestDatabase(t)
	auditLogOperation := db.AuditLogOperation()
	logs := make([]*AuditLog, 0, 3)
	for i := 0; i < 3; i++ {
		logs = append(logs, auditLogOperation.NewAuditLog(PersonnelCreated, 1, fmt.Sprintf("personal-%d", i), "127.0.0.1", "test",
			&ChangeDetail{NewValue: fmt.Sprintf("%d", i)}))
	}
	require.NoError(t, auditLogOperation.SaveAuditLogs(logs))

	page, total, err := auditLogOperation.GetAuditLogs(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 2)
	require.NotNil(t, page[0].ChangeDetails)
	assert.Equal(t, "personal-2", page[0].Object)

	page, total, err = auditLogOperation.GetAuditLogs(1<<62, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, page)
}
