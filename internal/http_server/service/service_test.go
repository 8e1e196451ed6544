package service

import (
	"fmt"
	"github.com/half-nothing/simple-hrm/internal/base"
	"github.com/half-nothing/simple-hrm/internal/database"
	"github.com/half-nothing/simple-hrm/internal/interfaces/config"
	"github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/service"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"html/template"
	"io"
	"strings"
	"testing"
	"time"
)

type recordEmailService struct {
	reminders         []uint
	permissionChanges []string
	err               error
}

func (r *recordEmailService) RenderTemplate(_ *template.Template, _ interface{}) (string, error) {
	return "", nil
}

func (r *recordEmailService) SendPermissionChangeEmail(user *operation.User, _ *operation.User) error {
	r.permissionChanges = append(r.permissionChanges, user.Username)
	return r.err
}

func (r *recordEmailService) SendReminderEmail(_ *operation.User, reminder *operation.Reminder) error {
	if r.err != nil {
		return r.err
	}
	r.reminders = append(r.reminders, reminder.ID)
	return nil
}

type testServices struct {
	operations *operation.DatabaseOperations
	email      *recordEmailService
	user       *UserService
	audit      *AuditLogService
	statistics *StatisticsService
	personnel  *PersonnelService
	catalog    *CatalogService
	mandatario *MandatarioService
	reminder   *ReminderService
}

var (
	adminHeader  = JwtHeader{Uid: 1, Permission: int64(operation.AllPermissions)}
	viewerHeader = JwtHeader{Uid: 2, Permission: int64(operation.RoleViewer.Permission())}
)

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:service_%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	logger := base.NewLoggerWithWriter(io.Discard, false)
	logger.Init(false)

	generalConfig := &config.GeneralConfig{
		OrganizationName: "Dirección de Protección",
		BcryptCost:       bcrypt.MinCost,
		DefaultAdmin:     &config.DefaultAdminConfig{Username: "admin", Email: "admin@example.com", Password: "administrador"},
	}
	limits := &config.HttpServerLimit{
		UsernameLengthMin: 4,
		UsernameLengthMax: 32,
		EmailLengthMin:    4,
		EmailLengthMax:    64,
		PasswordLengthMin: 6,
		PasswordLengthMax: 64,
		MaxPageSize:       50,
	}
	httpConfig := &config.HttpServerConfig{
		Limits: limits,
		JWT: &config.JWTConfig{
			Secret:          "test-secret",
			Issuer:          "simple-hrm",
			ExpiresDuration: time.Hour,
			RefreshDuration: time.Hour,
		},
		Email: &config.EmailConfig{Template: &config.EmailTemplateConfig{EnablePermissionChangeEmail: true}},
	}
	reminderConfig := &config.ReminderConfig{LeadDuration: 15 * time.Minute, MaxBatchSize: 10, PendingListLimit: 5}
	InitValidator(limits)

	operations := database.NewOperations(db, 5*time.Second, generalConfig)
	email := &recordEmailService{}
	statistics := NewStatisticsService(logger, httpConfig, operations.PersonnelOperation(), operations.MandatarioOperation(),
		operations.AssignmentOperation(), operations.CatalogOperation())
	return &testServices{
		operations: operations,
		email:      email,
		user:       NewUserService(logger, email, httpConfig, generalConfig, operations.UserOperation(), operations.AuditLogOperation()),
		audit:      NewAuditService(limits, operations.AuditLogOperation()),
		statistics: statistics,
		personnel: NewPersonnelService(logger, limits, statistics, operations.PersonnelOperation(), operations.CatalogOperation(),
			operations.AuditLogOperation()),
		catalog: NewCatalogService(logger, statistics, operations.CatalogOperation(), operations.AuditLogOperation()),
		mandatario: NewMandatarioService(logger, statistics, operations.MandatarioOperation(), operations.AssignmentOperation(),
			operations.AuditLogOperation()),
		reminder: NewReminderService(logger, reminderConfig, email, operations.ReminderOperation()),
	}
}

func (s *testServices) addPersonnel(t *testing.T, idCard, rank, institution string) *PersonnelItem {
	t.Helper()
	res := s.personnel.AddPersonnel(&RequestAddPersonnel{
		JwtHeader: adminHeader,
		PersonnelFields: PersonnelFields{
			FirstNames:  "Juan",
			LastNames:   "Pérez " + idCard,
			IdCard:      idCard,
			Rank:        rank,
			Institution: institution,
		},
	})
	require.Equal(t, SuccessAddPersonnel.StatusName, res.Code, res.Message)
	return (*PersonnelItem)(res.Data)
}

func (s *testServices) addFunction(t *testing.T, name string) *operation.Function {
	t.Helper()
	res := s.catalog.AddFunction(&RequestAddCatalog{JwtHeader: adminHeader, Name: name})
	require.Equal(t, SuccessAddFunction.StatusName, res.Code, res.Message)
	return (*operation.Function)(res.Data)
}

func (s *testServices) addMandatario(t *testing.T, name string) *operation.Mandatario {
	t.Helper()
	res := s.mandatario.AddMandatario(&RequestAddMandatario{
		JwtHeader:        adminHeader,
		MandatarioFields: MandatarioFields{Name: name, Country: "República Dominicana"},
	})
	require.Equal(t, SuccessAddMandatario.StatusName, res.Code, res.Message)
	return (*operation.Mandatario)(res.Data)
}
