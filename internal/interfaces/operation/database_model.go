package operation

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

type User struct {
	ID          uint        `gorm:"primarykey" json:"id"`
	Username    string      `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Email       string      `gorm:"size:128;uniqueIndex;not null" json:"email"`
	FullName    string      `gorm:"size:128;not null;default:''" json:"full_name"`
	Password    string      `gorm:"size:128;not null" json:"-"`
	Role        string      `gorm:"size:16;not null;default:'viewer'" json:"role"`
	Permission  int64       `gorm:"default:0" json:"permission"`
	Active      bool        `gorm:"default:true;not null" json:"active"`
	LastLoginAt *time.Time  `json:"last_login_at"`
	Reminders   []*Reminder `gorm:"foreignKey:CreatorId;references:ID" json:"-"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"-"`
}

type Group struct {
	ID        uint         `gorm:"primarykey" json:"id"`
	Name      string       `gorm:"size:128;uniqueIndex;not null" json:"nombre"`
	Personnel []*Personnel `gorm:"foreignKey:GroupId;references:ID" json:"-"`
	CreatedAt time.Time    `json:"-"`
	UpdatedAt time.Time    `json:"-"`
}

type Function struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:128;uniqueIndex;not null" json:"nombre"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Personnel struct {
	ID          string        `gorm:"size:36;primarykey" json:"id"`
	FirstNames  string        `gorm:"size:128;not null" json:"nombres"`
	LastNames   string        `gorm:"size:128;not null" json:"apellidos"`
	IdCard      string        `gorm:"size:32;uniqueIndex;not null" json:"cedula"`
	Rank        string        `gorm:"size:64;index;not null;default:''" json:"rango"`
	Gender      string        `gorm:"size:16;not null;default:''" json:"genero"`
	Nationality string        `gorm:"size:64;not null;default:''" json:"nacionalidad"`
	Phone       string        `gorm:"size:32;not null;default:''" json:"telefono"`
	Institution string        `gorm:"size:16;index;not null;default:''" json:"institucion"`
	GroupId     *uint         `gorm:"index" json:"grupo_id"`
	Group       *Group        `gorm:"foreignKey:GroupId;references:ID" json:"grupo,omitempty"`
	PhotoUrl    string        `gorm:"size:512;not null;default:''" json:"foto_url"`
	Assignments []*Assignment `gorm:"foreignKey:PersonnelId;references:ID" json:"-"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"-"`
}

func (p *Personnel) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (p *Personnel) GetRank() string        { return p.Rank }
func (p *Personnel) GetInstitution() string { return p.Institution }

func (p *Personnel) FullName() string {
	return p.FirstNames + " " + p.LastNames
}

type Mandatario struct {
	ID                uint                `gorm:"primarykey" json:"id"`
	Name              string              `gorm:"size:128;not null" json:"nombre"`
	Country           string              `gorm:"size:64;not null;default:''" json:"pais"`
	Company           string              `gorm:"size:128;not null;default:''" json:"empresa"`
	MainContact       string              `gorm:"size:128;not null;default:''" json:"contacto_principal"`
	RequiredFunctions []*RequiredFunction `gorm:"foreignKey:MandatarioId;references:ID" json:"funciones_requeridas,omitempty"`
	Assignments       []*Assignment       `gorm:"foreignKey:MandatarioId;references:ID" json:"asignaciones,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"-"`
}

// RequiredFunction is one row of the protection team a mandatario needs
type RequiredFunction struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	MandatarioId uint      `gorm:"uniqueIndex:mandatarioFunction;not null" json:"mandatario_id"`
	FunctionId   uint      `gorm:"uniqueIndex:mandatarioFunction;not null" json:"funcion_id"`
	Function     *Function `gorm:"foreignKey:FunctionId;references:ID" json:"funcion,omitempty"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

func (r *RequiredFunction) GetFunctionId() uint { return r.FunctionId }

type AssignmentStatus string

const (
	AssignmentActive   AssignmentStatus = "activa"
	AssignmentFinished AssignmentStatus = "finalizada"
)

type Assignment struct {
	ID           uint        `gorm:"primarykey" json:"id"`
	PersonnelId  string      `gorm:"size:36;index;not null" json:"personal_id"`
	Personnel    *Personnel  `gorm:"foreignKey:PersonnelId;references:ID" json:"personal,omitempty"`
	FunctionId   uint        `gorm:"index;not null" json:"funcion_id"`
	Function     *Function   `gorm:"foreignKey:FunctionId;references:ID" json:"funcion,omitempty"`
	MandatarioId uint        `gorm:"index;not null" json:"mandatario_id"`
	Mandatario   *Mandatario `gorm:"foreignKey:MandatarioId;references:ID" json:"mandatario,omitempty"`
	StartDate    *time.Time  `json:"fecha_inicio"`
	EndDate      *time.Time  `json:"fecha_fin"`
	Status       string      `gorm:"size:16;not null;default:'activa'" json:"estado"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"-"`
}

func (a *Assignment) GetFunctionId() uint { return a.FunctionId }

func (a *Assignment) GetRank() string {
	if a.Personnel == nil {
		return ""
	}
	return a.Personnel.Rank
}

type ReminderPriority string

const (
	PriorityLow    ReminderPriority = "low"
	PriorityMedium ReminderPriority = "medium"
	PriorityHigh   ReminderPriority = "high"
)

func (p ReminderPriority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type Reminder struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"size:128;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Priority    string    `gorm:"size:8;not null;default:'medium'" json:"priority"`
	RemindAt    time.Time `gorm:"index;not null" json:"reminder_date"`
	Completed   bool      `gorm:"default:false;not null" json:"is_completed"`
	Notified    bool      `gorm:"default:false;not null" json:"-"`
	CreatorId   uint      `gorm:"index;not null" json:"user_id"`
	Creator     *User     `gorm:"foreignKey:CreatorId;references:ID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

type ChangeDetail struct {
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
}

type AuditLog struct {
	ID            uint          `gorm:"primarykey" json:"id"`
	EventType     string        `gorm:"size:64;index;not null" json:"event_type"`
	Subject       uint          `gorm:"index;not null" json:"subject"`
	Object        string        `gorm:"size:128;not null" json:"object"`
	Ip            string        `gorm:"size:64;not null" json:"ip"`
	UserAgent     string        `gorm:"size:256;not null" json:"user_agent"`
	ChangeDetails *ChangeDetail `gorm:"type:text;serializer:json" json:"change_details"`
	CreatedAt     time.Time     `json:"created_at"`
}
