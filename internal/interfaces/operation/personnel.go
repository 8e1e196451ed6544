// Package operation
package operation

import (
	"errors"
	"github.com/half-nothing/simple-hrm/internal/interfaces/hrm"
)

var (
	ErrPersonnelNotFound = errors.New("personnel does not exist")
	ErrIdCardTaken       = errors.New("id card has been used")
)

// PersonnelFilter narrows a personnel listing, zero values do not filter
type PersonnelFilter struct {
	Search      string
	Institution string
	Category    *hrm.RankCategory
	Gender      string
	GroupId     uint
}

// PersonnelOperationInterface personnel records
type PersonnelOperationInterface interface {
	// GetPersonnelById preloads the group, personnel is valid when err is nil
	GetPersonnelById(id string) (personnel *Personnel, err error)
	// GetFilteredPersonnel applies the filter and returns the records sorted by rank and institution
	GetFilteredPersonnel(filter *PersonnelFilter) (personnel []*Personnel, err error)
	GetTotalPersonnel() (total int64, err error)
	// CountPersonnelByInstitution groups the records by institution code
	CountPersonnelByInstitution() (counts map[string]int64, err error)
	// AddPersonnel checks the id card is unused and writes the record in one transaction
	AddPersonnel(personnel *Personnel) (err error)
	// UpdatePersonnel writes the changed columns, a changed id card is checked for uniqueness
	UpdatePersonnel(personnel *Personnel, info map[string]interface{}) (err error)
	// DeletePersonnel removes the record and every assignment that references it
	DeletePersonnel(personnel *Personnel) (err error)
}
