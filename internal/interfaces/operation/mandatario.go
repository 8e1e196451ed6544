// Package operation
package operation

import (
	"errors"
)

var (
	ErrMandatarioNotFound = errors.New("mandatario does not exist")
	ErrAssignmentNotFound = errors.New("assignment does not exist")
	ErrAlreadyAssigned    = errors.New("personnel is already assigned to this function")
)

// MandatarioOperationInterface principals under protection and their required team
type MandatarioOperationInterface interface {
	// GetMandatarioById preloads required functions and assignments with their personnel and function
	GetMandatarioById(id uint) (mandatario *Mandatario, err error)
	// GetMandatarios returns every mandatario with required functions and assignments preloaded
	GetMandatarios() (mandatarios []*Mandatario, err error)
	AddMandatario(mandatario *Mandatario) (err error)
	UpdateMandatario(mandatario *Mandatario, info map[string]interface{}) (err error)
	// DeleteMandatario removes the mandatario, its required functions and its assignments
	DeleteMandatario(mandatario *Mandatario) (err error)
	// SetRequiredFunctions replaces the whole required set; unknown function ids fail with ErrFunctionNotFound
	SetRequiredFunctions(mandatario *Mandatario, functionIds []uint) (required []*RequiredFunction, err error)
}

// AssignmentOperationInterface personnel assigned to a mandatario's team
type AssignmentOperationInterface interface {
	GetAssignmentById(id uint) (assignment *Assignment, err error)
	// GetAssignments returns every assignment with personnel, function and mandatario preloaded
	GetAssignments() (assignments []*Assignment, err error)
	GetAssignmentsByMandatario(mandatarioId uint) (assignments []*Assignment, err error)
	GetTotalAssignments() (total int64, err error)
	// AddAssignment rejects a second assignment of the same person to the same function of a mandatario
	AddAssignment(assignment *Assignment) (err error)
	UpdateAssignmentStatus(assignment *Assignment, status AssignmentStatus) (err error)
	DeleteAssignment(assignment *Assignment) (err error)
}
