// Package hrm
package hrm

import "github.com/samber/lo"

const (
	TeamCompleteLabel   = "✅ Completo"
	TeamIncompleteLabel = "⚠️ Incompleto"
)

type FunctionRole[T comparable] interface {
	GetFunctionId() T
}

// RequiredRole says that the principal's protection team must cover FunctionId
type RequiredRole[T comparable] struct {
	PrincipalId T `json:"principal_id"`
	FunctionId  T `json:"function_id"`
}

func (r RequiredRole[T]) GetFunctionId() T { return r.FunctionId }

// AssignedRole is a person filling FunctionId for the principal
type AssignedRole[T comparable] struct {
	PrincipalId T `json:"principal_id"`
	FunctionId  T `json:"function_id"`
	PersonId    T `json:"person_id"`
}

func (a AssignedRole[T]) GetFunctionId() T { return a.FunctionId }

type TeamStatus[T comparable, R FunctionRole[T]] struct {
	RequiredCount      int  `json:"required_count"`
	AssignedCount      int  `json:"assigned_count"`
	Missing            []R  `json:"missing"`
	MissingFunctionIds []T  `json:"missing_function_ids"`
	IsComplete         bool `json:"is_complete"`
}

func (s *TeamStatus[T, R]) Label() string {
	if s.IsComplete {
		return TeamCompleteLabel
	}
	return TeamIncompleteLabel
}

// ComputeTeamStatus checks that every required function is covered by at least one assignment.
// Callers pass the records of a single principal; the principal id is not inspected.
// A principal without requirements is complete, and duplicate or surplus assignments never
// make a team incomplete. MissingFunctionIds holds each uncovered function once, in first-seen order.
func ComputeTeamStatus[T comparable, R FunctionRole[T], A FunctionRole[T]](required []R, assigned []A) *TeamStatus[T, R] {
	covered := lo.SliceToMap(assigned, func(role A) (T, struct{}) {
		return role.GetFunctionId(), struct{}{}
	})
	missing := lo.Filter(required, func(role R, _ int) bool {
		_, ok := covered[role.GetFunctionId()]
		return !ok
	})
	return &TeamStatus[T, R]{
		RequiredCount: len(required),
		AssignedCount: len(assigned),
		Missing:       missing,
		MissingFunctionIds: lo.Uniq(lo.Map(missing, func(role R, _ int) T {
			return role.GetFunctionId()
		})),
		IsComplete: len(missing) == 0,
	}
}
