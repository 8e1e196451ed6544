// Package hrm
package hrm

import (
	"fmt"
	"slices"
	"testing"
)

func required(functions ...int) []RequiredRole[int] {
	result := make([]RequiredRole[int], 0, len(functions))
	for _, f := range functions {
		result = append(result, RequiredRole[int]{PrincipalId: 1, FunctionId: f})
	}
	return result
}

func assigned(functions ...int) []AssignedRole[int] {
	result := make([]AssignedRole[int], 0, len(functions))
	for i, f := range functions {
		result = append(result, AssignedRole[int]{PrincipalId: 1, FunctionId: f, PersonId: 100 + i})
	}
	return result
}

// countCovered counts the requirement records whose function has an assignment
func countCovered(requirements []RequiredRole[int], assignments []AssignedRole[int]) int {
	count := 0
	for _, r := range requirements {
		if slices.ContainsFunc(assignments, func(a AssignedRole[int]) bool { return a.FunctionId == r.FunctionId }) {
			count++
		}
	}
	return count
}

func ExampleComputeTeamStatus() {
	required := []RequiredRole[string]{
		{PrincipalId: "presidente", FunctionId: "Seguridad"},
		{PrincipalId: "presidente", FunctionId: "Chofer"},
		{PrincipalId: "presidente", FunctionId: "Edecán"},
	}
	assigned := []AssignedRole[string]{{PrincipalId: "presidente", FunctionId: "Seguridad", PersonId: "001-0000001-1"}}
	status := ComputeTeamStatus[string](required, assigned)
	fmt.Println(status.MissingFunctionIds, status.IsComplete)
	// Output: [Chofer Edecán] false
}

func TestComputeTeamStatus(t *testing.T) {
	tests := []struct {
		name             string
		required         []RequiredRole[int]
		assigned         []AssignedRole[int]
		expectedRequired int
		expectedAssigned int
		expectedMissing  []int
		expectedComplete bool
	}{
		{"vacuous", required(), assigned(), 0, 0, []int{}, true},
		{"vacuous with assignments", required(), assigned(3, 4), 0, 2, []int{}, true},
		{"nothing assigned", required(1, 2), assigned(), 2, 0, []int{1, 2}, false},
		{"partially covered", required(1, 2, 3), assigned(2), 3, 1, []int{1, 3}, false},
		{"exactly covered", required(1, 2), assigned(2, 1), 2, 2, []int{}, true},
		{"duplicates", required(1, 2), assigned(1, 1, 2, 2), 2, 4, []int{}, true},
		{"surplus", required(1), assigned(1, 5, 6), 1, 3, []int{}, true},
		{"duplicate requirement missing", required(1, 1, 2), assigned(2), 3, 1, []int{1}, false},
		{"duplicate requirements keep first-seen order", required(2, 2, 3, 1, 3), assigned(), 5, 0, []int{2, 3, 1}, false},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := ComputeTeamStatus[int](test.required, test.assigned)
		ok := result.RequiredCount == test.expectedRequired &&
			result.AssignedCount == test.expectedAssigned &&
			slices.Equal(result.MissingFunctionIds, test.expectedMissing) &&
			len(result.Missing) == result.RequiredCount-countCovered(test.required, test.assigned) &&
			result.IsComplete == test.expectedComplete &&
			result.IsComplete == (len(result.Missing) == 0)
		if !ok {
			fail++
			t.Errorf("ComputeTeamStatus[%s] = %+v; expected required=%d assigned=%d missing=%v complete=%v",
				test.name, result, test.expectedRequired, test.expectedAssigned, test.expectedMissing, test.expectedComplete)
			continue
		}
		pass++
	}
	t.Logf("TestComputeTeamStatus: %d pass, %d fail", pass, fail)
}

func TestComputeTeamStatusKeepsRequiredRecords(t *testing.T) {
	requirements := []RequiredRole[int]{{PrincipalId: 7, FunctionId: 3}, {PrincipalId: 7, FunctionId: 9}}
	result := ComputeTeamStatus[int](requirements, assigned(9))
	if len(result.Missing) != 1 || result.Missing[0] != requirements[0] {
		t.Errorf("Missing = %v; expected only %v", result.Missing, requirements[0])
	}
}

func TestComputeTeamStatusMonotonic(t *testing.T) {
	requirements := required(1, 2, 3)
	assignments := assigned()
	previous := len(requirements)
	for _, f := range []int{3, 8, 1, 1, 2} {
		assignments = append(assignments, AssignedRole[int]{FunctionId: f})
		missing := len(ComputeTeamStatus[int](requirements, assignments).Missing)
		if missing > previous {
			t.Errorf("adding function %d grew missing from %d to %d", f, previous, missing)
		}
		previous = missing
	}
	if previous != 0 {
		t.Errorf("expected a complete team, %d still missing", previous)
	}
}

func TestTeamStatusLabel(t *testing.T) {
	if label := ComputeTeamStatus[int](required(), assigned()).Label(); label != TeamCompleteLabel {
		t.Errorf("Label() = %q; expected %q", label, TeamCompleteLabel)
	}
	if label := ComputeTeamStatus[int](required(1), assigned()).Label(); label != TeamIncompleteLabel {
		t.Errorf("Label() = %q; expected %q", label, TeamIncompleteLabel)
	}
}

func TestComputeTeamStatusWithNamedFunctions(t *testing.T) {
	requiredOf := func(functions ...string) []RequiredRole[string] {
		result := make([]RequiredRole[string], 0, len(functions))
		for _, f := range functions {
			result = append(result, RequiredRole[string]{PrincipalId: "presidente", FunctionId: f})
		}
		return result
	}
	assignedOf := func(functions ...string) []AssignedRole[string] {
		result := make([]AssignedRole[string], 0, len(functions))
		for i, f := range functions {
			result = append(result, AssignedRole[string]{PrincipalId: "presidente", FunctionId: f, PersonId: fmt.Sprintf("p%d", i)})
		}
		return result
	}
	tests := []struct {
		name             string
		required         []RequiredRole[string]
		assigned         []AssignedRole[string]
		expectedMissing  []string
		expectedComplete bool
	}{
		{"security only", requiredOf("Seguridad", "Chofer", "Edecán"), assignedOf("Seguridad"), []string{"Chofer", "Edecán"}, false},
		{"full team", requiredOf("Seguridad", "Chofer", "Edecán"), assignedOf("Edecán", "Chofer", "Seguridad", "Seguridad"), []string{}, true},
		{"names are case sensitive", requiredOf("Chofer"), assignedOf("chofer"), []string{"Chofer"}, false},
		{"no requirements", requiredOf(), assignedOf("Chofer"), []string{}, true},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := ComputeTeamStatus[string](test.required, test.assigned)
		if !slices.Equal(result.MissingFunctionIds, test.expectedMissing) || result.IsComplete != test.expectedComplete {
			fail++
			t.Errorf("ComputeTeamStatus[%s] = missing %v complete %v; expected missing %v complete %v",
				test.name, result.MissingFunctionIds, result.IsComplete, test.expectedMissing, test.expectedComplete)
			continue
		}
		pass++
	}
	t.Logf("TestComputeTeamStatusWithNamedFunctions: %d pass, %d fail", pass, fail)
}

func TestComputeTeamStatusIsIdempotent(t *testing.T) {
	tests := []struct {
		name     string
		required []RequiredRole[int]
		assigned []AssignedRole[int]
	}{
		{"incomplete", required(1, 2, 3), assigned(2)},
		{"complete", required(1, 2), assigned(2, 1, 1)},
		{"duplicate requirements", required(4, 4, 5), assigned(5)},
		{"empty", required(), assigned()},
	}
	for _, test := range tests {
		first := ComputeTeamStatus[int](test.required, test.assigned)
		second := ComputeTeamStatus[int](test.required, test.assigned)
		if first.RequiredCount != second.RequiredCount ||
			first.AssignedCount != second.AssignedCount ||
			first.IsComplete != second.IsComplete ||
			!slices.Equal(first.Missing, second.Missing) ||
			!slices.Equal(first.MissingFunctionIds, second.MissingFunctionIds) {
			t.Errorf("ComputeTeamStatus[%s] changed between calls: %+v then %+v", test.name, first, second)
		}
	}
}
