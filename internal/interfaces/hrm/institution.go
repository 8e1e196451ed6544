// Package hrm
package hrm

import (
	"cmp"
	"slices"
)

type Institution string

const (
	ERD   Institution = "ERD"
	ARD   Institution = "ARD"
	FARD  Institution = "FARD"
	PN    Institution = "PN"
	MIDE  Institution = "MIDE"
	MIREX Institution = "MIREX"
)

// Institutions is the display order used as a tie-break after rank
var Institutions = []Institution{ERD, ARD, FARD, PN, MIDE, MIREX}

// IsValid reports whether the code is one of Institutions
func (i Institution) IsValid() bool {
	return slices.Contains(Institutions, i)
}

// InstitutionIndex returns the position in Institutions; empty or unknown codes get len(Institutions)
func InstitutionIndex(code string) int {
	if index := slices.Index(Institutions, Institution(code)); index >= 0 {
		return index
	}
	return len(Institutions)
}

type InstitutionHolder interface {
	GetInstitution() string
}

// CompareByInstitution orders by InstitutionIndex, unknown codes last
func CompareByInstitution[T InstitutionHolder](a, b T) int {
	return cmp.Compare(InstitutionIndex(a.GetInstitution()), InstitutionIndex(b.GetInstitution()))
}

type RankedMember interface {
	Ranked
	InstitutionHolder
}

// CompareByRankAndInstitution orders by rank and breaks ties by institution
func CompareByRankAndInstitution[T RankedMember](a, b T) int {
	return cmp.Or(CompareByRank(a, b), CompareByInstitution(a, b))
}

// SortByRankAndInstitution sorts in place, records equal on both keys keep their input order
func SortByRankAndInstitution[T RankedMember](items []T) {
	slices.SortStableFunc(items, CompareByRankAndInstitution[T])
}
