// Package hrm
package hrm

import (
	"cmp"
	"slices"
)

// RankCategory groups ranks for display and filtering, Otros catches every unknown label
type RankCategory int

const (
	OficialesGenerales RankCategory = iota
	OficialesSuperiores
	OficialesSubalternos
	Alistados
	Asimilados
	Civiles
	Otros
)

type RankCategoryModel struct {
	Id       int    `json:"id"`
	Key      string `json:"key"`
	LongName string `json:"long_name"`
}

var RankCategories = []RankCategoryModel{
	{0, "OficialesGenerales", "Oficiales Generales"},
	{1, "OficialesSuperiores", "Oficiales Superiores"},
	{2, "OficialesSubalternos", "Oficiales Subalternos"},
	{3, "Alistados", "Alistados"},
	{4, "Asimilados", "Asimilados"},
	{5, "Civiles", "Civiles"},
	{6, "Otros", "Otros"},
}

// String returns the display name, out of range values render as Otros
func (c RankCategory) String() string {
	if c < OficialesGenerales || c > Otros {
		return RankCategories[Otros].LongName
	}
	return RankCategories[c].LongName
}

// Key returns the identifier accepted by ParseRankCategory
func (c RankCategory) Key() string {
	if c < OficialesGenerales || c > Otros {
		return RankCategories[Otros].Key
	}
	return RankCategories[c].Key
}

// Index is the position of the category in RankCategories
func (c RankCategory) Index() int {
	return int(c)
}

func (c RankCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseRankCategory accepts either the identifier ("OficialesGenerales") or the
// display name ("Oficiales Generales"). ok is false for anything else.
func ParseRankCategory(name string) (category RankCategory, ok bool) {
	for _, model := range RankCategories {
		if model.Key == name || model.LongName == name {
			return RankCategory(model.Id), true
		}
	}
	return Otros, false
}

// UnknownRankOrder sorts labels that are not in the rank table after every known rank
const UnknownRankOrder = 9999

type RankModel struct {
	Label    string       `json:"label"`
	Category RankCategory `json:"category"`
	Order    int          `json:"order"`
}

// Ranks is the single source for both classification and ordering.
// Army and navy equivalents share an order band (x00 / x01).
var Ranks = []RankModel{
	{"Mayor General", OficialesGenerales, 100},
	{"General de Brigada", OficialesGenerales, 200},
	{"Coronel", OficialesSuperiores, 300},
	{"Capitán de Navio", OficialesSuperiores, 301},
	{"Teniente Coronel", OficialesSuperiores, 400},
	{"Capitán de Fragata", OficialesSuperiores, 401},
	{"Mayor", OficialesSuperiores, 500},
	{"Capitán de Corbeta", OficialesSuperiores, 501},
	{"Capitán", OficialesSubalternos, 600},
	{"Teniente de Navio", OficialesSubalternos, 601},
	{"1er. Teniente", OficialesSubalternos, 700},
	{"Tte. de Fragata", OficialesSubalternos, 701},
	{"2do.Teniente", OficialesSubalternos, 800},
	{"Tte. de Corbeta", OficialesSubalternos, 801},
	{"Sargento Mayor", Alistados, 900},
	{"Sargento", Alistados, 1000},
	{"Cabo", Alistados, 1100},
	{"Raso", Alistados, 1200},
	{"Marinero", Alistados, 1201},
	{"Asimilado Militar", Asimilados, 1300},
	{"Asimilado", Asimilados, 1400},
	{"Civil", Civiles, 1500},
}

var rankIndex = func() map[string]*RankModel {
	index := make(map[string]*RankModel, len(Ranks))
	for i := range Ranks {
		index[Ranks[i].Label] = &Ranks[i]
	}
	return index
}()

// ClassifyRank matches the label exactly; no trimming or case folding is applied
func ClassifyRank(rango string) RankCategory {
	if model, ok := rankIndex[rango]; ok {
		return model.Category
	}
	return Otros
}

// RankOrderKey returns the seniority key of a label, lower is more senior.
// Unknown labels get UnknownRankOrder.
func RankOrderKey(rango string) int {
	if model, ok := rankIndex[rango]; ok {
		return model.Order
	}
	return UnknownRankOrder
}

// IsKnownRank reports whether the label is in the rank table
func IsKnownRank(rango string) bool {
	_, ok := rankIndex[rango]
	return ok
}

// RanksOf returns the labels of a category in seniority order
func RanksOf(category RankCategory) []string {
	labels := make([]string, 0)
	for _, model := range Ranks {
		if model.Category == category {
			labels = append(labels, model.Label)
		}
	}
	return labels
}

// Ranked is anything carrying a rank label
type Ranked interface {
	GetRank() string
}

// CompareByRank orders by ascending order key, most senior first.
// Records with equal keys compare as equal.
func CompareByRank[T Ranked](a, b T) int {
	return cmp.Compare(RankOrderKey(a.GetRank()), RankOrderKey(b.GetRank()))
}

// SortByRank sorts in place and keeps the input order of equal keys
func SortByRank[T Ranked](items []T) {
	slices.SortStableFunc(items, CompareByRank[T])
}
