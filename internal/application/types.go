package application

import "diario/internal/domain"

// Re-export domain types for use by adapters
type (
	CatalogItem = domain.CatalogItem
	DayLog      = domain.DayLog
	ItemKind    = domain.ItemKind
	Feeling     = domain.Feeling
	Activity    = domain.Activity
	Snapshot    = domain.Snapshot
)

const (
	KindFood    = domain.KindFood
	KindSymptom = domain.KindSymptom
)
