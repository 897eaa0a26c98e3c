package tasks

// Category clasifica una tarea de cuidado. Conjunto cerrado.
type Category string

const (
	CategoryWalk       Category = "walk"
	CategoryFeed       Category = "feed"
	CategoryMedication Category = "medication"
	CategoryGrooming   Category = "grooming"
	CategoryEnrichment Category = "enrichment"
	CategoryPlaytime   Category = "playtime"
	CategoryTraining   Category = "training"
)

// Categories lista todas las categorías válidas, en orden estable.
func Categories() []Category {
	return []Category{
		CategoryWalk,
		CategoryFeed,
		CategoryMedication,
		CategoryGrooming,
		CategoryEnrichment,
		CategoryPlaytime,
		CategoryTraining,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryWalk, CategoryFeed, CategoryMedication, CategoryGrooming,
		CategoryEnrichment, CategoryPlaytime, CategoryTraining:
		return true
	}
	return false
}

// Frequency indica con qué cadencia se repite una tarea.
type Frequency string

const (
	FrequencyOnce    Frequency = "once"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyOnce, FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Recurring reporta si la frecuencia genera instancias futuras.
func (f Frequency) Recurring() bool {
	return f.Valid() && f != FrequencyOnce
}

// intervalDays devuelve el corrimiento en días hacia la próxima ocurrencia.
// "monthly" es un corrimiento fijo de 30 días, no un avance de mes calendario.
func (f Frequency) intervalDays() int {
	switch f {
	case FrequencyDaily:
		return 1
	case FrequencyWeekly:
		return 7
	case FrequencyMonthly:
		return 30
	default:
		return 0
	}
}
