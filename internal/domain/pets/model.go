package pets

import "time"

// Pet representa una mascota registrada para planificación de cuidados.
// OwnerID es una referencia no-dueña: sirve para lookup/reportes, nunca
// dirige la lógica de planificación (el Owner es quien posee a sus Pets).
type Pet struct {
	ID      string
	OwnerID string

	Name    string
	Species string // clasificación libre: dog, cat, bird...
	Age     int    // años, >= 0

	// SpecialNeeds son anotaciones libres de cuidado, sin duplicados.
	SpecialNeeds []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasSpecialNeed reporta si la mascota ya tiene registrada la anotación.
func (p Pet) HasSpecialNeed(need string) bool {
	for _, n := range p.SpecialNeeds {
		if n == need {
			return true
		}
	}
	return false
}
