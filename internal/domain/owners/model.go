package owners

import "time"

// Owner representa al dueño y su presupuesto diario de tiempo.
// Preferences es una bolsa abierta clave/valor: el núcleo de planificación
// no la interpreta, queda reservada para ponderaciones futuras.
type Owner struct {
	ID string

	Name                 string
	AvailableTimeMinutes int
	Preferences          map[string]any

	CreatedAt time.Time
	UpdatedAt time.Time
}
