package tasks

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockTime es una hora del día expresada en minutos desde medianoche.
// Sumar una duración puede pasar de 1440; String() envuelve a 24h solo
// al renderizar, la aritmética de intervalos usa el valor crudo.
type ClockTime int

// ParseClockTime acepta horas de 24h en formato HH:MM (horas 0-23,
// minutos 0-59). Cualquier otra cosa es ErrInvalidScheduledTime.
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, ErrInvalidScheduledTime
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, ErrInvalidScheduledTime
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, ErrInvalidScheduledTime
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, ErrInvalidScheduledTime
	}

	return ClockTime(h*60 + m), nil
}

func (c ClockTime) Minutes() int {
	return int(c)
}

// Add desplaza la hora en minutos (para calcular fin de tarea).
func (c ClockTime) Add(minutes int) ClockTime {
	return ClockTime(int(c) + minutes)
}

func (c ClockTime) String() string {
	total := int(c) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
