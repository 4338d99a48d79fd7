package model

import (
	"github.com/rs/zerolog/log"

	"rentacar/shared/daterange"
)

// BlockedIntervals collects the normalized date ranges of every blocking
// reservation for one vehicle. Reservations whose dates cannot be parsed are
// skipped rather than failing the whole availability check.
func BlockedIntervals(reservas []Reserva, vehiculoID string) []daterange.Range {
	var blocked []daterange.Range

	for _, reserva := range reservas {
		if !reserva.Bloqueante() || reserva.ResolvedVehiculoID() != vehiculoID {
			continue
		}

		rango, ok := reserva.Rango()
		if !ok {
			log.Debug().
				Str("reservaId", reserva.ID).
				Str("fechaInicio", reserva.FechaInicio).
				Str("fechaFin", reserva.FechaFin).
				Msg("skipping reservation with unreadable dates")

			continue
		}

		blocked = append(blocked, rango)
	}

	return blocked
}

// Conflicts returns the blocked intervals of the vehicle that overlap the
// requested range. Touching endpoints count as a conflict: the checkout day
// of one rental cannot be the pickup day of the next.
func Conflicts(reservas []Reserva, vehiculoID string, rango daterange.Range) []daterange.Range {
	var conflicts []daterange.Range

	for _, blocked := range BlockedIntervals(reservas, vehiculoID) {
		if rango.Overlaps(blocked) {
			conflicts = append(conflicts, blocked)
		}
	}

	return conflicts
}
