// Package selection modela la selección en curso del agendador como un
// valor explícito más un reductor puro (estado, evento) -> estado nuevo.
// El estado vive en la sesión del visitante y nunca se persiste.
package selection

import "sort"

// State es la selección en curso: fecha -> cancha -> uno o más horarios.
// Token identifica la instantánea de disponibilidad sobre la que el
// visitante está eligiendo; cambiar de fecha o cancha lo invalida junto
// con los horarios (la disponibilidad vieja no debe reutilizarse).
type State struct {
	Date    string   `json:"date"`
	CourtID uint     `json:"court_id"`
	Times   []string `json:"times"`
	Token   string   `json:"token"`
}

// Phase es la etapa observable de la máquina de estados.
type Phase int

const (
	PhaseNoDate Phase = iota
	PhaseDateChosen
	PhaseCourtChosen
	PhaseSlotsChosen
)

// Phase deriva la etapa actual a partir del estado.
func (s State) Phase() Phase {
	switch {
	case s.Date == "":
		return PhaseNoDate
	case s.CourtID == 0:
		return PhaseDateChosen
	case len(s.Times) == 0:
		return PhaseCourtChosen
	default:
		return PhaseSlotsChosen
	}
}

// HasTime indica si la etiqueta ya está seleccionada.
func (s State) HasTime(label string) bool {
	for _, t := range s.Times {
		if t == label {
			return true
		}
	}
	return false
}

// Event es un evento de la máquina de selección.
type Event interface{ isEvent() }

// DateChosen fija la fecha y descarta cancha, horarios e instantánea.
type DateChosen struct{ Date string }

// CourtChosen fija la cancha y descarta horarios e instantánea.
type CourtChosen struct{ CourtID uint }

// SnapshotTaken registra el token de la instantánea de disponibilidad
// recién consultada para la (cancha, fecha) actual.
type SnapshotTaken struct{ Token string }

// TimeToggled alterna un horario. Debe traer el token de la instantánea
// vigente: un toggle con token viejo se descarta como obsoleto.
type TimeToggled struct {
	Label string
	Token string
}

// Cleared descarta toda la selección (una reserva por sesión de formulario).
type Cleared struct{}

func (DateChosen) isEvent()    {}
func (CourtChosen) isEvent()   {}
func (SnapshotTaken) isEvent() {}
func (TimeToggled) isEvent()   {}
func (Cleared) isEvent()       {}

// Apply es el reductor puro de la selección. Nunca muta el estado
// recibido; los horarios se mantienen ordenados por etiqueta para una
// visualización estable.
func Apply(s State, ev Event) State {
	switch e := ev.(type) {
	case DateChosen:
		return State{Date: e.Date}
	case CourtChosen:
		return State{Date: s.Date, CourtID: e.CourtID}
	case SnapshotTaken:
		return State{Date: s.Date, CourtID: s.CourtID, Times: copyTimes(s.Times), Token: e.Token}
	case TimeToggled:
		// Sin instantánea vigente (o con token viejo) no se acepta el
		// toggle: la disponibilidad de esa (cancha, fecha) aún no se
		// consultó o ya fue refrescada.
		if s.Token == "" || e.Token != s.Token {
			return s
		}
		return State{Date: s.Date, CourtID: s.CourtID, Times: toggle(s.Times, e.Label), Token: s.Token}
	case Cleared:
		return State{}
	default:
		return s
	}
}

func copyTimes(times []string) []string {
	if len(times) == 0 {
		return nil
	}
	out := make([]string, len(times))
	copy(out, times)
	return out
}

func toggle(times []string, label string) []string {
	out := make([]string, 0, len(times)+1)
	removed := false
	for _, t := range times {
		if t == label {
			removed = true
			continue
		}
		out = append(out, t)
	}
	if !removed {
		out = append(out, label)
		sort.Strings(out)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
