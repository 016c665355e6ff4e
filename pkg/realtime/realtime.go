// Package realtime es el canal de eventos en vivo: cada cita insertada
// se publica en Redis y el dashboard la recibe por suscripción.
package realtime

import (
	"context"
	"encoding/json"

	"cancha.link/models"

	"github.com/redis/go-redis/v9"
)

// ChannelNewAppointments es el canal pub/sub de citas nuevas.
const ChannelNewAppointments = "citas:nueva"

// AppointmentEvent es el payload publicado por cada inserción.
type AppointmentEvent struct {
	ID              uint     `json:"id"`
	UserName        string   `json:"user_name"`
	AppointmentDate string   `json:"appointment_date"`
	Times           []string `json:"appointment_times"`
	CourtName       string   `json:"court_name,omitempty"`
}

// Publisher publica eventos de citas nuevas.
type Publisher struct {
	rdb *redis.Client
}

// NewPublisher crea un Publisher sobre el cliente dado.
func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

// PublishNewAppointment emite el evento de una cita recién insertada.
// El que llama decide si el error es fatal (no lo es: la reserva ya
// quedó guardada).
func (p *Publisher) PublishNewAppointment(ctx context.Context, appt *models.Appointment) error {
	event := AppointmentEvent{
		ID:              appt.ID,
		UserName:        appt.UserName,
		AppointmentDate: appt.AppointmentDate,
		Times:           appt.AppointmentTimes,
		CourtName:       appt.CourtName(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, ChannelNewAppointments, payload).Err()
}

// Subscriber entrega los eventos de citas nuevas a medida que llegan.
type Subscriber struct {
	rdb *redis.Client
}

// NewSubscriber crea un Subscriber sobre el cliente dado.
func NewSubscriber(rdb *redis.Client) *Subscriber {
	return &Subscriber{rdb: rdb}
}

// Listen se suscribe al canal y devuelve un canal de eventos. Se cierra
// cuando el contexto termina; los payloads ilegibles se descartan.
func (s *Subscriber) Listen(ctx context.Context) <-chan AppointmentEvent {
	sub := s.rdb.Subscribe(ctx, ChannelNewAppointments)
	events := make(chan AppointmentEvent)

	go func() {
		defer close(events)
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event AppointmentEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					continue
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return events
}
