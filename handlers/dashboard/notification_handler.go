package handlers

import (
	"bufio"
	"encoding/json"
	"time"

	"cancha.link/configs/configslog"
	"cancha.link/models"
	"cancha.link/pkg/realtime"
	"cancha.link/services"
	"cancha.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// NotificationHandler atiende la campana de notificaciones del dashboard.
type NotificationHandler struct {
	service    services.INotificationService
	subscriber *realtime.Subscriber
}

// NewNotificationHandler crea el handler. El suscriptor puede ser nil si
// Redis no está disponible; el feed sigue funcionando por consulta.
func NewNotificationHandler(service services.INotificationService, subscriber *realtime.Subscriber) *NotificationHandler {
	return &NotificationHandler{service: service, subscriber: subscriber}
}

type feedItem struct {
	ID        uint     `json:"id"`
	UserName  string   `json:"user_name"`
	Date      string   `json:"appointment_date"`
	Times     []string `json:"appointment_times"`
	CourtName string   `json:"court_name"`
	CreatedAt string   `json:"created_at"`
}

func toFeedItems(appointments []models.Appointment) []feedItem {
	items := make([]feedItem, 0, len(appointments))
	for _, appt := range appointments {
		items = append(items, feedItem{
			ID:        appt.ID,
			UserName:  appt.UserName,
			Date:      appt.AppointmentDate,
			Times:     appt.AppointmentTimes,
			CourtName: appt.CourtName(),
			CreatedAt: appt.CreatedAt.Format(time.RFC3339),
		})
	}
	return items
}

// Feed devuelve el contador de citas nuevas y las últimas creadas.
func (h *NotificationHandler) Feed(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "sesión inaccesible"})
	}
	lastSeen := utils.EnsureNotificationsLastSeen(sess)

	feed, err := h.service.GetFeed(c.UserContext(), lastSeen)
	if err != nil {
		configslog.Log.Error("Dashboard - Notificaciones: error al armar el feed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "no se pudo cargar el feed"})
	}

	return c.JSON(fiber.Map{
		"new_count": feed.NewCount,
		"latest":    toFeedItems(feed.Latest),
	})
}

// MarkSeen registra la apertura del panel: el contador vuelve a cero.
func (h *NotificationHandler) MarkSeen(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "sesión inaccesible"})
	}
	if err := utils.SetNotificationsLastSeen(sess, time.Now()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "no se pudo guardar la sesión"})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Stream empuja cada cita nueva por Server-Sent Events mientras el panel
// esté abierto. Sin Redis el endpoint responde 204 y el cliente se queda
// solo con el feed por consulta.
func (h *NotificationHandler) Stream(c *fiber.Ctx) error {
	if h.subscriber == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	events := h.subscriber.Listen(c.Context())
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		for event := range events {
			payload, err := json.Marshal(event)
			if err != nil {
				continue
			}
			if _, err := w.WriteString("event: cita\ndata: " + string(payload) + "\n\n"); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
	}))
	return nil
}
