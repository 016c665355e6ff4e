package handlers

import (
	"net/http"
	"time"

	"cancha.link/configs/configslog"
	"cancha.link/models"
	"cancha.link/pkg/calendar"
	"cancha.link/pkg/flashmessages"
	"cancha.link/pkg/renderer"
	"cancha.link/pkg/selection"
	"cancha.link/pkg/timeslot"
	"cancha.link/services"
	"cancha.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// SchedulerHandler atiende el flujo público de reservas.
type SchedulerHandler struct {
	courtService        services.ICourtService
	availabilityService services.IAvailabilityService
	bookingService      services.IBookingService
}

// NewSchedulerHandler crea el handler del agendador.
func NewSchedulerHandler(booking services.IBookingService) *SchedulerHandler {
	return &SchedulerHandler{
		courtService:        services.NewCourtService(),
		availabilityService: services.NewAvailabilityService(),
		bookingService:      booking,
	}
}

// Show dibuja el agendador completo: calendario, canchas y, cuando ya hay
// fecha y cancha, la grilla de horarios con una instantánea fresca de
// disponibilidad identificada por token.
func (h *SchedulerHandler) Show(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Scheduler - Show: sesión inaccesible", zap.Error(err))
		return renderer.Render(c, "errors/500", "layouts/error_layout",
			fiber.Map{"Title": "Error"}, http.StatusInternalServerError)
	}
	state := utils.GetSelection(sess)

	courts, err := h.courtService.GetActiveCourts(c.UserContext())
	if err != nil {
		configslog.Log.Error("Scheduler - Show: no se pudieron listar las canchas", zap.Error(err))
		courts = nil
	}

	today := time.Now()
	visibleMonth := today
	if raw := c.Query("mes"); raw != "" {
		if m, err := time.Parse("2006-01", raw); err == nil {
			visibleMonth = m
		}
	}
	var selectedDate *time.Time
	if state.Date != "" {
		if d, err := time.Parse(dateLayout, state.Date); err == nil {
			selectedDate = &d
			if c.Query("mes") == "" {
				visibleMonth = d
			}
		}
	}

	// La grilla de horarios solo existe con fecha y cancha elegidas. Cada
	// render consulta disponibilidad fresca y rota el token de instantánea.
	var slots []timeslot.Slot
	var availabilityDegraded bool
	if state.Date != "" && state.CourtID != 0 {
		var availErr error
		slots, availErr = h.availabilityService.SlotGrid(c.UserContext(), state.CourtID, state.Date)
		availabilityDegraded = availErr != nil
		state = selection.Apply(state, selection.SnapshotTaken{Token: uuid.NewString()})
		if err := utils.SaveSelection(sess, state); err != nil {
			configslog.Log.Error("Scheduler - Show: no se pudo guardar la selección", zap.Error(err))
		}
	}

	renderData := fiber.Map{
		"Title":          "Reserva tu cancha",
		"Courts":         courts,
		"Calendar":       calendar.MonthGrid(visibleMonth, selectedDate, today),
		"VisibleMonth":   visibleMonth.Format("2006-01"),
		"PrevMonth":      visibleMonth.AddDate(0, -1, 0).Format("2006-01"),
		"NextMonth":      visibleMonth.AddDate(0, 1, 0).Format("2006-01"),
		"Selection":      state,
		"Slots":          slots,
		"SnapshotToken":  state.Token,
		"PaymentMethods": []string{models.PaymentMethodEfectivo, models.PaymentMethodPagoMovil},
		"FormData":       flashmessages.GetFlashFormData(c),
	}
	renderer.SetFlashMessages(renderData, flashData)
	if availabilityDegraded {
		renderData[renderer.FlashWarningKeyView] = "No se pudo consultar la disponibilidad; los horarios se muestran libres. Recarga para reintentar."
	}
	return renderer.Render(c, "scheduler/index", "layouts/main_layout", renderData)
}

// ChooseDate fija la fecha seleccionada. Cambiarla descarta cancha y
// horarios anteriores.
func (h *SchedulerHandler) ChooseDate(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return c.Redirect("/agenda")
	}

	raw := c.FormValue("fecha")
	date, err := time.Parse(dateLayout, raw)
	if err != nil || !calendar.Selectable(date, time.Now()) {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Esa fecha no está disponible.")
		return c.Redirect("/agenda", fiber.StatusSeeOther)
	}

	state := selection.Apply(utils.GetSelection(sess), selection.DateChosen{Date: date.Format(dateLayout)})
	if err := utils.SaveSelection(sess, state); err != nil {
		configslog.Log.Error("Scheduler - ChooseDate: no se pudo guardar la selección", zap.Error(err))
	}
	return c.Redirect("/agenda", fiber.StatusSeeOther)
}

// ChooseCourt fija la cancha seleccionada. Cambiarla descarta los
// horarios anteriores.
func (h *SchedulerHandler) ChooseCourt(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return c.Redirect("/agenda")
	}

	courtID, err := c.ParamsInt("id")
	if err != nil || courtID <= 0 {
		return c.Redirect("/agenda", fiber.StatusSeeOther)
	}
	if _, err := h.courtService.GetActiveCourtByID(c.UserContext(), uint(courtID)); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Esa cancha no está disponible.")
		return c.Redirect("/agenda", fiber.StatusSeeOther)
	}

	state := selection.Apply(utils.GetSelection(sess), selection.CourtChosen{CourtID: uint(courtID)})
	if err := utils.SaveSelection(sess, state); err != nil {
		configslog.Log.Error("Scheduler - ChooseCourt: no se pudo guardar la selección", zap.Error(err))
	}
	return c.Redirect("/agenda", fiber.StatusSeeOther)
}

// ToggleSlot alterna un horario de la instantánea vigente. Un toggle con
// token viejo se descarta en silencio: el próximo render trae la grilla
// actualizada.
func (h *SchedulerHandler) ToggleSlot(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return c.Redirect("/agenda")
	}

	label := c.FormValue("horario")
	token := c.FormValue("token")
	if label == "" {
		return c.Redirect("/agenda", fiber.StatusSeeOther)
	}

	state := selection.Apply(utils.GetSelection(sess), selection.TimeToggled{Label: label, Token: token})
	if err := utils.SaveSelection(sess, state); err != nil {
		configslog.Log.Error("Scheduler - ToggleSlot: no se pudo guardar la selección", zap.Error(err))
	}
	return c.Redirect("/agenda", fiber.StatusSeeOther)
}

// Confirm valida el envío y crea la cita. Si algo falla, la selección y
// el formulario quedan intactos; si la cita se guarda, la selección se
// descarta y el agendador vuelve a cero.
func (h *SchedulerHandler) Confirm(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return c.Redirect("/agenda")
	}
	state := utils.GetSelection(sess)

	sub := selection.Submission{
		State:         state,
		UserName:      c.FormValue("nombre"),
		PaymentMethod: c.FormValue("metodo_pago"),
	}

	var proof *services.ProofUpload
	if fileHeader, err := c.FormFile("comprobante"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err == nil {
			defer file.Close()
			proof = &services.ProofUpload{Filename: fileHeader.Filename, Content: file}
			sub.HasProof = true
		}
	}

	appointment, err := h.bookingService.CreateAppointment(c.UserContext(), sub, proof)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, fiber.Map{
			"nombre":      sub.UserName,
			"metodo_pago": sub.PaymentMethod,
		})
		return c.Redirect("/agenda", fiber.StatusSeeOther)
	}

	if err := utils.SaveSelection(sess, selection.Apply(state, selection.Cleared{})); err != nil {
		configslog.Log.Error("Scheduler - Confirm: no se pudo limpiar la selección", zap.Error(err))
	}
	configslog.SLog.Infof("Reserva confirmada: cita %d para %s", appointment.ID, appointment.UserName)
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "¡Cita agendada con éxito!")
	return c.Redirect("/agenda", fiber.StatusSeeOther)
}
