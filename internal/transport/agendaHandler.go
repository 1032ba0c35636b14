package transport

import (
	"net/http"

	"github.com/ds124wfegd/activity-registration/internal/service"

	"github.com/gin-gonic/gin"
)

type AgendaHandler struct {
	agendaService service.AgendaService
}

func NewAgendaHandler(agendaService service.AgendaService) *AgendaHandler {
	return &AgendaHandler{agendaService: agendaService}
}

// GetByDate returns the place-grouped agenda for ?date=YYYY-MM-DD.
func (h *AgendaHandler) GetByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	agenda, err := h.agendaService.GetByDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, agenda)
}

func (h *AgendaHandler) GetDays(c *gin.Context) {
	days, err := h.agendaService.DistinctDays(c.Request.Context(), nil)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}

func (h *AgendaHandler) GetSummary(c *gin.Context) {
	summary, err := h.agendaService.Summarize(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if summary == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, summary)
}
