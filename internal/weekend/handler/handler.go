package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"nbrates/internal/domain"

	"github.com/sirupsen/logrus"
)

type WeekendService interface {
	FindAll(ctx context.Context) ([]domain.Weekend, error)
}

type Handler struct {
	service WeekendService
}

func NewWeekendHandler(service WeekendService) *Handler {
	return &Handler{service: service}
}

type weekendResponse struct {
	CalendarDate string `json:"calendarDate"`
	IsDayOff     bool   `json:"isDayOff"`
}

// FindAll godoc
// @Summary List calendar day-off records
// @Description Return every stored weekend/holiday record
// @Tags Weekends
// @Produce json
// @Success 200 {array} weekendResponse
// @Failure 500 {object} map[string]string
// @Router /weekends [get]
func (h *Handler) FindAll(w http.ResponseWriter, r *http.Request) {
	weekends, err := h.service.FindAll(r.Context())
	if err != nil {
		msg := "failed to list weekends"
		logrus.WithError(err).WithField("handler", "FindAll").Error(msg)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "INTERNAL_SERVER_ERROR", "message": msg})
		return
	}

	res := make([]weekendResponse, 0, len(weekends))
	for _, wk := range weekends {
		res = append(res, weekendResponse{
			CalendarDate: wk.CalendarDate.Format(time.DateOnly),
			IsDayOff:     wk.IsDayOff,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(res)
}
