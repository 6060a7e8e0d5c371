package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"pongapi/services"
)

// Tournaments returns all tournaments for the list view.
func (h *Handler) Tournaments(c echo.Context) error {
	list, err := h.svc.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// GetTournament returns one tournament with participants and placements.
func (h *Handler) GetTournament(c echo.Context) error {
	id, err := tournamentID(c)
	if err != nil {
		return err
	}

	detail, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

// CreateTournament creates a tournament from a full submission.
func (h *Handler) CreateTournament(c echo.Context) error {
	var sub services.Submission
	if err := c.Bind(&sub); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.svc.Create(c.Request().Context(), sub)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, map[string]int{"tournamentId": id})
}

// UpdateTournament overwrites a tournament and fully replaces its entries.
func (h *Handler) UpdateTournament(c echo.Context) error {
	id, err := tournamentID(c)
	if err != nil {
		return err
	}

	var sub services.Submission
	if err := c.Bind(&sub); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.Update(c.Request().Context(), id, sub); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

// DeleteTournament removes a tournament and, by cascade, its entries.
func (h *Handler) DeleteTournament(c echo.Context) error {
	id, err := tournamentID(c)
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func tournamentID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid tournament id")
	}
	return id, nil
}

// httpError maps service failures onto HTTP status codes.
func httpError(err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
