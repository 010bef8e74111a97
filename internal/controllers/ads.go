package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"duo_webapp/internal/adform"
)

type AdController struct {
	catalog adform.Catalog
	log     *slog.Logger
}

func NewAdController(catalog adform.Catalog, log *slog.Logger) *AdController {
	return &AdController{
		catalog: catalog,
		log:     log,
	}
}

type formPage struct {
	Options  []adform.Option
	WeekDays []adform.WeekDay
}

// New mounts a form for the request and renders it. A catalog failure only
// leaves the game select empty.
func (c *AdController) New(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.ads.New"

	form := adform.New(c.log, c.catalog)
	defer form.Close()

	if _, err := form.Load(r.Context()); err != nil {
		c.log.Warn("rendering form without games", slog.String("operation", op), slog.String("error", err.Error()))
	}

	c.render(w, op, "form", http.StatusOK, formPage{
		Options:  form.Options(),
		WeekDays: adform.WeekDays,
	})
}

func (c *AdController) Create(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.ads.Create"

	if err := r.ParseForm(); err != nil {
		c.log.Error(ErrParsingForm.Error(), slog.String("operation", op), slog.String("error", err.Error()))
		http.Error(w, ErrParsingForm.Error(), http.StatusBadRequest)
		return
	}

	form := adform.New(c.log, c.catalog)
	defer form.Close()

	form.SelectGame(r.PostForm.Get("game"))

	if err := form.SetWeekDays(r.PostForm["weekDays"]); err != nil {
		c.log.Error(ErrBadRequest.Error(), slog.String("operation", op), slog.String("error", err.Error()))
		http.Error(w, ErrBadRequest.Error(), http.StatusBadRequest)
		return
	}

	form.SetVoiceChannel(adform.ParseCheckedState(r.PostForm.Get("useVoiceChannel")))

	res := form.Submit(r.Context(), adform.Fields{
		Name:         r.PostForm.Get("name"),
		YearsPlaying: r.PostForm.Get("yearsPlaying"),
		Discord:      r.PostForm.Get("discord"),
		HourStart:    r.PostForm.Get("hourStart"),
		HourEnd:      r.PostForm.Get("hourEnd"),
	})

	status := http.StatusCreated
	switch {
	case res.OK():
	case errors.Is(res.Err, adform.ErrNoGameSelected):
		status = http.StatusBadRequest
	default:
		status = http.StatusBadGateway
	}

	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(res); err != nil {
			c.log.Error(ErrEncoding.Error(), slog.String("operation", op), slog.String("error", err.Error()))
		}
		return
	}

	c.render(w, op, "notice", status, res)
}

// Games serves the catalog as JSON for hosts that build their own select.
func (c *AdController) Games(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.ads.Games"

	games, err := c.catalog.ListGames(r.Context())
	if err != nil {
		c.log.Error(
			ErrGetGames.Error(),
			slog.String("operation", op),
			slog.String("error", err.Error()))
		http.Error(w, ErrGetGames.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(games); err != nil {
		c.log.Error(ErrGetGames.Error(), slog.String("error", err.Error()))
	}
}

func (c *AdController) render(w http.ResponseWriter, op, name string, status int, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		c.log.Error(ErrRender.Error(), slog.String("operation", op), slog.String("error", err.Error()))
		http.Error(w, ErrRender.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
