package adform

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"duo_webapp/internal/models"

	"github.com/google/uuid"
)

// NoGame is the placeholder value of the game select.
const NoGame = ""

type Catalog interface {
	ListGames(ctx context.Context) ([]models.Game, error)
	CreateAd(ctx context.Context, gameID string, ad models.CreateAdRequest) error
}

// Fields are the plain inputs read from the submitted form, as typed.
type Fields struct {
	Name         string
	YearsPlaying string
	Discord      string
	HourStart    string
	HourEnd      string
}

type Option struct {
	Value string
	Label string
}

type FormOption func(*Form)

func WithNotifier(n Notifier) FormOption {
	return func(f *Form) {
		f.notify = n
	}
}

// Form is the state of one mounted "create ad" form. It is safe for
// concurrent use; overlapping submits are independent of each other.
type Form struct {
	catalog Catalog
	log     *slog.Logger
	notify  Notifier

	mu         sync.Mutex
	closed     bool
	loading    bool
	cancelLoad context.CancelFunc
	games      []models.Game
	gameID     string
	weekDays   WeekDaySet
	voice      CheckedState
}

func New(log *slog.Logger, catalog Catalog, opts ...FormOption) *Form {
	f := &Form{
		catalog: catalog,
		log:     log,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Load requests the catalog once for the lifetime of the form and replaces
// the game list with the response. Close cancels an in-flight load, and a
// response that arrives after Close is dropped.
func (f *Form) Load(ctx context.Context) ([]models.Game, error) {
	const op = "adform.Form.Load"

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil, fmt.Errorf("%s: %w", op, ErrClosed)
	}
	if f.loading {
		f.mu.Unlock()
		return nil, fmt.Errorf("%s: %w", op, ErrAlreadyLoaded)
	}
	f.loading = true
	ctx, cancel := context.WithCancel(ctx)
	f.cancelLoad = cancel
	f.mu.Unlock()

	defer cancel()

	games, err := f.catalog.ListGames(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		f.log.Debug("catalog response after close dropped", slog.String("operation", op))
		return nil, fmt.Errorf("%s: %w", op, ErrClosed)
	}

	if err != nil {
		f.log.Error("failed to load games", slog.String("operation", op), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	f.games = games

	return slices.Clone(games), nil
}

func (f *Form) Games() []models.Game {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.games)
}

// Options returns the game select entries in catalog order.
func (f *Form) Options() []Option {
	f.mu.Lock()
	defer f.mu.Unlock()

	opts := make([]Option, 0, len(f.games))
	for _, g := range f.games {
		opts = append(opts, Option{Value: g.ID, Label: g.Title})
	}
	return opts
}

// SelectGame stores id as the selected game. It is not checked against the
// loaded catalog; NoGame clears the selection.
func (f *Form) SelectGame(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.gameID = id
}

func (f *Form) SelectedGame() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.gameID
}

func (f *Form) ActivateWeekDay(code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.weekDays.Activate(code)
}

func (f *Form) DeactivateWeekDay(code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.weekDays.Deactivate(code)
}

func (f *Form) ToggleWeekDay(code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.weekDays.Toggle(code)
}

func (f *Form) SetWeekDays(codes []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.weekDays.Replace(codes)
}

func (f *Form) WeekDays() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.weekDays.Values()
}

func (f *Form) SetVoiceChannel(s CheckedState) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.voice = s
}

func (f *Form) UseVoiceChannel() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.voice.Bool()
}

// Submit composes the ad from fields and the current selections and posts
// it. Plain fields are sent as typed. Without a selected game nothing is
// sent and an error result is returned.
func (f *Form) Submit(ctx context.Context, fields Fields) Result {
	const op = "adform.Form.Submit"

	id := uuid.New()

	f.mu.Lock()
	closed := f.closed
	gameID := f.gameID
	ad := models.CreateAdRequest{
		Name:            fields.Name,
		YearsPlaying:    models.ParseNumber(fields.YearsPlaying),
		Discord:         fields.Discord,
		WeekDays:        f.weekDays.Numbers(),
		HoursStart:      fields.HourStart,
		HoursEnd:        fields.HourEnd,
		UseVoiceChannel: f.voice.Bool(),
	}
	f.mu.Unlock()

	var res Result

	switch {
	case closed:
		res = failed(id, fmt.Errorf("%s: %w", op, ErrClosed))
	case gameID == NoGame:
		res = failed(id, fmt.Errorf("%s: %w", op, ErrNoGameSelected))
	default:
		if err := f.catalog.CreateAd(ctx, gameID, ad); err != nil {
			res = failed(id, fmt.Errorf("%s: %w", op, err))
		} else {
			res = succeeded(id)
		}
	}

	if res.OK() {
		f.log.Info("ad created",
			slog.String("operation", op),
			slog.String("submission", id.String()),
			slog.String("game_id", gameID))
	} else {
		f.log.Error(res.Detail,
			slog.String("operation", op),
			slog.String("submission", id.String()),
			slog.String("game_id", gameID),
			slog.String("error", res.Err.Error()))
	}

	if f.notify != nil {
		f.notify(res)
	}

	return res
}

// Close tears the form down. Pending loads are cancelled and later submits
// fail without contacting the backend.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	if f.cancelLoad != nil {
		f.cancelLoad()
	}
}

func (f *Form) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.closed
}
