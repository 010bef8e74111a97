package adform

import (
	"fmt"
	"slices"

	"duo_webapp/internal/models"
)

type WeekDay struct {
	Code  string
	Title string
	Short string
}

// WeekDays lists the toggles in display order, Sunday first.
var WeekDays = []WeekDay{
	{Code: "0", Title: "Domingo", Short: "D"},
	{Code: "1", Title: "Segunda", Short: "S"},
	{Code: "2", Title: "Terça", Short: "T"},
	{Code: "3", Title: "Quarta", Short: "Q"},
	{Code: "4", Title: "Quinta", Short: "Q"},
	{Code: "5", Title: "Sexta", Short: "S"},
	{Code: "6", Title: "Sábado", Short: "S"},
}

func validWeekDay(code string) bool {
	return len(code) == 1 && code[0] >= '0' && code[0] <= '6'
}

// WeekDaySet holds the active week day codes in activation order without
// duplicates. The zero value is an empty set.
type WeekDaySet struct {
	codes []string
}

func (s *WeekDaySet) Activate(code string) error {
	if !validWeekDay(code) {
		return fmt.Errorf("%w: %q", ErrInvalidWeekDay, code)
	}
	if !s.Has(code) {
		s.codes = append(s.codes, code)
	}
	return nil
}

func (s *WeekDaySet) Deactivate(code string) error {
	if !validWeekDay(code) {
		return fmt.Errorf("%w: %q", ErrInvalidWeekDay, code)
	}
	s.codes = slices.DeleteFunc(s.codes, func(c string) bool { return c == code })
	return nil
}

func (s *WeekDaySet) Toggle(code string) error {
	if s.Has(code) {
		return s.Deactivate(code)
	}
	return s.Activate(code)
}

// Replace sets the active codes to values, as a toggle group reports its
// whole value on change. Nothing changes if any code is invalid.
func (s *WeekDaySet) Replace(values []string) error {
	var next WeekDaySet
	for _, v := range values {
		if err := next.Activate(v); err != nil {
			return err
		}
	}
	s.codes = next.codes
	return nil
}

func (s *WeekDaySet) Has(code string) bool {
	return slices.Contains(s.codes, code)
}

func (s *WeekDaySet) Len() int {
	return len(s.codes)
}

func (s *WeekDaySet) Values() []string {
	return slices.Clone(s.codes)
}

// Numbers converts every code for the request payload. It never returns nil
// so an empty set is sent as [].
func (s *WeekDaySet) Numbers() []models.Number {
	out := make([]models.Number, 0, len(s.codes))
	for _, c := range s.codes {
		out = append(out, models.ParseNumber(c))
	}
	return out
}
