package models

import (
	"math"
	"strconv"
	"strings"
)

// Number is a JSON number that encodes non-finite values as null, the way
// browsers serialize NaN.
type Number float64

// ParseNumber converts raw form input to a Number. Blank or unparsable input
// yields NaN.
func ParseNumber(s string) Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number(math.NaN())
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Number(math.NaN())
	}

	return Number(f)
}

func (n Number) IsNaN() bool {
	return math.IsNaN(float64(n))
}

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}

	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

type CreateAdRequest struct {
	Name            string   `json:"name"`
	YearsPlaying    Number   `json:"yearsPlaying"`
	Discord         string   `json:"discord"`
	WeekDays        []Number `json:"weekDays"`
	HoursStart      string   `json:"hoursStart"`
	HoursEnd        string   `json:"hoursEnd"`
	UseVoiceChannel bool     `json:"useVoiceChannel"`
}
