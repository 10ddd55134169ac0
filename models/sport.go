package models

import "fmt"

// SportType identifies one of the three managed tournaments. The string
// code is used as the data file name, the viewer URL segment, and the
// live-hub room ID.
type SportType string

const (
	SportCricket    SportType = "cricket"
	SportFootball   SportType = "football"
	SportBasketball SportType = "basketball"
)

// AllSports lists the managed sports in menu order.
var AllSports = []SportType{SportCricket, SportFootball, SportBasketball}

func (s SportType) Valid() bool {
	switch s {
	case SportCricket, SportFootball, SportBasketball:
		return true
	}
	return false
}

// DisplayName returns the capitalized name used in menus and result
// summaries.
func (s SportType) DisplayName() string {
	switch s {
	case SportCricket:
		return "Cricket"
	case SportFootball:
		return "Football"
	case SportBasketball:
		return "Basketball"
	}
	return string(s)
}

func ParseSportType(code string) (SportType, error) {
	s := SportType(code)
	if !s.Valid() {
		return "", fmt.Errorf("unknown sport %q", code)
	}
	return s, nil
}
