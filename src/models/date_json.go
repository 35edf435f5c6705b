package models

import (
	"encoding/json"
	"time"
)

// Dates cross the API as DateLayout strings, the same form entries are
// written in. Each type shadows its Date field with a string on the way
// in and out.

// -----------------------------------------------------------------------------

func encodeDate(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return FormatDate(d)
}

func decodeDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return ParseDate(s)
}

// -----------------------------------------------------------------------------

func (o MObservation) MarshalJSON() ([]byte, error) {
	type alias MObservation
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
	}{alias(o), encodeDate(o.Date)})
}

func (o *MObservation) UnmarshalJSON(data []byte) error {
	type alias MObservation
	aux := struct {
		*alias
		Date string `json:"date"`
	}{alias: (*alias)(o)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	d, err := decodeDate(aux.Date)
	o.Date = d
	return err
}

// -----------------------------------------------------------------------------

func (p MJoinedPoint) MarshalJSON() ([]byte, error) {
	type alias MJoinedPoint
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
	}{alias(p), encodeDate(p.Date)})
}

func (p *MJoinedPoint) UnmarshalJSON(data []byte) error {
	type alias MJoinedPoint
	aux := struct {
		*alias
		Date string `json:"date"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	d, err := decodeDate(aux.Date)
	p.Date = d
	return err
}

// -----------------------------------------------------------------------------

func (p MChartPoint) MarshalJSON() ([]byte, error) {
	type alias MChartPoint
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
	}{alias(p), encodeDate(p.Date)})
}

func (p *MChartPoint) UnmarshalJSON(data []byte) error {
	type alias MChartPoint
	aux := struct {
		*alias
		Date string `json:"date"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	d, err := decodeDate(aux.Date)
	p.Date = d
	return err
}

// -----------------------------------------------------------------------------

func (s MSignal) MarshalJSON() ([]byte, error) {
	type alias MSignal
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
	}{alias(s), encodeDate(s.Date)})
}

func (s *MSignal) UnmarshalJSON(data []byte) error {
	type alias MSignal
	aux := struct {
		*alias
		Date string `json:"date"`
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	d, err := decodeDate(aux.Date)
	s.Date = d
	return err
}

// -----------------------------------------------------------------------------

func (e MEnergyBalance) MarshalJSON() ([]byte, error) {
	type alias MEnergyBalance
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
	}{alias(e), encodeDate(e.Date)})
}

func (e *MEnergyBalance) UnmarshalJSON(data []byte) error {
	type alias MEnergyBalance
	aux := struct {
		*alias
		Date string `json:"date"`
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	d, err := decodeDate(aux.Date)
	e.Date = d
	return err
}
