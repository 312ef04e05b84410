// Package goecharger implements a client for go-e Charger EV wall boxes
// using the local HTTP API v2.
//
// API documentation:
// https://github.com/goecharger/go-eCharger-API-v2
package goecharger

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Predefined key selections for Client.GetStatus.
var (
	// StatusFull requests every field the device reports.
	StatusFull = []string{}

	// StatusMinimum requests car state, error and charging mode.
	StatusMinimum = []string{
		KeyCarState,
		KeyError,
		KeyChargingMode,
	}

	// StatusDefault requests the commonly useful subset of fields.
	StatusDefault = []string{
		KeyAmpere,
		KeyAmpereDeviceMaximum,
		KeyCarState,
		KeyChargeLimit,
		KeyError,
		KeyChargingMode,
		KeyEnergy,
		KeyPhaseMode,
		KeyTemperature,
		KeyCableLockMode,
		KeyDeviceModel,
	}
)

// Entry is a single translated status field.
type Entry struct {
	Code  string // wire field code, e.g. "frc"
	Name  string // semantic name, e.g. "charging_mode"
	Value any
}

// Status is a translated status response. Entries are ordered by ascending
// wire field code, regardless of the order the device reported them in.
type Status struct {
	entries []Entry
	index   map[string]int
}

// newStatus orders the entries by wire code and builds the name index.
func newStatus(entries []Entry) *Status {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Code < entries[j].Code
	})

	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.Name] = i
	}

	return &Status{entries: entries, index: index}
}

// Len returns the number of fields.
func (s *Status) Len() int {
	return len(s.entries)
}

// Entries returns a copy of all fields in wire-code order.
func (s *Status) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Names returns the semantic field names in wire-code order.
func (s *Status) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}
	return names
}

// Get returns the value for a semantic field name.
func (s *Status) Get(name string) (any, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.entries[i].Value, true
}

// MarshalJSON encodes the status as a JSON object keyed by semantic name.
// Key order follows the wire-code ordering of the entries.
func (s *Status) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, e := range s.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// PhaseValues holds one reading per charging phase.
type PhaseValues struct {
	L1 float64 `json:"L1"`
	L2 float64 `json:"L2"`
	L3 float64 `json:"L3"`
}

// PhaseNeutralValues holds one reading per charging phase plus neutral.
type PhaseNeutralValues struct {
	L1 float64 `json:"L1"`
	L2 float64 `json:"L2"`
	L3 float64 `json:"L3"`
	N  float64 `json:"N"`
}

// PowerValues holds per-phase and neutral power plus the total.
type PowerValues struct {
	L1    float64 `json:"L1"`
	L2    float64 `json:"L2"`
	L3    float64 `json:"L3"`
	N     float64 `json:"N"`
	Total float64 `json:"total"`
}

// Energy is the decomposed energy telemetry ("nrg") array.
type Energy struct {
	Voltage     PhaseNeutralValues `json:"voltage"`
	Current     PhaseValues        `json:"current"`
	Power       PowerValues        `json:"power"`
	PowerFactor PhaseValues        `json:"power_factor"`
}
