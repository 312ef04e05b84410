package bridge

import (
	"context"
	"fmt"
	"strconv"

	goecharger "github.com/bkogler/goecharger-api-lite"
)

// Entity describes one Home Assistant entity derived from charger status.
type Entity struct {
	Component string
	Getter    func(*goecharger.Status) (string, bool)
	Setter    func(context.Context, string) error
	Config    map[string]any
}

// entities builds the Home Assistant entity table for a charger client.
func entities(client *goecharger.Client) map[string]Entity {
	return map[string]Entity{
		"car_state": {
			Component: "sensor",
			Getter:    stringField("car_state"),
			Config: map[string]any{
				"name": "Car state",
				"icon": "mdi:car-electric",
			},
		},
		"charging_power": {
			Component: "sensor",
			Getter: func(s *goecharger.Status) (string, bool) {
				v, ok := s.Get("energy")
				if !ok {
					return "", false
				}
				energy, ok := v.(*goecharger.Energy)
				if !ok {
					return "", false
				}
				return fmt.Sprint(energy.Power.Total), true
			},
			Config: map[string]any{
				"name":                        "Charging power",
				"device_class":                "power",
				"unit_of_measurement":         "W",
				"state_class":                 "measurement",
				"suggested_display_precision": "1",
			},
		},
		"temperature": {
			Component: "sensor",
			Getter:    floatField("temperature"),
			Config: map[string]any{
				"name":                "Temperature",
				"device_class":        "temperature",
				"unit_of_measurement": "°C",
				"state_class":         "measurement",
			},
		},
		"error": {
			Component: "sensor",
			Getter: func(s *goecharger.Status) (string, bool) {
				v, ok := s.Get("error")
				if !ok {
					return "", false
				}
				if v == nil {
					return "none", true
				}
				code, ok := v.(string)
				return code, ok
			},
			Config: map[string]any{
				"name": "Error",
				"icon": "mdi:alert-circle-outline",
			},
		},
		"charging_mode": {
			Component: "select",
			Getter:    stringField("charging_mode"),
			Setter: func(ctx context.Context, val string) error {
				mode, err := goecharger.ParseChargingMode(val)
				if err != nil {
					return err
				}
				return client.SetChargingMode(ctx, mode)
			},
			Config: map[string]any{
				"name":          "Charging mode",
				"command_topic": "~/set",
				"options":       []string{"neutral", "off", "on"},
				"icon":          "mdi:ev-station",
			},
		},
		"phase_mode": {
			Component: "select",
			Getter:    stringField("phase_mode"),
			Setter: func(ctx context.Context, val string) error {
				mode, err := goecharger.ParsePhaseMode(val)
				if err != nil {
					return err
				}
				return client.SetPhaseMode(ctx, mode)
			},
			Config: map[string]any{
				"name":          "Phase mode",
				"command_topic": "~/set",
				"options":       []string{"auto", "one", "three"},
				"icon":          "mdi:sine-wave",
			},
		},
		"cable_lock_mode": {
			Component: "select",
			Getter:    stringField("cable_lock_mode"),
			Setter: func(ctx context.Context, val string) error {
				mode, err := goecharger.ParseCableLockMode(val)
				if err != nil {
					return err
				}
				return client.SetCableLockMode(ctx, mode)
			},
			Config: map[string]any{
				"name":          "Cable lock mode",
				"command_topic": "~/set",
				"options":       []string{"unlock car first", "automatic", "locked"},
				"icon":          "mdi:lock-outline",
			},
		},
		"max_charging_current": {
			Component: "number",
			Getter:    floatField("ampere"),
			Setter: func(ctx context.Context, val string) error {
				ampere, err := strconv.Atoi(val)
				if err != nil {
					return fmt.Errorf("parse ampere value %q: %w", val, err)
				}
				return client.SetAmpere(ctx, ampere)
			},
			Config: map[string]any{
				"name":                "Max charging current",
				"command_topic":       "~/set",
				"min":                 "6",
				"max":                 "32",
				"unit_of_measurement": "A",
				"device_class":        "current",
			},
		},
		"charge_limit": {
			Component: "number",
			Getter:    floatField("charge_limit"),
			Setter: func(ctx context.Context, val string) error {
				limit, err := strconv.ParseFloat(val, 64)
				if err != nil {
					return fmt.Errorf("parse charge limit %q: %w", val, err)
				}
				if limit == 0 {
					// 0 disables the limit
					return client.SetChargeLimit(ctx, nil)
				}
				return client.SetChargeLimit(ctx, &limit)
			},
			Config: map[string]any{
				"name":                "Charge limit",
				"command_topic":       "~/set",
				"min":                 "0",
				"max":                 "100000",
				"unit_of_measurement": "Wh",
				"icon":                "mdi:battery-charging-80",
			},
		},
	}
}

// stringField returns a getter for a string-valued status field.
func stringField(name string) func(*goecharger.Status) (string, bool) {
	return func(s *goecharger.Status) (string, bool) {
		v, ok := s.Get(name)
		if !ok {
			return "", false
		}
		str, ok := v.(string)
		return str, ok
	}
}

// floatField returns a getter for a numeric status field.
func floatField(name string) func(*goecharger.Status) (string, bool) {
	return func(s *goecharger.Status) (string, bool) {
		v, ok := s.Get(name)
		if !ok || v == nil {
			return "", false
		}
		f, ok := v.(float64)
		if !ok {
			return "", false
		}
		return fmt.Sprint(f), true
	}
}
