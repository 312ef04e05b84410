package goecharger

import (
	"fmt"
	"math"
)

// energyValueCount is the fixed layout of the energy telemetry array:
// indices 0-3 voltage (L1-L3, N), 4-6 current, 7-11 power (L1-L3, N,
// total), 12-14 power factor.
const energyValueCount = 15

// TranslateStatus converts a raw decoded status response into its semantic
// representation. Values of enumerated fields are decoded via fixed lookup
// tables, the energy array is decomposed into an Energy struct and the
// temperature sensor array is reduced to its mean. Keys without a
// translation rule are passed through unchanged.
//
// Translation is all-or-nothing: the first failing field aborts with an
// error and no partial result. The function is pure and safe for
// concurrent use.
func TranslateStatus(raw map[string]any) (*Status, error) {
	entries := make([]Entry, 0, len(raw))

	for code, value := range raw {
		name, mapped, err := mapField(code, value)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Code: code, Name: name, Value: mapped})
	}

	return newStatus(entries), nil
}

// mapField translates a single field. Unknown codes come back unchanged.
func mapField(code string, value any) (string, any, error) {
	switch code {
	case KeyAmpere, KeyAmpereDeviceMaximum, KeyAmpereAllowed, KeyChargeLimit:
		return fieldNames[code], value, nil

	case KeyCarState:
		label, err := lookupEnum(code, carStates, value)
		return fieldNames[code], label, err

	case KeyError:
		if n, ok := toInt(value); ok && n == 0 {
			// code 0 is the explicit "no error" marker
			return fieldNames[code], nil, nil
		}
		label, err := lookupEnum(code, errorCodes, value)
		if err != nil {
			return fieldNames[code], nil, err
		}
		return fieldNames[code], label, nil

	case KeyChargingMode:
		label, err := lookupEnum(code, chargingModes, value)
		return fieldNames[code], label, err

	case KeyEnergy:
		energy, err := decomposeEnergy(value)
		if err != nil {
			return fieldNames[code], nil, err
		}
		return fieldNames[code], energy, nil

	case KeyPhaseMode:
		label, err := lookupEnum(code, phaseModes, value)
		return fieldNames[code], label, err

	case KeyTemperature:
		mean, err := meanTemperature(value)
		if err != nil {
			return fieldNames[code], nil, err
		}
		if mean == nil {
			// no sensors reported, explicit no-value marker
			return fieldNames[code], nil, nil
		}
		return fieldNames[code], *mean, nil

	case KeyCableLockMode:
		label, err := lookupEnum(code, cableLockModes, value)
		return fieldNames[code], label, err

	case KeyDeviceModel:
		label, err := lookupEnum(code, deviceModels, value)
		return fieldNames[code], label, err

	default:
		// forward compatibility: unknown codes pass through unchanged
		return code, value, nil
	}
}

// lookupEnum decodes a raw enum value via its lookup table. A value
// outside the table's domain is a translation failure, never a silent
// passthrough.
func lookupEnum(code string, table map[int]string, value any) (string, error) {
	n, ok := toInt(value)
	if !ok {
		return "", fmt.Errorf("field %q: value %v: %w", code, value, ErrEnumValue)
	}
	label, ok := table[n]
	if !ok {
		return "", fmt.Errorf("field %q: value %d: %w", code, n, ErrEnumValue)
	}
	return label, nil
}

// decomposeEnergy splits the 15-element telemetry array into voltage,
// current, power and power factor readings.
func decomposeEnergy(value any) (*Energy, error) {
	vals, ok := toFloats(value)
	if !ok {
		return nil, fmt.Errorf("field %q: expected numeric array, got %T", KeyEnergy, value)
	}
	if len(vals) != energyValueCount {
		return nil, fmt.Errorf("field %q: got %d values, want %d: %w",
			KeyEnergy, len(vals), energyValueCount, ErrEnergyLength)
	}

	return &Energy{
		Voltage: PhaseNeutralValues{
			L1: vals[0],
			L2: vals[1],
			L3: vals[2],
			N:  vals[3],
		},
		Current: PhaseValues{
			L1: vals[4],
			L2: vals[5],
			L3: vals[6],
		},
		Power: PowerValues{
			L1:    vals[7],
			L2:    vals[8],
			L3:    vals[9],
			N:     vals[10],
			Total: vals[11],
		},
		PowerFactor: PhaseValues{
			L1: vals[12],
			L2: vals[13],
			L3: vals[14],
		},
	}, nil
}

// meanTemperature reduces the sensor array to its arithmetic mean.
// An empty array yields nil, not an error.
func meanTemperature(value any) (*float64, error) {
	vals, ok := toFloats(value)
	if !ok {
		return nil, fmt.Errorf("field %q: expected numeric array, got %T", KeyTemperature, value)
	}
	if len(vals) == 0 {
		return nil, nil
	}

	var sum float64
	for _, v := range vals {
		sum += v
	}
	mean := sum / float64(len(vals))
	return &mean, nil
}

// toInt coerces a decoded JSON number to an int. encoding/json decodes
// numbers as float64; non-integral values do not coerce.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}

// toFloat coerces a decoded JSON number to a float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// toFloats coerces a decoded JSON array to a float64 slice.
func toFloats(v any) ([]float64, bool) {
	switch arr := v.(type) {
	case []float64:
		return arr, true
	case []any:
		out := make([]float64, len(arr))
		for i, e := range arr {
			f, ok := toFloat(e)
			if !ok {
				return nil, false
			}
			out[i] = f
		}
		return out, true
	}
	return nil, false
}
