package goecharger

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestTranslateStatus_Scenario(t *testing.T) {
	raw := map[string]any{
		"car": float64(2),
		"err": float64(0),
		"frc": float64(1),
	}

	status, err := TranslateStatus(raw)
	if err != nil {
		t.Fatalf("TranslateStatus() error = %v", err)
	}

	wantNames := []string{"car_state", "error", "charging_mode"}
	if got := status.Names(); !reflect.DeepEqual(got, wantNames) {
		t.Errorf("Names() = %v, want %v", got, wantNames)
	}

	if v, _ := status.Get("car_state"); v != "Charging" {
		t.Errorf("car_state = %v, want Charging", v)
	}
	if v, ok := status.Get("error"); !ok || v != nil {
		t.Errorf("error = %v (ok=%v), want nil marker", v, ok)
	}
	if v, _ := status.Get("charging_mode"); v != "off" {
		t.Errorf("charging_mode = %v, want off", v)
	}
}

func TestTranslateStatus_OrderedByWireCode(t *testing.T) {
	raw := map[string]any{
		"var": float64(22),
		"acu": float64(6),
		"car": float64(2),
	}

	status, err := TranslateStatus(raw)
	if err != nil {
		t.Fatalf("TranslateStatus() error = %v", err)
	}

	// acu < car < var, even though the semantic names sort differently
	want := []string{"ampere", "car_state", "device_model"}
	if got := status.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestTranslateStatus_UnknownFieldPassthrough(t *testing.T) {
	raw := map[string]any{
		"xyz": float64(42),
		"abc": "hello",
	}

	status, err := TranslateStatus(raw)
	if err != nil {
		t.Fatalf("TranslateStatus() error = %v", err)
	}

	if v, ok := status.Get("xyz"); !ok || v != float64(42) {
		t.Errorf("xyz = %v (ok=%v), want 42 passed through", v, ok)
	}
	if v, ok := status.Get("abc"); !ok || v != "hello" {
		t.Errorf("abc = %v (ok=%v), want hello passed through", v, ok)
	}
	if status.Len() != 2 {
		t.Errorf("Len() = %d, want 2", status.Len())
	}
}

func TestTranslateStatus_Deterministic(t *testing.T) {
	raw := map[string]any{
		"car": float64(1),
		"frc": float64(0),
		"psm": float64(2),
		"tma": []any{float64(20), float64(22)},
	}

	first, err := TranslateStatus(raw)
	if err != nil {
		t.Fatalf("TranslateStatus() error = %v", err)
	}
	second, err := TranslateStatus(raw)
	if err != nil {
		t.Fatalf("TranslateStatus() error = %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("translations differ:\n%s\n%s", a, b)
	}
}

func TestTranslateStatus_EnumDomains(t *testing.T) {
	tests := []struct {
		code  string
		table map[int]string
	}{
		{"car", carStates},
		{"frc", chargingModes},
		{"psm", phaseModes},
		{"ust", cableLockModes},
		{"var", deviceModels},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			for value, label := range tt.table {
				status, err := TranslateStatus(map[string]any{tt.code: float64(value)})
				if err != nil {
					t.Fatalf("value %d: error = %v", value, err)
				}
				if v, _ := status.Get(fieldNames[tt.code]); v != label {
					t.Errorf("value %d = %v, want %q", value, v, label)
				}
			}

			// out of domain must fail, never fall back to the raw value
			_, err := TranslateStatus(map[string]any{tt.code: float64(99)})
			if !errors.Is(err, ErrEnumValue) {
				t.Errorf("value 99: error = %v, want ErrEnumValue", err)
			}
		})
	}
}

func TestTranslateStatus_ErrorCodes(t *testing.T) {
	for value, label := range errorCodes {
		status, err := TranslateStatus(map[string]any{"err": float64(value)})
		if err != nil {
			t.Fatalf("err=%d: error = %v", value, err)
		}
		if v, _ := status.Get("error"); v != label {
			t.Errorf("err=%d = %v, want %q", value, v, label)
		}
	}

	// 0 maps to the explicit no-error marker, not the string "0"
	status, err := TranslateStatus(map[string]any{"err": float64(0)})
	if err != nil {
		t.Fatalf("err=0: error = %v", err)
	}
	if v, ok := status.Get("error"); !ok || v != nil {
		t.Errorf("err=0 = %v (ok=%v), want nil marker", v, ok)
	}

	// 17-19 are gaps in the documented range
	for _, value := range []int{17, 18, 19, 25} {
		_, err := TranslateStatus(map[string]any{"err": float64(value)})
		if !errors.Is(err, ErrEnumValue) {
			t.Errorf("err=%d: error = %v, want ErrEnumValue", value, err)
		}
	}
}

func TestTranslateStatus_NonIntegralEnumValue(t *testing.T) {
	_, err := TranslateStatus(map[string]any{"car": 2.5})
	if !errors.Is(err, ErrEnumValue) {
		t.Errorf("car=2.5: error = %v, want ErrEnumValue", err)
	}
}

func TestTranslateStatus_EnergyDecomposition(t *testing.T) {
	raw := map[string]any{
		"nrg": []any{
			float64(230), float64(231), float64(229), float64(0),
			float64(6), float64(6), float64(6),
			float64(1380), float64(1386), float64(1374), float64(0), float64(4140),
			0.98, 0.97, 0.99,
		},
	}

	status, err := TranslateStatus(raw)
	if err != nil {
		t.Fatalf("TranslateStatus() error = %v", err)
	}

	v, ok := status.Get("energy")
	if !ok {
		t.Fatal("energy missing from translated status")
	}
	energy, ok := v.(*Energy)
	if !ok {
		t.Fatalf("energy = %T, want *Energy", v)
	}

	wantVoltage := PhaseNeutralValues{L1: 230, L2: 231, L3: 229, N: 0}
	if energy.Voltage != wantVoltage {
		t.Errorf("Voltage = %+v, want %+v", energy.Voltage, wantVoltage)
	}
	wantCurrent := PhaseValues{L1: 6, L2: 6, L3: 6}
	if energy.Current != wantCurrent {
		t.Errorf("Current = %+v, want %+v", energy.Current, wantCurrent)
	}
	wantPower := PowerValues{L1: 1380, L2: 1386, L3: 1374, N: 0, Total: 4140}
	if energy.Power != wantPower {
		t.Errorf("Power = %+v, want %+v", energy.Power, wantPower)
	}
	wantFactor := PhaseValues{L1: 0.98, L2: 0.97, L3: 0.99}
	if energy.PowerFactor != wantFactor {
		t.Errorf("PowerFactor = %+v, want %+v", energy.PowerFactor, wantFactor)
	}
}

func TestTranslateStatus_EnergyLengthMismatch(t *testing.T) {
	for _, n := range []int{0, 14, 16} {
		arr := make([]any, n)
		for i := range arr {
			arr[i] = float64(i)
		}
		_, err := TranslateStatus(map[string]any{"nrg": arr})
		if !errors.Is(err, ErrEnergyLength) {
			t.Errorf("len %d: error = %v, want ErrEnergyLength", n, err)
		}
	}
}

func TestTranslateStatus_TemperatureMean(t *testing.T) {
	status, err := TranslateStatus(map[string]any{
		"tma": []any{float64(20), float64(22), float64(24)},
	})
	if err != nil {
		t.Fatalf("TranslateStatus() error = %v", err)
	}

	v, _ := status.Get("temperature")
	if v != float64(22) {
		t.Errorf("temperature = %v, want 22", v)
	}
}

func TestTranslateStatus_TemperatureEmpty(t *testing.T) {
	status, err := TranslateStatus(map[string]any{"tma": []any{}})
	if err != nil {
		t.Fatalf("TranslateStatus() error = %v", err)
	}

	v, ok := status.Get("temperature")
	if !ok {
		t.Fatal("temperature missing from translated status")
	}
	if v != nil {
		t.Errorf("temperature = %v, want explicit no-value marker", v)
	}
}

func TestStatus_MarshalJSON_KeyOrder(t *testing.T) {
	status, err := TranslateStatus(map[string]any{
		"frc": float64(2),
		"car": float64(4),
		"amp": float64(16),
	})
	if err != nil {
		t.Fatalf("TranslateStatus() error = %v", err)
	}

	data, err := json.Marshal(status)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"ampere_allowed":16,"car_state":"Complete","charging_mode":"on"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestTranslateStatus_RenameFields(t *testing.T) {
	tests := []struct {
		code string
		name string
	}{
		{"acu", "ampere"},
		{"ama", "ampere_device_maximum"},
		{"amp", "ampere_allowed"},
		{"dwo", "charge_limit"},
	}

	for _, tt := range tests {
		status, err := TranslateStatus(map[string]any{tt.code: float64(7)})
		if err != nil {
			t.Fatalf("%s: error = %v", tt.code, err)
		}
		if v, ok := status.Get(tt.name); !ok || v != float64(7) {
			t.Errorf("%s: %s = %v (ok=%v), want unchanged 7", tt.code, tt.name, v, ok)
		}
	}
}

func TestTranslateStatus_Empty(t *testing.T) {
	status, err := TranslateStatus(map[string]any{})
	if err != nil {
		t.Fatalf("TranslateStatus() error = %v", err)
	}
	if status.Len() != 0 {
		t.Errorf("Len() = %d, want 0", status.Len())
	}
}
