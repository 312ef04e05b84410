package goecharger

// Wire field codes of the status endpoint.
const (
	KeyAmpere              = "acu" // currently possible charging rate
	KeyAmpereDeviceMaximum = "ama" // absolute device maximum
	KeyAmpereAllowed       = "amp" // allowed charging rate
	KeyCarState            = "car"
	KeyChargeLimit         = "dwo"
	KeyError               = "err"
	KeyChargingMode        = "frc" // forced state
	KeyEnergy              = "nrg"
	KeyPhaseMode           = "psm"
	KeyTemperature         = "tma"
	KeyCableLockMode       = "ust"
	KeyDeviceModel         = "var"
)

// fieldNames maps wire codes to the semantic names used in translated
// output. Codes absent from this map are passed through unchanged.
var fieldNames = map[string]string{
	KeyAmpere:              "ampere",
	KeyAmpereDeviceMaximum: "ampere_device_maximum",
	KeyAmpereAllowed:       "ampere_allowed",
	KeyCarState:            "car_state",
	KeyChargeLimit:         "charge_limit",
	KeyError:               "error",
	KeyChargingMode:        "charging_mode",
	KeyEnergy:              "energy",
	KeyPhaseMode:           "phase_mode",
	KeyTemperature:         "temperature",
	KeyCableLockMode:       "cable_lock_mode",
	KeyDeviceModel:         "device_model",
}

var carStates = map[int]string{
	0: "Unknown/Error",
	1: "Idle",
	2: "Charging",
	3: "WaitCar",
	4: "Complete",
	5: "Error",
}

// errorCodes covers codes 1-16 and the reserved range 20-24. Code 0 means
// "no error" and is handled before the table lookup.
var errorCodes = map[int]string{
	1:  "FiAc",
	2:  "FiDc",
	3:  "Phase",
	4:  "Overvolt",
	5:  "Overamp",
	6:  "Diode",
	7:  "Ppinvalid",
	8:  "GndInvalid",
	9:  "ContactorStuck",
	10: "ContactorMiss",
	11: "FiUnknown",
	12: "Unknown",
	13: "Overtemp",
	14: "NoComm",
	15: "StatusLockStuckOpen",
	16: "StatusLockStuckLocked",
	20: "Reserved20",
	21: "Reserved21",
	22: "Reserved22",
	23: "Reserved23",
	24: "Reserved24",
}

var chargingModes = map[int]string{
	0: "neutral",
	1: "off",
	2: "on",
}

var phaseModes = map[int]string{
	0: "auto",
	1: "one",
	2: "three",
}

var cableLockModes = map[int]string{
	0: "unlock car first",
	1: "automatic",
	2: "locked",
}

var deviceModels = map[int]string{
	11: "11KW/16A",
	22: "22KW/32A",
}
