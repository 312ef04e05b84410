package goecharger

import "fmt"

// ChargingMode forces a plugged-in charging session to start, stop or
// follow the device default.
type ChargingMode int

const (
	ChargingModeNeutral ChargingMode = 0
	ChargingModeOff     ChargingMode = 1
	ChargingModeOn      ChargingMode = 2
)

func (m ChargingMode) String() string {
	return chargingModes[int(m)]
}

// ParseChargingMode returns the ChargingMode for a semantic label.
func ParseChargingMode(s string) (ChargingMode, error) {
	for code, label := range chargingModes {
		if label == s {
			return ChargingMode(code), nil
		}
	}
	return 0, fmt.Errorf("unknown charging mode %q", s)
}

// PhaseMode selects the number of electrical phases used for charging.
type PhaseMode int

const (
	PhaseModeAuto  PhaseMode = 0
	PhaseModeOne   PhaseMode = 1
	PhaseModeThree PhaseMode = 2
)

func (m PhaseMode) String() string {
	return phaseModes[int(m)]
}

// ParsePhaseMode returns the PhaseMode for a semantic label.
func ParsePhaseMode(s string) (PhaseMode, error) {
	for code, label := range phaseModes {
		if label == s {
			return PhaseMode(code), nil
		}
	}
	return 0, fmt.Errorf("unknown phase mode %q", s)
}

// CableLockMode selects when the cable connector is mechanically locked.
type CableLockMode int

const (
	CableLockModeUnlockCarFirst CableLockMode = 0
	CableLockModeAutomatic      CableLockMode = 1
	CableLockModeLocked         CableLockMode = 2
)

func (m CableLockMode) String() string {
	return cableLockModes[int(m)]
}

// ParseCableLockMode returns the CableLockMode for a semantic label.
func ParseCableLockMode(s string) (CableLockMode, error) {
	for code, label := range cableLockModes {
		if label == s {
			return CableLockMode(code), nil
		}
	}
	return 0, fmt.Errorf("unknown cable lock mode %q", s)
}
