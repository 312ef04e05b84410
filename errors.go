package goecharger

import "errors"

// Sentinel errors returned by the client and the status translation.
// Wrapped errors carry the field code and offending value; match with
// errors.Is.
var (
	// ErrAPINotEnabled indicates the device answered 404: the local HTTP
	// API v2 is disabled and has to be enabled in the device settings.
	ErrAPINotEnabled = errors.New("HTTP API v2 not enabled on device")

	// ErrEnumValue indicates a status field reported a value outside its
	// documented enum range, pointing at a firmware/API version mismatch
	// or an undocumented device state.
	ErrEnumValue = errors.New("value outside enum range")

	// ErrEnergyLength indicates an energy telemetry array whose length
	// does not match the documented 15-element layout.
	ErrEnergyLength = errors.New("unexpected energy array length")

	// ErrSetRejected indicates the device did not acknowledge a set
	// request by echoing the key with value true.
	ErrSetRejected = errors.New("set request rejected by device")
)
