package core

import "github.com/go-faster/errors"

// Translation errors abort an export.
var (
	ErrUnsupportedGate  = errors.New("unsupported gate")
	ErrMissingParameter = errors.New("missing gate parameter")
	ErrInvalidCircuit   = errors.New("invalid circuit")
)

// Configuration errors are raised while a runner is constructed.
var (
	ErrUnknownDevice          = errors.New("unknown device")
	ErrIncompatibleNoiseModel = errors.New("incompatible noise model")
	ErrDestinationRequired    = errors.New("s3 destination is required")
	ErrInvalidSetting         = errors.New("invalid setting")
)

// Validation errors are raised before anything is dispatched.
var (
	ErrInvalidShots            = errors.New("invalid number of shots")
	ErrUnsupportedInitialState = errors.New("unsupported initial state")
	ErrInvalidOperator         = errors.New("invalid operator")
)

// Domain errors depend on the capabilities of the device or the runner.
var (
	ErrNoiseModelRequired       = errors.New("noise model is required")
	ErrStatevectorUnsupported   = errors.New("statevector is not supported by the device")
	ErrDensityMatrixUnsupported = errors.New("density matrix is not supported by the device")
)

// Task errors come back from a dispatched task.
var (
	ErrTaskFailed    = errors.New("quantum task failed")
	ErrPollTimeout   = errors.New("quantum task polling timed out")
	ErrInvalidResult = errors.New("invalid task result")
)
