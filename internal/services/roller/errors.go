package roller

// RollerError is a custom error type for roll-related errors
type RollerError string

// Error implements the error interface
func (e RollerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidExpression RollerError = "invalid dice expression"
	ErrEmptyExpression   RollerError = "dice expression cannot be empty"
	ErrNilInput          RollerError = "input cannot be nil"
	ErrNilConfig         RollerError = "config cannot be nil"
	ErrNilDiceRoller     RollerError = "dice roller cannot be nil"
	ErrNilTableLogRepo   RollerError = "table log repository cannot be nil"
	ErrNilClock          RollerError = "clock cannot be nil"
	ErrNilUUIDGenerator  RollerError = "UUID generator cannot be nil"
)
