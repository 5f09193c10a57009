package table

// TableError is a custom error type for table-related errors
type TableError string

// Error implements the error interface
func (e TableError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrTableNotFound        TableError = "no table in this channel"
	ErrTableAlreadyExists   TableError = "table already exists for this channel"
	ErrCharacterNotFound    TableError = "character not found"
	ErrCharacterExists      TableError = "a character with that name is already at the table"
	ErrInvalidCharacterName TableError = "character name cannot be empty"
	ErrEmptyRoster          TableError = "there is nobody at the table"
	ErrNilInput             TableError = "input cannot be nil"
	ErrMissingTableID       TableError = "table ID cannot be empty"
	ErrMissingChannelID     TableError = "channel ID cannot be empty"
	ErrNilConfig            TableError = "config cannot be nil"
	ErrNilTableRepo         TableError = "table repository cannot be nil"
	ErrNilCharacterRepo     TableError = "character repository cannot be nil"
	ErrNilTableLogRepo      TableError = "table log repository cannot be nil"
	ErrNilClock             TableError = "clock cannot be nil"
	ErrNilUUIDGenerator     TableError = "UUID generator cannot be nil"
)
