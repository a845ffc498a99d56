package booking

import "fmt"

// ValidationError reports a missing or blank required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("campo obrigatorio: %s", e.Field)
}

// ConflictError reports a double-booking attempt on a (date, time) slot.
type ConflictError struct {
	Date string
	Time string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("ja existe um agendamento em %s %s", e.Date, e.Time)
}

// NotFoundError reports an operation on a nonexistent appointment.
type NotFoundError struct {
	ID uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("agendamento %d nao encontrado", e.ID)
}

// StorageError wraps a failure from the database layer.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
