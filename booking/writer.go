package booking

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/programmermistery-hub/BarberCRM/models"
)

// Store is the slice of persistence the writer needs. Lookups return
// (nil, nil) when no row matches.
type Store interface {
	AppointmentByDateTime(date, time string) (*models.Appointment, error)
	AppointmentByID(id uint) (*models.Appointment, error)
	CreateAppointment(a *models.Appointment) error
	UpdateAppointment(a *models.Appointment) error
	DeleteAppointment(id uint) error
	ClientByPhone(phone string) (*models.Client, error)
	CreateClient(c *models.Client) error
}

// Writer validates, normalizes and persists appointments, resolving
// the linked client record by phone number on the way.
type Writer struct {
	store Store
}

func NewWriter(store Store) *Writer {
	return &Writer{store: store}
}

// CreateInput carries the fields accepted on appointment creation.
type CreateInput struct {
	Date     string `json:"data"`
	Time     string `json:"horario"`
	Name     string `json:"nome"`
	Phone    string `json:"numero"`
	Service  string `json:"servico"`
	ClientID *uint  `json:"cliente_id"`
}

// UpdateInput carries the editable fields. Date and time are immutable
// after creation.
type UpdateInput struct {
	Name    string `json:"nome"`
	Phone   string `json:"numero"`
	Service string `json:"servico"`
}

// Create books a slot. The (date, time) pre-check is a fast path for a
// friendly error; the unique index on agendamentos(data, horario) is
// the authoritative guard, so a duplicate-key failure from the insert
// also comes back as a ConflictError.
func (w *Writer) Create(in CreateInput) (*models.Appointment, error) {
	required := []struct {
		field, value string
	}{
		{"data", in.Date},
		{"horario", in.Time},
		{"nome", in.Name},
		{"servico", in.Service},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, &ValidationError{Field: r.field}
		}
	}

	name := NormalizeName(in.Name)
	phone := NormalizePhone(in.Phone)

	existing, err := w.store.AppointmentByDateTime(in.Date, in.Time)
	if err != nil {
		return nil, &StorageError{Op: "lookup appointment", Err: err}
	}
	if existing != nil {
		return nil, &ConflictError{Date: in.Date, Time: in.Time}
	}

	clientID := in.ClientID
	if clientID == nil && phone != "" {
		resolved, err := w.resolveClient(name, phone)
		if err != nil {
			return nil, err
		}
		clientID = resolved
	}

	appointment := &models.Appointment{
		Date:     in.Date,
		Time:     in.Time,
		Name:     name,
		Phone:    phone,
		Service:  in.Service,
		ClientID: clientID,
	}
	if err := w.store.CreateAppointment(appointment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Date: in.Date, Time: in.Time}
		}
		return nil, &StorageError{Op: "create appointment", Err: err}
	}
	return appointment, nil
}

// resolveClient finds the client owning the phone number, creating one
// on first sight.
func (w *Writer) resolveClient(name, phone string) (*uint, error) {
	client, err := w.store.ClientByPhone(phone)
	if err != nil {
		return nil, &StorageError{Op: "lookup client", Err: err}
	}
	if client == nil {
		client = &models.Client{FullName: name, Phone: phone}
		if err := w.store.CreateClient(client); err != nil {
			return nil, &StorageError{Op: "create client", Err: err}
		}
	}
	return &client.ID, nil
}

// Update edits the appointment's denormalized name/phone/service. The
// linked Client row is deliberately left alone: the client keeps its
// identity while the visit keeps whatever name the staff typed.
func (w *Writer) Update(id uint, in UpdateInput) (*models.Appointment, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, &ValidationError{Field: "nome"}
	}
	if strings.TrimSpace(in.Service) == "" {
		return nil, &ValidationError{Field: "servico"}
	}

	appointment, err := w.store.AppointmentByID(id)
	if err != nil {
		return nil, &StorageError{Op: "lookup appointment", Err: err}
	}
	if appointment == nil {
		return nil, &NotFoundError{ID: id}
	}

	appointment.Name = NormalizeName(in.Name)
	appointment.Phone = NormalizePhone(in.Phone)
	appointment.Service = strings.TrimSpace(in.Service)
	if err := w.store.UpdateAppointment(appointment); err != nil {
		return nil, &StorageError{Op: "update appointment", Err: err}
	}
	return appointment, nil
}

// Delete removes the appointment. The linked Client record survives.
func (w *Writer) Delete(id uint) error {
	appointment, err := w.store.AppointmentByID(id)
	if err != nil {
		return &StorageError{Op: "lookup appointment", Err: err}
	}
	if appointment == nil {
		return &NotFoundError{ID: id}
	}
	if err := w.store.DeleteAppointment(id); err != nil {
		return &StorageError{Op: "delete appointment", Err: err}
	}
	return nil
}
