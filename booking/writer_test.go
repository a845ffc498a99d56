package booking

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/programmermistery-hub/BarberCRM/models"
)

// fakeStore is an in-memory Store for writer tests.
type fakeStore struct {
	appointments map[uint]*models.Appointment
	clients      map[string]*models.Client
	nextID       uint

	createAppointmentErr error
	lookupErr            error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		appointments: make(map[uint]*models.Appointment),
		clients:      make(map[string]*models.Client),
	}
}

func (f *fakeStore) id() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) AppointmentByDateTime(date, time string) (*models.Appointment, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, a := range f.appointments {
		if a.Date == date && a.Time == time {
			copy := *a
			return &copy, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) AppointmentByID(id uint) (*models.Appointment, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	a, ok := f.appointments[id]
	if !ok {
		return nil, nil
	}
	copy := *a
	return &copy, nil
}

func (f *fakeStore) CreateAppointment(a *models.Appointment) error {
	if f.createAppointmentErr != nil {
		return f.createAppointmentErr
	}
	a.ID = f.id()
	copy := *a
	f.appointments[a.ID] = &copy
	return nil
}

func (f *fakeStore) UpdateAppointment(a *models.Appointment) error {
	copy := *a
	f.appointments[a.ID] = &copy
	return nil
}

func (f *fakeStore) DeleteAppointment(id uint) error {
	delete(f.appointments, id)
	return nil
}

func (f *fakeStore) ClientByPhone(phone string) (*models.Client, error) {
	c, ok := f.clients[phone]
	if !ok {
		return nil, nil
	}
	copy := *c
	return &copy, nil
}

func (f *fakeStore) CreateClient(c *models.Client) error {
	c.ID = f.id()
	copy := *c
	f.clients[c.Phone] = &copy
	return nil
}

func validCreate() CreateInput {
	return CreateInput{
		Date:    "2024-03-01",
		Time:    "09:30",
		Name:    " ana  silva ",
		Phone:   "(11) 99999-9999",
		Service: "Corte",
	}
}

func TestCreateNormalizesAndLinksNewClient(t *testing.T) {
	store := newFakeStore()
	w := NewWriter(store)

	created, err := w.Create(validCreate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected assigned id")
	}
	if created.Name != "ANA SILVA" {
		t.Errorf("expected normalized name, got %q", created.Name)
	}
	if created.Phone != "11999999999" {
		t.Errorf("expected normalized phone, got %q", created.Phone)
	}
	if created.ClientID == nil {
		t.Fatal("expected a client to be created and linked")
	}
	client := store.clients["11999999999"]
	if client == nil {
		t.Fatal("expected client row for the new phone")
	}
	if client.FullName != "ANA SILVA" {
		t.Errorf("expected client created with normalized name, got %q", client.FullName)
	}
	if *created.ClientID != client.ID {
		t.Errorf("appointment linked to client %d, want %d", *created.ClientID, client.ID)
	}
}

func TestCreateReusesExistingClient(t *testing.T) {
	store := newFakeStore()
	store.clients["11999999999"] = &models.Client{ID: 42, FullName: "ANA SILVA", Phone: "11999999999"}
	w := NewWriter(store)

	created, err := w.Create(validCreate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ClientID == nil || *created.ClientID != 42 {
		t.Fatalf("expected link to existing client 42, got %v", created.ClientID)
	}
	if len(store.clients) != 1 {
		t.Errorf("expected no new client rows, got %d", len(store.clients))
	}
}

func TestCreateWithoutPhoneLinksNoClient(t *testing.T) {
	store := newFakeStore()
	w := NewWriter(store)

	in := validCreate()
	in.Phone = ""
	created, err := w.Create(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ClientID != nil {
		t.Errorf("expected no client link, got %v", *created.ClientID)
	}
	if len(store.clients) != 0 {
		t.Errorf("expected no client rows, got %d", len(store.clients))
	}
}

func TestCreateExplicitClientSkipsResolution(t *testing.T) {
	store := newFakeStore()
	w := NewWriter(store)

	id := uint(7)
	in := validCreate()
	in.ClientID = &id
	created, err := w.Create(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ClientID == nil || *created.ClientID != 7 {
		t.Fatalf("expected explicit client id kept, got %v", created.ClientID)
	}
	if len(store.clients) != 0 {
		t.Errorf("expected no client created, got %d", len(store.clients))
	}
}

func TestCreateValidation(t *testing.T) {
	w := NewWriter(newFakeStore())
	for _, field := range []string{"data", "horario", "nome", "servico"} {
		in := validCreate()
		switch field {
		case "data":
			in.Date = " "
		case "horario":
			in.Time = ""
		case "nome":
			in.Name = "   "
		case "servico":
			in.Service = ""
		}
		_, err := w.Create(in)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("blank %s: expected ValidationError, got %v", field, err)
		}
	}
}

func TestCreateConflictOnOccupiedSlot(t *testing.T) {
	store := newFakeStore()
	w := NewWriter(store)
	if _, err := w.Create(validCreate()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	in := validCreate()
	in.Name = "Outro Cliente"
	in.Phone = "11888888888"
	_, err := w.Create(in)
	var cerr *ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if len(store.appointments) != 1 {
		t.Errorf("conflict must not alter data, have %d appointments", len(store.appointments))
	}
	if len(store.clients) != 1 {
		t.Errorf("conflict must not create clients, have %d", len(store.clients))
	}
}

func TestCreateMapsDuplicateKeyToConflict(t *testing.T) {
	store := newFakeStore()
	store.createAppointmentErr = gorm.ErrDuplicatedKey
	w := NewWriter(store)

	_, err := w.Create(validCreate())
	var cerr *ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConflictError from duplicate key, got %v", err)
	}
}

func TestCreateSurfacesStorageFailure(t *testing.T) {
	store := newFakeStore()
	store.lookupErr = errors.New("connection refused")
	w := NewWriter(store)

	_, err := w.Create(validCreate())
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
}

func TestUpdateNormalizesAndKeepsClientRow(t *testing.T) {
	store := newFakeStore()
	w := NewWriter(store)
	created, err := w.Create(validCreate())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	before := *store.clients["11999999999"]

	updated, err := w.Update(created.ID, UpdateInput{
		Name:    " ana  maria ",
		Phone:   "(11) 7777-6666",
		Service: " Corte e barba ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "ANA MARIA" {
		t.Errorf("expected normalized name, got %q", updated.Name)
	}
	if updated.Phone != "1177776666" {
		t.Errorf("expected normalized phone, got %q", updated.Phone)
	}
	if updated.Service != "Corte e barba" {
		t.Errorf("expected trimmed service, got %q", updated.Service)
	}
	if updated.Date != created.Date || updated.Time != created.Time {
		t.Error("date and time must be immutable on edit")
	}

	after := *store.clients["11999999999"]
	if after != before {
		t.Errorf("edit must not touch the client row: %+v vs %+v", before, after)
	}
}

func TestUpdateMissingAppointment(t *testing.T) {
	store := newFakeStore()
	w := NewWriter(store)

	_, err := w.Update(99, UpdateInput{Name: "Ana", Service: "Corte"})
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if len(store.appointments) != 0 {
		t.Error("update of missing id must have no side effects")
	}
}

func TestUpdateValidation(t *testing.T) {
	w := NewWriter(newFakeStore())
	var verr *ValidationError
	if _, err := w.Update(1, UpdateInput{Name: "", Service: "Corte"}); !errors.As(err, &verr) {
		t.Errorf("blank nome: expected ValidationError, got %v", err)
	}
	if _, err := w.Update(1, UpdateInput{Name: "Ana", Service: "  "}); !errors.As(err, &verr) {
		t.Errorf("blank servico: expected ValidationError, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	store := newFakeStore()
	w := NewWriter(store)
	created, err := w.Create(validCreate())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := w.Delete(created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.appointments) != 0 {
		t.Error("expected appointment removed")
	}
	if len(store.clients) != 1 {
		t.Error("delete must not cascade to the client record")
	}

	var nerr *NotFoundError
	if err := w.Delete(created.ID); !errors.As(err, &nerr) {
		t.Errorf("expected NotFoundError on second delete, got %v", err)
	}
}
