// Package store is the GORM-backed persistence layer. It implements
// the narrow interfaces the logic packages consume (booking.Store,
// clients.Finder) so those stay testable without a database.
package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/programmermistery-hub/BarberCRM/models"
	"github.com/programmermistery-hub/BarberCRM/timerout"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AppointmentsByDate returns one day's appointments in slot order.
func (s *Store) AppointmentsByDate(date string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.Where("data = ?", date).Order("horario").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (s *Store) AppointmentByDateTime(date, time string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := s.db.Where("data = ? AND horario = ?", date, time).First(&appointment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (s *Store) AppointmentByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := s.db.First(&appointment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (s *Store) CreateAppointment(a *models.Appointment) error {
	return s.db.Create(a).Error
}

func (s *Store) UpdateAppointment(a *models.Appointment) error {
	return s.db.Save(a).Error
}

func (s *Store) DeleteAppointment(id uint) error {
	return s.db.Delete(&models.Appointment{}, id).Error
}

func (s *Store) ClientByPhone(phone string) (*models.Client, error) {
	var client models.Client
	err := s.db.Where("numero = ?", phone).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *Store) CreateClient(c *models.Client) error {
	return s.db.Create(c).Error
}

// SearchClientsByName backs the autocomplete: case-insensitive
// substring match, alphabetical, capped.
func (s *Store) SearchClientsByName(fragment string, limit int) ([]models.Client, error) {
	var found []models.Client
	err := s.db.
		Where("nome_completo ILIKE ?", "%"+fragment+"%").
		Order("nome_completo").
		Limit(limit).
		Find(&found).Error
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Visits feeds the timer-out report: every appointment's (nome,
// numero, data), newest first, optionally filtered by a name fragment.
func (s *Store) Visits(search string) ([]timerout.Visit, error) {
	query := s.db.Model(&models.Appointment{}).
		Select("nome AS name, numero AS phone, data AS date").
		Order("data desc")
	if search != "" {
		query = query.Where("nome ILIKE ?", "%"+search+"%")
	}

	var visits []timerout.Visit
	if err := query.Scan(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}

func (s *Store) UserByLogin(login string) (*models.User, error) {
	var user models.User
	err := s.db.Where("login = ?", login).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
