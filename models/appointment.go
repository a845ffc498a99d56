package models

import (
	"time"
)

// Appointment books one slot of the daily grid. Date and Time are kept
// as ISO text ("2006-01-02" / "15:04") so lexicographic order equals
// chronological order, which the timer-out report relies on. The
// composite unique index is the authoritative guard against
// double-booking; the writer's pre-check is only a fast path.
//
// Name and Phone are denormalized per visit: edits touch them here
// without rewriting the linked Client row.
type Appointment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Date      string    `json:"data" gorm:"column:data;size:10;not null;uniqueIndex:idx_agendamentos_data_horario"`
	Time      string    `json:"horario" gorm:"column:horario;size:8;not null;uniqueIndex:idx_agendamentos_data_horario"`
	Name      string    `json:"nome" gorm:"column:nome;size:200;not null"`
	Phone     string    `json:"numero" gorm:"column:numero;size:30"`
	Service   string    `json:"servico" gorm:"column:servico;size:200;not null"`
	ClientID  *uint     `json:"cliente_id,omitempty" gorm:"column:cliente_id"`
	Client    *Client   `json:"cliente,omitempty" gorm:"foreignKey:ClientID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Appointment) TableName() string {
	return "agendamentos"
}
