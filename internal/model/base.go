package model

// Entidad is implemented by every persisted row type. The generic CRUD layer
// only needs to read and force the primary key.
type Entidad interface {
	Identificador() uint
	AsignarID(id uint)
}

// Base carries the auto-increment integer id shared by all tables.
type Base struct {
	ID uint `gorm:"primaryKey" json:"id" mapstructure:"id"`
}

func (b Base) Identificador() uint { return b.ID }

func (b *Base) AsignarID(id uint) { b.ID = id }
