package model

type Modelo struct {
	Base
	Nombre  string `gorm:"not null" json:"nombre" mapstructure:"nombre"`
	MarcaID *uint  `json:"marca_id" mapstructure:"marca_id"`
}

func (Modelo) TableName() string { return "modelo" }

// ModeloDetalle is a model enriched with its brand name.
type ModeloDetalle struct {
	Modelo
	MarcaNom *string `gorm:"column:marca_nom" json:"marca_nom"`
}
