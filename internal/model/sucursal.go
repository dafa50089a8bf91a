package model

// Sucursal is a physical location holding machines. Pianas is its capacity.
type Sucursal struct {
	Base
	Nombre  string `gorm:"not null" json:"nombre" mapstructure:"nombre"`
	GrupoID *uint  `json:"grupo_id" mapstructure:"grupo_id"`
	Pianas  int    `gorm:"not null;default:0" json:"pianas" mapstructure:"pianas"`
}

func (Sucursal) TableName() string { return "sucursal" }

// SucursalDetalle is a branch enriched with its group name.
type SucursalDetalle struct {
	Sucursal
	GrupoNom *string `gorm:"column:grupo_nom" json:"grupo_nom"`
}

// Piana is the projection served under the virtual "pianas" table name.
type Piana struct {
	ID       uint    `json:"id"`
	Nombre   string  `json:"nombre"`
	GrupoID  *uint   `json:"grupo_id"`
	Pianas   int     `json:"pianas"`
	GrupoNom *string `gorm:"column:grupo_nom" json:"grupo_nom"`
}
