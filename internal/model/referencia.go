package model

// Reference tables: every one of them is just an id and a display name.

type Grupo struct {
	Base
	Nombre string `gorm:"not null" json:"nombre" mapstructure:"nombre"`
}

func (Grupo) TableName() string { return "grupo" }

type Marca struct {
	Base
	Nombre string `gorm:"not null" json:"nombre" mapstructure:"nombre"`
}

func (Marca) TableName() string { return "marca" }

type Juego struct {
	Base
	Nombre string `gorm:"not null" json:"nombre" mapstructure:"nombre"`
}

func (Juego) TableName() string { return "juego" }

type Estado struct {
	Base
	Nombre string `gorm:"not null" json:"nombre" mapstructure:"nombre"`
}

func (Estado) TableName() string { return "estado" }

type Sociedad struct {
	Base
	Nombre string `gorm:"not null" json:"nombre" mapstructure:"nombre"`
}

func (Sociedad) TableName() string { return "sociedad" }

// Valor is the value tier of a machine.
type Valor struct {
	Base
	Nombre string `gorm:"not null" json:"nombre" mapstructure:"nombre"`
}

func (Valor) TableName() string { return "valor" }

// Tipo drives the seat count rule of a Maquina ("NORMAL", "MULTIPUESTO", ...).
type Tipo struct {
	Base
	Nombre string `gorm:"not null" json:"nombre" mapstructure:"nombre"`
}

func (Tipo) TableName() string { return "tipo" }

type Modo struct {
	Base
	Nombre string `gorm:"not null" json:"nombre" mapstructure:"nombre"`
}

func (Modo) TableName() string { return "modo" }

// Legal is the legal status of a machine.
type Legal struct {
	Base
	Nombre string `gorm:"not null" json:"nombre" mapstructure:"nombre"`
}

func (Legal) TableName() string { return "legal" }

// Opcion is one entry of a selection list with the name of its parent row
// (the group of a branch, the brand of a model).
type Opcion struct {
	ID        uint    `json:"id"`
	Nombre    string  `json:"nombre"`
	ParentNom *string `gorm:"column:parent_nom" json:"parent_nom"`
}
