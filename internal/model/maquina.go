package model

// Maquina is the central inventory item. Every foreign key is nullable so a
// partially classified machine can still be stored and listed.
type Maquina struct {
	Base
	Serial     string `gorm:"not null;default:'N/A'" json:"serial" mapstructure:"serial"`
	Puestos    int    `gorm:"not null;default:1" json:"puestos" mapstructure:"puestos"`
	SucursalID *uint  `json:"sucursal_id" mapstructure:"sucursal_id"`
	ModeloID   *uint  `json:"modelo_id" mapstructure:"modelo_id"`
	JuegoID    *uint  `json:"juego_id" mapstructure:"juego_id"`
	EstadoID   *uint  `json:"estado_id" mapstructure:"estado_id"`
	SociedadID *uint  `json:"sociedad_id" mapstructure:"sociedad_id"`
	ValorID    *uint  `json:"valor_id" mapstructure:"valor_id"`
	TipoID     *uint  `json:"tipo_id" mapstructure:"tipo_id"`
	ModoID     *uint  `json:"modo_id" mapstructure:"modo_id"`
	LegalID    *uint  `json:"legal_id" mapstructure:"legal_id"`
}

func (Maquina) TableName() string { return "maquina" }

// MaquinaDetalle is a machine with the display name of every referenced row.
// A nil name means the foreign key is null or dangling.
type MaquinaDetalle struct {
	Maquina
	GrupoNom    *string `gorm:"column:grupo_nom" json:"grupo_nom"`
	SalaNom     *string `gorm:"column:sala_nom" json:"sala_nom"`
	MarcaNom    *string `gorm:"column:marca_nom" json:"marca_nom"`
	ModeloNom   *string `gorm:"column:modelo_nom" json:"modelo_nom"`
	JuegoNom    *string `gorm:"column:juego_nom" json:"juego_nom"`
	EstadoNom   *string `gorm:"column:estado_nom" json:"estado_nom"`
	SociedadNom *string `gorm:"column:sociedad_nom" json:"sociedad_nom"`
	ValorNom    *string `gorm:"column:valor_nom" json:"valor_nom"`
	TipoNom     *string `gorm:"column:tipo_nom" json:"tipo_nom"`
	ModoNom     *string `gorm:"column:modo_nom" json:"modo_nom"`
	LegalNom    *string `gorm:"column:legal_nom" json:"legal_nom"`
}
