package model

// Usuario stores system users. Clave is either a bcrypt hash or, for rows
// created before hashing was introduced, the plain secret.
// Rol: "admin" | "operador" (write access is configured by role name)
type Usuario struct {
	Base
	Usuario string  `gorm:"column:usuario;uniqueIndex;not null" json:"usuario" mapstructure:"usuario"`
	Clave   string  `gorm:"not null" json:"clave,omitempty" mapstructure:"clave"`
	Nombre  *string `json:"nombre" mapstructure:"nombre"`
	Rol     string  `gorm:"type:varchar(20);not null;default:'operador'" json:"rol" mapstructure:"rol"`
}

func (Usuario) TableName() string { return "usuario" }

// UsuarioSucursal grants a user access to a branch.
type UsuarioSucursal struct {
	Base
	UsuarioID  uint `gorm:"not null;index"`
	SucursalID uint `gorm:"not null"`
}

func (UsuarioSucursal) TableName() string { return "usuario_sucursal" }
