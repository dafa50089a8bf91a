package dto

type ValidarResponse struct {
	Existe bool `json:"existe"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
