package dto

type CreateCustomerRequest struct {
	Name         string `json:"name" validate:"required"`
	Surname      string `json:"surname" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Grade        string `json:"grade" validate:"required"`
	Camps        string `json:"camps" validate:"required"`
	Prices       string `json:"prices" validate:"required"`
	Code         string `json:"code"`
	PreviousRank string `json:"previous_rank"`
	City         string `json:"city" validate:"required"`
}
