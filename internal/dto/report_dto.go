package dto

import (
	"time"

	"github.com/google/uuid"
)

type WindowStats struct {
	Revenue       float64 `json:"revenue"`
	CustomerCount int     `json:"customer_count"`
}

type FinancialStatsResponse struct {
	Daily   WindowStats `json:"daily"`
	Weekly  WindowStats `json:"weekly"`
	Monthly WindowStats `json:"monthly"`
	Yearly  WindowStats `json:"yearly"`
	Total   WindowStats `json:"total"`
}

type CustomerRevenue struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Revenue   float64   `json:"revenue"`
	CreatedAt time.Time `json:"created_at"`
}
