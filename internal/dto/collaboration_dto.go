package dto

import "github.com/google/uuid"

type CreateCollaborationCodeRequest struct {
	Code     string `json:"code" validate:"required"`
	IsActive *bool  `json:"is_active"`
}

type UpdateCollaborationCodeRequest struct {
	IsActive bool `json:"is_active"`
}

// BucketStats is one count/revenue pair in the collaboration report.
type BucketStats struct {
	CustomerCount int     `json:"customer_count"`
	TotalRevenue  float64 `json:"total_revenue"`
}

type CodeStats struct {
	CodeID        uuid.UUID `json:"code_id"`
	Code          string    `json:"code"`
	CustomerCount int       `json:"customer_count"`
	TotalRevenue  float64   `json:"total_revenue"`
}

type CollaborationStatsResponse struct {
	Stats       []CodeStats `json:"stats"`
	WithoutCode BucketStats `json:"without_code"`
}
