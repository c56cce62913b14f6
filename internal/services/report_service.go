package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/kampusapp/admin-backend/internal/dto"
	"github.com/kampusapp/admin-backend/internal/models"
	"github.com/kampusapp/admin-backend/internal/pricing"
	"gorm.io/gorm"
)

// ReportService is the read-only aggregation side. It never mutates and
// only ever sees non-soft-deleted customers.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

func (s *ReportService) activeCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Where("is_deleted = ?", false).Order("created_at DESC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch customers: %w", err)
	}
	return customers, nil
}

// FinancialStats aggregates revenue and customer counts over the daily,
// weekly (Monday-anchored), monthly, yearly, and unbounded windows ending at
// now. The windows nest, so the counts are monotonic by construction.
func (s *ReportService) FinancialStats(now time.Time) (*dto.FinancialStatsResponse, error) {
	customers, err := s.activeCustomers()
	if err != nil {
		return nil, err
	}

	year, month, day := now.Date()
	loc := now.Location()

	dailyStart := time.Date(year, month, day, 0, 0, 0, 0, loc)
	// Monday 00:00 of the current week.
	weeklyStart := dailyStart.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))
	monthlyStart := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	yearlyStart := time.Date(year, 1, 1, 0, 0, 0, 0, loc)

	windows := []struct {
		start *time.Time
		stats *dto.WindowStats
	}{
		{&dailyStart, &dto.WindowStats{}},
		{&weeklyStart, &dto.WindowStats{}},
		{&monthlyStart, &dto.WindowStats{}},
		{&yearlyStart, &dto.WindowStats{}},
		{nil, &dto.WindowStats{}},
	}

	for _, c := range customers {
		revenue, err := pricing.Sum(c.Prices)
		if err != nil {
			return nil, fmt.Errorf("customer %s has unparseable prices: %w", c.ID, err)
		}
		for _, w := range windows {
			if w.start != nil && (c.CreatedAt.Before(*w.start) || c.CreatedAt.After(now)) {
				continue
			}
			w.stats.Revenue += revenue
			w.stats.CustomerCount++
		}
	}

	return &dto.FinancialStatsResponse{
		Daily:   *windows[0].stats,
		Weekly:  *windows[1].stats,
		Monthly: *windows[2].stats,
		Yearly:  *windows[3].stats,
		Total:   *windows[4].stats,
	}, nil
}

// CustomerRevenue ranks customers by total revenue, descending. Ties keep
// the fetch order (newest first) via a stable sort.
func (s *ReportService) CustomerRevenue() ([]dto.CustomerRevenue, error) {
	customers, err := s.activeCustomers()
	if err != nil {
		return nil, err
	}

	list := make([]dto.CustomerRevenue, 0, len(customers))
	for _, c := range customers {
		revenue, err := pricing.Sum(c.Prices)
		if err != nil {
			return nil, fmt.Errorf("customer %s has unparseable prices: %w", c.ID, err)
		}
		list = append(list, dto.CustomerRevenue{
			ID:        c.ID,
			Name:      c.Name + " " + c.Surname,
			Email:     c.Email,
			Revenue:   revenue,
			CreatedAt: c.CreatedAt,
		})
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Revenue > list[j].Revenue
	})

	return list, nil
}

// CollaborationStats buckets customers by currently-active referral code,
// newest code first, plus a without_code bucket for customers that never
// cited one. A customer whose code has since been deactivated or deleted
// counts in neither bucket; that is inherited behavior and callers depend
// on it.
func (s *ReportService) CollaborationStats() (*dto.CollaborationStatsResponse, error) {
	var codes []models.CollaborationCode
	if err := s.db.Where("is_active = ?", true).Order("created_at DESC").Find(&codes).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch collaboration codes: %w", err)
	}

	customers, err := s.activeCustomers()
	if err != nil {
		return nil, err
	}

	byCode := make(map[string]*dto.BucketStats)
	withoutCode := dto.BucketStats{}
	for _, c := range customers {
		revenue, err := pricing.Sum(c.Prices)
		if err != nil {
			return nil, fmt.Errorf("customer %s has unparseable prices: %w", c.ID, err)
		}
		if c.Code == nil {
			withoutCode.CustomerCount++
			withoutCode.TotalRevenue += revenue
			continue
		}
		bucket, ok := byCode[*c.Code]
		if !ok {
			bucket = &dto.BucketStats{}
			byCode[*c.Code] = bucket
		}
		bucket.CustomerCount++
		bucket.TotalRevenue += revenue
	}

	stats := make([]dto.CodeStats, 0, len(codes))
	for _, code := range codes {
		entry := dto.CodeStats{CodeID: code.ID, Code: code.Code}
		if bucket, ok := byCode[code.Code]; ok {
			entry.CustomerCount = bucket.CustomerCount
			entry.TotalRevenue = bucket.TotalRevenue
		}
		stats = append(stats, entry)
	}

	return &dto.CollaborationStatsResponse{
		Stats:       stats,
		WithoutCode: withoutCode,
	}, nil
}
