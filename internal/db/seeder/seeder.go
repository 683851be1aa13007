package seeder

import (
	"backend/internal/app/quicklink"
	"backend/internal/app/schedule"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

func (s *Seeder) Seed() error {
	s.logger.Info("Running database seeders...")

	if err := s.seedHolidays(); err != nil {
		return err
	}
	if err := s.seedQuickLinks(); err != nil {
		return err
	}

	s.logger.Info("Database seeders completed successfully")
	return nil
}

func (s *Seeder) seedHolidays() error {
	var count int64
	s.db.Model(&schedule.Holiday{}).Count(&count)
	if count > 0 {
		s.logger.Info("Holidays already exist, skipping seed")
		return nil
	}

	holidays := []schedule.Holiday{
		{Date: "2026-01-01", Name: "New Year's Day"},
		{Date: "2026-02-16", Name: "Lunar New Year"},
		{Date: "2026-02-17", Name: "Lunar New Year"},
		{Date: "2026-03-01", Name: "Independence Movement Day"},
		{Date: "2026-05-05", Name: "Children's Day"},
		{Date: "2026-08-15", Name: "Liberation Day"},
		{Date: "2026-10-03", Name: "National Foundation Day"},
		{Date: "2026-10-09", Name: "Hangul Day"},
		{Date: "2026-12-25", Name: "Christmas Day"},
	}

	if err := s.db.Create(&holidays).Error; err != nil {
		return err
	}

	s.logger.Info("Seeded holidays", zap.Int("count", len(holidays)))
	return nil
}

func (s *Seeder) seedQuickLinks() error {
	var count int64
	s.db.Model(&quicklink.QuickLink{}).Count(&count)
	if count > 0 {
		s.logger.Info("Quick links already exist, skipping seed")
		return nil
	}

	links := []quicklink.QuickLink{
		{Name: "Team Wiki", URL: "https://wiki.example.com"},
		{Name: "Shared Drive", URL: "https://drive.example.com"},
		{Name: "CI Dashboard", URL: "https://ci.example.com"},
		{Name: "Issue Tracker", URL: "https://issues.example.com"},
	}

	if err := s.db.Create(&links).Error; err != nil {
		return err
	}

	s.logger.Info("Seeded quick links", zap.Int("count", len(links)))
	return nil
}
