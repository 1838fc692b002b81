package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/omnical-dev/omnical/internal/cache"
	"github.com/omnical-dev/omnical/internal/holidayapi"
	"github.com/omnical-dev/omnical/internal/models"
)

type Holiday struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	DateISO     string `json:"date_iso"`
	PrimaryType string `json:"primary_type"`
}

// HolidayService serves holiday lookups from the persisted cache, fetching
// from the upstream API once per (country, year). Concurrent first
// requests for the same key are collapsed by singleflight; a duplicate
// insert racing across processes is absorbed by the unique index with a
// conflict-ignore write. An optional Redis hot layer sits in front of the
// database.
type HolidayService struct {
	db     *gorm.DB
	client *holidayapi.Client
	hot    *cache.HolidayCache
	sf     singleflight.Group
}

// NewHolidayService creates a HolidayService. If hot is nil the Redis
// layer is disabled.
func NewHolidayService(db *gorm.DB, client *holidayapi.Client, hot *cache.HolidayCache) *HolidayService {
	return &HolidayService{db: db, client: client, hot: hot}
}

// Holidays returns the holidays for countryCode and year. The country code
// is case-insensitive externally and upper-cased before any lookup.
func (s *HolidayService) Holidays(ctx context.Context, countryCode string, year int) ([]Holiday, error) {
	countryCode = strings.ToUpper(strings.TrimSpace(countryCode))

	key := countryCode + ":" + strconv.Itoa(year)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		return s.lookup(ctx, countryCode, year)
	})
	if err != nil {
		return nil, err
	}
	return v.([]Holiday), nil
}

func (s *HolidayService) lookup(ctx context.Context, countryCode string, year int) ([]Holiday, error) {
	if s.hot != nil {
		if payload, err := s.hot.Get(ctx, countryCode, year); err == nil && payload != nil {
			return parseHolidays(payload)
		}
	}

	var cached models.HolidayCache

	err := s.db.WithContext(ctx).
		Where("country_code = ? AND year = ?", countryCode, year).
		First(&cached).Error

	if err == nil {
		payload := []byte(cached.DataJSON)
		s.backfillHot(ctx, countryCode, year, payload)
		return parseHolidays(payload)
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("look up holiday cache: %w", err)
	}

	if !s.client.HasAPIKey() {
		return nil, ErrMissingAPIKey
	}

	payload, err := s.client.FetchHolidays(ctx, countryCode, year)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	entry := models.HolidayCache{
		CountryCode: countryCode,
		Year:        year,
		DataJSON:    datatypes.JSON(payload),
		FetchedAt:   time.Now().UTC(),
	}

	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("store holiday cache: %w", err)
	}

	s.backfillHot(ctx, countryCode, year, payload)
	return parseHolidays(payload)
}

// RefreshStale re-fetches cached entries for the current and future years
// whose payload is older than maxAge. Past years are never refreshed;
// their data cannot change. Failures are logged per entry and do not stop
// the sweep.
func (s *HolidayService) RefreshStale(ctx context.Context, maxAge time.Duration) error {
	if !s.client.HasAPIKey() {
		return ErrMissingAPIKey
	}

	currentYear := time.Now().UTC().Year()
	cutoff := time.Now().UTC().Add(-maxAge)

	var entries []models.HolidayCache

	if err := s.db.WithContext(ctx).
		Where("year >= ? AND fetched_at < ?", currentYear, cutoff).
		Find(&entries).Error; err != nil {
		return fmt.Errorf("list stale holiday cache entries: %w", err)
	}

	for _, entry := range entries {
		payload, err := s.client.FetchHolidays(ctx, entry.CountryCode, entry.Year)
		if err != nil {
			log.Printf("Holiday refresh for %s/%d failed: %v", entry.CountryCode, entry.Year, err)
			continue
		}

		updates := map[string]interface{}{
			"data_json":  datatypes.JSON(payload),
			"fetched_at": time.Now().UTC(),
		}
		if err := s.db.WithContext(ctx).
			Model(&models.HolidayCache{}).
			Where("id = ?", entry.ID).
			Updates(updates).Error; err != nil {
			log.Printf("Holiday refresh for %s/%d failed to store: %v", entry.CountryCode, entry.Year, err)
			continue
		}

		s.backfillHot(ctx, entry.CountryCode, entry.Year, payload)
	}

	return nil
}

func (s *HolidayService) backfillHot(ctx context.Context, countryCode string, year int, payload []byte) {
	if s.hot == nil {
		return
	}
	if err := s.hot.Set(ctx, countryCode, year, payload); err != nil {
		log.Printf("Holiday hot cache write for %s/%d failed: %v", countryCode, year, err)
	}
}

// parseHolidays shapes the raw upstream payload. Missing name, description
// or primary_type fields become empty strings rather than errors.
func parseHolidays(payload []byte) ([]Holiday, error) {
	var doc struct {
		Response struct {
			Holidays []struct {
				Name        string `json:"name"`
				Description string `json:"description"`
				Date        struct {
					ISO string `json:"iso"`
				} `json:"date"`
				PrimaryType string `json:"primary_type"`
			} `json:"holidays"`
		} `json:"response"`
	}

	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("parse holiday payload: %w", err)
	}

	holidays := make([]Holiday, 0, len(doc.Response.Holidays))
	for _, h := range doc.Response.Holidays {
		holidays = append(holidays, Holiday{
			Name:        h.Name,
			Description: h.Description,
			DateISO:     h.Date.ISO,
			PrimaryType: h.PrimaryType,
		})
	}

	return holidays, nil
}
