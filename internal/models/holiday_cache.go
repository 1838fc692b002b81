package models

import (
	"time"

	"gorm.io/datatypes"
)

// HolidayCache holds the raw upstream response for one (country, year)
// pair. CountryCode is always stored upper-cased; the unique index lets
// concurrent first-fetches resolve with a conflict-ignore insert.
type HolidayCache struct {
	ID          uint           `gorm:"column:id;primaryKey"`
	CountryCode string         `gorm:"column:country_code;size:5;not null;uniqueIndex:idx_holiday_cache_country_year,priority:1"`
	Year        int            `gorm:"column:year;not null;uniqueIndex:idx_holiday_cache_country_year,priority:2"`
	DataJSON    datatypes.JSON `gorm:"column:data_json;type:jsonb"`
	FetchedAt   time.Time      `gorm:"column:fetched_at"`
}

func (HolidayCache) TableName() string { return "holiday_cache" }
