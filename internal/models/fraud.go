package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Fraud is a transaction the prediction service flagged as fraudulent.
// Encoded categoricals (category, gender, city, state, hour, dayofweek, month)
// are stored exactly as the prediction service encoded them.
type Fraud struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Description string          `gorm:"type:varchar(255)" json:"description"`
	CCNum       string          `gorm:"column:cc_num;type:varchar(32);not null" json:"cc_num"`
	Category    float64         `json:"category"`
	Amt         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amt"`
	Gender      float64         `json:"gender"`
	City        float64         `json:"city"`
	State       float64         `json:"state"`
	Zip         int             `json:"zip"`
	Lat         float64         `gorm:"type:decimal(10,8)" json:"lat"`
	Long        float64         `gorm:"column:long;type:decimal(11,8)" json:"long"`
	CityPop     int             `gorm:"column:city_pop" json:"city_pop"`
	MerchLat    float64         `gorm:"column:merch_lat;type:decimal(10,8)" json:"merch_lat"`
	MerchLong   float64         `gorm:"column:merch_long;type:decimal(11,8)" json:"merch_long"`
	Hour        float64         `json:"hour"`
	DayOfWeek   float64         `gorm:"column:dayofweek" json:"dayofweek"`
	Month       float64         `json:"month"`
	Age         int             `gorm:"type:smallint" json:"age"`
	Prediction  datatypes.JSON  `json:"prediction,omitempty"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (Fraud) TableName() string { return "frauds" }
