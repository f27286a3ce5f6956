package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CardNumber accepts a card number sent either as a JSON string or as a JSON
// number (browsers post parseFloat(cc_num)). Numbers keep their integral text.
type CardNumber string

func (c *CardNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*c = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = CardNumber(s)
		return nil
	}

	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return fmt.Errorf("cc_num: %w", err)
	}
	*c = CardNumber(d.String())
	return nil
}

// PredictionInput is the 16-field feature vector echoed back by the
// prediction service under "input".
type PredictionInput struct {
	CCNum     CardNumber      `json:"cc_num"`
	Category  float64         `json:"category"`
	Amt       decimal.Decimal `json:"amt"`
	Gender    float64         `json:"gender"`
	City      float64         `json:"city"`
	State     float64         `json:"state"`
	Zip       float64         `json:"zip"`
	Lat       float64         `json:"lat"`
	Long      float64         `json:"long"`
	CityPop   float64         `json:"city_pop"`
	MerchLat  float64         `json:"merch_lat"`
	MerchLong float64         `json:"merch_long"`
	Hour      float64         `json:"hour"`
	DayOfWeek float64         `json:"dayofweek"`
	Month     float64         `json:"month"`
	Age       float64         `json:"age"`
}

// InputFields lists the keys every echoed input must carry.
var InputFields = []string{
	"cc_num", "category", "amt", "gender", "city", "state", "zip", "lat", "long",
	"city_pop", "merch_lat", "merch_long", "hour", "dayofweek", "month", "age",
}

// DecodePredictionInput decodes an echoed input, rejecting one that lacks any
// of InputFields.
func DecodePredictionInput(raw []byte) (PredictionInput, error) {
	var in PredictionInput

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return in, err
	}
	var missing []string
	for _, k := range InputFields {
		if _, ok := keys[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return in, fmt.Errorf("input missing %s", strings.Join(missing, ", "))
	}

	err := json.Unmarshal(raw, &in)
	return in, err
}

// ToFraud maps the echoed input field by field onto a Fraud record. raw is the
// full prediction response kept alongside the record.
func (in PredictionInput) ToFraud(description string, raw []byte) Fraud {
	f := Fraud{
		Description: description,
		CCNum:       string(in.CCNum),
		Category:    in.Category,
		Amt:         in.Amt,
		Gender:      in.Gender,
		City:        in.City,
		State:       in.State,
		Zip:         int(math.Round(in.Zip)),
		Lat:         in.Lat,
		Long:        in.Long,
		CityPop:     int(math.Round(in.CityPop)),
		MerchLat:    in.MerchLat,
		MerchLong:   in.MerchLong,
		Hour:        in.Hour,
		DayOfWeek:   in.DayOfWeek,
		Month:       in.Month,
		Age:         int(math.Round(in.Age)),
	}
	if len(raw) > 0 {
		f.Prediction = datatypes.JSON(append([]byte(nil), raw...))
	}
	return f
}
