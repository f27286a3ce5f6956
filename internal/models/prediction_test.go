package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardNumberUnmarshal(t *testing.T) {
	cases := []struct {
		raw  string
		want CardNumber
	}{
		{`"123"`, "123"},
		{`"4532-0151-1283-0366"`, "4532-0151-1283-0366"},
		{`4532015112830366`, "4532015112830366"},
		{`4.532015112830366e+15`, "4532015112830366"},
		{`123.0`, "123"},
		{`null`, ""},
	}

	for _, c := range cases {
		var got CardNumber
		require.NoError(t, json.Unmarshal([]byte(c.raw), &got), c.raw)
		assert.Equal(t, c.want, got, c.raw)
	}
}

func TestCardNumberRejectsGarbage(t *testing.T) {
	var got CardNumber
	assert.Error(t, json.Unmarshal([]byte(`true`), &got))
}

func TestPredictionInputToFraud(t *testing.T) {
	raw := []byte(`{"cc_num":"123","category":10.0,"amt":2.86,"gender":1.0,"city":168.0,"state":40.0,"zip":28202,"lat":35.2271,"long":-80.8431,"city_pop":897720,"merch_lat":35.23,"merch_long":-80.86,"hour":14.0,"dayofweek":2.0,"month":6.0,"age":35}`)

	var in PredictionInput
	require.NoError(t, json.Unmarshal(raw, &in))

	f := in.ToFraud("suspicious night purchase", []byte(`{"is_fraud":true}`))

	assert.Equal(t, "123", f.CCNum)
	assert.Equal(t, 10.0, f.Category)
	assert.True(t, f.Amt.Equal(decimal.RequireFromString("2.86")))
	assert.Equal(t, 1.0, f.Gender)
	assert.Equal(t, 168.0, f.City)
	assert.Equal(t, 40.0, f.State)
	assert.Equal(t, 28202, f.Zip)
	assert.Equal(t, 35.2271, f.Lat)
	assert.Equal(t, -80.8431, f.Long)
	assert.Equal(t, 897720, f.CityPop)
	assert.Equal(t, 35.23, f.MerchLat)
	assert.Equal(t, -80.86, f.MerchLong)
	assert.Equal(t, 14.0, f.Hour)
	assert.Equal(t, 2.0, f.DayOfWeek)
	assert.Equal(t, 6.0, f.Month)
	assert.Equal(t, 35, f.Age)
	assert.Equal(t, "suspicious night purchase", f.Description)
	assert.JSONEq(t, `{"is_fraud":true}`, string(f.Prediction))
}

func TestDecodePredictionInputRequiresEveryField(t *testing.T) {
	full := `{"cc_num":"123","category":10.0,"amt":2.86,"gender":1.0,"city":168.0,"state":40.0,"zip":28202,"lat":35.2271,"long":-80.8431,"city_pop":897720,"merch_lat":35.23,"merch_long":-80.86,"hour":14.0,"dayofweek":2.0,"month":6.0,"age":35}`

	in, err := DecodePredictionInput([]byte(full))
	require.NoError(t, err)
	assert.Equal(t, CardNumber("123"), in.CCNum)

	_, err = DecodePredictionInput([]byte(`{"cc_num":4532015112830366,"amt":"19.99","zip":10001.0,"age":51.0}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category")
	assert.Contains(t, err.Error(), "merch_long")
	assert.NotContains(t, err.Error(), "cc_num")

	_, err = DecodePredictionInput([]byte(`"oops"`))
	assert.Error(t, err)
}
