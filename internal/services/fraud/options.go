package fraud

import (
	"context"
	"encoding/json"
	"fmt"

	"fraud-detection-backend/internal/config"
	"fraud-detection-backend/internal/services/predictor"
	"fraud-detection-backend/internal/utils"
)

var (
	emptyVocabulary = json.RawMessage(`{}`)
	emptyCityData   = json.RawMessage(`{"encoded":0.0,"population":0,"zip":0,"lat":0.0,"long":0.0}`)
)

// FormOptions is everything the transaction form needs to render its dropdowns.
type FormOptions struct {
	Categories json.RawMessage `json:"categories"`
	Genders    json.RawMessage `json:"genders"`
	States     json.RawMessage `json:"states"`
	Cities     json.RawMessage `json:"cities"`
	DaysOfWeek json.RawMessage `json:"daysOfWeek"`
	Months     json.RawMessage `json:"months"`
	Hours      json.RawMessage `json:"hours"`
	APIBaseURL string          `json:"apiBaseUrl"`
}

// Vocabulary relays one vocabulary. Under the "empty" policy a failure yields
// an empty mapping and no error.
func (s *Service) Vocabulary(ctx context.Context, v predictor.Vocabulary) (json.RawMessage, error) {
	body, err := s.predictor.Vocabulary(ctx, v)
	if err != nil {
		return s.fallback(err, emptyVocabulary, "vocabulary %s", v)
	}
	return body, nil
}

// CityData relays the prediction service's data for one city.
func (s *Service) CityData(ctx context.Context, city string) (json.RawMessage, error) {
	body, err := s.predictor.CityData(ctx, city)
	if err != nil {
		return s.fallback(err, emptyCityData, "city data %q", city)
	}
	return body, nil
}

// FormOptions fetches all seven vocabularies one after another.
func (s *Service) FormOptions(ctx context.Context) (*FormOptions, error) {
	opts := &FormOptions{APIBaseURL: s.predictor.BaseURL()}
	targets := map[predictor.Vocabulary]*json.RawMessage{
		predictor.Categories: &opts.Categories,
		predictor.Genders:    &opts.Genders,
		predictor.States:     &opts.States,
		predictor.Cities:     &opts.Cities,
		predictor.DaysOfWeek: &opts.DaysOfWeek,
		predictor.Months:     &opts.Months,
		predictor.Hours:      &opts.Hours,
	}

	for _, v := range predictor.Vocabularies {
		body, err := s.Vocabulary(ctx, v)
		if err != nil {
			return nil, err
		}
		*targets[v] = body
	}
	return opts, nil
}

func (s *Service) fallback(err error, empty json.RawMessage, what string, args ...interface{}) (json.RawMessage, error) {
	label := fmt.Sprintf(what, args...)
	if s.policy == config.OptionsFailError {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	utils.SafeWarn("[Options] %s unavailable, serving empty result: %v", label, err)
	return empty, nil
}
