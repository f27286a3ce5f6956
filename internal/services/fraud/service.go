package fraud

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fraud-detection-backend/internal/alerts"
	"fraud-detection-backend/internal/config"
	"fraud-detection-backend/internal/models"
	"fraud-detection-backend/internal/repository"
	"fraud-detection-backend/internal/services/predictor"
	"fraud-detection-backend/internal/utils"
)

// ErrMissingInput is returned when a fraud verdict carries no usable echoed input.
var ErrMissingInput = errors.New("prediction flagged fraud without a complete input")

// RecentLimit is how many frauds the dashboard shows.
const RecentLimit = 5

// Predictor is the subset of the prediction service client the service uses.
type Predictor interface {
	BaseURL() string
	Predict(ctx context.Context, body []byte) (*predictor.Response, error)
	Vocabulary(ctx context.Context, v predictor.Vocabulary) (json.RawMessage, error)
	CityData(ctx context.Context, city string) (json.RawMessage, error)
}

// Store persists and reads frauds.
type Store interface {
	Create(ctx context.Context, fraud *models.Fraud) error
	GetByID(ctx context.Context, id uint) (*models.Fraud, error)
	Paginate(ctx context.Context, page, perPage int) (repository.FraudPage, error)
	Recent(ctx context.Context, n int) ([]models.Fraud, error)
	Stats(ctx context.Context) (repository.FraudStats, error)
}

type Service struct {
	predictor Predictor
	store     Store
	notifier  alerts.Notifier
	policy    config.OptionsPolicy
	pageSize  int
}

func NewService(p Predictor, store Store, notifier alerts.Notifier, policy config.OptionsPolicy, pageSize int) *Service {
	if pageSize < 1 {
		pageSize = 10
	}
	return &Service{
		predictor: p,
		store:     store,
		notifier:  notifier,
		policy:    policy,
		pageSize:  pageSize,
	}
}

// PredictResult is the untouched prediction response plus the fraud stored
// for it, if any.
type PredictResult struct {
	StatusCode int
	Body       []byte
	Fraud      *models.Fraud
}

// Predict forwards body to the prediction service and stores one fraud when
// the response carries "is_fraud": true.
func (s *Service) Predict(ctx context.Context, body []byte) (*PredictResult, error) {
	resp, err := s.predictor.Predict(ctx, body)
	if err != nil {
		return nil, err
	}

	fraud, err := s.persistIfFraud(ctx, resp.Body)
	if err != nil {
		return nil, err
	}

	return &PredictResult{StatusCode: resp.StatusCode, Body: resp.Body, Fraud: fraud}, nil
}

func (s *Service) persistIfFraud(ctx context.Context, body []byte) (*models.Fraud, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		// valid JSON that is not an object carries no verdict
		return nil, nil
	}

	if !bytes.Equal(bytes.TrimSpace(fields["is_fraud"]), []byte("true")) {
		return nil, nil
	}

	rawInput := bytes.TrimSpace(fields["input"])
	if len(rawInput) == 0 || bytes.Equal(rawInput, []byte("null")) {
		return nil, ErrMissingInput
	}
	input, err := models.DecodePredictionInput(rawInput)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingInput, err)
	}

	var description string
	if raw, ok := fields["description"]; ok {
		// non-string descriptions are dropped
		_ = json.Unmarshal(raw, &description)
	}

	fraud := input.ToFraud(description, body)
	if err := s.store.Create(ctx, &fraud); err != nil {
		return nil, fmt.Errorf("save fraud: %w", err)
	}
	utils.SafeInfo("[Predict] fraud %d stored for card %s amt=%s", fraud.ID, utils.MaskCardNumber(fraud.CCNum), fraud.Amt.StringFixed(2))

	if s.notifier != nil {
		if err := s.notifier.NotifyFraud(ctx, fraud); err != nil {
			utils.SafeWarn("[Alerts] fraud %d: %v", fraud.ID, err)
		}
	}

	return &fraud, nil
}
