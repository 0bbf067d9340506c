package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrValidatorTimeout is returned when the validation server does not
	// answer within the configured deadline.
	ErrValidatorTimeout = errors.New("validation server timed out")

	// ErrValidatorUnavailable is returned when the validation server cannot
	// be reached, answers with a non-success status, or sends a body that
	// does not decode into verdicts.
	ErrValidatorUnavailable = errors.New("validation server unavailable")
)

type ValidationRequest struct {
	Letter    string `json:"letter"`
	Name      string `json:"name"`
	Animal    string `json:"animal"`
	Place     string `json:"place"`
	Object    string `json:"object"`
	SessionID string `json:"sessionID"`
}

type ValidationResult struct {
	IsNameCorrect   bool `json:"isNameCorrect"`
	IsAnimalCorrect bool `json:"isAnimalCorrect"`
	IsPlaceCorrect  bool `json:"isPlaceCorrect"`
	IsObjectCorrect bool `json:"isObjectCorrect"`
}

// ValidationClient posts round answers to the external validation server and
// relays its verdicts. Verdicts are not cached or persisted.
type ValidationClient struct {
	endpoint string
	client   *http.Client
}

func NewValidationClient(endpoint string, timeout time.Duration) *ValidationClient {
	return &ValidationClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (v *ValidationClient) Validate(req *ValidationRequest) (*ValidationResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := v.client.Post(v.endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) && uerr.Timeout() {
			return nil, fmt.Errorf("%w: %v", ErrValidatorTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrValidatorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: status %d", ErrValidatorUnavailable, resp.StatusCode)
	}

	var result ValidationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: bad response body: %v", ErrValidatorUnavailable, err)
	}

	return &result, nil
}
