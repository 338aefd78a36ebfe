package calcom

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"openstatus-service/internal/app/config"
	"openstatus-service/internal/pkg/calcom_dto"
	"openstatus-service/internal/pkg/constvars"
	"openstatus-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type scheduleCalcomClient struct {
	BaseUrl    string
	APIKey     string
	APIVersion string
	HTTPClient *http.Client
}

func NewScheduleCalcomClient(internalConfig *config.InternalConfig) ScheduleClient {
	return &scheduleCalcomClient{
		BaseUrl:    internalConfig.Calcom.BaseURL + constvars.CalcomResourceSchedules,
		APIKey:     internalConfig.Calcom.APIKey,
		APIVersion: internalConfig.Calcom.APIVersion,
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.Calcom.TimeoutInSeconds) * time.Second,
		},
	}
}

func (c *scheduleCalcomClient) FindScheduleByID(ctx context.Context, scheduleID string) (*calcom_dto.ScheduleData, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/%s", c.BaseUrl, scheduleID), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.CalcomAuthorizationPrefix+c.APIKey)
	req.Header.Set("cal-api-version", c.APIVersion)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrProviderUnavailable(err, scheduleID)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		return nil, exceptions.ErrProviderUnexpectedStatus(resp.StatusCode, scheduleID)
	}

	scheduleResponse := new(calcom_dto.ScheduleResponse)
	err = json.NewDecoder(resp.Body).Decode(&scheduleResponse)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, scheduleID)
	}

	// Shape gaps are not errors: a missing data object means an empty
	// schedule, not a failed fetch.
	if scheduleResponse.Data == nil {
		return &calcom_dto.ScheduleData{}, nil
	}

	return scheduleResponse.Data, nil
}
