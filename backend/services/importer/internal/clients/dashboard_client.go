package clients

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const serviceTokenTTL = 2 * time.Minute

// DashboardClient calls the dashboard API's internal endpoints with a signed
// service token so the dashboard drops its query cache after a seed.
type DashboardClient struct {
	baseURL string
	secret  []byte
	client  *http.Client
	logger  *zap.Logger
}

// NewDashboardClient builds HTTP client wrapper.
func NewDashboardClient(baseURL, secret string, logger *zap.Logger) *DashboardClient {
	return &DashboardClient{
		baseURL: baseURL,
		secret:  []byte(secret),
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// InvalidateActivities asks the dashboard to drop cached activity queries.
func (c *DashboardClient) InvalidateActivities(ctx context.Context) error {
	token, err := c.serviceToken()
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/internal/cache/invalidate", c.baseURL), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("dashboard client request failed", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		c.logger.Warn("dashboard client returned non-success", zap.Int("status", resp.StatusCode))
		return fmt.Errorf("cache invalidate non-success status %d", resp.StatusCode)
	}
	return nil
}

func (c *DashboardClient) serviceToken() (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"service": "importer",
		"iat":     jwt.NewNumericDate(now),
		"exp":     jwt.NewNumericDate(now.Add(serviceTokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}
