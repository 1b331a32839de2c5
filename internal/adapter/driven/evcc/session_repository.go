package evcc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/diillson/evcc-charging-report/internal/domain/entity"
	"github.com/diillson/evcc-charging-report/internal/domain/repository"
	"github.com/diillson/evcc-charging-report/internal/shared/types"
)

// requestTimeout bounds each of the two API calls. The fetch is a
// single-shot exchange, there is no retry.
const requestTimeout = 15 * time.Second

// SessionRepositoryImpl implementa o SessionRepository contra a API do evcc.
type SessionRepositoryImpl struct {
	baseURL  string
	password string
	client   *http.Client
	logger   *zap.Logger
}

// NewSessionRepository cria uma nova implementação do SessionRepository.
// The client carries a cookie jar because the evcc login call answers with
// a session cookie that the subsequent data call must present.
func NewSessionRepository(baseURL, password string, logger *zap.Logger) repository.SessionRepository {
	jar, _ := cookiejar.New(nil)
	return &SessionRepositoryImpl{
		baseURL:  strings.TrimRight(baseURL, "/"),
		password: password,
		client: &http.Client{
			Jar:     jar,
			Timeout: requestTimeout,
		},
		logger: logger,
	}
}

// FetchSessions performs the optional login followed by the sessions GET.
// A period without sessions yields an empty slice and a nil error.
func (r *SessionRepositoryImpl) FetchSessions(ctx context.Context, period entity.Period, lang string) ([]entity.RawSession, error) {
	if r.password != "" {
		if err := r.login(ctx); err != nil {
			return nil, err
		}
	}

	apiURL := fmt.Sprintf("%s/api/sessions?lang=%s&year=%d&month=%d",
		r.baseURL, lang, period.Year, int(period.Month))

	r.logger.Info("fetching charging data",
		zap.String("period", period.String()),
		zap.String("url", apiURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &types.ConnectivityError{URL: r.baseURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &types.HTTPStatusError{StatusCode: resp.StatusCode}
	}

	var sessions []entity.RawSession
	if err := json.NewDecoder(resp.Body).Decode(&sessions); err != nil {
		return nil, fmt.Errorf("decoding sessions response: %w", err)
	}

	r.logger.Info("data fetched successfully", zap.Int("sessions", len(sessions)))
	return sessions, nil
}

func (r *SessionRepositoryImpl) login(ctx context.Context) error {
	loginURL := r.baseURL + "/api/auth/login"

	payload, err := json.Marshal(map[string]string{"password": r.password})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return &types.ConnectivityError{URL: r.baseURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", types.ErrAuthenticationFailed, resp.StatusCode)
	}

	return nil
}
