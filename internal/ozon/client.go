package ozon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mkraev/sellerboard/internal/errs"
	"github.com/mkraev/sellerboard/internal/model"
	"go.uber.org/zap"
)

const (
	listPath  = "/v3/posting/fbs/list"
	labelPath = "/v2/posting/fbs/package-label"

	pageLimit = 1000
	// потолок безопасности: дальше 50 страниц не листаем, живость важнее полноты
	maxPages = 50
)

type Client interface {
	FetchPostings(ctx context.Context, creds model.OzonCredentials, from, to time.Time, status string) ([]model.Posting, error)
	PackageLabels(ctx context.Context, creds model.OzonCredentials, postingNumbers []string) ([]byte, error)
	VerifyCredentials(ctx context.Context, creds model.OzonCredentials) error
}

type client struct {
	baseURL string
	http    *resty.Client
	logger  *zap.SugaredLogger
}

func NewClient(baseURL string, logger *zap.SugaredLogger) Client {
	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    resty.New(),
		logger:  logger,
	}
}

type listFilter struct {
	Since  string `json:"since"`
	To     string `json:"to"`
	Status string `json:"status,omitempty"`
}

type listWith struct {
	AnalyticsData bool `json:"analytics_data"`
	Barcodes      bool `json:"barcodes"`
	FinancialData bool `json:"financial_data"`
	Translit      bool `json:"translit"`
}

type listRequest struct {
	Dir    string     `json:"dir"`
	Filter listFilter `json:"filter"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
	With   listWith   `json:"with"`
}

type listResponse struct {
	Result struct {
		Postings []model.Posting `json:"postings"`
		HasNext  bool            `json:"has_next"`
	} `json:"result"`
}

// FetchPostings выкачивает все страницы окна [from, to]. Любая неудачная
// страница отменяет выборку целиком, частичный результат не возвращается.
func (c *client) FetchPostings(ctx context.Context, creds model.OzonCredentials, from, to time.Time, status string) ([]model.Posting, error) {
	var all []model.Posting

	offset := 0
	for page := 0; ; page++ {
		if page >= maxPages {
			c.logger.Warnf("posting list: safety pagination limit reached, returning %d postings", len(all))
			break
		}

		body := listRequest{
			Dir: "DESC",
			Filter: listFilter{
				Since:  from.UTC().Format(time.RFC3339),
				To:     to.UTC().Format(time.RFC3339),
				Status: status,
			},
			Limit:  pageLimit,
			Offset: offset,
			With: listWith{
				AnalyticsData: true,
				FinancialData: true,
				Translit:      true,
			},
		}

		resp, err := c.http.R().
			SetContext(ctx).
			SetHeader("Client-Id", creds.ClientID).
			SetHeader("Api-Key", creds.APIKey).
			SetHeader("Content-Type", "application/json").
			SetBody(body).
			Post(c.baseURL + listPath)
		if err != nil {
			c.logger.Errorf("posting list request failed: %v", err)
			return nil, fmt.Errorf("posting list request: %w", err)
		}
		if resp.StatusCode() != http.StatusOK {
			return nil, remoteError(resp.StatusCode(), resp.Body())
		}

		var parsed listResponse
		if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
			return nil, fmt.Errorf("decode posting list: %w", err)
		}

		all = append(all, parsed.Result.Postings...)

		if !parsed.Result.HasNext {
			break
		}
		offset += pageLimit
	}

	return all, nil
}

// PackageLabels возвращает PDF с этикетками для явного набора отправлений.
func (c *client) PackageLabels(ctx context.Context, creds model.OzonCredentials, postingNumbers []string) ([]byte, error) {
	clean := make([]string, 0, len(postingNumbers))
	for _, n := range postingNumbers {
		if n = strings.TrimSpace(n); n != "" {
			clean = append(clean, n)
		}
	}
	if len(clean) == 0 {
		return nil, errs.ErrEmptyPostingList
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Client-Id", creds.ClientID).
		SetHeader("Api-Key", creds.APIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/pdf, application/json").
		SetBody(map[string][]string{"posting_number": clean}).
		Post(c.baseURL + labelPath)
	if err != nil {
		c.logger.Errorf("package label request failed: %v", err)
		return nil, fmt.Errorf("package label request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, remoteError(resp.StatusCode(), resp.Body())
	}

	return resp.Body(), nil
}

// VerifyCredentials — узкая проба в одни сутки, чтобы не тащить лишние данные.
func (c *client) VerifyCredentials(ctx context.Context, creds model.OzonCredentials) error {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -1)

	if _, err := c.FetchPostings(ctx, creds, from, to, ""); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrInvalidCredentials, err)
	}
	return nil
}

// remoteError разбирает тело отказа: {error: {...}} или плоский вариант,
// иначе сырой текст.
func remoteError(status int, body []byte) error {
	re := &errs.RemoteError{StatusCode: status}

	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err == nil {
		main := parsed
		if inner, ok := parsed["error"].(map[string]any); ok {
			main = inner
		}
		re.Code = stringify(main["code"])
		re.Message = stringify(main["message"])
		if d, ok := main["details"]; ok && d != nil {
			raw, _ := json.Marshal(d)
			re.Details = string(raw)
		}
	}

	if re.Code == "" && re.Message == "" {
		re.Message = strings.TrimSpace(string(body))
	}
	return re
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		raw, _ := json.Marshal(t)
		return string(raw)
	}
}
