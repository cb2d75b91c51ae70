package paymentControllers

import (
	"bytes"
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/velora-shop/storefront-api/models"
)

// HeleketProvider posts an invoice to the Heleket payment API. Requests are
// signed with md5(base64(body) + apiKey) per their scheme.
type HeleketProvider struct {
	MerchantID string
	APIKey     string
	APIURL     string
	SuccessURL string
	CancelURL  string
}

type heleketResponse struct {
	Result *struct {
		UUID string `json:"uuid"`
		URL  string `json:"url"`
	} `json:"result,omitempty"`
	Message string `json:"message,omitempty"`
}

func (p *HeleketProvider) CreateCheckoutSession(order *models.Order) (string, error) {
	if p.MerchantID == "" || p.APIKey == "" || p.APIURL == "" {
		return "", fmt.Errorf("heleket configuration missing")
	}

	payload := map[string]interface{}{
		"amount":       order.TotalPrice.StringFixed(2),
		"currency":     "USD",
		"order_id":     order.OrderRef,
		"url_success":  p.SuccessURL,
		"url_return":   p.CancelURL,
		"url_callback": p.SuccessURL,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, p.APIURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("merchant", p.MerchantID)
	req.Header.Set("sign", heleketSign(body, p.APIKey))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach heleket: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("heleket API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var parsed heleketResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse heleket response: %w", err)
	}
	if parsed.Result == nil || parsed.Result.URL == "" {
		return "", fmt.Errorf("heleket error: %s", parsed.Message)
	}
	return parsed.Result.URL, nil
}

func heleketSign(body []byte, apiKey string) string {
	encoded := base64.StdEncoding.EncodeToString(body)
	sum := md5.Sum([]byte(encoded + apiKey))
	return hex.EncodeToString(sum[:])
}
