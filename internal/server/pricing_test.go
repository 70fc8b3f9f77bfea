package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	pricingdomain "github.com/pawhaus/boarding/internal/pricing/domain"
	"github.com/pawhaus/boarding/pkg/tenantctx"
	"github.com/stretchr/testify/assert"
)

type fakePricingService struct {
	lastReq   pricingdomain.QuoteRequest
	breakdown pricingdomain.PriceBreakdown
	err       error
	sawOrg    bool
}

func (f *fakePricingService) Quote(ctx context.Context, req pricingdomain.QuoteRequest) (pricingdomain.PriceBreakdown, error) {
	f.lastReq = req
	_, f.sawOrg = tenantctx.OrgIDFromContext(ctx)
	if f.err != nil {
		return pricingdomain.PriceBreakdown{}, f.err
	}
	return f.breakdown, nil
}

func newQuoteTestServer(fake *fakePricingService) *Server {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(ErrorHandlingMiddleware())

	srv := &Server{
		engine:     engine,
		pricingSvc: fake,
	}
	srv.registerAPIRoutes()
	return srv
}

func TestQuoteStay_Handler(t *testing.T) {
	fake := &fakePricingService{
		breakdown: pricingdomain.PriceBreakdown{
			TotalNights: 2,
			FinalPrice:  700,
		},
	}
	srv := newQuoteTestServer(fake)

	body, _ := json.Marshal(map[string]any{
		"dog_id":    "123456789",
		"check_in":  "2026-06-01",
		"check_out": "2026-06-03",
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/pricing/quote", bytes.NewReader(body))
	req.Header.Set(HeaderOrg, "987654321")
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, fake.sawOrg)
	assert.Equal(t, "123456789", fake.lastReq.DogID)
	assert.Equal(t, 2, fake.lastReq.CheckOut.Day()-fake.lastReq.CheckIn.Day())

	var resp struct {
		FinalPriceSEK string `json:"final_price_sek"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "700,00 kr", resp.FinalPriceSEK)
}

func TestQuoteStay_MissingOrgHeader(t *testing.T) {
	srv := newQuoteTestServer(&fakePricingService{})

	body, _ := json.Marshal(map[string]any{
		"dog_id":    "123456789",
		"check_in":  "2026-06-01",
		"check_out": "2026-06-03",
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/pricing/quote", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuoteStay_MalformedDate(t *testing.T) {
	srv := newQuoteTestServer(&fakePricingService{})

	body, _ := json.Marshal(map[string]any{
		"dog_id":    "123456789",
		"check_in":  "tomorrow",
		"check_out": "2026-06-03",
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/pricing/quote", bytes.NewReader(body))
	req.Header.Set(HeaderOrg, "987654321")
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuoteStay_DogNotFound(t *testing.T) {
	srv := newQuoteTestServer(&fakePricingService{err: pricingdomain.ErrDogNotFound})

	body, _ := json.Marshal(map[string]any{
		"dog_id":    "123456789",
		"check_in":  "2026-06-01",
		"check_out": "2026-06-03",
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/pricing/quote", bytes.NewReader(body))
	req.Header.Set(HeaderOrg, "987654321")
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
