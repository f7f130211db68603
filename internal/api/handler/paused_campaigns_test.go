package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/paused-campaigns-api/internal/domain"
	"github.com/vfg2006/paused-campaigns-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestGetPausedCampaigns_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "payload sem account_id",
			body: `{"access_token": "token"}`,
		},
		{
			name: "payload sem access_token",
			body: `{"account_id": "123"}`,
		},
		{
			name: "payload com campos vazios",
			body: `{"account_id": "", "access_token": ""}`,
		},
		{
			name: "corpo não é JSON válido",
			body: `{account_id`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// Nenhuma chamada ao serviço é esperada em payload inválido
			mockService := mocks.NewMockReporter(ctrl)

			req := httptest.NewRequest(http.MethodPost, "/v1/campaigns/paused", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			GetPausedCampaigns(mockService).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var response struct {
				Detail string `json:"detail"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.NotEmpty(t, response.Detail)
		})
	}
}

func TestGetPausedCampaigns_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockReporter(ctrl)
	mockService.EXPECT().
		GetPausedCampaigns("123", "token").
		Return(&domain.PausedCampaignsReport{
			Total: 2,
			Campaigns: []*domain.CampaignReport{
				{
					ID:          "1",
					Name:        "A",
					Cpc:         "2.00",
					Impressions: 100,
					Clicks:      5,
					Ctr:         "5.00%",
				},
				{
					ID:          "2",
					Name:        "B",
					Cpc:         "0.00",
					Impressions: 0,
					Clicks:      0,
					Ctr:         "0.00%",
				},
			},
		}, nil)

	body := `{"account_id": "123", "access_token": "token"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/campaigns/paused", strings.NewReader(body))
	rec := httptest.NewRecorder()

	GetPausedCampaigns(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	assert.Equal(t, float64(2), response["paused_campaigns_total"])

	campaigns, ok := response["paused_campaigns"].([]interface{})
	require.True(t, ok)
	require.Len(t, campaigns, 2)

	first, ok := campaigns[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "1", first["id"])
	assert.Equal(t, "A", first["nome_da_campanha"])
	assert.Equal(t, "2.00", first["cpc"])
	assert.Equal(t, float64(100), first["impressions"])
	assert.Equal(t, float64(5), first["clicks"])
	assert.Equal(t, "5.00%", first["ctr"])
}

func TestGetPausedCampaigns_UpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockReporter(ctrl)
	mockService.EXPECT().
		GetPausedCampaigns("123", "token").
		Return(nil, errors.New("erro 500: upstream indisponível"))

	body := `{"account_id": "123", "access_token": "token"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/campaigns/paused", strings.NewReader(body))
	rec := httptest.NewRecorder()

	GetPausedCampaigns(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var response struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "erro 500: upstream indisponível", response.Detail)
}
