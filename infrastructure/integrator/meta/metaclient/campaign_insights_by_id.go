package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/paused-campaigns-api/infrastructure/integrator/meta/domain"
)

type ResponseCampaignInsights struct {
	Data   []metadomain.CampaignInsight `json:"data"`
	Paging metadomain.Paging            `json:"paging"`
}

// GetCampaignInsightsByID busca as métricas de uma campanha sobre todo o
// período disponível (date_preset=maximum). Uma falha aqui afeta apenas a
// campanha consultada.
func (s *MetaSession) GetCampaignInsightsByID(campaignID, accessToken string) (*ResponseCampaignInsights, error) {
	baseURL := fmt.Sprintf("%s/%s/insights", s.cfg.Meta.URL, campaignID)

	params := url.Values{}
	params.Add("fields", "impressions,clicks,ctr,cpc,spend,actions")
	params.Add("date_preset", "maximum")
	params.Add("access_token", accessToken)

	body, err := s.get(baseURL + "?" + params.Encode())
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("Erro ao buscar insights da campanha")
		return nil, err
	}

	var response ResponseCampaignInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("Erro ao decodificar JSON de insights da campanha")
		return nil, err
	}

	return &response, nil
}
