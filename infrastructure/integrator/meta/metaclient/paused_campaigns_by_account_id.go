package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/paused-campaigns-api/infrastructure/integrator/meta/domain"
)

type ResponsePausedCampaigns struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

type statusFilter struct {
	Field    string   `json:"field"`
	Operator string   `json:"operator"`
	Value    []string `json:"value"`
}

// TODO adicionar loop para pegar todas as páginas
func (s *MetaSession) GetPausedCampaignsByAccountID(accountID, accessToken string) ([]metadomain.Campaign, error) {
	baseURL := fmt.Sprintf("%s/act_%s/campaigns", s.cfg.Meta.URL, accountID)

	filtering, err := json.Marshal([]statusFilter{
		{
			Field:    "effective_status",
			Operator: "IN",
			Value:    []string{"PAUSED"},
		},
	})
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("fields", "id,name,status")
	params.Add("filtering", string(filtering))
	params.Add("access_token", accessToken)

	body, err := s.get(baseURL + "?" + params.Encode())
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("Erro ao buscar campanhas pausadas")
		return nil, err
	}

	var response ResponsePausedCampaigns
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON de campanhas pausadas")
		return nil, err
	}

	// Uma conta sem campanhas pausadas é um resultado válido e vazio
	if response.Data == nil {
		return []metadomain.Campaign{}, nil
	}

	// A ordem devolvida pela plataforma é preservada
	return response.Data, nil
}
