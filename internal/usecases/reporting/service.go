package reporting

import (
	"sync"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/paused-campaigns-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/paused-campaigns-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/paused-campaigns-api/internal/config"
	"github.com/vfg2006/paused-campaigns-api/internal/domain"
	"github.com/vfg2006/paused-campaigns-api/pkg/utils"
)

type Service struct {
	cfg    *config.Config
	client metaclient.Client
}

func NewService(cfg *config.Config, client metaclient.Client) Reporter {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

// insightResult guarda o desfecho da busca de insights de uma campanha,
// indexado pela posição da campanha na listagem.
type insightResult struct {
	response *metaclient.ResponseCampaignInsights
	err      error
}

// GetPausedCampaigns lista as campanhas pausadas da conta e busca os insights
// de todas elas de forma concorrente sobre a mesma sessão. Falhas individuais
// de insights degradam apenas a campanha correspondente; a falha da listagem
// aborta a operação inteira.
func (s *Service) GetPausedCampaigns(accountID, accessToken string) (*domain.PausedCampaignsReport, error) {
	session := s.client.NewSession()
	defer session.Close()

	campaigns, err := session.GetPausedCampaignsByAccountID(accountID, accessToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("reporting: falha ao listar campanhas pausadas")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id":      accountID,
		"total_campaigns": len(campaigns),
	}).Debug("reporting: campanhas pausadas listadas, buscando insights")

	results := s.fetchAllInsights(session, campaigns, accessToken)

	reports := make([]*domain.CampaignReport, 0, len(campaigns))
	for i, campaign := range campaigns {
		reports = append(reports, buildCampaignReport(campaign, results[i]))
	}

	return &domain.PausedCampaignsReport{
		Total:     len(reports),
		Campaigns: reports,
	}, nil
}

// fetchAllInsights dispara uma goroutine por campanha e espera todas
// terminarem. Cada resultado é gravado na posição da campanha de origem, de
// modo que a ordem da listagem é preservada independentemente da ordem de
// conclusão. Não há cancelamento antecipado: uma falha não interrompe as irmãs.
func (s *Service) fetchAllInsights(session metaclient.Session, campaigns []metadomain.Campaign, accessToken string) []insightResult {
	results := make([]insightResult, len(campaigns))

	var wg sync.WaitGroup
	for i, campaign := range campaigns {
		wg.Add(1)

		go func(idx int, campaignID string) {
			defer wg.Done()

			response, err := session.GetCampaignInsightsByID(campaignID, accessToken)
			results[idx] = insightResult{response: response, err: err}
		}(i, campaign.ID)
	}

	wg.Wait()

	return results
}

// buildCampaignReport monta o relatório de uma campanha a partir do desfecho
// da busca de insights. Sem insights (falha ou lista vazia) a campanha entra
// no relatório com métricas zeradas em vez de ser descartada.
func buildCampaignReport(campaign metadomain.Campaign, result insightResult) *domain.CampaignReport {
	report := &domain.CampaignReport{
		ID:   campaign.ID,
		Name: campaign.Name,
		Cpc:  "0.00",
		Ctr:  "0.00%",
	}

	if result.err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"error":       result.err.Error(),
		}).Error("reporting: falha ao buscar insights da campanha, usando métricas zeradas")
		return report
	}

	if result.response == nil || len(result.response.Data) == 0 {
		logrus.WithField("campaign_id", campaign.ID).Debug("reporting: campanha sem dados de insights")
		return report
	}

	insight := result.response.Data[0]

	impressions := utils.ParseFloatOrZero("impressions", campaign.ID, insight.Impressions)
	clicks := utils.ParseFloatOrZero("clicks", campaign.ID, insight.Clicks)
	cpc := utils.ParseFloatOrZero("cpc", campaign.ID, insight.Cpc)

	// O ctr é sempre recalculado a partir dos campos brutos, ignorando o
	// valor derivado que a plataforma devolve
	var ctr float64
	if impressions > 0 {
		ctr = clicks / impressions * 100
	}

	report.Impressions = int(impressions)
	report.Clicks = int(clicks)
	report.Ctr = utils.FormatPercentage(utils.RoundWithTwoDecimalPlace(ctr))
	report.Cpc = utils.FormatCurrency(cpc)

	return report
}
