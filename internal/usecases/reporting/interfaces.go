package reporting

import (
	"github.com/vfg2006/paused-campaigns-api/internal/domain"
)

// Reporter monta o relatório de campanhas pausadas de uma conta de anúncios.
type Reporter interface {
	GetPausedCampaigns(accountID, accessToken string) (*domain.PausedCampaignsReport, error)
}
