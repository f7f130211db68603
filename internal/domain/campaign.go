package domain

// CampaignReport é a visão de uma campanha pausada devolvida ao cliente.
// As chaves JSON preservam o contrato original da API.
type CampaignReport struct {
	ID          string `json:"id"`
	Name        string `json:"nome_da_campanha"`
	Cpc         string `json:"cpc"`
	Impressions int    `json:"impressions"`
	Clicks      int    `json:"clicks"`
	Ctr         string `json:"ctr"`
}

// PausedCampaignsReport agrega os relatórios de uma conta. Total é sempre
// igual a len(Campaigns) e a ordem segue a listagem da plataforma.
type PausedCampaignsReport struct {
	Total     int               `json:"paused_campaigns_total"`
	Campaigns []*CampaignReport `json:"paused_campaigns"`
}
