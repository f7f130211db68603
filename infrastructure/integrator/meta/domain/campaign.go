package metadomain

type Campaign struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
}

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// CampaignInsight carrega as métricas brutas de uma campanha como a API
// devolve: campos numéricos vêm como strings e podem estar ausentes.
type CampaignInsight struct {
	Impressions string   `json:"impressions"`
	Clicks      string   `json:"clicks"`
	Ctr         string   `json:"ctr"`
	Cpc         string   `json:"cpc"`
	Spend       string   `json:"spend"`
	Actions     []Action `json:"actions"`
	DateStart   string   `json:"date_start"`
	DateStop    string   `json:"date_stop"`
}
