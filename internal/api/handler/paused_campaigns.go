package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/paused-campaigns-api/internal/usecases/reporting"
	"github.com/vfg2006/paused-campaigns-api/pkg/apiErrors"
	"github.com/vfg2006/paused-campaigns-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type PausedCampaignsRequest struct {
	AccountID   string `json:"account_id"`
	AccessToken string `json:"access_token"`
}

// GetPausedCampaigns valida o payload e delega ao serviço de relatório.
// Nenhuma chamada externa é feita quando o payload é inválido.
func GetPausedCampaigns(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var payload PausedCampaignsRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logger.WithError(err).Warn("campaigns: corpo da requisição inválido")

			apiErrors.WriteError(w, http.StatusBadRequest,
				"É necessário fornecer 'account_id' e 'access_token' no corpo da requisição.")
			return
		}

		if payload.AccountID == "" || payload.AccessToken == "" {
			logger.Warn("campaigns: payload sem 'account_id' ou 'access_token'")

			apiErrors.WriteError(w, http.StatusBadRequest,
				"É necessário fornecer 'account_id' e 'access_token' no corpo da requisição.")
			return
		}

		logger.WithField("account_id", payload.AccountID).Info("campaigns: buscando campanhas pausadas")

		report, err := service.GetPausedCampaigns(payload.AccountID, payload.AccessToken)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": payload.AccountID,
				"error":      err.Error(),
			}).Error("campaigns: falha ao montar o relatório de campanhas pausadas")

			apiErrors.WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}

		logger.WithFields(log.Fields{
			"account_id":             payload.AccountID,
			"paused_campaigns_total": report.Total,
		}).Info("campaigns: relatório montado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithFields(log.Fields{
				"account_id": payload.AccountID,
				"error":      err.Error(),
			}).Error("campaigns: falha ao serializar a resposta")
		}
	})
}
