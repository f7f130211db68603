package handler

import (
	"net/http"

	"github.com/vfg2006/paused-campaigns-api/internal/api/handler/router"
	"github.com/vfg2006/paused-campaigns-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Campaigns(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns/paused",
			Method:  http.MethodPost,
			Handler: GetPausedCampaigns(service),
		},
	}
}
