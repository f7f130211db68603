package metaclient

import (
	"io"
	"net/http"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/paused-campaigns-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/paused-campaigns-api/internal/config"
)

type Client interface {
	NewSession() Session
}

// Session agrupa as chamadas de uma única requisição da API sobre um mesmo
// http.Client, com timeout total configurado. Uma sessão nunca é compartilhada
// entre requisições e deve ser fechada ao final do fan-out.
type Session interface {
	GetPausedCampaignsByAccountID(accountID, accessToken string) ([]metadomain.Campaign, error)
	GetCampaignInsightsByID(campaignID, accessToken string) (*ResponseCampaignInsights, error)
	Close()
}

type MetaClient struct {
	Cfg *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{Cfg: cfg}
}

// NewSession cria uma sessão com transporte próprio, para que as conexões
// abertas durante o fan-out sejam reaproveitadas entre as chamadas da mesma
// requisição e liberadas no Close.
func (c *MetaClient) NewSession() Session {
	transport := &http.Transport{}

	return &MetaSession{
		cfg:       c.Cfg,
		transport: transport,
		httpClient: &http.Client{
			Timeout:   c.Cfg.Meta.RequestTimeout,
			Transport: transport,
		},
	}
}

type MetaSession struct {
	cfg        *config.Config
	transport  *http.Transport
	httpClient *http.Client
}

func (s *MetaSession) Close() {
	s.transport.CloseIdleConnections()
}

// handleResponse lê o corpo da resposta e converte status não-2xx em
// RequestError, preservando o corpo bruto.
func (s *MetaSession) handleResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o corpo da resposta")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &metadomain.RequestError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}

func (s *MetaSession) get(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao fazer a requisição")
	}

	return s.handleResponse(resp)
}
