package messaging

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"occupancy-agent-go/internal/config"
	"occupancy-agent-go/internal/models"
)

// Service publishes window aggregates on a NATS subject for on-prem
// consumers. It is a best-effort fan-out alongside the HTTP report and
// never gates the agent loop.
type Service struct {
	conn *nats.Conn
	cfg  *config.Config
}

func NewService(cfg *config.Config) (*Service, error) {
	opts := []nats.Option{
		nats.Name(cfg.AgentID),
		nats.Timeout(cfg.NatsConnectTimeout),
		nats.ReconnectWait(cfg.NatsReconnectWait),
		nats.MaxReconnects(cfg.NatsMaxReconnects),
	}

	conn, err := nats.Connect(cfg.NatsURL, opts...)
	if err != nil {
		return nil, err
	}

	log.Info().Str("url", cfg.NatsURL).Str("subject", cfg.NatsSubject).Msg("NATS connection established")

	return &Service{
		conn: conn,
		cfg:  cfg,
	}, nil
}

// PublishWindow emits one window aggregate as a JSON event.
func (s *Service) PublishWindow(report models.WindowReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}

	return s.conn.Publish(s.cfg.NatsSubject, payload)
}

func (s *Service) IsConnected() bool {
	return s.conn != nil && s.conn.IsConnected()
}

// Shutdown drains the connection, falling back to an immediate close.
func (s *Service) Shutdown() {
	if s.conn == nil {
		return
	}
	if err := s.conn.Drain(); err != nil {
		log.Warn().Err(err).Msg("Failed to drain NATS connection gracefully, closing immediately")
		s.conn.Close()
	}
}
