package config

import (
	"log/slog"
	"strings"

	"github.com/interviewprep/practice-service/internal/events"
)

// EventConfig holds configuration for event publishing
type EventConfig struct {
	Enabled      bool
	Publisher    string // kafka or log
	KafkaBrokers string
	ReportTopic  string
}

// GetKafkaBrokers returns Kafka brokers as a slice
func (c *EventConfig) GetKafkaBrokers() []string {
	brokers := strings.Split(c.KafkaBrokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}
	return brokers
}

// CreateEventPublisher creates an event publisher based on configuration
func (c *EventConfig) CreateEventPublisher(logger *slog.Logger) (events.EventPublisher, error) {
	if !c.Enabled {
		logger.Info("Event publishing disabled, events are only logged")
		return events.NewLogEventPublisher(logger), nil
	}

	switch c.Publisher {
	case "kafka":
		logger.Info("Creating Kafka event publisher",
			"brokers", c.KafkaBrokers,
			"topic", c.ReportTopic)

		return events.NewKafkaEventPublisher(events.PublisherConfig{
			KafkaBrokers: c.GetKafkaBrokers(),
			TopicName:    c.ReportTopic,
			Logger:       logger,
		})
	case "log":
		logger.Info("Using log event publisher")
		return events.NewLogEventPublisher(logger), nil
	default:
		logger.Warn("Unknown event publisher type, falling back to log publisher", "publisher", c.Publisher)
		return events.NewLogEventPublisher(logger), nil
	}
}
