package configs

// Kafka configures status-change notifications. With no brokers events are
// dropped.
type Kafka struct {
	Brokers []string `env:"BROKERS"`
	Topic   string   `env:"TOPIC" envDefault:"spendguard.campaign-status"`
}
