package kafka_config

import "time"

const (
	DefaultKafkaBrokers = "localhost:9092"

	DefaultProducerMaxAttempts  = 3
	DefaultProducerBatchTimeout = 10 * time.Millisecond
	DefaultProducerRequireAcks  = -1 // require all replicas
	DefaultProducerCompression  = "snappy"
	DefaultProducerAsync        = false

	// Event publishing is best-effort and off by default; the booking
	// flow works without a broker.
	DefaultKafkaEnabled = false
)
