package main

import (
	inquirieshandler "venuebook/internal/inquiries/handler"
	inquiriesrepo "venuebook/internal/inquiries/repository"
	inquiriesservice "venuebook/internal/inquiries/service"
	inquiriesvalidator "venuebook/internal/inquiries/validator"
	venueshandler "venuebook/internal/venues/handler"
	venuesrepo "venuebook/internal/venues/repository"
	venuesservice "venuebook/internal/venues/service"
	"venuebook/pkg/app"
	"venuebook/pkg/config"
	"venuebook/pkg/kafka"
	kafka_config "venuebook/pkg/kafka/config"
)

const ServiceName = "venuebook"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting venuebook service")

	venueService, inquiryService := initServices(cfg)

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg,
		venueshandler.NewVenueHandler(venueService, cfg.Log),
		inquirieshandler.NewInquiryHandler(inquiryService, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config) (venuesservice.VenueService, inquiriesservice.InquiryService) {
	venueRepo := venuesrepo.NewMongoVenueRepository(cfg)
	venueService := venuesservice.NewVenueService(venueRepo, cfg)

	inquiryRepo := inquiriesrepo.NewMongoInquiryRepository(cfg)
	lockRepo := inquiriesrepo.NewInquiryLockRepository(cfg)
	inquiryValidator := inquiriesvalidator.NewInquiryValidator(cfg.Log)

	inquiryService := inquiriesservice.NewInquiryService(
		inquiryRepo,
		lockRepo,
		venueRepo,
		inquiryValidator,
		initPublisher(cfg),
		cfg,
	)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)
	return venueService, inquiryService
}

// initPublisher wires the Kafka producer when eventing is enabled. A
// nil publisher keeps the admission pipeline fully functional without
// a broker.
func initPublisher(cfg *config.Config) inquiriesservice.EventPublisher {
	kafkaCfg := kafka_config.Load()
	if !kafkaCfg.Enabled {
		cfg.Log.Info("Kafka eventing disabled")
		return nil
	}

	producer, err := kafka.NewProducer(kafkaCfg, cfg.InquiryEventsTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	cfg.Log.Info("Kafka producer initialized", "topic", cfg.InquiryEventsTopic)
	return producer
}
