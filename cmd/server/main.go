package main

import (
	availabilityhandler "paintly/internal/availability/handler"
	availabilityrepo "paintly/internal/availability/repository"
	availabilityservice "paintly/internal/availability/service"
	availabilityvalidator "paintly/internal/availability/validator"
	"paintly/internal/health"
	matchinghandler "paintly/internal/matching/handler"
	matchingrepo "paintly/internal/matching/repository"
	matchingservice "paintly/internal/matching/service"
	profileshandler "paintly/internal/profiles/handler"
	profilesrepo "paintly/internal/profiles/repository"
	profilesservice "paintly/internal/profiles/service"
	profilesvalidator "paintly/internal/profiles/validator"
	"paintly/pkg/app"
	"paintly/pkg/config"
	"paintly/pkg/events"
	kafka_config "paintly/pkg/kafka/config"
)

const ServiceName = "paintly-server"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Paintly server")

	painterRepo := profilesrepo.NewMongoPainterRepository(cfg)
	customerRepo := profilesrepo.NewMongoCustomerRepository(cfg)
	slotRepo := availabilityrepo.NewMongoSlotRepository(cfg)
	bookingRepo := matchingrepo.NewMongoBookingRepository(cfg)

	publisher := initPublisher(cfg)
	defer func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	}()

	profileService := profilesservice.NewProfileService(
		painterRepo,
		customerRepo,
		profilesvalidator.NewProfileValidator(cfg.Log),
		cfg,
	)
	availabilityService := availabilityservice.NewAvailabilityService(
		slotRepo,
		painterRepo,
		availabilityvalidator.NewSlotValidator(cfg.Log),
		cfg,
	)
	matcherService := matchingservice.NewMatcherService(
		slotRepo,
		bookingRepo,
		painterRepo,
		customerRepo,
		publisher,
		cfg,
	)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		health.NewHandler(cfg.Client.Mongo, cfg.Log),
		profileshandler.NewProfileHandler(profileService, cfg.Log),
		availabilityhandler.NewAvailabilityHandler(availabilityService, cfg.Log),
		matchinghandler.NewBookingHandler(matcherService, cfg.Log),
	)
	serverApp.Run()
}

func initPublisher(cfg *config.Config) events.Publisher {
	if !cfg.EventsEnabled {
		cfg.Log.Info("Booking event feed disabled")
		return events.NoopPublisher{}
	}

	publisher, err := events.NewKafkaPublisher(kafka_config.Load(), cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize event publisher", "error", err)
	}
	return publisher
}
