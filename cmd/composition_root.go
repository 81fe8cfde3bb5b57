package cmd

import (
	"errors"
	"log/slog"

	httpin "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/directory"
	"ordering/internal/adapters/out/kafka"
	"ordering/internal/adapters/out/logsink"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory commands.UoWFactory
	outbox     *commands.NotificationOutbox
	logger     *slog.Logger
	closers    []func() error
}

// NewCompositionRoot wires the adapters around db. Notifications go to Kafka
// when brokers are configured and to the log otherwise.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	gormFactory := postgres.NewGormUnitOfWorkFactory(gormDB)
	var uowFactory commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return gormFactory.Create()
	})

	operators, err := directory.ParseStatic(config.OperatorIDs)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: uowFactory,
		logger:     logger,
	}

	publisher, err := root.newPublisher()
	if err != nil {
		return nil, err
	}
	root.outbox = commands.NewNotificationOutbox(uowFactory, operators, publisher, logger)

	return root, nil
}

func (c *CompositionRoot) newPublisher() (ports.NotificationPublisher, error) {
	if !c.config.KafkaEnabled() {
		c.logger.Warn("KAFKA_BROKERS is empty, notifications are only logged")
		return logsink.NewPublisher(c.logger), nil
	}

	producer, err := kafka.NewSyncProducer(c.config.KafkaBrokers, c.config.KafkaTimeout)
	if err != nil {
		return nil, err
	}
	publisher := kafka.NewPublisher(producer, c.config.KafkaNotificationsTopic, c.logger)
	c.closers = append(c.closers, publisher.Close)
	return publisher, nil
}

func (c *CompositionRoot) retryPolicy() commands.RetryPolicy {
	return commands.RetryPolicy{
		MaxAttempts: c.config.CASMaxAttempts,
		Interval:    c.config.CASRetryInterval,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uowFactory, c.outbox, c.logger)
}

func (c *CompositionRoot) CreateNegotiateCommandHandler() commands.NegotiateCommandHandler {
	return commands.NewNegotiateCommandHandler(c.uowFactory, c.outbox, c.retryPolicy(), c.logger)
}

func (c *CompositionRoot) CreateEditOrderItemsCommandHandler() commands.EditOrderItemsCommandHandler {
	return commands.NewEditOrderItemsCommandHandler(c.uowFactory, c.retryPolicy(), c.logger)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateDeleteNotificationCommandHandler() commands.DeleteNotificationCommandHandler {
	return commands.NewDeleteNotificationCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateRelayNotificationsCommandHandler() commands.RelayNotificationsCommandHandler {
	return commands.NewRelayNotificationsCommandHandler(c.uowFactory, c.outbox, c.logger)
}

func (c *CompositionRoot) CreatePurgeReadNotificationsCommandHandler() commands.PurgeReadNotificationsCommandHandler {
	return commands.NewPurgeReadNotificationsCommandHandler(c.uowFactory, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListNotificationsQueryHandler() queries.ListNotificationsQueryHandler {
	return queries.NewListNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountUnreadNotificationsQueryHandler() queries.CountUnreadNotificationsQueryHandler {
	return queries.NewCountUnreadNotificationsQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the REST server over all use cases.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		Negotiate:         c.CreateNegotiateCommandHandler(),
		EditItems:         c.CreateEditOrderItemsCommandHandler(),
		MarkRead:          c.CreateMarkNotificationReadCommandHandler(),
		DeleteNotif:       c.CreateDeleteNotificationCommandHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
		ListNotifications: c.CreateListNotificationsQueryHandler(),
		CountUnread:       c.CreateCountUnreadNotificationsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateNotificationRelayJob() *jobs.NotificationRelayJob {
	return jobs.NewNotificationRelayJob(
		c.CreateRelayNotificationsCommandHandler(),
		c.config.RelaySchedule,
		c.config.RelayBatchSize,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	purge := jobs.NewNotificationPurgeJob(
		c.CreatePurgeReadNotificationsCommandHandler(),
		c.config.PurgeSchedule,
		c.config.NotificationRetention,
		c.logger,
	)
	return jobs.NewJobManager(c.CreateNotificationRelayJob(), purge)
}

// Close releases the outbound connections opened by the root.
func (c *CompositionRoot) Close() error {
	var err error
	for _, closeFn := range c.closers {
		err = errors.Join(err, closeFn())
	}
	return err
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
