package config

type (
	InternalConfig struct {
		App   App
		Queue Queue
	}

	DriverConfig struct {
		PostgresDB PostgresDB
		RabbitMQ   RabbitMQ
		Logger     Logger
	}

	App struct {
		Env             string
		Port            string
		MaxRequests     int
		ShutdownTimeout int
	}

	Queue struct {
		Name        string
		ConsumerTag string
		Prefetch    int
	}

	PostgresDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Logger struct {
		Level string
	}
)
