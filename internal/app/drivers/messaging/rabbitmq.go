package messaging

import (
	"calmora-service/internal/app/config"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/rabbitmq/amqp091-go"
)

func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)

	// Naming the connection after the binary distinguishes the api and
	// consumer processes in the broker's connection listing.
	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName("calmora-" + filepath.Base(os.Args[0]))

	conn, err := amqp091.DialConfig(connectionString, amqp091.Config{
		Properties: properties,
	})
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}
