package rabbitmq_consumer

//go:generate moq -pkg mocks -out ./mocks/amqp_channel_mock.go . AMQPChannel
