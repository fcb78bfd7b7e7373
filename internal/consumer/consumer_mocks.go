package consumer

//go:generate moq -pkg mocks -out ./mocks/delivery_client_mock.go . DeliveryClient
//go:generate moq -pkg mocks -out ./mocks/message_handler_mock.go . MessageHandler
