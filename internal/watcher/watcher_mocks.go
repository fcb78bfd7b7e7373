package watcher

//go:generate moq -pkg mocks -out ./mocks/publisher_mock.go . Publisher
//go:generate moq -pkg mocks -out ./mocks/json_publisher_mock.go . JSONPublisher
