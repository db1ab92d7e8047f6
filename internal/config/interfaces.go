package config

import "time"

type HTTP interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	GinMode() string
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Storage interface {
	Driver() string
	UseMemory() bool
	AutoCreateTables() bool
}

type DynamoDB interface {
	Region() string
	Endpoint() string
	AccessKeyID() string
	SecretAccessKey() string
	CustomersTable() string
	VehiclesTable() string
	ServicesTable() string
	LineItemsTable() string
	WorkOrdersTable() string
	PaymentsTable() string
	UniqueKeysTable() string
}

type Payments interface {
	MockMode() bool
	AccessToken() string
	TestPayerEmail() string
	TestPayerUserID() string
}
