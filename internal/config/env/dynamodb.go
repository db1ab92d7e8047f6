package envconfig

import "github.com/caarlos0/env/v11"

// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
type dynamoDBEnv struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`

	CustomersTable  string `env:"CUSTOMERS_TABLE" envDefault:"customers"`
	VehiclesTable   string `env:"VEHICLES_TABLE" envDefault:"vehicles"`
	ServicesTable   string `env:"SERVICES_TABLE" envDefault:"services"`
	LineItemsTable  string `env:"LINE_ITEMS_TABLE" envDefault:"line_items"`
	WorkOrdersTable string `env:"WORK_ORDERS_TABLE" envDefault:"work_orders"`
	PaymentsTable   string `env:"PAYMENTS_TABLE" envDefault:"payments"`
	UniqueKeysTable string `env:"UNIQUE_KEYS_TABLE" envDefault:"unique_keys"`
}

type dynamoDB struct {
	raw dynamoDBEnv
}

func NewDynamoDBConfig() (*dynamoDB, error) {
	var raw dynamoDBEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &dynamoDB{raw: raw}, nil
}

func (cfg *dynamoDB) Region() string          { return cfg.raw.Region }
func (cfg *dynamoDB) Endpoint() string        { return cfg.raw.Endpoint }
func (cfg *dynamoDB) AccessKeyID() string     { return cfg.raw.AccessKeyID }
func (cfg *dynamoDB) SecretAccessKey() string { return cfg.raw.SecretAccessKey }
func (cfg *dynamoDB) CustomersTable() string  { return cfg.raw.CustomersTable }
func (cfg *dynamoDB) VehiclesTable() string   { return cfg.raw.VehiclesTable }
func (cfg *dynamoDB) ServicesTable() string   { return cfg.raw.ServicesTable }
func (cfg *dynamoDB) LineItemsTable() string  { return cfg.raw.LineItemsTable }
func (cfg *dynamoDB) WorkOrdersTable() string { return cfg.raw.WorkOrdersTable }
func (cfg *dynamoDB) PaymentsTable() string   { return cfg.raw.PaymentsTable }
func (cfg *dynamoDB) UniqueKeysTable() string { return cfg.raw.UniqueKeysTable }
