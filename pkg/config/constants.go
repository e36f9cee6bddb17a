package config

// EnvPrefix namespaces every environment variable consumed by the service.
const EnvPrefix = "FORMALFLOW"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "FORMALFLOW_DB_DSN"
	EnvDBHost = "FORMALFLOW_DB_HOST"
	EnvDBUser = "FORMALFLOW_DB_USER"
	EnvDBName = "FORMALFLOW_DB_NAME"
)

var requiredDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
