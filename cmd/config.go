package cmd

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	AmqpHost          string
	AmqpPort          int
	AmqpUser          string
	AmqpPassword      string
	TableCount        int
	SessionTTLMinutes int
}
