// internal/infra/config/config.go
package config

import "os"

// Config holds env-derived settings for the whole application.
type Config struct {
	Port string

	FirestoreProjectID       string
	FirestoreCredentialsFile string
	FirebaseProjectID        string
	GCPCreds                 string

	// Product image bucket (public, uniform access)
	ProductImageBucket string

	// Order archive (PostgreSQL). Empty host disables the archive.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Order confirmation mail. Empty key disables the mailer; the key may
	// also be resolved from Secret Manager at boot.
	SendGridAPIKey     string
	SendGridFrom       string
	SendGridSecretName string
}

// Load reads environment variables and returns a Config.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "bijoux-storefront")

	return &Config{
		Port: getenvDefault("PORT", "8080"),

		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		FirebaseProjectID:        getenvDefault("FIREBASE_PROJECT_ID", defaultProject),
		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		ProductImageBucket: getenvDefault("PRODUCT_IMAGE_BUCKET", "bijoux-product-images"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getenvDefault("DB_PORT", "5432"),
		DBUser:     getenvDefault("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenvDefault("DB_NAME", "bijoux"),

		SendGridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		SendGridFrom:       os.Getenv("SENDGRID_FROM"),
		SendGridSecretName: getenvDefault("SENDGRID_SECRET_NAME", "sendgrid-api-key"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
