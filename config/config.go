// Package config loads deployment configuration from the environment.
package config

import (
	"log"
	"os"

	"quoteadmin/services"
)

type Config struct {
	// AdminPassword gates the console behind a session login. The gate
	// mirrors the original deployment's shared password; it is a
	// convenience barrier, not an access control system.
	AdminPassword string

	// Pricing fixes the discount interpretation for this deployment.
	// Stored data mixes percentage and flat readings, so the mode is
	// chosen once here and applied to every record uniformly.
	Pricing services.PricingMode
}

func MustLoad() Config {
	return Config{
		AdminPassword: mustEnv("QUOTEADMIN_ADMIN_PASSWORD"),
		Pricing: services.PricingMode{
			Discount:                  discountMode(env("QUOTEADMIN_DISCOUNT_MODE", "percent")),
			IncludeFeesInDiscountBase: env("QUOTEADMIN_DISCOUNT_INCLUDES_FEES", "false") == "true",
		},
	}
}

func discountMode(v string) services.DiscountMode {
	switch v {
	case "flat":
		return services.DiscountFlat
	case "percent":
		return services.DiscountPercent
	default:
		log.Fatalf("invalid QUOTEADMIN_DISCOUNT_MODE %q (want percent or flat)", v)
		return ""
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}
