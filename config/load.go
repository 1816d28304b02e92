package config

import (
	"log/slog"
	"os"
	"strconv"
)

func Load() App {
	cfg := App{
		Port:           getenv("APP_PORT", "8080"),
		CatalogAPIURL:  must("CATALOG_API_URL"),
		JWTSecret:      getenv("JWT_SECRET", "local_dev_secret"),
		Env:            getenv("APP_ENV", "dev"),
		LoanCeiling:    getenvInt("LOAN_CEILING", 5),
		ReviewPageSize: getenvInt("REVIEW_PAGE_SIZE", 5),
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("bad int env, using default", "key", k, "value", v, "default", def)
		return def
	}
	return n
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
