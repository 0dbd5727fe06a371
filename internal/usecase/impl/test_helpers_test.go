package impl

import (
	"io"
	"log/slog"

	"farmnaturals/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(bootstrapAdmins ...string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:      4,
			BootstrapAdmins: bootstrapAdmins,
		},
	}
}
