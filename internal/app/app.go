package app

import "zeroize/internal/domain"

// App bundles the dependencies subcommands share.
type App struct {
	Secrets domain.Vault
}

func New(secrets domain.Vault) *App {
	return &App{Secrets: secrets}
}
