package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kontent-tools/kontaudit/pkg/app/screens"
	"github.com/kontent-tools/kontaudit/pkg/config"
)

type App struct {
	cfg config.Config
}

func NewApp(cfg config.Config) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
