package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/faang/internal/catalog"
	"github.com/dbmrq/faang/internal/logging"
)

// Run starts the browser on the alternate screen and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, cat *catalog.Catalog, filter catalog.Filter, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(cat, filter), opts...)

	logging.Info("browse started", "resources", cat.Len())
	_, err := p.Run()
	if err != nil {
		logging.Error("browse failed", "error", err)
		return err
	}
	logging.Info("browse finished")
	return nil
}
