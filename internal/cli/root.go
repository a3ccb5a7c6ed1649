// Package cli provides the terminal commands of the writing-tool client.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/SoofabhMK1/ai-writing-system/internal/api"
	"github.com/SoofabhMK1/ai-writing-system/internal/config"
	"github.com/SoofabhMK1/ai-writing-system/internal/service"
)

// Deps carries the wired dependencies from the app layer into commands.
type Deps struct {
	Cfg *config.Config
	API *api.Client
	Svc *service.ConversationService
}

// NewRootCmd assembles the command tree.
func NewRootCmd(deps *Deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "inkwell",
		Short:         "Terminal client for the AI-assisted writing tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newChatCmd(deps),
		newProjectsCmd(deps),
		newCharactersCmd(deps),
		newPresetsCmd(deps),
		newModelsCmd(deps),
		newConversationsCmd(deps),
	)
	return root
}
