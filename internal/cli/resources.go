package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// Resource commands are thin views over the REST client, enough to inspect
// the backend's data from the terminal.

func newProjectsCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List writing projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := deps.API.ListProjects(cmd.Context(), 0, 100)
			if err != nil {
				return err
			}
			for _, p := range projects {
				fmt.Printf("%4d  %s", p.ID, p.Name)
				if p.BookTitle != "" {
					fmt.Printf("  (%s)", p.BookTitle)
				}
				fmt.Println()
			}
			return nil
		},
	}
	return cmd
}

func newCharactersCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "characters",
		Short: "List characters",
		RunE: func(cmd *cobra.Command, args []string) error {
			characters, err := deps.API.ListCharacters(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range characters {
				fmt.Printf("%4d  %s", c.ID, c.Name)
				if c.Occupation != "" {
					fmt.Printf("  (%s)", c.Occupation)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func newPresetsCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List instruction presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := deps.API.ListPresets(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range presets {
				fmt.Printf("%4d  %s\n", p.ID, p.Name)
			}
			return nil
		},
	}
}

func newModelsCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "List configured AI models",
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := deps.API.ListAIModels(cmd.Context())
			if err != nil {
				return err
			}
			for _, m := range models {
				fmt.Printf("%4d  %s  (%s)\n", m.ID, m.Alias, m.ModelName)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "test <id>",
		Short: "Test the connection of a configured model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid model id %q", args[0])
			}
			if err := deps.API.TestAIModelConnection(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println(successStyle.Render("Connection OK."))
			return nil
		},
	})
	return cmd
}

func newConversationsCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conversations",
		Short: "Manage saved conversations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved conversations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.Svc.LoadConversationHistory(cmd.Context()); err != nil {
				return err
			}
			for _, c := range deps.Svc.HistoryList() {
				fmt.Printf("%4d  %s\n", c.ID, c.Title)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid conversation id %q", args[0])
			}
			return deps.Svc.DeleteConversation(cmd.Context(), id)
		},
	})
	return cmd
}
