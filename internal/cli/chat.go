package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/SoofabhMK1/ai-writing-system/internal/model"
)

func newChatCmd(deps *Deps) *cobra.Command {
	var (
		modelID       int
		preview       bool
		initialPrompt string
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if modelID == 0 {
				modelID = deps.Cfg.AIModelID
			}
			if modelID == 0 {
				return fmt.Errorf("no AI model selected; pass --model or set AI_MODEL_ID")
			}
			if cmd.Flags().Changed("preview") {
				deps.Svc.SetPreviewBeforeSend(preview)
			}
			return runChatLoop(cmd.Context(), deps, modelID, initialPrompt)
		},
	}

	cmd.Flags().IntVarP(&modelID, "model", "m", 0, "AI model id to chat with")
	cmd.Flags().BoolVar(&preview, "preview", false, "confirm each payload before sending")
	cmd.Flags().StringVar(&initialPrompt, "initial-prompt", "", "pre-fill the first input line")
	return cmd
}

func runChatLoop(ctx context.Context, deps *Deps, modelID int, initialPrompt string) error {
	rl := liner.NewLiner()
	defer rl.Close()
	rl.SetCtrlCAborts(true)

	fmt.Println(headingStyle.Render("inkwell chat"))
	fmt.Println("Type a message, or /help for commands.")

	pending := initialPrompt
	for {
		var (
			line string
			err  error
		)
		if pending != "" {
			line, err = rl.PromptWithSuggestion("> ", pending, len(pending))
			pending = ""
		} else {
			line, err = rl.Prompt("> ")
		}
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			// EOF: leave like /quit would.
			fmt.Println()
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.AppendHistory(line)

		if strings.HasPrefix(line, "/") {
			if quit := runChatCommand(ctx, deps, line); quit {
				return nil
			}
			continue
		}

		if sent := deps.Svc.SendMessage(ctx, line, modelID); !sent {
			fmt.Println(infoStyle.Render("Not sent."))
			continue
		}
		printLastExchange(deps)

		if err := deps.Svc.SaveCurrentConversation(ctx); err == nil {
			if id := deps.Svc.CurrentID(); id != nil {
				fmt.Println(infoStyle.Render(fmt.Sprintf("Saved as conversation %d.", *id)))
			}
		}
	}
}

// runChatCommand handles a slash command and reports whether to quit.
func runChatCommand(ctx context.Context, deps *Deps, line string) bool {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "/quit", "/q":
		return true

	case "/help", "/h":
		fmt.Print(chatHelp)

	case "/new":
		deps.Svc.StartNewConversation()
		fmt.Println(infoStyle.Render("Started a new conversation."))

	case "/save":
		if err := deps.Svc.SaveCurrentConversation(ctx); err == nil {
			fmt.Println(successStyle.Render("Conversation saved."))
		}

	case "/history":
		if err := deps.Svc.LoadConversationHistory(ctx); err != nil {
			fmt.Println(errorStyle.Render("Could not load history."))
			return false
		}
		for _, c := range deps.Svc.HistoryList() {
			fmt.Printf("%4d  %s\n", c.ID, c.Title)
		}

	case "/open":
		id, ok := parseIDArg(args)
		if !ok {
			fmt.Println(errorStyle.Render("Usage: /open <id>"))
			return false
		}
		if err := deps.Svc.LoadConversation(ctx, id); err == nil {
			printTranscript(deps.Svc.Messages())
		}

	case "/delete":
		id, ok := parseIDArg(args)
		if !ok {
			fmt.Println(errorStyle.Render("Usage: /delete <id>"))
			return false
		}
		if err := deps.Svc.DeleteConversation(ctx, id); err == nil {
			fmt.Println(successStyle.Render("Conversation deleted."))
		}

	case "/preset":
		handlePresetCommand(ctx, deps, args)

	case "/preview":
		if len(args) == 1 && (args[0] == "on" || args[0] == "off") {
			deps.Svc.SetPreviewBeforeSend(args[0] == "on")
		}
		fmt.Printf("Preview before send: %v\n", deps.Svc.PreviewBeforeSend())

	default:
		fmt.Println(errorStyle.Render("Unknown command. Try /help."))
	}
	return false
}

func handlePresetCommand(ctx context.Context, deps *Deps, args []string) {
	if len(args) == 0 {
		presets, err := deps.API.ListPresets(ctx)
		if err != nil {
			fmt.Println(errorStyle.Render("Could not list presets."))
			return
		}
		for _, p := range presets {
			fmt.Printf("%4d  %s\n", p.ID, p.Name)
		}
		return
	}
	if args[0] == "off" {
		deps.Svc.SetPreset(nil)
		fmt.Println(infoStyle.Render("Preset cleared."))
		return
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println(errorStyle.Render("Usage: /preset [<id>|off]"))
		return
	}
	preset, err := deps.API.GetPreset(ctx, id)
	if err != nil {
		fmt.Println(errorStyle.Render("Could not load preset."))
		return
	}
	deps.Svc.SetPreset(preset)
	fmt.Println(infoStyle.Render(fmt.Sprintf("Using preset %q.", preset.Name)))
}

func parseIDArg(args []string) (int, bool) {
	if len(args) != 1 {
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, false
	}
	return id, true
}

func printLastExchange(deps *Deps) {
	messages := deps.Svc.Messages()
	if len(messages) == 0 {
		return
	}
	last := messages[len(messages)-1]
	if last.Role != model.RoleAssistant {
		return
	}
	if last.Thinking != "" {
		fmt.Println(thinkStyle.Render(last.Thinking))
	}
	fmt.Print(renderMarkdown(last.Content))
}

func printTranscript(messages []model.Message) {
	for _, m := range messages {
		fmt.Println(headingStyle.Render(m.Role))
		fmt.Print(renderMarkdown(m.Content))
	}
}

const chatHelp = `Commands:
  /new            start a new conversation
  /save           save the current conversation
  /history        list saved conversations
  /open <id>      load a saved conversation
  /delete <id>    delete a saved conversation
  /preset [id]    list presets, or select one (/preset off to clear)
  /preview on|off toggle confirm-before-send
  /quit           exit
`
