package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"valet/internal/assistant"
	"valet/internal/config"

	"github.com/spf13/cobra"
)

var chatAssistant string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with an assistant on stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		shutdown, err := initTracing(ctx, cfg)
		if err != nil {
			return fmt.Errorf("initializing tracing: %w", err)
		}
		defer shutdown(context.Background())

		jobs, cards, err := buildAssistants(cfg)
		if err != nil {
			return err
		}

		var a *assistant.Assistant
		switch chatAssistant {
		case "jobs":
			a = jobs
		case "cards":
			a = cards
		default:
			return fmt.Errorf("unknown assistant %q (want jobs or cards)", chatAssistant)
		}

		fmt.Printf("Chatting with the %s assistant. Ctrl-D to exit.\n", a.Name())

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("you> ")
			if !scanner.Scan() {
				break
			}
			input := strings.TrimSpace(scanner.Text())
			if input == "" {
				continue
			}
			fmt.Printf("%s> %s\n", a.Name(), a.Chat(ctx, input))

			if ctx.Err() != nil {
				break
			}
		}
		return scanner.Err()
	},
}

func init() {
	chatCmd.Flags().StringVarP(&chatAssistant, "assistant", "a", "jobs", "assistant to chat with (jobs or cards)")
}
