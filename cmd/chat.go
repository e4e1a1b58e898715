package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/session"
)

var quitWords = map[string]bool{"bye": true, "exit": true, "quit": true, "goodbye": true}

const chatBanner = `🗓️  ===== Scheduling Assistant =====
💡 I can help you manage your Cal.com calendar!
📝 Try saying things like:
   • 'Book a 30 min meeting tomorrow at 2pm'
   • 'Show my meetings'
   • 'Event types'
==================================================`

// responder отвечает на сообщение в рамках сессии
type responder interface {
	Respond(ctx context.Context, sess *session.Session, message string) string
}

func newChatCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the assistant in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadRuntime(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			journal, closeJournal, err := openJournal(cfg, log, nil)
			if err != nil {
				return err
			}
			defer closeJournal()

			application := buildApp(cfg, log, nil, journal)
			return runChat(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), application.assistant)
		},
	}
}

// runChat одна сессия на весь процесс, выход по bye/exit/quit/goodbye или концу ввода
func runChat(ctx context.Context, in io.Reader, out io.Writer, assistant responder) error {
	sess := session.New(time.Now())
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, chatBanner)

	for {
		fmt.Fprint(out, "\n💬 You: ")
		if !scanner.Scan() {
			break
		}

		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if isQuit(message) {
			break
		}

		fmt.Fprintf(out, "\n🤖 Assistant: %s\n", assistant.Respond(ctx, sess, message))
	}

	fmt.Fprintln(out, "\n\n👋 Goodbye! Thanks for using the scheduling assistant!")
	return scanner.Err()
}

func isQuit(message string) bool {
	for _, word := range strings.Fields(strings.ToLower(message)) {
		if quitWords[strings.Trim(word, "!.,?")] {
			return true
		}
	}
	return false
}
