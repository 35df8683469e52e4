package intake

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tickform/sdk/intake"
)

var (
	serverURL string
	table     int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intake",
		Short: "File a support ticket interactively",
		Long:  `Confirm an identity, fill in the ticket form and answer any follow-up questions from the terminal.`,
		RunE:  run,
	}

	cmd.Flags().StringVar(&serverURL, "server", "http://127.0.0.1:5000", "Intake server base URL")
	cmd.Flags().IntVar(&table, "table", 0, "Table number (1-5, optional)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("intake requires an interactive terminal")
	}

	ctx := context.Background()
	client := intake.NewClient(serverURL)

	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("server unreachable at %s: %w", serverURL, err)
	}

	reader := bufio.NewReader(os.Stdin)
	session := intake.NewSession(client)

	for !session.Confirmed() {
		username, err := readLine(reader, "Username (user1-user99): ")
		if err != nil {
			return err
		}

		id, err := session.ConfirmIdentity(ctx, username, table)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not confirm identity: %v\n", err)
			continue
		}
		fmt.Printf("Identity confirmed as user%d, the clock is running.\n", id)
	}

	inquiry, err := readLine(reader, "Category: ")
	if err != nil {
		return err
	}
	fmt.Println("Describe your issue (finish with an empty line):")
	description, err := readMultiline(reader)
	if err != nil {
		return err
	}

	form := intake.NewForm(client, session, &consolePrompter{reader: reader})

	result, err := form.Submit(ctx, inquiry, description)
	if err != nil {
		return fmt.Errorf("submission failed: %w", err)
	}

	fmt.Printf("\nTicket submitted in %.1fs.\n", float64(result.TimeToSubmitMS)/1000)
	if result.AIUsed && result.Final != nil {
		fmt.Printf("Improved description:\n%s\n", result.Final.ImprovedDescription)
		if result.Final.CategoryGuess != "" {
			fmt.Printf("Suggested category: %s\n", result.Final.CategoryGuess)
		}
		if result.Final.UrgencyGuess != "" {
			fmt.Printf("Estimated urgency: %s\n", result.Final.UrgencyGuess)
		}
	}
	return nil
}

// consolePrompter asks follow-up questions on stdin, one at a time.
type consolePrompter struct {
	reader *bufio.Reader
}

func (p *consolePrompter) Prompt(q intake.Question) (string, error) {
	fmt.Printf("\n%s\n", q.Question)
	if q.Type == intake.QuestionTypeMultipleChoice && len(q.Choices) > 0 {
		for i, choice := range q.Choices {
			fmt.Printf("  %d) %s\n", i+1, choice)
		}
	}

	answer, err := readLine(p.reader, "> ")
	if err != nil {
		return "", err
	}
	return answer, nil
}

func readLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func readMultiline(reader *bufio.Reader) (string, error) {
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}
