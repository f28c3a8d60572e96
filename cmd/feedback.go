package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/cinemood/internal/catalog"
	"github.com/papapumpkin/cinemood/internal/config"
)

// feedbackCmd submits feedback from the command line.
var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Send feedback to the service",
	Args:  cobra.NoArgs,
	RunE:  runFeedback,
}

func init() {
	feedbackCmd.Flags().StringP("message", "m", "", "feedback message (required)")
	feedbackCmd.Flags().StringP("email", "e", "", "contact email (optional)")
	_ = feedbackCmd.MarkFlagRequired("message")
	rootCmd.AddCommand(feedbackCmd)
}

func runFeedback(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	client := newClient(cfg)

	message, _ := cmd.Flags().GetString("message")
	fb := catalog.Feedback{Message: message}
	if email, _ := cmd.Flags().GetString("email"); email != "" {
		fb.Email = &email
	}

	err := client.SubmitFeedback(context.Background(), fb)
	if errors.Is(err, catalog.ErrEmptyMessage) {
		return fmt.Errorf("please write a message before sending")
	}
	if err != nil {
		return err
	}
	fmt.Println("Thanks for your feedback!")
	return nil
}
