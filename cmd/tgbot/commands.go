package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prilive-com/tgbot"
	"github.com/prilive-com/tgbot/cmd/tgbot/config"
	"github.com/prilive-com/tgbot/tg"
)

func rootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "tgbot",
		Short:         "Call the Telegram Bot API from the command line",
		Long:          "Call the Telegram Bot API from the command line.\n\n" + config.Usage(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "Path to a YAML or .env configuration file")

	root.AddCommand(
		meCmd(a),
		sendCmd(a),
		photoCmd(a),
		actionCmd(a),
		webhookCmd(a),
		fileURLCmd(a),
	)
	return root
}

func meCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the bot user (getMe)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.call(cmd.Context(), func(ctx context.Context, b *tgbot.Bot) (*tg.APIResponse, error) {
				return b.GetMe(ctx)
			})
		},
	}
}

func sendCmd(a *app) *cobra.Command {
	var (
		parseMode string
		silent    bool
		noPreview bool
	)
	cmd := &cobra.Command{
		Use:   "send <chat> <text>",
		Short: "Send a text message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := tg.ParseMode(parseMode)
			if !mode.IsValid() {
				return fmt.Errorf("unsupported parse mode %q", parseMode)
			}
			return a.call(cmd.Context(), func(ctx context.Context, b *tgbot.Bot) (*tg.APIResponse, error) {
				return b.SendMessage(ctx, parseChatID(args[0]), args[1],
					tgbot.WithParseMode(mode),
					tgbot.WithDisableNotification(silent),
					tgbot.WithDisableWebPagePreview(noPreview),
				)
			})
		},
	}
	cmd.Flags().StringVar(&parseMode, "parse-mode", string(tg.ParseModeHTML), "html, Markdown or MarkdownV2")
	cmd.Flags().BoolVar(&silent, "silent", false, "Send without notification")
	cmd.Flags().BoolVar(&noPreview, "no-preview", false, "Disable link previews")
	return cmd
}

func photoCmd(a *app) *cobra.Command {
	var caption string
	cmd := &cobra.Command{
		Use:   "photo <chat> <file_id|url>",
		Short: "Send a photo",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.call(cmd.Context(), func(ctx context.Context, b *tgbot.Bot) (*tg.APIResponse, error) {
				return b.SendPhoto(ctx, parseChatID(args[0]), args[1], caption)
			})
		},
	}
	cmd.Flags().StringVar(&caption, "caption", "", "Photo caption")
	return cmd
}

func actionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "action <chat> <action>",
		Short: "Broadcast a chat action such as typing",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.call(cmd.Context(), func(ctx context.Context, b *tgbot.Bot) (*tg.APIResponse, error) {
				return b.SendChatAction(ctx, parseChatID(args[0]), tg.ChatAction(args[1]))
			})
		},
	}
}

func webhookCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Webhook management",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <url>",
			Short: "Register the webhook URL",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.call(cmd.Context(), func(ctx context.Context, b *tgbot.Bot) (*tg.APIResponse, error) {
					return b.SetWebhook(ctx, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "info",
			Short: "Show the webhook status",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.call(cmd.Context(), func(ctx context.Context, b *tgbot.Bot) (*tg.APIResponse, error) {
					return b.GetWebhookInfo(ctx)
				})
			},
		},
	)
	return cmd
}

func fileURLCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "file-url <file_path>",
		Short: "Print the download URL of a file_path (no request is made)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			bot, err := a.bot()
			if err != nil {
				return err
			}
			defer bot.Close()
			_, err = fmt.Fprintln(a.out, bot.GetFileURL(args[0]))
			return err
		},
	}
}
