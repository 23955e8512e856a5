package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"blog-engagement/internal/articleview"
	"blog-engagement/internal/client"
	"blog-engagement/internal/localstore"
)

// app holds what every subcommand needs once flags are parsed.
type app struct {
	cfg    *viper.Viper
	out    io.Writer
	errOut io.Writer

	store  *localstore.Store
	client *client.Client
	view   *articleview.View
}

// stderrNotifier prints view notifications to stderr.
type stderrNotifier struct {
	w io.Writer
}

func (n stderrNotifier) Notify(level articleview.Level, message string) {
	prefix := ""
	switch level {
	case articleview.LevelSuccess:
		prefix = "✓ "
	case articleview.LevelError:
		prefix = "✗ "
	}
	fmt.Fprintln(n.w, prefix+message)
}

// systemClipboard writes to the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// printClipboard is used when no OS clipboard is available: the text is
// printed so the user can copy it.
type printClipboard struct {
	w io.Writer
}

func (p printClipboard) WriteAll(text string) error {
	_, err := fmt.Fprintf(p.w, "%s\n", text)
	return err
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "blogctl", "state.json")
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{cfg: viper.New(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "blogctl",
		Short:         "Read and engage with blog articles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.String("api", "http://localhost:8080", "API base URL, including any base path")
	flags.String("state", defaultStatePath(), "path of the local state file")
	flags.Duration("timeout", client.DefaultTimeout, "timeout of each API request")

	a.cfg.SetEnvPrefix("BLOGCTL")
	a.cfg.AutomaticEnv()
	_ = a.cfg.BindPFlags(flags)

	root.AddCommand(
		a.listCmd(),
		a.showCmd(),
		a.likeCmd(),
		a.shareCmd(),
		a.commentsCmd(),
		a.commentCmd(),
		a.statsCmd(),
		a.topCmd(),
		a.historyCmd(),
	)

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\n\n%s", err, cmd.UsageString())
	})

	return root
}

func (a *app) init() error {
	store, err := localstore.Open(a.cfg.GetString("state"))
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	a.store = store

	timeout := a.cfg.GetDuration("timeout")
	c, err := client.New(a.cfg.GetString("api"),
		client.WithTimeout(timeout),
		client.WithDeviceID(store.DeviceID()),
	)
	if err != nil {
		return err
	}
	a.client = c

	var cb articleview.Clipboard = systemClipboard{}
	if clipboard.Unsupported {
		cb = printClipboard{w: a.out}
	}

	view, err := articleview.New(articleview.Config{
		API:       c,
		Tracker:   store,
		Clipboard: cb,
		Notifier:  stderrNotifier{w: a.errOut},
		Timeout:   timeout,
	})
	if err != nil {
		return err
	}
	a.view = view
	return nil
}

func (a *app) listCmd() *cobra.Command {
	var (
		query    string
		pageSize int
		page     string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List articles, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(query) != "" {
				if err := a.store.AddSearch(query); err != nil {
					fmt.Fprintf(a.errOut, "could not save search: %v\n", err)
				}
			}
			if err := a.view.Load(cmd.Context(), query, pageSize, page); err != nil {
				return err
			}
			return a.view.Render(a.out)
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "search title and content")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "articles per page")
	cmd.Flags().StringVar(&page, "page", "", "page token from a previous listing")
	return cmd
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show an article with its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.view.Open(cmd.Context(), args[0]); err != nil {
				return err
			}
			return a.view.Render(a.out)
		},
	}
}

func (a *app) likeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "like <id>",
		Short: "Like an article, or unlike it when already liked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if err := a.view.Open(cmd.Context(), id); err != nil {
				return err
			}
			if err := a.view.ToggleLike(cmd.Context(), id); err != nil {
				return err
			}
			card, _ := a.view.Card(id)
			fmt.Fprintf(a.out, "%s %d  %s\n", articleview.Heart(card.Liked), card.Article.LikesCount, card.Article.Title)
			return nil
		},
	}
}

func (a *app) shareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share <id>",
		Short: "Share an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.view.Share(cmd.Context(), args[0])
			return err
		},
	}
}

func (a *app) commentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comments <id>",
		Short: "List the comments of an article, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comments, err := a.client.ListComments(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(comments) == 0 {
				fmt.Fprintln(a.out, "No comments yet.")
				return nil
			}
			for _, c := range comments {
				fmt.Fprintf(a.out, "- %s (%s): %s\n", c.UserID, c.CreatedAt.Format(time.DateTime), c.Text)
			}
			return nil
		},
	}
}

func (a *app) commentCmd() *cobra.Command {
	var user string
	cmd := &cobra.Command{
		Use:   "comment <id> <text...>",
		Short: "Post a comment on an article",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.view.Open(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.view.SetDraft(strings.Join(args[1:], " "))
			if _, err := a.view.SubmitComment(cmd.Context(), user); err != nil {
				return err
			}
			return a.view.Render(a.out)
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "name shown with the comment")
	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <id>",
		Short: "Show the like, comment and share counts of an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			counters, err := a.client.Counters(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "likes %d  comments %d  shares %d\n", counters.Likes, counters.Comments, counters.Shares)
			return nil
		},
	}
}

func (a *app) topCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "top",
		Short: "List the most liked articles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			articles, err := a.client.TopArticles(cmd.Context(), limit)
			if err != nil {
				return err
			}
			a.view.ShowArticles(articles)
			return a.view.Render(a.out)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "number of articles")
	return cmd
}

func (a *app) historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history [prefix]",
		Short: "Show recent searches",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			for _, term := range a.store.RecentSearches(prefix) {
				fmt.Fprintln(a.out, term)
			}
			return nil
		},
	}
}
