package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/polydawn/refmt"
	"github.com/polydawn/refmt/json"
	. "github.com/warpfork/go-errcat"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/durden/jist"
	"github.com/durden/jist/config"
	"github.com/durden/jist/gist"
	"github.com/durden/jist/gitcmd"
	"github.com/durden/jist/workflow"
)

/*
	Output serialization formats
*/
const (
	FmtJson = "json"
	FmtDumb = "dumb"
)

type baseCLI struct {
	Verbose   bool   // Step-by-step progress on stderr
	Debug     bool   // Everything, including subprocess chatter
	Quiet     bool   // Errors only
	Token     string // API token (overrides jist.token)
	Username  string // Username (overrides jist.user)
	Separator string // Separator token for flattened names
	Format    string // Output api format, eg. json
	CloneCLI  struct {
		ID   string // Gist id
		Dest string // Destination directory
	}
	InitCLI struct {
		Path        string // Project directory
		Description string // Gist description
	}
	PushCLI struct {
		Path string // Project directory
	}
	FlattenCLI struct {
		Path string // Directory to flatten
	}
	ExpandCLI struct {
		Path string // Directory to expand
	}
}

/*
	Blocks until a sigint is received, then calls cancel.
*/
func CancelOnInterrupt(cancel context.CancelFunc) {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)
	<-signalChan
	cancel()
	close(signalChan)
}

func main() {
	ctx := context.Background()
	exitCode := Main(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	os.Exit(int(exitCode))
}

func Main(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) jist.ExitCode {
	ctx, cancel := context.WithCancel(ctx)
	go CancelOnInterrupt(cancel)

	cli := baseCLI{}

	app := kingpin.New("jist", "Manage private gists as local multi-file projects")
	app.HelpFlag.Short('h')

	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	app.Flag("verbose", "Report each workflow step").
		Short('v').
		BoolVar(&cli.Verbose)
	app.Flag("debug", "Report everything").
		Short('d').
		BoolVar(&cli.Debug)
	app.Flag("quiet", "Report only errors").
		Short('q').
		BoolVar(&cli.Quiet)
	app.Flag("token", "API token (overrides the jist.token git config)").
		Short('k').
		StringVar(&cli.Token)
	app.Flag("user", "Username (overrides the jist.user git config)").
		Short('u').
		StringVar(&cli.Username)
	app.Flag("separator", "Separator token for flattened filenames").
		Short('s').
		StringVar(&cli.Separator)
	app.Flag("format", "Output api format").
		Default(FmtDumb).
		EnumVar(&cli.Format, FmtJson, FmtDumb)

	appClone := app.Command("clone", "clone a gist into a local directory and expand it")
	appClone.Arg("id", "Gist id").
		Required().
		StringVar(&cli.CloneCLI.ID)
	appClone.Arg("dest", "Destination directory (guessed from metadata when omitted)").
		StringVar(&cli.CloneCLI.Dest)

	appInit := app.Command("init", "create a gist backing a local directory")
	appInit.Arg("path", "Project directory").
		StringVar(&cli.InitCLI.Path)
	appInit.Arg("description", "Gist description").
		StringVar(&cli.InitCLI.Description)

	appPush := app.Command("push", "snapshot the tree and push it to the gist")
	appPush.Arg("path", "Project directory").
		StringVar(&cli.PushCLI.Path)

	appCommit := app.Command("commit", "stage and commit all changes")
	appPull := app.Command("pull", "pull the gist's state and expand it")

	appFlatten := app.Command("flatten", "collapse the tree into flat filenames")
	appFlatten.Arg("path", "Directory to flatten").
		StringVar(&cli.FlattenCLI.Path)

	appExpand := app.Command("expand", "reconstruct the tree from flat filenames")
	appExpand.Arg("path", "Directory to expand").
		StringVar(&cli.ExpandCLI.Path)

	var termErr error
	app.Terminate(func(status int) {
		termErr = fmt.Errorf("parsing error: %d\n", status)
	})
	cmd, err := app.Parse(args[1:])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return jist.ExitFailure
	}
	if termErr != nil {
		fmt.Fprintln(stderr, termErr)
		return jist.ExitFailure
	}

	log := newLogger(cli, stderr)
	cfg := config.Resolve(ctx, gitcmd.Client{}, config.Flags{
		User:      cli.Username,
		Token:     cli.Token,
		Separator: cli.Separator,
	})
	wf := workflow.New("", cfg.Separator, gist.New(cfg.User, cfg.Token), log)

	var url string
	switch cmd {
	case appClone.FullCommand():
		url, err = wf.Clone(ctx, cli.CloneCLI.ID, cli.CloneCLI.Dest)
	case appInit.FullCommand():
		if cfg.Token == "" {
			err = Errorf(jist.ErrUsage, "no API token configured; set the jist.token git config or pass -k")
		} else {
			url, err = wf.Init(ctx, cli.InitCLI.Path, cli.InitCLI.Description)
		}
	case appPush.FullCommand():
		url, err = wf.Push(ctx, cli.PushCLI.Path)
	case appCommit.FullCommand():
		err = wf.Commit(ctx)
	case appPull.FullCommand():
		err = wf.Pull(ctx)
	case appFlatten.FullCommand():
		err = wf.Flatten(cli.FlattenCLI.Path)
	case appExpand.FullCommand():
		err = wf.Expand(cli.ExpandCLI.Path)
	}
	SerializeResult(cli.Format, url, err, stdout, stderr)

	if err != nil {
		return jist.ExitFailure
	}
	return jist.ExitSuccess
}

func newLogger(cli baseCLI, stderr io.Writer) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case cli.Debug:
		level = slog.LevelDebug
	case cli.Verbose:
		level = slog.LevelInfo
	case cli.Quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

func SerializeResult(format string, url string, resultErr error, stdout io.Writer, stderr io.Writer) {
	result := jist.Result{URL: url}
	result.SetError(resultErr)
	switch format {
	case FmtJson:
		marshaller := refmt.NewMarshallerAtlased(json.EncodeOptions{}, stdout, jist.Atlas)
		err := marshaller.Marshal(&result)
		if err != nil {
			panic(err)
		}
	case FmtDumb:
		if resultErr != nil {
			fmt.Fprintln(stderr, resultErr)
		} else if url != "" {
			fmt.Fprintln(stdout, url)
		}
	default:
		panic(fmt.Errorf("jist: invalid format %s", format))
	}
}
