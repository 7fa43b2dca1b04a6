package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/firstweek/internal/client/client"
	"github.com/dmitrijs2005/firstweek/internal/client/config"
	"github.com/dmitrijs2005/firstweek/internal/client/models"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// memberClient is the subset of client.GRPCClient the commands use.
type memberClient interface {
	Create(ctx context.Context, name, email string) (models.Member, error)
	Get(ctx context.Context, id int64) (models.Member, error)
	List(ctx context.Context) ([]models.Member, error)
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
	Close() error
}

type App struct {
	config *config.Config
	client memberClient
	reader *bufio.Reader
	out    io.Writer
	// interactive is true when stdin is a terminal; prompts are only
	// printed then, so piped scripts produce clean output.
	interactive bool
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{
		config:      c,
		client:      apiClient,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: isTerminal(int(os.Stdin.Fd())),
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	defer a.client.Close()

	if a.interactive {
		printf(a.out, "Welcome to firstweek CLI (type 'help' for commands)\n")
		if err := a.client.Ping(ctx); err != nil {
			printf(a.out, "Server %s is not reachable: %v\n", a.config.ServerEndpointAddr, err)
		}
	}

	runREPL(ctx, a, a.reader, a.out, a.interactive)
	return nil
}
