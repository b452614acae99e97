package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/Petemir/2do-txt/internal/cloud"
	"github.com/Petemir/2do-txt/internal/config"
	"github.com/Petemir/2do-txt/internal/exitcode"
	"github.com/Petemir/2do-txt/internal/service"
)

const (
	// OAuth callback timeout
	oauthCallbackTimeout = 5 * time.Minute

	// Token exchange timeout
	tokenExchangeTimeout = 30 * time.Second

	// Starting port for OAuth callback server
	oauthStartPort = 8085

	// Max port attempts
	oauthMaxPortAttempts = 5
)

func init() {
	Register(&ConnectCmd{})
	Register(&DisconnectCmd{})
}

// ConnectCmd implements the connect command.
type ConnectCmd struct{}

func (c *ConnectCmd) Name() string        { return "connect" }
func (c *ConnectCmd) Aliases() []string   { return []string{"login"} }
func (c *ConnectCmd) Synopsis() string    { return "Connect a cloud storage account" }
func (c *ConnectCmd) Usage() string       { return "2do connect [common flags] <dropbox|googledrive>" }
func (c *ConnectCmd) NeedsServices() bool { return false }

func (c *ConnectCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ConnectCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Services, args []string, out, errOut io.Writer) int {
	id, rc := parseProviderArg(args, errOut)
	if rc != exitcode.Success {
		return rc
	}

	if !cfg.HasClient(id.Slug()) {
		fmt.Fprintf(errOut, "error: %s not found\n\n", cfg.ClientPath(id.Slug()))
		printClientHelp(errOut, cfg, id)
		return exitcode.AuthError
	}

	oauthConfig, err := cloud.OAuthConfig(cfg, id)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	}

	port, listener, err := findAvailablePort()
	if err != nil {
		fmt.Fprintf(errOut, "error: could not bind to local port for OAuth callback\n")
		return exitcode.AuthError
	}
	defer listener.Close()

	oauthConfig.RedirectURL = fmt.Sprintf("http://localhost:%d/callback", port)

	verifier := oauth2.GenerateVerifier()
	state := oauth2.GenerateVerifier()
	opts := append(cloud.AuthCodeOptions(id), oauth2.S256ChallengeOption(verifier))
	authURL := oauthConfig.AuthCodeURL(state, opts...)

	fmt.Fprintln(errOut, "Open this URL in your browser:")
	fmt.Fprintln(errOut, authURL)

	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != state {
			http.Error(w, "State mismatch", http.StatusBadRequest)
			return
		}
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "No code in callback", http.StatusBadRequest)
			errCh <- fmt.Errorf("no code in callback")
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<html><body><h1>Connected</h1><p>You may close this window.</p></body></html>")
		codeCh <- code
	})

	server := &http.Server{Handler: mux}
	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	var code string
	select {
	case code = <-codeCh:
	case err := <-errCh:
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	case <-time.After(oauthCallbackTimeout):
		fmt.Fprintln(errOut, "error: oauth callback timed out")
		return exitcode.AuthError
	case <-ctx.Done():
		fmt.Fprintln(errOut, "error: cancelled")
		return exitcode.AuthError
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	server.Shutdown(shutdownCtx)

	exchangeCtx, cancelExchange := context.WithTimeout(ctx, tokenExchangeTimeout)
	defer cancelExchange()

	token, err := oauthConfig.Exchange(exchangeCtx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		fmt.Fprintf(errOut, "error: failed to exchange code for token: %v\n", err)
		return exitcode.AuthError
	}

	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create config directory: %v\n", err)
		return exitcode.AuthError
	}
	if err := cloud.SaveToken(cfg.TokenPath(id.Slug()), token); err != nil {
		fmt.Fprintf(errOut, "error: failed to save token: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

func printClientHelp(w io.Writer, cfg *config.Config, id service.CloudStorageID) {
	switch id {
	case service.GoogleDrive:
		fmt.Fprintln(w, "To connect Google Drive, you need OAuth credentials:")
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "1. Go to https://console.cloud.google.com/apis/credentials")
		fmt.Fprintln(w, "2. Enable the Google Drive API for your project")
		fmt.Fprintln(w, "3. Create an OAuth client ID of type 'Desktop app'")
		fmt.Fprintln(w, "4. Download the JSON file and save it as:")
	case service.Dropbox:
		fmt.Fprintln(w, "To connect Dropbox, you need an app key:")
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "1. Go to https://www.dropbox.com/developers/apps")
		fmt.Fprintln(w, "2. Create an app with 'App folder' access")
		fmt.Fprintln(w, "3. Add http://localhost:8085/callback as a redirect URI")
		fmt.Fprintln(w, `4. Save {"app_key": "<your app key>"} as:`)
	}
	fmt.Fprintf(w, "   %s\n", cfg.ClientPath(id.Slug()))
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Then run '2do connect %s' again.\n", id.Slug())
}

// parseProviderArg parses the single provider argument.
func parseProviderArg(args []string, errOut io.Writer) (service.CloudStorageID, int) {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: provider required (dropbox or googledrive)")
		return "", exitcode.UserError
	}
	id, err := service.ParseCloudStorageID(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return "", exitcode.UserError
	}
	return id, exitcode.Success
}

// findAvailablePort tries to find an available port starting from oauthStartPort.
func findAvailablePort() (int, net.Listener, error) {
	for i := 0; i < oauthMaxPortAttempts; i++ {
		port := oauthStartPort + i
		listener, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", port))
		if err == nil {
			return port, listener, nil
		}
	}
	return 0, nil, fmt.Errorf("no available port found")
}

// DisconnectCmd implements the disconnect command.
type DisconnectCmd struct{}

func (c *DisconnectCmd) Name() string        { return "disconnect" }
func (c *DisconnectCmd) Aliases() []string   { return []string{"logout"} }
func (c *DisconnectCmd) Synopsis() string    { return "Remove stored cloud credentials" }
func (c *DisconnectCmd) Usage() string       { return "2do disconnect [common flags] <dropbox|googledrive>" }
func (c *DisconnectCmd) NeedsServices() bool { return false }

func (c *DisconnectCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DisconnectCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Services, args []string, out, errOut io.Writer) int {
	id, code := parseProviderArg(args, errOut)
	if code != exitcode.Success {
		return code
	}

	if !cfg.HasToken(id.Slug()) {
		if !cfg.Quiet {
			fmt.Fprintln(out, "not connected")
		}
		return exitcode.Success
	}

	if err := cfg.RemoveToken(id.Slug()); err != nil {
		fmt.Fprintf(errOut, "error: failed to remove token: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
