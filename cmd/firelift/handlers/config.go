package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/firelift/firelift/internal/api"
	"github.com/firelift/firelift/internal/appconfig"
	"github.com/firelift/firelift/internal/clientcfg"
)

// ConfigShow prints the resolved configuration and its source tier.
func ConfigShow() error {
	store, err := clientcfg.NewStore()
	if err != nil {
		return err
	}
	stored, err := store.Load()
	if err != nil {
		return err
	}

	cfg, source := clientcfg.Resolve(clientcfg.FromEnv(), stored)
	if source == clientcfg.SourceNone {
		fmt.Printf("%s no configuration found\n", styled(errStyle, "✗"))
		fmt.Println(styled(dimStyle, "  run 'firelift setup' or 'firelift config import'"))
		return nil
	}

	fmt.Println(styled(titleStyle, "Active configuration"))
	fmt.Printf("  source: %s\n", sourceLabel(source))
	fmt.Println()
	printConfig(cfg)
	return nil
}

func printConfig(cfg appconfig.Config) {
	row := func(key, value string) {
		if value == "" {
			value = styled(dimStyle, "(unset)")
		}
		fmt.Printf("  %-20s %s\n", key, value)
	}
	row("apiKey", cfg.APIKey)
	row("authDomain", cfg.AuthDomain)
	row("projectId", cfg.ProjectID)
	row("storageBucket", cfg.StorageBucket)
	row("messagingSenderId", cfg.MessagingSenderID)
	row("appId", cfg.AppID)
	row("measurementId", cfg.MeasurementID)
}

// ConfigImport normalizes a config snippet and persists it. The snippet
// comes from the given file, from stdin when path is "-", or from an
// interactive prompt when no path is given on a terminal.
func ConfigImport(ctx context.Context, path string) error {
	raw, err := readSnippet(ctx, path)
	if err != nil {
		return err
	}

	cfg, err := clientcfg.Normalize(raw)
	if err != nil {
		return err
	}

	store, err := clientcfg.NewStore()
	if err != nil {
		return err
	}
	if err := store.Save(cfg); err != nil {
		return err
	}

	fmt.Printf("%s configuration imported for project %s\n",
		styled(okStyle, "✓"), cfg.ProjectID)
	return nil
}

func readSnippet(ctx context.Context, path string) (string, error) {
	switch {
	case path == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil

	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading snippet file: %w", err)
		}
		return string(data), nil

	case isInteractiveTTY():
		var raw string
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewText().
					Title("App Configuration").
					Description("Paste the config snippet copied from the console.").
					Value(&raw),
			).Title("Import Configuration"),
		).RunWithContext(ctx)
		if err != nil {
			return "", err
		}
		return raw, nil

	default:
		return "", fmt.Errorf("no input: pass a file, pipe to stdin with '-', or run on a terminal")
	}
}

// ConfigVerify submits the resolved configuration to the server's schema
// check. An invalid configuration is reported and returned as an error so
// scripts can rely on the exit code.
func ConfigVerify(ctx context.Context, serverURL string) error {
	store, err := clientcfg.NewStore()
	if err != nil {
		return err
	}
	stored, err := store.Load()
	if err != nil {
		return err
	}

	cfg, source := clientcfg.Resolve(clientcfg.FromEnv(), stored)
	if source == clientcfg.SourceNone {
		return fmt.Errorf("no configuration found: run 'firelift setup' or 'firelift config import'")
	}

	client := NewAPIClient(serverURL)
	resp, err := client.Verify(ctx, api.VerifyRequest{Config: cfg})
	if err != nil {
		var serverErr *ServerError
		if errors.As(err, &serverErr) && serverErr.StatusCode == http.StatusBadRequest {
			fmt.Printf("%s %s\n", styled(errStyle, "✗"), serverErr.Message)
			return fmt.Errorf("configuration from %s is invalid", sourceLabel(source))
		}
		return err
	}

	fmt.Printf("%s %s (from %s)\n", styled(okStyle, "✓"), resp.Message, sourceLabel(source))
	return nil
}

// ConfigClear removes the stored configuration. The requester identity is
// kept so a later setup reuses it.
func ConfigClear() error {
	store, err := clientcfg.NewStore()
	if err != nil {
		return err
	}
	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Printf("%s stored configuration removed\n", styled(okStyle, "✓"))
	return nil
}
