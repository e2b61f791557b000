package handlers

import (
	"context"
	"fmt"

	"github.com/firelift/firelift/internal/api"
	"github.com/firelift/firelift/internal/clientcfg"
)

// Setup resolves the current configuration and, when nothing is active or
// force is set, provisions a fresh project through the server and stores
// the returned configuration.
func Setup(ctx context.Context, serverURL, projectName string, force bool) error {
	store, err := clientcfg.NewStore()
	if err != nil {
		return err
	}

	stored, err := store.Load()
	if err != nil {
		return err
	}

	_, source := clientcfg.Resolve(clientcfg.FromEnv(), stored)
	if source != clientcfg.SourceNone && !force {
		fmt.Printf("%s configuration already resolved from %s\n",
			styled(okStyle, "✓"), sourceLabel(source))
		fmt.Println(styled(dimStyle, "  use --force to provision a fresh project anyway"))
		return nil
	}

	requesterID, err := store.RequesterID()
	if err != nil {
		return err
	}

	fmt.Println(styled(titleStyle, "Provisioning a new project..."))
	fmt.Println(styled(dimStyle, "  this can take a few minutes"))

	client := NewAPIClient(serverURL)
	resp, err := client.Setup(ctx, api.SetupRequest{
		UserID:      requesterID,
		ProjectName: projectName,
	})
	if err != nil {
		return err
	}

	if err := store.Save(resp.Config); err != nil {
		return fmt.Errorf("project %s was created but the config could not be stored: %w",
			resp.ProjectID, err)
	}

	fmt.Printf("%s project %s ready\n", styled(okStyle, "✓"), resp.ProjectID)
	for _, w := range resp.Warnings {
		fmt.Printf("%s %s: %s\n", styled(warnStyle, "!"), w.Stage, w.Message)
	}
	fmt.Println(styled(dimStyle, "  configuration stored in "+store.Dir()))
	return nil
}

func sourceLabel(source clientcfg.Source) string {
	switch source {
	case clientcfg.SourceEnvironment:
		return "the environment"
	case clientcfg.SourceStore:
		return "the local store"
	default:
		return "nowhere"
	}
}
