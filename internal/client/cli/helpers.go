package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"text/template"

	"github.com/nilesh2630/floorplan/internal/client/sync"
	"github.com/nilesh2630/floorplan/internal/models"
)

// PrintUsage prints command help.
func PrintUsage() {
	fmt.Print(usageTemplate)
}

func parsePayload(raw string) (models.Payload, error) {
	if raw == "" {
		return models.Payload{}, nil
	}
	var payload models.Payload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("invalid payload JSON: %w", err)
	}
	return payload, nil
}

func (c *Cli) renderTemplate(tmpl string, data any) error {
	t, err := template.New("out").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	if err := t.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	return nil
}

// drainIfReachable pushes the queue right away when the server answers a
// probe; otherwise the change stays queued for a later sync.
func (c *Cli) drainIfReachable(ctx context.Context, accessToken string) error {
	if err := c.apiClient.Health(ctx); err != nil {
		c.io.Println("Server unreachable. Change queued; run 'floorplan sync' once the server is back.")
		return nil
	}

	result, err := c.coordinator.Drain(ctx, accessToken)
	if errors.Is(err, sync.ErrSyncInProgress) {
		c.io.Println("Sync already in progress; change queued.")
		return nil
	}
	if err != nil {
		return err
	}

	c.printDrainResult(result)
	return nil
}

func (c *Cli) printDrainResult(result *sync.DrainResult) {
	c.io.Println()
	c.io.Println("✓ Synchronization finished")
	c.io.Printf("Applied:  %d change(s)\n", result.Applied)
	if result.Merged > 0 {
		c.io.Printf("Merged:   %d conflict(s) resolved against the latest version\n", result.Merged)
	}
	if result.Requeued > 0 {
		c.io.Printf("Requeued: %d change(s) waiting for the server\n", result.Requeued)
	}

	for _, abandoned := range result.Abandoned {
		c.io.Printf("✗ Abandoned %s of %s: %v\n",
			abandoned.Change.Kind, abandoned.Change.TargetID, abandoned.Err)
	}
	for _, report := range result.Conflicts {
		latestVersion := int64(0)
		if report.Latest != nil {
			latestVersion = report.Latest.Version
		}
		c.io.Printf("  Conflict on %s: expected version %d, server is at %d. Review with 'floorplan get %s'.\n",
			report.AttemptedChange.TargetID, report.ExpectedVersion, latestVersion,
			report.AttemptedChange.TargetID)
	}
}
